// Package corpus loads FAQ entries from the embedded default, JSON or CSV files
package corpus

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"faqbridge/internal/core/match"
	"faqbridge/internal/core/normalize"
	perr "faqbridge/internal/platform/errors"
)

//go:embed faq.json
var embedded []byte

// Source names accepted by FAQ_CORPUS_SOURCE
const (
	SourceEmbedded = "embedded"
	SourceJSON     = "json"
	SourceCSV      = "csv"
	SourcePG       = "pg"
)

// Embedded returns the corpus compiled into the binary
func Embedded() ([]match.Entry, error) {
	return ReadJSON(bytes.NewReader(embedded))
}

// ReadJSON decodes a JSON array of {"question","answer"} objects
func ReadJSON(r io.Reader) ([]match.Entry, error) {
	var raw []match.Entry
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "decode corpus json")
	}
	return Clean(raw), nil
}

// ReadCSV reads rows of question,answer with a header naming both columns in any order
// extra columns are ignored, a row missing either column fails the whole file
func ReadCSV(r io.Reader) ([]match.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "corpus csv is empty")
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read corpus csv header")
	}
	qi, ai := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "question":
			qi = i
		case "answer":
			ai = i
		}
	}
	if qi < 0 || ai < 0 {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "corpus csv header must name question and answer columns")
	}

	var raw []match.Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read corpus csv")
		}
		if qi >= len(rec) || ai >= len(rec) {
			line, _ := cr.FieldPos(0)
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "corpus csv line %d: want question and answer, got %d fields", line, len(rec))
		}
		raw = append(raw, match.Entry{Question: rec[qi], Answer: rec[ai]})
	}
	return Clean(raw), nil
}

// LoadFile reads path as JSON or CSV, format "" picks by extension
func LoadFile(path, format string) ([]match.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "open corpus %s", path)
	}
	defer f.Close()

	if format == "" {
		format = SourceJSON
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			format = SourceCSV
		}
	}
	switch format {
	case SourceJSON:
		return ReadJSON(f)
	case SourceCSV:
		return ReadCSV(f)
	default:
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "unknown corpus format %q", format)
	}
}

// Clean normalizes both fields and drops entries where either is blank, keeping order
func Clean(in []match.Entry) []match.Entry {
	out := make([]match.Entry, 0, len(in))
	for _, e := range in {
		q, a := normalize.Clean(e.Question), normalize.Clean(e.Answer)
		if q == "" || a == "" {
			continue
		}
		out = append(out, match.Entry{Question: q, Answer: a})
	}
	return out
}
