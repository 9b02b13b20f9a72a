// Package match finds the FAQ entry whose question best matches a query.
// The corpus is fixed at construction and scanned in full, in order, on every lookup
package match

import (
	"strings"

	"faqbridge/internal/core/similarity"
)

// Threshold is the minimum score a best candidate needs to be accepted
const Threshold = 70

// Entry is one question and answer pair, both in English
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Result is the outcome of a lookup
// Found is false both for an empty corpus and when no entry reaches Threshold
type Result struct {
	Found    bool
	Answer   string
	Score    int
	Question string
	Index    int
}

// NotFound reports the lookup produced no acceptable match
func (r Result) NotFound() bool { return !r.Found }

// Scorer rates two strings on a 0..100 scale
type Scorer func(a, b string) int

// Engine is read only after New and safe for concurrent use
type Engine struct {
	entries []Entry
	lowered []string
	score   Scorer
}

// New copies entries so later changes by the caller are not observed
// a nil scorer selects similarity.PartialRatio
func New(entries []Entry, score Scorer) *Engine {
	if score == nil {
		score = similarity.PartialRatio
	}
	e := &Engine{
		entries: append([]Entry(nil), entries...),
		lowered: make([]string, len(entries)),
		score:   score,
	}
	for i, en := range e.entries {
		e.lowered[i] = strings.ToLower(en.Question)
	}
	return e
}

// FindAnswer returns the answer of the highest scoring entry when it scores at least Threshold
// an entry replaces the current best only on a strictly greater score, so the earliest entry wins ties
func (e *Engine) FindAnswer(query string) Result {
	q := strings.ToLower(query)
	highest := 0
	bestIdx := -1
	for i, question := range e.lowered {
		if s := e.score(q, question); s > highest {
			highest = s
			bestIdx = i
		}
	}
	if bestIdx < 0 || highest < Threshold {
		return Result{Score: highest, Index: -1}
	}
	best := e.entries[bestIdx]
	return Result{
		Found:    true,
		Answer:   best.Answer,
		Score:    highest,
		Question: best.Question,
		Index:    bestIdx,
	}
}

// Len returns the corpus size
func (e *Engine) Len() int { return len(e.entries) }

// Entries returns a copy of the corpus in stored order
func (e *Engine) Entries() []Entry { return append([]Entry(nil), e.entries...) }
