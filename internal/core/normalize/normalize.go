// Package normalize cleans FAQ text at load time so equal-looking strings compare equal.
// Pipeline order
// 1 drop invalid UTF-8 bytes
// 2 Unicode NFKC normalization
// 3 strip format characters (ZWSP, ZWJ, BOM) and non-whitespace controls
// 4 collapse whitespace runs to one space and trim
// Case is preserved; matching lower-cases on its own
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			runes.Remove(runes.Predicate(func(r rune) bool {
				return unicode.IsControl(r) && !unicode.IsSpace(r)
			})),
		)
	},
}

// Clean returns s normalized following the pipeline described above
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}
	return strings.Join(strings.Fields(ns), " ")
}
