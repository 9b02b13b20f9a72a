// Package similarity scores how closely two strings resemble each other on a 0..100 scale.
// Scores are Indel ratios: edit distance where a substitution costs a delete plus an insert,
// scaled against the combined length
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
)

// PartialRatio scores the best alignment of the shorter string inside the longer one
// surrounding text in the longer string does not lower the score, so containment is 100
func PartialRatio(a, b string) int {
	if utf8.RuneCountInString(a) > utf8.RuneCountInString(b) {
		a, b = b, a
	}
	if a == "" {
		if b == "" {
			return 100
		}
		return 0
	}
	if strings.Contains(b, a) {
		return 100
	}

	s, l := compact(a, b)
	if len(s) > len(l) {
		s, l = l, s
	}
	best := partial(s, l)
	if len(s) == len(l) {
		// no natural needle, so align both ways to keep the score symmetric
		best = max(best, partial(l, s))
	}
	return best
}

// partial slides needle s across l, including windows that overhang either edge
func partial(s, l string) int {
	m, n := len(s), len(l)
	best := 0
	consider := func(w string) {
		if best < 100 {
			best = max(best, indel(s, w))
		}
	}
	for i := 1; i < m; i++ {
		consider(l[:i])
	}
	for i := 0; i+m <= n; i++ {
		consider(l[i : i+m])
	}
	for i := n - m + 1; i < n; i++ {
		consider(l[i:])
	}
	return best
}

// indel is the Indel ratio of a and b rounded half up, a and b not both empty
func indel(a, b string) int {
	total := len(a) + len(b)
	d := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return (200*(total-d) + total) / (2 * total)
}

// compact rewrites a and b over a shared one-byte alphabet so byte offsets are rune offsets.
// Past 256 distinct runes it gives up and returns the UTF-8 bytes unchanged
func compact(a, b string) (string, string) {
	codes := make(map[rune]byte, 64)
	enc := func(s string) (string, bool) {
		out := make([]byte, 0, len(s))
		for _, r := range s {
			c, ok := codes[r]
			if !ok {
				if len(codes) == 256 {
					return "", false
				}
				c = byte(len(codes))
				codes[r] = c
			}
			out = append(out, c)
		}
		return string(out), true
	}
	ea, ok := enc(a)
	if !ok {
		return a, b
	}
	eb, ok := enc(b)
	if !ok {
		return a, b
	}
	return ea, eb
}
