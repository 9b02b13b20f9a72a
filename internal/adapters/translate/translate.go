// Package translate holds the translation contract shared by every backend
// plus the helpers backends have in common
package translate

import (
	"context"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// English is the pivot language of the FAQ corpus
const English = "en"

// Translator converts text between two BCP-47 languages
// failure is reported only through the error
type Translator interface {
	Translate(ctx context.Context, text, src, dst string) (string, error)
}

// Func adapts a plain function to Translator
type Func func(ctx context.Context, text, src, dst string) (string, error)

// Translate calls f
func (f Func) Translate(ctx context.Context, text, src, dst string) (string, error) {
	return f(ctx, text, src, dst)
}

// Base returns the lower-cased base language of tag, "fr" for "fr-CA"
// unparseable tags come back trimmed and lower-cased
func Base(tag string) string {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(tag))
	}
	b, _ := t.Base()
	return b.String()
}

// SameLanguage reports whether src and dst share a base language
func SameLanguage(src, dst string) bool {
	return Base(src) == Base(dst)
}

// Name returns the English display name for tag, falling back to the tag itself
func Name(tag string) string {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return tag
	}
	if n := display.English.Tags().Name(t); n != "" {
		return n
	}
	return tag
}
