package domain

import (
	"strings"

	"golang.org/x/text/language"

	perr "faqbridge/internal/platform/errors"
)

// CanonicalLanguage is the request-side language policy shared by every front end
// empty means English; "FR" and "pt_br" come back as "fr" and "pt-BR"
func CanonicalLanguage(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLanguage, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", perr.WithField(perr.Validationf("language %q is not a BCP-47 tag", s), "language")
	}
	return tag.String(), nil
}
