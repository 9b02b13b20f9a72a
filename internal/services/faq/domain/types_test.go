package domain

import (
	"errors"
	"testing"

	"faqbridge/internal/platform/testkit"
)

func TestTranslationError(t *testing.T) {
	cause := errors.New("timeout")
	err := error(&TranslationError{Stage: StageQueryToEnglish, Err: cause})

	testkit.MustEqual(t, err.Error(), "translation failed at query->en: timeout")
	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable")
	}
	var te *TranslationError
	if !errors.As(err, &te) || te.Stage != StageQueryToEnglish {
		t.Fatalf("As = %+v", te)
	}
	testkit.MustEqual(t, (&TranslationError{Stage: StageEnglishToAnswer}).Error(), "translation failed at en->answer")
}
