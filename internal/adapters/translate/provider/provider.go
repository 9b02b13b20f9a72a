// Package provider builds the configured translation backend
package provider

import (
	"context"
	"io"
	"time"

	"faqbridge/internal/adapters/translate"
	"faqbridge/internal/adapters/translate/anthropic"
	"faqbridge/internal/adapters/translate/gemini"
	"faqbridge/internal/adapters/translate/libre"
	"faqbridge/internal/adapters/translate/openai"
	"faqbridge/internal/platform/config"
	perr "faqbridge/internal/platform/errors"
)

// Provider names accepted by FAQ_TRANSLATE_PROVIDER
const (
	Identity  = "identity"
	Libre     = "libre"
	OpenAI    = "openai"
	Anthropic = "anthropic"
	Gemini    = "gemini"
)

// Options selects and configures one backend
type Options struct {
	Provider string

	// libre
	LibreURL   string
	LibreKey   string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration

	// model backends
	APIKey  string
	Model   string
	BaseURL string
}

// FromConfig reads FAQ_TRANSLATE_PROVIDER and the TRANSLATE_* settings
func FromConfig(root config.Conf) Options {
	tc := root.Prefix("TRANSLATE_")
	return Options{
		Provider:   root.Prefix("FAQ_").MayEnum("TRANSLATE_PROVIDER", Identity, Identity, Libre, OpenAI, Anthropic, Gemini),
		LibreURL:   tc.MayString("LIBRE_URL", "http://localhost:5000"),
		LibreKey:   tc.MayString("LIBRE_API_KEY", ""),
		Timeout:    tc.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: tc.MayInt("MAX_RETRIES", 3),
		RetryBase:  tc.MayDuration("RETRY_BASE", 250*time.Millisecond),
		APIKey:     tc.MayString("API_KEY", ""),
		Model:      tc.MayString("MODEL", ""),
		BaseURL:    tc.MayString("BASE_URL", ""),
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the backend named by o.Provider and wraps it with hop logging
// the returned closer releases backend resources
func New(ctx context.Context, o Options) (translate.Translator, io.Closer, error) {
	var (
		tr translate.Translator
		cl io.Closer = nopCloser{}
	)
	switch o.Provider {
	case "", Identity:
		o.Provider = Identity
		tr = translate.Identity{}
	case Libre:
		c, err := libre.New(libre.Options{
			BaseURL:    o.LibreURL,
			APIKey:     o.LibreKey,
			Timeout:    o.Timeout,
			MaxRetries: o.MaxRetries,
			RetryBase:  o.RetryBase,
		})
		if err != nil {
			return nil, nil, err
		}
		tr = c
	case OpenAI:
		c, err := openai.New(openai.Options{APIKey: o.APIKey, Model: o.Model, BaseURL: o.BaseURL})
		if err != nil {
			return nil, nil, err
		}
		tr = c
	case Anthropic:
		c, err := anthropic.New(anthropic.Options{APIKey: o.APIKey, Model: o.Model, BaseURL: o.BaseURL})
		if err != nil {
			return nil, nil, err
		}
		tr = c
	case Gemini:
		c, err := gemini.New(ctx, gemini.Options{APIKey: o.APIKey, Model: o.Model})
		if err != nil {
			return nil, nil, err
		}
		tr, cl = c, c
	default:
		return nil, nil, perr.Newf(perr.ErrorCodeInvalidArgument, "unknown translate provider %q", o.Provider)
	}
	return translate.Logged(tr, o.Provider), cl, nil
}
