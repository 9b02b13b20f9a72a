package translate

import (
	"context"
	"time"

	"faqbridge/internal/platform/logger"
)

// Logged wraps next and logs every hop with provider, languages, latency and outcome
func Logged(next Translator, provider string) Translator {
	return &logged{next: next, provider: provider, now: time.Now}
}

type logged struct {
	next     Translator
	provider string
	now      func() time.Time
}

func (l *logged) Translate(ctx context.Context, text, src, dst string) (string, error) {
	start := l.now()
	out, err := l.next.Translate(ctx, text, src, dst)
	lat := l.now().Sub(start)

	log := logger.C(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("provider", l.provider).
			Str("src", src).
			Str("dst", dst).
			Dur("latency", lat).
			Msg("translate failed")
		return "", err
	}
	log.Debug().
		Str("provider", l.provider).
		Str("src", src).
		Str("dst", dst).
		Int("in_len", len(text)).
		Int("out_len", len(out)).
		Dur("latency", lat).
		Msg("translate ok")
	return out, nil
}
