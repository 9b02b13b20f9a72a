package service

import (
	"context"
	"errors"
	"sync"

	"faqbridge/internal/core/match"
	"faqbridge/internal/services/faq/domain"
)

var errBoom = errors.New("boom")

type hop struct{ text, src, dst string }

// fakeTranslator answers from a table keyed by text, or echoes when no row exists
type fakeTranslator struct {
	mu      sync.Mutex
	calls   []hop
	replies map[string]string
	failOn  map[string]error // keyed by "src->dst"
}

func (f *fakeTranslator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, hop{text, src, dst})
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := f.failOn[src+"->"+dst]; ok {
		return "", err
	}
	if out, ok := f.replies[text]; ok {
		return out, nil
	}
	return text, nil
}

// countingMatcher wraps a real engine and counts lookups
type countingMatcher struct {
	eng     *match.Engine
	lookups int
	queries []string
}

func newMatcher(entries ...match.Entry) *countingMatcher {
	return &countingMatcher{eng: match.New(entries, nil)}
}

func (c *countingMatcher) FindAnswer(q string) match.Result {
	c.lookups++
	c.queries = append(c.queries, q)
	return c.eng.FindAnswer(q)
}

func (c *countingMatcher) Entries() []match.Entry { return c.eng.Entries() }
func (c *countingMatcher) Len() int               { return c.eng.Len() }

type fakeRecorder struct {
	events []domain.Event
	ctxErr error
	err    error
}

func (f *fakeRecorder) Record(ctx context.Context, e domain.Event) error {
	f.events = append(f.events, e)
	f.ctxErr = ctx.Err()
	return f.err
}
