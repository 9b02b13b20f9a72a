// Package service runs the FAQ answer pipeline
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"faqbridge/internal/core/match"
	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/platform/logger"
	"faqbridge/internal/services/faq/domain"
)

// Service defines the service contract for the FAQ pipeline
type Service interface{ domain.ServicePort }

// recordTimeout bounds how long a request waits on its ask event
const recordTimeout = 2 * time.Second

// Svc implements Service; it holds no mutable state after New
type Svc struct {
	tr  domain.Translator
	m   domain.Matcher
	rec domain.Recorder

	now   func() time.Time
	newID func() uuid.UUID
}

// Option customizes a Svc
type Option func(*Svc)

// WithRecorder sets the ask event sink; nil keeps the no-op recorder
func WithRecorder(r domain.Recorder) Option {
	return func(s *Svc) {
		if r != nil {
			s.rec = r
		}
	}
}

// WithClock replaces time.Now, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New wires the pipeline to its collaborators
func New(tr domain.Translator, m domain.Matcher, opts ...Option) *Svc {
	if tr == nil {
		panic("faq.Service requires a non nil Translator")
	}
	if m == nil {
		panic("faq.Service requires a non nil Matcher")
	}
	s := &Svc{tr: tr, m: m, rec: nopRecorder{}, now: time.Now, newID: uuid.New}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Answer translates the query to English, looks it up, and translates the answer back
func (s *Svc) Answer(ctx context.Context, req domain.Request) (domain.Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		return domain.Response{}, perr.WithField(perr.Validationf("query is required"), "query")
	}
	lang := req.Language

	start := s.now()
	ev := domain.Event{ID: s.newID(), At: start.UTC(), Language: lang, QueryLen: len([]rune(req.Query))}
	defer func() {
		ev.ElapsedMs = s.now().Sub(start).Milliseconds()
		s.record(ctx, ev)
	}()

	english, err := s.tr.Translate(ctx, req.Query, lang, domain.DefaultLanguage)
	if err != nil {
		ev.FailedStage = domain.StageQueryToEnglish
		return domain.Response{}, hopError(domain.StageQueryToEnglish, err)
	}

	res := s.m.FindAnswer(english)
	ev.Matched, ev.Score = res.Found, res.Score
	text := res.Answer
	if res.NotFound() {
		text = domain.FallbackAnswer
	}

	answer, err := s.tr.Translate(ctx, text, domain.DefaultLanguage, lang)
	if err != nil {
		ev.FailedStage = domain.StageEnglishToAnswer
		return domain.Response{}, hopError(domain.StageEnglishToAnswer, err)
	}

	return domain.Response{
		OriginalQuery: req.Query,
		Language:      lang,
		Answer:        answer,
		Matched:       res.Found,
		Score:         res.Score,
	}, nil
}

// Match runs an English lookup with no translation
func (s *Svc) Match(query string) domain.MatchOutput {
	return matchOutput(s.m.FindAnswer(query))
}

// Entries lists the corpus in stored order
func (s *Svc) Entries() domain.EntriesOutput {
	es := s.m.Entries()
	if es == nil {
		es = []domain.Entry{}
	}
	return domain.EntriesOutput{Count: len(es), Entries: es}
}

func matchOutput(r match.Result) domain.MatchOutput {
	return domain.MatchOutput{
		Found:    r.Found,
		Score:    r.Score,
		Question: r.Question,
		Answer:   r.Answer,
		Index:    r.Index,
	}
}

func hopError(stage string, cause error) error {
	return perr.Wrap(&domain.TranslationError{Stage: stage, Err: cause}, perr.ErrorCodeTranslation, "translation failed at "+stage)
}

// record never fails the request; the event outlives a cancelled request briefly
func (s *Svc) record(ctx context.Context, ev domain.Event) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := s.rec.Record(rctx, ev); err != nil {
		logger.C(ctx).Warn().Err(err).Str("event_id", ev.ID.String()).Msg("ask event not recorded")
	}
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, domain.Event) error { return nil }
