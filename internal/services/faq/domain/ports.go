package domain

import (
	"context"

	"faqbridge/internal/core/match"
)

// Translator converts text between two languages
type Translator interface {
	Translate(ctx context.Context, text, src, dst string) (string, error)
}

// Matcher finds the best English answer for an English query
type Matcher interface {
	FindAnswer(query string) match.Result
	Entries() []match.Entry
	Len() int
}

// Recorder stores ask events, failures never affect the answer
type Recorder interface {
	Record(ctx context.Context, e Event) error
}

// ServicePort is the contract the transport layer depends on
type ServicePort interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Match(query string) MatchOutput
	Entries() EntriesOutput
}
