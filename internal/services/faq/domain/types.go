// Package domain holds the FAQ pipeline types, errors and ports
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"faqbridge/internal/core/match"
)

// Hop stages name the translation call that failed
const (
	StageQueryToEnglish  = "query->en"
	StageEnglishToAnswer = "en->answer"
)

// FallbackAnswer is translated back to the caller when no entry matches
const FallbackAnswer = "Sorry, I couldn't find an answer to your query."

// DefaultLanguage is the corpus language, also what front ends assume when a request names none
const DefaultLanguage = "en"

// Entry is one English question and answer pair
type Entry = match.Entry

// Request is one pipeline call
type Request struct {
	Query    string
	Language string
}

// Response is a successful pipeline call
// Matched and Score describe the lookup and do not change Answer
type Response struct {
	OriginalQuery string
	Language      string
	Answer        string
	Matched       bool
	Score         int
}

// TranslationError reports which hop failed and why
type TranslationError struct {
	Stage string
	Err   error
}

func (e *TranslationError) Error() string {
	if e.Err == nil {
		return "translation failed at " + e.Stage
	}
	return fmt.Sprintf("translation failed at %s: %v", e.Stage, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// Event is the analytics record of one pipeline call
type Event struct {
	ID          uuid.UUID
	At          time.Time
	Language    string
	QueryLen    int
	Matched     bool
	Score       int
	FailedStage string
	ElapsedMs   int64
}
