// Package net holds request-scoped values shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyLanguage ctxKey = "language"

// WithRequest annotates ctx with the request id and the caller's language tag
func WithRequest(ctx context.Context, reqID, language string) context.Context {
	if reqID != "" {
		// chi's key so chimw.GetReqID finds it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if language != "" {
		ctx = context.WithValue(ctx, keyLanguage, language)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Language returns the caller's language tag on the context if present
func Language(ctx context.Context) string {
	if v, ok := ctx.Value(keyLanguage).(string); ok {
		return v
	}
	return ""
}
