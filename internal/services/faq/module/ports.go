package module

import (
	"context"

	faqdom "faqbridge/internal/services/faq/domain"
	faqsvc "faqbridge/internal/services/faq/service"
)

// Ports exposes the pipeline for cross-module lookups
type Ports struct {
	Service faqdom.ServicePort
}

// adaptServicePort keeps callers on the domain contract rather than the concrete service
type adaptServicePort struct{ svc faqsvc.Service }

func (a adaptServicePort) Answer(ctx context.Context, req faqdom.Request) (faqdom.Response, error) {
	return a.svc.Answer(ctx, req)
}

func (a adaptServicePort) Match(query string) faqdom.MatchOutput { return a.svc.Match(query) }

func (a adaptServicePort) Entries() faqdom.EntriesOutput { return a.svc.Entries() }
