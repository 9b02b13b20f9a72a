// Package http provides http transport for the FAQ pipeline
package http

import (
	stdhttp "net/http"

	"faqbridge/internal/modkit/httpkit"
	"faqbridge/internal/platform/logger"
	pnet "faqbridge/internal/platform/net"
	"faqbridge/internal/services/faq/domain"
	svc "faqbridge/internal/services/faq/service"
)

// Register mounts FAQ endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.AskInput](r, "/ask", h.askJSON)
	httpkit.Get(r, "/ask", h.askQuery)
	httpkit.Get(r, "/match", h.match)
	httpkit.Get(r, "/entries", h.entries)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /faq/ask FAQ faqAsk
// @Summary Answer a question in the caller's language
// @Tags FAQ
// @Accept json
// @Produce json
// @Param payload body domain.AskInput true "Question"
// @Success 200 {object} domain.AskOutput "ok"
// @Failure 400 {object} httpkit.Envelope "blank query or bad language tag"
// @Failure 500 {object} httpkit.Envelope "translation failed"
// @Router /faq/ask [post]
func (h *handlers) askJSON(r *stdhttp.Request, in domain.AskInput) (any, error) {
	return h.ask(r, in)
}

// swagger:route GET /faq/ask FAQ faqAskQuery
// @Summary Answer a question passed as query parameters
// @Tags FAQ
// @Produce json
// @Param query query string true "Question"
// @Param language query string false "BCP-47 tag, default en"
// @Success 200 {object} domain.AskOutput "ok"
// @Failure 400 {object} httpkit.Envelope "blank query or bad language tag"
// @Failure 500 {object} httpkit.Envelope "translation failed"
// @Router /faq/ask [get]
func (h *handlers) askQuery(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.AskInput{Query: q.Get("query"), Language: q.Get("language")}
	if err := httpkit.Validate(in); err != nil {
		return nil, err
	}
	return h.ask(r, in)
}

func (h *handlers) ask(r *stdhttp.Request, in domain.AskInput) (any, error) {
	lang, err := domain.CanonicalLanguage(in.Language)
	if err != nil {
		return nil, err
	}
	ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), lang)

	resp, err := h.svc.Answer(ctx, domain.Request{Query: in.Query, Language: lang})
	if err != nil {
		return nil, err
	}
	return domain.AskOutput{Query: resp.OriginalQuery, Language: resp.Language, Answer: resp.Answer}, nil
}

// swagger:route GET /faq/match FAQ faqMatch
// @Summary English-only lookup with the winning entry
// @Tags FAQ
// @Produce json
// @Param query query string true "English query"
// @Success 200 {object} domain.MatchOutput "ok"
// @Failure 400 {object} httpkit.Envelope "blank query"
// @Router /faq/match [get]
func (h *handlers) match(r *stdhttp.Request) (any, error) {
	in := domain.MatchInput{Query: r.URL.Query().Get("query")}
	if err := httpkit.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.Match(in.Query), nil
}

// swagger:route GET /faq/entries FAQ faqEntries
// @Summary List the loaded corpus
// @Tags FAQ
// @Produce json
// @Success 200 {object} domain.EntriesOutput "ok"
// @Router /faq/entries [get]
func (h *handlers) entries(_ *stdhttp.Request) (any, error) {
	return h.svc.Entries(), nil
}
