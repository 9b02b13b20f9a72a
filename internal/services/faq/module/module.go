// Package module mounts the FAQ pipeline under /faq and exports it as a port
package module

import (
	"faqbridge/internal/core/match"
	modkit "faqbridge/internal/modkit"
	"faqbridge/internal/modkit/httpkit"
	faqhttp "faqbridge/internal/services/faq/http"
	faqsvc "faqbridge/internal/services/faq/service"
)

// Module is the FAQ feature as seen by api.Mount
type Module struct {
	modkit.Base
	svc *faqsvc.Svc
}

// New builds the service over w and panics when w.Translator is nil
// no I/O happens here, Assemble has already loaded everything
func New(deps modkit.Deps, w Wiring, opts ...modkit.Option) *Module {
	svc := faqsvc.New(w.Translator, match.New(w.Entries, nil), faqsvc.WithRecorder(w.Recorder))

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("faq"),
		modkit.WithPrefix("/faq"),
		modkit.WithPorts(Ports{Service: adaptServicePort{svc: svc}}),
	}, opts...)...)

	deps.Log.Debug().Str("module", b.Name).Int("entries", len(w.Entries)).Bool("recording", w.Recorder != nil).Msg("faq module built")

	return &Module{
		Base: modkit.NewBase(b, func(r httpkit.Router) { faqhttp.Register(r, svc) }),
		svc:  svc,
	}
}
