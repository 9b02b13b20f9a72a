// Package swaggerkit mounts the Swagger UI and the JSON spec
package swaggerkit

import (
	"net/http"

	phttp "faqbridge/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options controls what Mount serves
type Options struct {
	Enabled bool
	// TitleSuffix is appended to the spec title, handy for env names
	TitleSuffix string
}

// Mount the Swagger UI and JSON spec under /api/docs if enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o.TitleSuffix))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
