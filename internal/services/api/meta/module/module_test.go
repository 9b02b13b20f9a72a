package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "faqbridge/internal/modkit"
	"faqbridge/internal/modkit/repokit"
	phttp "faqbridge/internal/platform/net/http"
	"faqbridge/internal/platform/testkit"
)

type okTx struct{ repokit.TxRunner }

func (okTx) Ping(context.Context) error { return nil }

func TestMeta_MountsUnderPrefix(t *testing.T) {
	m := New(modkit.Deps{PG: okTx{}})
	testkit.MustEqual(t, m.Name(), "meta")
	testkit.MustEqual(t, m.Prefix(), "/meta")
	if m.Ports() != nil {
		t.Fatal("meta exposes no ports")
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	for _, p := range []string{"/meta/health", "/meta/ready", "/meta/version"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, p, nil))
		testkit.MustEqual(t, rr.Code, http.StatusOK)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	testkit.MustContain(t, rr.Body.String(), `"name":"pg","status":"ok"`)
	testkit.MustContain(t, rr.Body.String(), `"name":"ch","status":"skipped"`)
}
