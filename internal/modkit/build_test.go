package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"faqbridge/internal/modkit/httpkit"
	phttp "faqbridge/internal/platform/net/http"
	"faqbridge/internal/platform/testkit"
)

func passthrough(next http.Handler) http.Handler { return next }

func TestBuild_LaterOptionsWin(t *testing.T) {
	t.Parallel()

	b := Build(nil, WithName("faq"), WithPrefix("/faq"), WithPorts(1), WithName("help"), WithPorts("p"))
	testkit.MustEqual(t, b.Name, "help")
	testkit.MustEqual(t, b.Prefix, "/faq")
	testkit.MustEqual(t, b.Ports.(string), "p")
	if b.Register != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestBuild_MiddlewareAccumulatesAndIsCopied(t *testing.T) {
	t.Parallel()

	src := []httpkit.Middleware{passthrough, passthrough}
	b := Build(WithMiddlewares(src...), WithMiddlewares(passthrough))
	testkit.MustEqual(t, len(b.Mw), 3)

	src[0] = nil
	if b.Mw[0] == nil {
		t.Fatal("Built.Mw aliases the caller's slice")
	}
}

func TestBase_Identity(t *testing.T) {
	t.Parallel()

	m := NewBase(Build(WithName("faq"), WithPrefix("faq/"), WithPorts(7)), nil)
	testkit.MustEqual(t, m.Name(), "faq")
	testkit.MustEqual(t, m.Prefix(), "/faq")
	testkit.MustEqual(t, m.Ports().(int), 7)

	testkit.MustPanic(t, func() { _ = NewBase(Build(), nil).Name() })
}

func TestBase_MountRoutes(t *testing.T) {
	t.Parallel()

	hits := 0
	counting := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}
	ok := func(*http.Request) (any, error) { return "ok", nil }

	m := NewBase(
		Build(WithName("faq"), WithPrefix("/faq"), WithMiddlewares(counting),
			WithRegister(func(r httpkit.Router) { httpkit.Get(r, "/extra", ok) })),
		func(r httpkit.Router) { httpkit.Get(r, "/own", ok) },
	)

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	for _, p := range []string{"/faq/own", "/faq/extra"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, p, nil))
		testkit.MustEqual(t, rr.Code, http.StatusOK)
	}
	testkit.MustEqual(t, hits, 2)
}
