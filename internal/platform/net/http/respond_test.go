package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "faqbridge/internal/platform/errors"
	pnet "faqbridge/internal/platform/net"
	phttp "faqbridge/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req.WithContext(pnet.WithRequest(req.Context(), rid, ""))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, rec.Body.String())
	}
	return env
}

func TestRespondError_MapsCodeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/x", "rid-err", ""), perr.Validationf("query is required"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Code != perr.ErrorCodeValidation || env.Error != "query is required" || env.RequestID != "rid-err" || env.Data != nil {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_Statuses(t *testing.T) {
	cases := []struct {
		name   string
		resp   phttp.Response
		status int
	}{
		{"zero status defaults to 200", phttp.Response{Body: map[string]string{"answer": "yes"}}, http.StatusOK},
		{"explicit status", phttp.Response{Status: http.StatusServiceUnavailable, Body: "down"}, http.StatusServiceUnavailable},
		{"translation error", phttp.Response{Body: perr.Wrap(errors.New("x"), perr.ErrorCodeTranslation, "translation failed")}, http.StatusInternalServerError},
		{"foreign error", phttp.Response{Body: errors.New("plain")}, http.StatusInternalServerError},
		{"no content", phttp.Response{Status: http.StatusNoContent}, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := phttp.Handle(func(*http.Request) phttp.Response { return tc.resp })
			rec := httptest.NewRecorder()
			h(rec, reqWithReqID("GET", "/", "rid", ""))
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if tc.status == http.StatusNoContent {
				if rec.Body.Len() != 0 {
					t.Fatal("204 must not have a body")
				}
				return
			}
			if env := decode(t, rec); env.StatusCode != tc.status || env.RequestID != "rid" {
				t.Fatalf("envelope = %+v", env)
			}
		})
	}
}

func TestHandle_HeadersCopied(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Body: "x", Header: http.Header{"X-Matched": {"true"}}}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Header().Get("X-Matched") != "true" {
		t.Fatal("header not copied")
	}
}

type askIn struct {
	Query string `json:"query" validate:"required"`
}

func TestJSONHandler_BindsValidatesAndWraps(t *testing.T) {
	h := phttp.JSONHandler(func(_ *http.Request, in askIn) (any, error) {
		return map[string]string{"echo": in.Query}, nil
	})

	cases := []struct {
		body   string
		status int
		code   perr.ErrorCode
	}{
		{`{"query":"refund"}`, http.StatusOK, perr.ErrorCodeUnknown},
		{`{"query":""}`, http.StatusBadRequest, perr.ErrorCodeValidation},
		{`{"query":`, http.StatusBadRequest, perr.ErrorCodeJSON},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h(rec, reqWithReqID("POST", "/", "rid", tc.body))
		if rec.Code != tc.status {
			t.Fatalf("%s: status = %d body=%s", tc.body, rec.Code, rec.Body.String())
		}
		env := decode(t, rec)
		if env.Code != tc.code {
			t.Fatalf("%s: code = %v", tc.body, env.Code)
		}
		if tc.status == http.StatusOK {
			if m, ok := env.Data.(map[string]any); !ok || m["echo"] != "refund" {
				t.Fatalf("data = %#v", env.Data)
			}
		}
	}
}

func TestNoBodyHandler(t *testing.T) {
	h := phttp.NoBodyHandler(func(*http.Request) (any, error) {
		return phttp.Response{Status: http.StatusAccepted, Body: "queued"}, nil
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}

	h = phttp.NoBodyHandler(func(*http.Request) (any, error) { return nil, perr.NotFoundf("nope") })
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
