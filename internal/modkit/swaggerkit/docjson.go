package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	perr "faqbridge/internal/platform/errors"
	docs "faqbridge/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator, call it during wiring before Mount
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// sharedErrors is filled into every operation that does not document the status itself
var sharedErrors = []struct {
	code perr.ErrorCode
	msg  string
}{
	{perr.ErrorCodeValidation, "query is required"},
	{perr.ErrorCodeTranslation, "translation failed at query->en"},
	{perr.ErrorCodeUnavailable, "faq corpus unavailable"},
}

func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		suffixTitle(spec, titleSuffix)
		schemas(spec)["ErrorResponse"] = errorEnvelopeSchema()
		for _, e := range sharedErrors {
			fillResponse(spec, e.code, e.msg)
		}
		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the spec to OAS 3.0.3 since the UI cannot render 3.1
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func suffixTitle(spec map[string]any, suffix string) {
	if suffix == "" {
		return
	}
	if info, ok := spec["info"].(map[string]any); ok {
		if title, ok := info["title"].(string); ok {
			info["title"] = title + " " + suffix
		}
	}
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func schemas(spec map[string]any) map[string]any {
	return child(child(spec, "components"), "schemas")
}

// errorEnvelopeSchema mirrors phttp.Envelope on the error path
func errorEnvelopeSchema() map[string]any {
	prop := func(typ string) map[string]any { return map[string]any{"type": typ} }
	return map[string]any{
		"type":        "object",
		"description": "Error envelope; code is the numeric error class",
		"properties": map[string]any{
			"status_code": prop("integer"),
			"status":      prop("string"),
			"code":        prop("integer"),
			"error":       prop("string"),
			"request_id":  prop("string"),
		},
		"required": []any{"status_code", "status"},
	}
}

func fillResponse(spec map[string]any, code perr.ErrorCode, msg string) {
	status := perr.HTTPStatusCode(code)
	text := http.StatusText(status)
	resp := map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        code,
					"error":       msg,
					"request_id":  "faq-host/abc-000001",
				},
			},
		},
	}

	key := strconv.Itoa(status)
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[key]; !exists {
				responses[key] = resp
			}
		}
	}
}
