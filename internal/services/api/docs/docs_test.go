package docs

import (
	"encoding/json"
	"testing"
)

func TestReadDoc_IsValidJSON(t *testing.T) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &spec); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	info, _ := spec["info"].(map[string]any)
	if info["title"] != "faqbridge API" {
		t.Fatalf("title = %v", info["title"])
	}
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range []string{"/faq/ask", "/faq/match", "/faq/entries", "/meta/ready"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}
}
