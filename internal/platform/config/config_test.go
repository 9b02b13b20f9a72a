package config

import (
	"testing"
	"time"

	kit "faqbridge/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	faq := New().Prefix("FAQ_")
	if got := faq.key("CORPUS_SOURCE"); got != "FAQ_CORPUS_SOURCE" {
		t.Fatalf("key() = %q", got)
	}
	if got := faq.Prefix("PG_").key("DSN"); got != "FAQ_PG_DSN" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  faqbridge ")
	if got := c.MustString("NAME"); got != "faqbridge" {
		t.Fatalf("MustString = %q", got)
	}
	if !c.Has("NAME") || c.Has("MISSING") {
		t.Fatalf("Has mismatch")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("CORE_API_PORT", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("PORT") })
	t.Setenv("CORE_API_PORT", "http")
	kit.MustPanic(t, func() { _ = c.MustPort("PORT") })
}

func TestMayAccessors(t *testing.T) {
	c := New().Prefix("T_")
	t.Setenv("T_S", " v ")
	t.Setenv("T_I", "3")
	t.Setenv("T_BAD_I", "three")
	t.Setenv("T_B", "true")
	t.Setenv("T_BAD_B", "maybe")
	t.Setenv("T_D", "250ms")
	t.Setenv("T_BAD_D", "soon")

	if got := c.MayString("S", "d"); got != "v" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("NONE", "d"); got != "d" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("I", 9); got != 3 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD_I", 9); got != 9 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayBool("B", false); !got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayBool("BAD_B", false); got {
		t.Fatalf("MayBool invalid = %v", got)
	}
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD_D", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayURL(t *testing.T) {
	c := New().Prefix("TRANSLATE_")
	if u := c.MayURL("LIBRE_URL", ""); u != nil {
		t.Fatalf("expected nil URL, got %v", u)
	}
	if u := c.MayURL("LIBRE_URL", "http://localhost:5000"); u == nil || u.Host != "localhost:5000" {
		t.Fatalf("MayURL default = %v", u)
	}
	t.Setenv("TRANSLATE_LIBRE_URL", "not a url")
	kit.MustPanic(t, func() { _ = c.MayURL("LIBRE_URL", "") })
}

func TestMayCSVAndEnum(t *testing.T) {
	c := New().Prefix("X_")
	t.Setenv("X_LIST", " a, ,b ,")
	got := c.MayCSV("LIST", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("X_EMPTY", " , ")
	if got := c.MayCSV("EMPTY", []string{"d"}); len(got) != 1 || got[0] != "d" {
		t.Fatalf("MayCSV all-empty = %v", got)
	}

	t.Setenv("X_PROVIDER", "OpenAI")
	if got := c.MayEnum("PROVIDER", "identity", "identity", "openai"); got != "openai" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("UNSET", "identity", "identity", "openai"); got != "identity" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("X_PROVIDER", "babel")
	kit.MustPanic(t, func() { _ = c.MayEnum("PROVIDER", "identity", "identity", "openai") })
}
