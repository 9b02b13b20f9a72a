package version

import (
	"testing"

	kit "faqbridge/internal/platform/testkit"
)

func TestInfo_DefaultsAndOverride(t *testing.T) {
	b := Info("")
	if b.Service != "faqbridge" {
		t.Fatalf("Service = %q, want faqbridge", b.Service)
	}
	if b.Version != "dev" || b.Commit != "none" || b.Date != "unknown" {
		t.Fatalf("unexpected defaults %+v", b)
	}

	kit.Swap(t, &version, "v1.2.3")
	if got := Info("faqbridge-api").String(); got != "faqbridge-api v1.2.3 (none, unknown)" {
		t.Fatalf("String() = %q", got)
	}
}
