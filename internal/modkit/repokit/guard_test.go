package repokit

import (
	"context"
	"strings"
	"testing"
)

func TestCheck_SkipsNilAndReportsByName(t *testing.T) {
	t.Parallel()

	ok := &fakePinger{}
	bad := &fakePinger{err: errBoom("down")}

	if err := Check(context.Background(), map[string]Pinger{"pg": ok, "ch": nil}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if ok.calls != 1 {
		t.Fatalf("calls = %d", ok.calls)
	}
	if _, has := ok.lastCtx.Deadline(); !has {
		t.Fatal("expected a default deadline")
	}

	err := Check(context.Background(), map[string]Pinger{"pg": ok, "ch": bad})
	if err == nil || !strings.HasPrefix(err.Error(), "ch: ") {
		t.Fatalf("err = %v", err)
	}
}
