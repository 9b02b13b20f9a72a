package repokit

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"
)

// Pinger is a backend that can answer a readiness probe
type Pinger interface{ Ping(context.Context) error }

// withDefaultDeadline bounds probes to 5s unless the caller already set a deadline
func withDefaultDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, 5*time.Second)
}

// Check probes deps in name order and stops at the first failure, prefixed with its name
// a nil entry is a backend that was never configured
func Check(ctx context.Context, deps map[string]Pinger) error {
	ctx, cancel := withDefaultDeadline(ctx)
	defer cancel()
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		p := deps[name]
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
