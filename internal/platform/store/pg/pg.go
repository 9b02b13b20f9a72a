// Package pg dials the corpus database through pgxpool
package pg

import (
	"context"
	"fmt"
	"time"

	"faqbridge/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the pool and startup probe setup
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
	AppName  string

	// Retries is how many pings Connect tries, default 20
	Retries int
	// PingTimeout bounds each ping, default 3s
	PingTimeout time.Duration
}

// PG is an open pool plus the tracer its adapters report to
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// seams for tests
var (
	newPool = pgxpool.NewWithConfig
	ping    = func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) }
	sleep   = time.Sleep
)

// Open builds the pool without dialing; pgxpool connects on first use
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg: new pool: %w", err)
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Connect opens the pool then pings with doubling backoff until the server answers
// the pool is closed again when the retries run out or ctx ends
func Connect(ctx context.Context, cfg Config, tracer QueryTracer, log *logger.Logger) (*PG, error) {
	p, err := Open(ctx, cfg, tracer)
	if err != nil {
		return nil, err
	}

	attempts := cfg.Retries
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	wait := backoffStart
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = ping(pctx, p.Pool)
		cancel()
		if lastErr == nil {
			return p, nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		if log != nil {
			log.Warn().Err(lastErr).Int("attempt", attempt).Dur("backoff", wait).Msg("postgres not ready")
		}
		sleep(wait)
		wait = min(wait*2, backoffCeiling)
	}

	p.Close()
	return nil, fmt.Errorf("pg: no answer after %d pings: %w", attempts, lastErr)
}

// Close releases the pool; nil safe
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
