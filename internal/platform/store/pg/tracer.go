package pg

import (
	"context"
	"strings"

	"faqbridge/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent is one finished statement as seen by the store adapters
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives every statement when SERVICE_PGSQL_LOG_SQL is on
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements at info, slow ones at warn, even when the root logger is quieter
func Tracer(root logger.Logger) QueryTracer {
	return sqlLog{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type sqlLog struct{ log zerolog.Logger }

func (s sqlLog) OnQuery(_ context.Context, ev QueryEvent) {
	lvl := zerolog.InfoLevel
	if ev.Slow {
		lvl = zerolog.WarnLevel
	}
	s.log.WithLevel(lvl).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow).
		Str("sql", strings.Join(strings.Fields(ev.SQL), " ")).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}
