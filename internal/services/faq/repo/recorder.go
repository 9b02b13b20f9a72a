package repo

import (
	"context"

	"faqbridge/internal/modkit/repokit"
	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/services/faq/domain"
)

// AsksTable receives one row per pipeline call
//
//	id UUID, at DateTime64(3), language LowCardinality(String), query_len UInt32,
//	matched Bool, score UInt8, failed_stage LowCardinality(String), elapsed_ms UInt32
const AsksTable = "faq_asks"

// ClickhouseRecorder appends ask events to clickhouse
type ClickhouseRecorder struct{ ch repokit.Clickhouse }

// NewClickhouseRecorder returns a recorder, or nil when ch is nil so callers fall back to no-op
func NewClickhouseRecorder(ch repokit.Clickhouse) domain.Recorder {
	if ch == nil {
		return nil
	}
	return ClickhouseRecorder{ch: ch}
}

// Record inserts e as a single row
func (r ClickhouseRecorder) Record(ctx context.Context, e domain.Event) error {
	row := []any{
		e.ID,
		e.At,
		e.Language,
		uint32(e.QueryLen),
		e.Matched,
		uint8(e.Score),
		e.FailedStage,
		uint32(max(e.ElapsedMs, 0)),
	}
	if err := r.ch.Insert(ctx, AsksTable, [][]any{row}); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "record ask event")
	}
	return nil
}
