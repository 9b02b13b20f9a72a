package repo

import (
	"context"
	"time"

	"faqbridge/internal/core/match"
	"faqbridge/internal/modkit/repokit"
	"faqbridge/internal/platform/logger"
)

// Corpus reads and replaces the stored FAQ corpus
type Corpus struct {
	db     repokit.TxRunner
	binder repokit.Binder[Repo]
}

// NewCorpus binds the corpus repo; statements and lock waits in every tx are bounded by stmtTimeout
func NewCorpus(db repokit.TxRunner, binder repokit.Binder[Repo], stmtTimeout time.Duration) *Corpus {
	if db == nil {
		panic("faq.Corpus requires a non nil TxRunner")
	}
	if binder == nil {
		binder = NewPG()
	}
	return &Corpus{
		db:     repokit.WithBeginHooks(db, repokit.StatementTimeout(stmtTimeout), repokit.LockTimeout(stmtTimeout)),
		binder: binder,
	}
}

// Load returns the stored entries in position order
func (c *Corpus) Load(ctx context.Context) ([]match.Entry, error) {
	return repokit.MustBind(c.binder, c.db).List(ctx)
}

// ReplaceAll swaps the stored corpus for entries in one transaction and reports rows removed
func (c *Corpus) ReplaceAll(ctx context.Context, entries []match.Entry) (removed int64, err error) {
	err = repokit.WithTx(ctx, c.db, func(q repokit.Queryer) error {
		r := c.binder.Bind(q)
		if err := r.EnsureSchema(ctx); err != nil {
			return err
		}
		n, err := r.DeleteAll(ctx)
		if err != nil {
			return err
		}
		removed = n
		for i, e := range entries {
			if err := r.Insert(ctx, i, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.C(ctx).Info().Int("inserted", len(entries)).Int64("removed", removed).Msg("faq corpus replaced")
	return removed, nil
}
