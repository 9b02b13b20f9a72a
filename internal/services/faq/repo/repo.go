// Package repo provides storage for the FAQ corpus and ask events
package repo

import (
	"context"

	"faqbridge/internal/core/match"
	"faqbridge/internal/modkit/repokit"
	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/platform/store"
)

// Repo is the postgres contract for the corpus table
type Repo interface {
	EnsureSchema(ctx context.Context) error
	List(ctx context.Context) ([]match.Entry, error)
	DeleteAll(ctx context.Context) (int64, error)
	Insert(ctx context.Context, position int, e match.Entry) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const schemaSQL = `
create table if not exists faq_entries (
	id bigserial primary key,
	position int not null,
	question text not null,
	answer text not null
)`

func (r *queries) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return perr.FromPostgres(err, "create faq_entries")
	}
	return nil
}

func (r *queries) List(ctx context.Context) ([]match.Entry, error) {
	const sql = `select question, answer from faq_entries order by position, id`
	out, err := store.Many(ctx, r.q, scanEntry, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list faq entries")
	}
	return out, nil
}

func scanEntry(row store.Row) (match.Entry, error) {
	var e match.Entry
	if err := row.Scan(&e.Question, &e.Answer); err != nil {
		return match.Entry{}, err
	}
	return e, nil
}

func (r *queries) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `delete from faq_entries`)
	if err != nil {
		return 0, perr.FromPostgres(err, "clear faq entries")
	}
	if tag == nil {
		return 0, nil
	}
	return tag.RowsAffected(), nil
}

func (r *queries) Insert(ctx context.Context, position int, e match.Entry) error {
	const sql = `insert into faq_entries (position, question, answer) values ($1, $2, $3)`
	if _, err := r.q.Exec(ctx, sql, position, e.Question, e.Answer); err != nil {
		return perr.FromPostgres(err, "insert faq entry")
	}
	return nil
}
