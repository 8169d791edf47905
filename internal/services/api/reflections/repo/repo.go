// Package repo provides postgres access for reflections
package repo

import (
	"context"
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
)

// Repo defines the repository contract for reflections
type Repo interface {
	Insert(ctx context.Context, row Row) (Row, error)
	List(ctx context.Context, ownerID string, limit int) ([]Row, error)
	// SetEligibility updates one entry of owner; ErrNotFound when owner has no such entry
	SetEligibility(ctx context.Context, ownerID, id string, eligible bool) (Row, error)
}

// Row is a reflections row; Body may be sealed
type Row struct {
	ID        string
	OwnerID   string
	EntryDate string
	Prompt    string
	Body      string
	Mood      *string
	WordCount int
	Eligible  bool
	CreatedAt time.Time
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

const columns = `id::text, owner_id::text, to_char(entry_date, 'YYYY-MM-DD'), prompt_text, reflection_text,
mood, word_count, resurfacing_eligible, created_at`

func (r *queries) Insert(ctx context.Context, row Row) (Row, error) {
	const sql = `
insert into reflections (id, owner_id, entry_date, prompt_text, reflection_text, mood, word_count)
values ($1, $2, $3::date, $4, $5, $6, $7)
returning ` + columns
	return store.One(ctx, r.q, scanRow, sql,
		row.ID, row.OwnerID, row.EntryDate, row.Prompt, row.Body, row.Mood, row.WordCount)
}

func (r *queries) List(ctx context.Context, ownerID string, limit int) ([]Row, error) {
	const sql = `
select ` + columns + `
from reflections
where owner_id = $1
order by entry_date desc, created_at desc
limit $2
`
	return store.Many(ctx, r.q, scanRow, sql, ownerID, limit)
}

func (r *queries) SetEligibility(ctx context.Context, ownerID, id string, eligible bool) (Row, error) {
	const sql = `
update reflections
set resurfacing_eligible = $3
where id = $1 and owner_id = $2
returning ` + columns
	return store.One(ctx, r.q, scanRow, sql, id, ownerID, eligible)
}

func scanRow(row store.Row) (Row, error) {
	var out Row
	err := row.Scan(&out.ID, &out.OwnerID, &out.EntryDate, &out.Prompt, &out.Body,
		&out.Mood, &out.WordCount, &out.Eligible, &out.CreatedAt)
	out.CreatedAt = out.CreatedAt.UTC()
	return out, err
}
