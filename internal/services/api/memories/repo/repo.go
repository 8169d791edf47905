// Package repo provides postgres access for memories
package repo

import (
	"context"
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/core/resurface"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
)

// Repo defines the repository contract for memories
type Repo interface {
	// LatestSurfacedAt returns the newest surfacing event time, nil when there is none
	LatestSurfacedAt(ctx context.Context, ownerID string) (*time.Time, error)
	// Marks returns day and mood of entries in [from, to], oldest first
	Marks(ctx context.Context, ownerID string, w resurface.Window) ([]resurface.Mark, error)
	// Candidates returns eligible entries dated on or before oldest, newest first
	Candidates(ctx context.Context, ownerID string, oldest resurface.Day, limit int) ([]resurface.Candidate, error)
	// SurfacedIDs returns every entry id ever surfaced to owner
	SurfacedIDs(ctx context.Context, ownerID string) (map[string]struct{}, error)
	// InsertEvent records that entryID was shown at surfacedAt
	InsertEvent(ctx context.Context, id, ownerID, entryID string, surfacedAt time.Time) error
	// History lists surfaced entries joined to their event, newest event first
	History(ctx context.Context, ownerID string, limit int) ([]HistoryRow, error)
}

// HistoryRow is one surfaced entry with its event time
type HistoryRow struct {
	Entry      resurface.Candidate
	SurfacedAt time.Time
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

func (r *queries) LatestSurfacedAt(ctx context.Context, ownerID string) (*time.Time, error) {
	const sql = `
select surfaced_at
from surfacing_events
where owner_id = $1
order by surfaced_at desc
limit 1
`
	rows, err := store.Many(ctx, r.q, func(row store.Row) (time.Time, error) {
		var t time.Time
		err := row.Scan(&t)
		return t, err
	}, sql, ownerID)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	t := rows[0].UTC()
	return &t, nil
}

func (r *queries) Marks(ctx context.Context, ownerID string, w resurface.Window) ([]resurface.Mark, error) {
	// dates travel as text so the session time zone never shifts them
	const sql = `
select entry_date, mood
from reflections
where owner_id = $1
and entry_date between $2::date and $3::date
order by entry_date asc, created_at asc, id
`
	return store.Many(ctx, r.q, scanMark, sql, ownerID, w.From.String(), w.To.String())
}

func (r *queries) Candidates(ctx context.Context, ownerID string, oldest resurface.Day, limit int) ([]resurface.Candidate, error) {
	const sql = `
select id::text, entry_date, prompt_text, reflection_text, mood, word_count
from reflections
where owner_id = $1
and resurfacing_eligible
and entry_date <= $2::date
order by entry_date desc, created_at desc, id
limit $3
`
	return store.Many(ctx, r.q, scanCandidate, sql, ownerID, oldest.String(), limit)
}

func (r *queries) SurfacedIDs(ctx context.Context, ownerID string) (map[string]struct{}, error) {
	const sql = `select entry_id::text from surfacing_events where owner_id = $1`
	ids, err := store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	}, sql, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (r *queries) InsertEvent(ctx context.Context, id, ownerID, entryID string, surfacedAt time.Time) error {
	const sql = `
insert into surfacing_events (id, owner_id, entry_id, surfaced_at)
values ($1, $2, $3, $4)
`
	return store.ExecOne(ctx, r.q, sql, id, ownerID, entryID, surfacedAt)
}

func (r *queries) History(ctx context.Context, ownerID string, limit int) ([]HistoryRow, error) {
	const sql = `
select r.id::text, r.entry_date, r.prompt_text, r.reflection_text, r.mood, r.word_count, e.surfaced_at
from surfacing_events e
join reflections r on r.id = e.entry_id
where e.owner_id = $1
order by e.surfaced_at desc
limit $2
`
	return store.Many(ctx, r.q, func(row store.Row) (HistoryRow, error) {
		var (
			h    HistoryRow
			date time.Time
			mood *string
		)
		err := row.Scan(&h.Entry.ID, &date, &h.Entry.PromptText, &h.Entry.Body, &mood, &h.Entry.WordCount, &h.SurfacedAt)
		h.Entry.Day = resurface.DateDay(date)
		h.Entry.Mood = resurface.MoodPtr(mood)
		h.SurfacedAt = h.SurfacedAt.UTC()
		return h, err
	}, sql, ownerID, limit)
}

func scanMark(row store.Row) (resurface.Mark, error) {
	var (
		date time.Time
		mood *string
	)
	if err := row.Scan(&date, &mood); err != nil {
		return resurface.Mark{}, err
	}
	return resurface.Mark{Day: resurface.DateDay(date), Mood: resurface.MoodPtr(mood)}, nil
}

func scanCandidate(row store.Row) (resurface.Candidate, error) {
	var (
		c    resurface.Candidate
		date time.Time
		mood *string
	)
	if err := row.Scan(&c.ID, &date, &c.PromptText, &c.Body, &mood, &c.WordCount); err != nil {
		return resurface.Candidate{}, err
	}
	c.Day = resurface.DateDay(date)
	c.Mood = resurface.MoodPtr(mood)
	return c, nil
}
