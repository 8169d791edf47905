// Package service contains reflections workflows
package service

import (
	"context"
	stderrs "errors"
	"time"

	"github.com/google/uuid"

	"github.com/promptandpause/promptandpause-sub003/internal/core/resurface"
	"github.com/promptandpause/promptandpause-sub003/internal/core/sealbox"
	"github.com/promptandpause/promptandpause-sub003/internal/core/wordcount"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
	pstrings "github.com/promptandpause/promptandpause-sub003/internal/platform/strings"
	ptime "github.com/promptandpause/promptandpause-sub003/internal/platform/time"
	"github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/domain"
	"github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/repo"
)

// Service defines the service contract for reflections
type Service interface{ domain.ServicePort }

// Config tunes the reflections service
type Config struct {
	// Location decides which calendar day "today" is; keep it equal to the engine's
	Location  *time.Location
	ListLimit int
}

// ConfigFrom reads LIST_LIMIT under cfg; loc comes from the engine configuration
func ConfigFrom(cfg config.Conf, loc *time.Location) Config {
	return Config{Location: loc, ListLimit: cfg.MayInt("LIST_LIMIT", 100)}
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	cfg   Config
	box   *sealbox.Box
	clock ptime.Clock
	newID func() string
}

// Option customizes Svc
type Option func(*Svc)

// WithConfig sets location and limits
func WithConfig(c Config) Option { return func(s *Svc) { s.cfg = c } }

// WithSealBox seals new bodies and opens stored ones
func WithSealBox(b *sealbox.Box) Option { return func(s *Svc) { s.box = b } }

// WithClock sets the clock used for the default entry date
func WithClock(c ptime.Clock) Option { return func(s *Svc) { s.clock = c } }

// WithIDs sets the entry id generator
func WithIDs(fn func() string) Option { return func(s *Svc) { s.newID = fn } }

// New creates a new reflections service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("reflections.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reflections.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		clock:  ptime.System{},
		newID:  func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	if s.cfg.Location == nil {
		s.cfg.Location = time.UTC
	}
	if s.cfg.ListLimit <= 0 {
		s.cfg.ListLimit = 100
	}
	return s
}

// Create stores a new entry for owner
// the word count is computed here and the body is sealed when a box is configured
func (s *Svc) Create(ctx context.Context, ownerID string, in domain.CreateInput) (domain.Reflection, error) {
	if err := checkOwner(ownerID); err != nil {
		return domain.Reflection{}, err
	}
	day, err := s.entryDay(in.Date)
	if err != nil {
		return domain.Reflection{}, err
	}
	mood := pstrings.TrimPtr(in.Mood)
	if mood != nil && !resurface.Mood(*mood).Valid() {
		return domain.Reflection{}, perr.WithField(perr.Validationf("mood is not a known mood"), "mood")
	}

	body, err := s.box.Seal(in.ReflectionText)
	if err != nil {
		return domain.Reflection{}, perr.Wrap(err, perr.ErrorCodeUnknown, "seal reflection")
	}

	row := repo.Row{
		ID:        s.newID(),
		OwnerID:   ownerID,
		EntryDate: day.String(),
		Prompt:    in.PromptText,
		Body:      body,
		Mood:      mood,
		WordCount: wordcount.Count(in.ReflectionText),
	}
	var saved repo.Row
	err = store.RunAsOwner(ctx, s.db, ownerID, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		saved, err = s.binder.Bind(q).Insert(ctx, row)
		return err
	})
	if err != nil {
		return domain.Reflection{}, perr.FromPostgres(err, "create reflection")
	}
	saved.Body = in.ReflectionText
	return toDomain(saved), nil
}

// entryDay parses raw or defaults to today; future days are refused
func (s *Svc) entryDay(raw string) (resurface.Day, error) {
	today := resurface.DayOf(s.clock.Now(), s.cfg.Location)
	if raw == "" {
		return today, nil
	}
	day, err := resurface.ParseDay(raw)
	if err != nil {
		return resurface.Day{}, perr.WithField(perr.Validationf("date must be YYYY-MM-DD"), "date")
	}
	if day.After(today) {
		return resurface.Day{}, perr.WithField(perr.InvalidArgf("date may not be in the future"), "date")
	}
	return day, nil
}

// List returns owner's latest entries, bodies opened
func (s *Svc) List(ctx context.Context, ownerID string, limit int) ([]domain.Reflection, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > s.cfg.ListLimit {
		limit = s.cfg.ListLimit
	}
	rows, err := s.Repo.List(ctx, ownerID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list reflections")
	}
	out := make([]domain.Reflection, 0, len(rows))
	for _, r := range rows {
		if r.Body, err = s.box.Open(r.Body); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "open reflection %s", r.ID)
		}
		out = append(out, toDomain(r))
	}
	return out, nil
}

// SetEligibility flips whether an entry may be resurfaced
// entries of other owners look exactly like missing ones
func (s *Svc) SetEligibility(ctx context.Context, ownerID, id string, eligible bool) (domain.Reflection, error) {
	if err := checkOwner(ownerID); err != nil {
		return domain.Reflection{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.Reflection{}, perr.ErrNotFound
	}

	var saved repo.Row
	err := store.RunAsOwner(ctx, s.db, ownerID, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		saved, err = s.binder.Bind(q).SetEligibility(ctx, ownerID, id, eligible)
		return err
	})
	switch {
	case err == nil:
	case stderrs.Is(err, perr.ErrNotFound):
		return domain.Reflection{}, perr.NotFoundf("reflection not found")
	default:
		return domain.Reflection{}, perr.FromPostgres(err, "update reflection")
	}

	if saved.Body, err = s.box.Open(saved.Body); err != nil {
		return domain.Reflection{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "open reflection %s", saved.ID)
	}
	return toDomain(saved), nil
}

func checkOwner(ownerID string) error {
	if _, err := uuid.Parse(ownerID); err != nil {
		return perr.WithField(perr.InvalidArgf("owner id must be a uuid"), "owner_id")
	}
	return nil
}

func toDomain(r repo.Row) domain.Reflection {
	return domain.Reflection{
		ID:                  r.ID,
		EntryDate:           r.EntryDate,
		PromptText:          r.Prompt,
		ReflectionText:      r.Body,
		Mood:                r.Mood,
		WordCount:           r.WordCount,
		ResurfacingEligible: r.Eligible,
		CreatedAt:           r.CreatedAt,
	}
}
