// Package service contains the memories workflows, the resurfacing engine among them
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/promptandpause/promptandpause-sub003/internal/core/resurface"
	"github.com/promptandpause/promptandpause-sub003/internal/core/sealbox"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
	ptime "github.com/promptandpause/promptandpause-sub003/internal/platform/time"
	"github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/domain"
	"github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/repo"
)

// Service defines the service contract for memories
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	cfg   Config
	box   *sealbox.Box
	clock ptime.Clock
	log   *logger.Logger
	newID func() string
}

// Option customizes Svc
type Option func(*Svc)

// WithConfig sets rules, location and timeouts
func WithConfig(c Config) Option { return func(s *Svc) { s.cfg = c.normalize() } }

// WithSealBox sets the box used to open sealed bodies
func WithSealBox(b *sealbox.Box) Option { return func(s *Svc) { s.box = b } }

// WithClock sets the clock Today reads
func WithClock(c ptime.Clock) Option { return func(s *Svc) { s.clock = c } }

// WithLogger sets the service logger
func WithLogger(l *logger.Logger) Option { return func(s *Svc) { s.log = l } }

// WithIDs sets the event id generator
func WithIDs(fn func() string) Option { return func(s *Svc) { s.newID = fn } }

// New creates a new memories service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("memories.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("memories.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		cfg:    DefaultConfig(),
		clock:  ptime.System{},
		newID:  func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = logger.Named("memories")
	}
	return s
}

// Today decides for owner at the service clock
func (s *Svc) Today(ctx context.Context, ownerID string) (*domain.Memory, error) {
	return s.Decide(ctx, ownerID, s.clock.Now())
}

// Decide returns the memory to show owner at now, or nil when the rules say no
// A concurrent call that records the same entry first turns this one into a nil result
func (s *Svc) Decide(ctx context.Context, ownerID string, now time.Time) (*domain.Memory, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, perr.WithField(perr.InvalidArgf("owner id must be a uuid"), "owner_id")
	}

	today := resurface.DayOf(now, s.cfg.Location)
	snap, err := s.snapshot(ctx, ownerID, today)
	if err != nil {
		return nil, err
	}

	dec := s.cfg.Rules.Decide(ownerID, now, s.cfg.Location, snap)
	log := logger.C(ctx).With().
		Str("component", "memories").
		Str("today", dec.Today.String()).
		Int("cooldown_days", dec.Cooldown).
		Int("pool", dec.Pool).
		Logger()
	if dec.Pick == nil {
		log.Debug().Str("reason", string(dec.Reason)).Msg("no memory today")
		return nil, nil
	}

	mem, err := s.materialize(*dec.Pick)
	if err != nil {
		return nil, err
	}

	err = store.RunAsOwner(ctx, s.db, ownerID, func(ctx context.Context, q store.RowQuerier) error {
		return s.binder.Bind(q).InsertEvent(ctx, s.newID(), ownerID, mem.ID, now)
	})
	switch {
	case err == nil:
	case perr.IsDuplicateKey(err):
		log.Info().Str("entry_id", mem.ID).Msg("entry surfaced by a concurrent request")
		return nil, nil
	case perr.IsForeignKeyViolation(err):
		log.Info().Str("entry_id", mem.ID).Msg("entry deleted before it could be surfaced")
		return nil, nil
	default:
		return nil, perr.FromPostgres(err, "record surfacing event")
	}

	log.Debug().Str("reason", string(dec.Reason)).Str("entry_id", mem.ID).Msg("memory surfaced")
	return mem, nil
}

// snapshot loads everything the rules look at; all reads finish before any rule runs
func (s *Svc) snapshot(ctx context.Context, ownerID string, today resurface.Day) (resurface.Snapshot, error) {
	if s.cfg.ReadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ReadTimeout)
		defer cancel()
	}

	win := s.cfg.Rules.WindowsFor(today)
	var snap resurface.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := s.Repo.LatestSurfacedAt(gctx, ownerID)
		snap.LastSurfacedAt = t
		return wrapRead(err, "latest surfacing event")
	})
	g.Go(func() error {
		m, err := s.Repo.Marks(gctx, ownerID, win.Recent)
		snap.Recent = m
		return wrapRead(err, "recent entries")
	})
	g.Go(func() error {
		m, err := s.Repo.Marks(gctx, ownerID, win.Prior)
		snap.Prior = m
		return wrapRead(err, "prior entries")
	})
	g.Go(func() error {
		c, err := s.Repo.Candidates(gctx, ownerID, win.OldestAllowed, s.cfg.Rules.PoolSize)
		snap.Candidates = c
		return wrapRead(err, "candidate pool")
	})
	g.Go(func() error {
		ids, err := s.Repo.SurfacedIDs(gctx, ownerID)
		snap.Surfaced = ids
		return wrapRead(err, "surfaced entries")
	})

	if err := g.Wait(); err != nil {
		return resurface.Snapshot{}, err
	}
	return snap, nil
}

func wrapRead(err error, what string) error {
	if err == nil {
		return nil
	}
	return perr.FromPostgresf(err, "load %s", what)
}

func (s *Svc) materialize(c resurface.Candidate) (*domain.Memory, error) {
	body, err := s.box.Open(c.Body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "open reflection %s", c.ID)
	}
	var mood *string
	if c.Mood != nil {
		m := string(*c.Mood)
		mood = &m
	}
	return &domain.Memory{
		ID:             c.ID,
		EntryDate:      c.Day.String(),
		PromptText:     c.PromptText,
		ReflectionText: body,
		Mood:           mood,
		WordCount:      c.WordCount,
	}, nil
}

// History lists memories already shown to owner, newest first
func (s *Svc) History(ctx context.Context, ownerID string, limit int) ([]domain.SurfacedMemory, error) {
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	rows, err := s.Repo.History(ctx, ownerID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "load memory history")
	}
	out := make([]domain.SurfacedMemory, 0, len(rows))
	for _, r := range rows {
		mem, err := s.materialize(r.Entry)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.SurfacedMemory{Memory: *mem, SurfacedAt: r.SurfacedAt})
	}
	return out, nil
}
