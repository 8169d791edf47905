package resurface

import (
	"sort"
	"time"
)

// Mark is the slim view of a recent entry used by the guards
type Mark struct {
	Day  Day
	Mood *Mood
}

// Candidate is an entry old enough to be resurfaced
type Candidate struct {
	ID         string
	Day        Day
	PromptText string
	Body       string
	Mood       *Mood
	WordCount  int
}

// Snapshot is everything the engine reads for one owner before deciding
type Snapshot struct {
	// LastSurfacedAt is the newest surfacing event, nil when there is none
	LastSurfacedAt *time.Time
	// Recent holds entries of the recent window, Prior those of the window before it
	Recent []Mark
	Prior  []Mark
	// Candidates are eligible entries at or before the age bound, newest first
	Candidates []Candidate
	// Surfaced holds every entry id ever surfaced to the owner
	Surfaced map[string]struct{}
}

// Reason explains a decision, it is logged and never shown to users
type Reason string

// Decision reasons
const (
	ReasonSelected   Reason = "selected"
	ReasonCooldown   Reason = "cooldown"
	ReasonLowMood    Reason = "low_mood"
	ReasonDisengaged Reason = "disengaged"
	ReasonEmptyPool  Reason = "empty_pool"
)

// Decision is the outcome of Decide
// Pick is nil unless Reason is ReasonSelected
type Decision struct {
	Reason   Reason
	Pick     *Candidate
	Today    Day
	Cooldown int
	Pool     int
}

// Decide runs the resurfacing rules in order and stops at the first one that says no
func (r Rules) Decide(ownerID string, now time.Time, loc *time.Location, s Snapshot) Decision {
	r = r.Normalize()
	today := DayOf(now, loc)
	win := r.WindowsFor(today)
	d := Decision{Today: today, Cooldown: r.CooldownDays(ownerID)}

	if !r.CooledDown(s.LastSurfacedAt, now, d.Cooldown) {
		d.Reason = ReasonCooldown
		return d
	}

	recent := inWindow(s.Recent, win.Recent)
	if TrailingLowStreak(recent) >= r.LowMoodStreak {
		d.Reason = ReasonLowMood
		return d
	}

	if Disengaged(DistinctDays(recent), DistinctDays(inWindow(s.Prior, win.Prior))) {
		d.Reason = ReasonDisengaged
		return d
	}

	pool := r.Pool(s.Candidates, s.Surfaced, win.OldestAllowed)
	d.Pool = len(pool)
	if len(pool) == 0 {
		d.Reason = ReasonEmptyPool
		return d
	}

	pick := pool[PickIndex(ownerID, today, len(pool))]
	d.Reason = ReasonSelected
	d.Pick = &pick
	return d
}

// CooledDown reports whether enough time passed since the last event
// a nil last means the owner was never shown a memory
func (r Rules) CooledDown(last *time.Time, now time.Time, days int) bool {
	if last == nil {
		return true
	}
	return now.Sub(*last) >= time.Duration(days)*24*time.Hour
}

// TrailingLowStreak counts consecutive low moods backwards from the newest mark
// marks are ordered by day ascending first, entries of the same day keep their order
func TrailingLowStreak(marks []Mark) int {
	ordered := append([]Mark(nil), marks...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Day.Before(ordered[j].Day) })

	n := 0
	for i := len(ordered) - 1; i >= 0; i-- {
		m := ordered[i].Mood
		if m == nil || !m.Low() {
			break
		}
		n++
	}
	return n
}

// DistinctDays counts the calendar days that have at least one mark
func DistinctDays(marks []Mark) int {
	seen := make(map[string]struct{}, len(marks))
	for _, m := range marks {
		seen[m.Day.String()] = struct{}{}
	}
	return len(seen)
}

// Disengaged reports a drop from an active prior week to a quiet recent one
func Disengaged(recentDays, priorDays int) bool {
	return (priorDays >= 3 && recentDays <= 1) || (priorDays >= 4 && recentDays <= 2)
}

// Pool filters candidates down to the ones that may be picked, preserving order
// at most PoolSize candidates are considered, mirroring the read limit
func (r Rules) Pool(cands []Candidate, surfaced map[string]struct{}, oldestAllowed Day) []Candidate {
	if len(cands) > r.PoolSize {
		cands = cands[:r.PoolSize]
	}
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Day.After(oldestAllowed) {
			continue
		}
		if _, dup := surfaced[c.ID]; dup {
			continue
		}
		if c.WordCount < r.MinWordCount {
			continue
		}
		out = append(out, c)
	}
	return out
}

func inWindow(marks []Mark, w Window) []Mark {
	out := make([]Mark, 0, len(marks))
	for _, m := range marks {
		if w.Contains(m.Day) {
			out = append(out, m)
		}
	}
	return out
}
