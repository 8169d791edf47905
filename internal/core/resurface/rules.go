// Package resurface decides whether one of an owner's past reflections is shown again today
// and which one. Everything here is pure: callers load a Snapshot and pass the clock in
package resurface

// Rules are the tunables of the engine
// zero or negative fields fall back to DefaultRules via Normalize
type Rules struct {
	BaseCooldownDays   int
	CooldownSpreadDays int
	LowMoodStreak      int
	WindowDays         int
	MinAgeDays         int
	PoolSize           int
	MinWordCount       int
}

// DefaultRules returns the production rule set
func DefaultRules() Rules {
	return Rules{
		BaseCooldownDays:   30,
		CooldownSpreadDays: 16,
		LowMoodStreak:      3,
		WindowDays:         7,
		MinAgeDays:         90,
		PoolSize:           12,
		MinWordCount:       80,
	}
}

// Normalize fills unset fields from DefaultRules
func (r Rules) Normalize() Rules {
	d := DefaultRules()
	if r.BaseCooldownDays <= 0 {
		r.BaseCooldownDays = d.BaseCooldownDays
	}
	if r.CooldownSpreadDays <= 0 {
		r.CooldownSpreadDays = d.CooldownSpreadDays
	}
	if r.LowMoodStreak <= 0 {
		r.LowMoodStreak = d.LowMoodStreak
	}
	if r.WindowDays <= 0 {
		r.WindowDays = d.WindowDays
	}
	if r.MinAgeDays <= 0 {
		r.MinAgeDays = d.MinAgeDays
	}
	if r.PoolSize <= 0 {
		r.PoolSize = d.PoolSize
	}
	if r.MinWordCount <= 0 {
		r.MinWordCount = d.MinWordCount
	}
	return r
}
