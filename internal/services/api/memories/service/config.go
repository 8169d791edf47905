package service

import (
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/core/resurface"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
)

// Config tunes the memories service
type Config struct {
	Rules        resurface.Rules
	Location     *time.Location
	ReadTimeout  time.Duration
	HistoryLimit int
}

// DefaultConfig is the production configuration
func DefaultConfig() Config {
	return Config{
		Rules:        resurface.DefaultRules(),
		Location:     time.UTC,
		ReadTimeout:  5 * time.Second,
		HistoryLimit: 100,
	}
}

// ConfigFrom reads MEMORIES_* style keys under cfg
func ConfigFrom(cfg config.Conf) Config {
	d := DefaultConfig()
	return Config{
		Rules: resurface.Rules{
			BaseCooldownDays:   cfg.MayInt("COOLDOWN_BASE_DAYS", d.Rules.BaseCooldownDays),
			CooldownSpreadDays: cfg.MayInt("COOLDOWN_SPREAD_DAYS", d.Rules.CooldownSpreadDays),
			LowMoodStreak:      cfg.MayInt("LOW_MOOD_STREAK", d.Rules.LowMoodStreak),
			WindowDays:         cfg.MayInt("WINDOW_DAYS", d.Rules.WindowDays),
			MinAgeDays:         cfg.MayInt("MIN_AGE_DAYS", d.Rules.MinAgeDays),
			PoolSize:           cfg.MayInt("POOL_SIZE", d.Rules.PoolSize),
			MinWordCount:       cfg.MayInt("MIN_WORDS", d.Rules.MinWordCount),
		}.Normalize(),
		Location:     cfg.MayLocation("TZ", d.Location),
		ReadTimeout:  cfg.MayDuration("READ_TIMEOUT", d.ReadTimeout),
		HistoryLimit: cfg.MayInt("HISTORY_LIMIT", d.HistoryLimit),
	}
}

func (c Config) normalize() Config {
	d := DefaultConfig()
	c.Rules = c.Rules.Normalize()
	if c.Location == nil {
		c.Location = d.Location
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = d.HistoryLimit
	}
	return c
}
