// Package config reads service configuration from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
)

// Conf is a namespaced view over environment variables, e.g. Prefix("MEMORIES_")
// the zero value reads unprefixed keys
type Conf struct{ prefix string }

// New returns the root Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf whose keys are prefixed with p
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and the fully qualified key
func (c Conf) lookup(k string) (string, string) {
	full := c.key(k)
	return strings.TrimSpace(os.Getenv(full)), full
}

// MustString returns the value or panics when it is missing
func (c Conf) MustString(key string) string {
	v, full := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", full).Msg("missing required env")
	}
	return v
}

// MustInt returns the value as int or panics when missing or malformed
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustDuration returns the value as a duration (250ms, 2s, 1h) or panics
func (c Conf) MustDuration(key string) time.Duration {
	s := c.MustString(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid duration (e.g., 250ms, 2s, 1h)")
	}
	return d
}

// MustSecret returns a value of at least minLen bytes or panics
// the value itself is never logged
func (c Conf) MustSecret(key string, minLen int) string {
	v := c.MustString(key)
	if len(v) < minLen {
		logger.Get().Panic().Str("key", c.key(key)).Int("min_len", minLen).Msg("secret too short")
	}
	return v
}

// Require panics unless every key is present
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.MustString(k)
	}
}

// MayString returns the value or def when missing
func (c Conf) MayString(key, def string) string {
	if v, _ := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def when missing; malformed values warn and use def
func (c Conf) MayInt(key string, def int) int {
	s, full := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", full).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayBool returns the value or def when missing; malformed values warn and use def
func (c Conf) MayBool(key string, def bool) bool {
	s, full := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", full).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value or def when missing; malformed values warn and use def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, full := c.lookup(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", full).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayLocation resolves an IANA zone name (Europe/London) or def when missing
// unknown zones warn and use def
func (c Conf) MayLocation(key string, def *time.Location) *time.Location {
	s, full := c.lookup(key)
	if s == "" {
		return def
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		logger.Get().Warn().Str("key", full).Str("value", s).Str("default", def.String()).Msg("invalid time zone; using default")
		return def
	}
	return loc
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	s, _ := c.lookup(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it is one of allowed (case insensitive), def when missing
// anything else panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(v)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
