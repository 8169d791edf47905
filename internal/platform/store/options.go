package store

import "github.com/promptandpause/promptandpause-sub003/internal/platform/logger"

// Option adjusts the Store before backends open
type Option func(*Store) error

// WithLogger sets the logger the backends and the query tracer use
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
