package store

import (
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
)

// Config selects and tunes the backends
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures the Postgres pool and its boot checks
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectAttempts int           // 0 means 20
	PingTimeout     time.Duration // 0 means 3s
}

// ConfigFrom reads SERVICE_PGSQL_* style keys from cfg: ENABLED, DBURL, MAX_CONNS, LOG_SQL,
// SLOW_MS, CONNECT_ATTEMPTS and PING_TIMEOUT
func ConfigFrom(app string, cfg config.Conf) Config {
	enabled := cfg.MayBool("ENABLED", true)
	url := ""
	if enabled {
		url = cfg.MustString("DBURL")
	}
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:         enabled,
			URL:             url,
			MaxConns:        int32(cfg.MayInt("MAX_CONNS", 10)),
			LogSQL:          cfg.MayBool("LOG_SQL", false),
			SlowQueryMs:     cfg.MayInt("SLOW_MS", 200),
			ConnectAttempts: cfg.MayInt("CONNECT_ATTEMPTS", 20),
			PingTimeout:     cfg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
	}
}
