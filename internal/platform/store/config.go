package store

import (
	"time"

	"aidetect/internal/platform/config"
)

// Config selects and tunes the backends Open dials
type Config struct {
	PG PGConfig
	CH CHConfig
}

// PGConfig tunes the pgx pool and its boot ping
type PGConfig struct {
	Enabled     bool
	URL         string
	AppName     string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries and PingTimeout bound the wait for a database that is still starting
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig tunes the clickhouse client
type CHConfig struct {
	Enabled bool
	URL     string
	// Role and Tag end up in system.query_log client info
	Role         string
	Tag          string
	DialTimeout  time.Duration
	MaxOpenConns int
}

// ConfigFromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_*
// A backend is enabled exactly when its DBURL is set
func ConfigFromEnv(root config.Conf, app, role, tag string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	c := Config{
		PG: PGConfig{
			URL:            pg.MayString("DBURL", ""),
			AppName:        app,
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 4)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 500),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			URL:          ch.MayString("DBURL", ""),
			Role:         role,
			Tag:          tag,
			DialTimeout:  ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
			MaxOpenConns: ch.MayInt("MAX_OPEN_CONNS", 4),
		},
	}
	c.PG.Enabled = c.PG.URL != ""
	c.CH.Enabled = c.CH.URL != ""
	return c
}

// Any reports whether at least one backend is enabled
func (c Config) Any() bool { return c.PG.Enabled || c.CH.Enabled }
