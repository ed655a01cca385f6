package store

import (
	"time"

	"floaty/internal/platform/config"
)

// Config aggregates backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures Postgres
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	LogArgs     bool
	SlowQueryMs int

	ConnectRetries int           // ping attempts before giving up
	PingTimeout    time.Duration // per attempt
}

// CHConfig configures ClickHouse
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
	Tag     string
}

// LoadConfig reads FLOATY_PGSQL_* and FLOATY_CLICKHOUSE_* from root
func LoadConfig(root config.Conf, appName string) Config {
	pg := root.Prefix("FLOATY_PGSQL_")
	ch := root.Prefix("FLOATY_CLICKHOUSE_")

	cfg := Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        pg.MayBool("ENABLED", false),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 8)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			LogArgs:        pg.MayBool("LOG_ARGS", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 250),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 6),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: ch.MayBool("ENABLED", false),
			Role:    ch.MayString("ROLE", "api"),
			Tag:     ch.MayString("TAG", "dev"),
		},
	}
	if cfg.PG.Enabled {
		cfg.PG.URL = pg.MustString("DBURL")
	}
	if cfg.CH.Enabled {
		cfg.CH.URL = ch.MustString("DBURL")
	}
	return cfg
}
