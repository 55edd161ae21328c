package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxRetries int
	RetryDelay time.Duration
}

func (c Config) dsn() (string, error) {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			c.User, c.Password, c.Host, c.Port, c.DBName), nil
	case DriverSQLite:
		if c.Path == "" {
			return "", fmt.Errorf("sqlite path is empty")
		}
		return "file:" + c.Path + "?_busy_timeout=5000&_journal_mode=WAL", nil
	}
	return "", fmt.Errorf("unsupported database driver %q", c.Driver)
}

// Open connects to the configured database, retrying while it comes up.
func Open(cfg Config) (*sql.DB, error) {
	dsn, err := cfg.dsn()
	if err != nil {
		return nil, err
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var db *sql.DB
	for i := 1; i <= maxRetries; i++ {
		log.Debug().Str("driver", cfg.Driver).Int("attempt", i).Int("max", maxRetries).Msg("connecting to database")
		db, err = sql.Open(cfg.Driver, dsn)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			if cfg.Driver == DriverSQLite {
				// one writer at a time keeps sqlite out of SQLITE_BUSY
				db.SetMaxOpenConns(1)
			} else {
				db.SetMaxOpenConns(10)
				db.SetMaxIdleConns(5)
				db.SetConnMaxLifetime(5 * time.Minute)
			}
			return db, nil
		}

		if db != nil {
			db.Close()
		}
		if i < maxRetries {
			log.Warn().Err(err).Dur("wait", delay).Msg("database not ready yet")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
}
