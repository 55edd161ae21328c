package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/srgjo27/cineticket/internal/adapter/repository/memory"
	redisstore "github.com/srgjo27/cineticket/internal/adapter/repository/redis"
	"github.com/srgjo27/cineticket/internal/adapter/repository/sqlstore"
	"github.com/srgjo27/cineticket/internal/config"
	"github.com/srgjo27/cineticket/internal/core/ports"
	"github.com/srgjo27/cineticket/internal/platform/database"
)

const redisKeyPrefix = "cinema:"

func noClose() error { return nil }

// openStore picks the local key-value backend named by STORE_DRIVER. An
// unreachable redis falls back to memory; a broken database is an error.
func openStore(ctx context.Context, cfg config.Config) (ports.KeyValueStore, func() error, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.NewStore(), noClose, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
			DB:   cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Error().Err(err).Msg("redis connect failed, using in-memory store")
			client.Close()
			return memory.NewStore(), noClose, nil
		}
		return redisstore.NewStore(client, redisKeyPrefix), client.Close, nil

	case "sqlite", "postgres":
		dbCfg := database.Config{Driver: database.DriverSQLite, Path: cfg.StorePath, MaxRetries: 1}
		if cfg.StoreDriver == "postgres" {
			dbCfg = database.Config{
				Driver:     database.DriverPostgres,
				Host:       cfg.DBHost,
				Port:       cfg.DBPort,
				User:       cfg.DBUser,
				Password:   cfg.DBPassword,
				DBName:     cfg.DBName,
				MaxRetries: 5,
			}
		}
		db, err := database.Open(dbCfg)
		if err != nil {
			return nil, nil, err
		}
		store := sqlstore.NewStore(db)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}
