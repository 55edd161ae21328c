package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds runtime configuration loaded from env.
type Config struct {
	APIURL      string
	HTTPTimeout time.Duration
	CatalogTTL  time.Duration

	StoreDriver string
	StorePath   string

	RedisHost string
	RedisPort string
	RedisDB   int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	LogLevel  string
	LogPretty bool
}

func FromEnv() Config {
	return Config{
		APIURL:      getEnv("CINEMA_API_URL", "http://localhost:5000/api"),
		HTTPTimeout: getDuration("CINEMA_HTTP_TIMEOUT", 0),
		CatalogTTL:  getDuration("CATALOG_TTL", 5*time.Minute),
		StoreDriver: getEnv("STORE_DRIVER", "sqlite"),
		StorePath:   getEnv("STORE_PATH", "cinema.db"),
		RedisHost:   getEnv("REDIS_HOST", "localhost"),
		RedisPort:   getEnv("REDIS_PORT", "6379"),
		RedisDB:     getInt("REDIS_DB", 0),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "cinema_client"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   os.Getenv("LOG_PRETTY") == "1",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in env, using default")
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration in env, using default")
		return def
	}
	return d
}
