package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/cineticket/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("CINEMA_API_URL", "")
	t.Setenv("CATALOG_TTL", "")
	t.Setenv("STORE_DRIVER", "")

	c := config.FromEnv()
	assert.Equal(t, "http://localhost:5000/api", c.APIURL)
	assert.Equal(t, 5*time.Minute, c.CatalogTTL)
	assert.Equal(t, time.Duration(0), c.HTTPTimeout)
	assert.Equal(t, "sqlite", c.StoreDriver)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CINEMA_API_URL", "https://api.example.com")
	t.Setenv("CATALOG_TTL", "30s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CINEMA_HTTP_TIMEOUT", "not-a-duration")

	c := config.FromEnv()
	assert.Equal(t, "https://api.example.com", c.APIURL)
	assert.Equal(t, 30*time.Second, c.CatalogTTL)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, time.Duration(0), c.HTTPTimeout)
}
