package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Beijing", cfg.DefaultCity)
	assert.False(t, cfg.EnforceRadius)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_CITY", "Shanghai")
	t.Setenv("SEARCH_ENFORCE_RADIUS", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "Shanghai", cfg.DefaultCity)
	assert.True(t, cfg.EnforceRadius)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SEARCH_ENFORCE_RADIUS", "maybe")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.EnforceRadius)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}
