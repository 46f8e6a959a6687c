package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FARM_LAT", "")
	t.Setenv("MARKET_ALLOWED_DOMAINS", "")
	t.Setenv("THEME_DEBOUNCE_MS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEV_LOGIN", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.InDelta(t, -0.2833, cfg.FarmLat, 1e-9)
	assert.Equal(t, "Nakuru, Rongai", cfg.FarmLocation)
	assert.Equal(t, 500, cfg.ThemeDebounceMS)
	assert.Empty(t, cfg.MarketAllowList)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "cropwise.db", cfg.DBPath)
	assert.False(t, cfg.EnableDevLogin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FARM_LAT", "1.5")
	t.Setenv("MARKET_ALLOWED_DOMAINS", " Prices.Example.org ,,kilimo.go.ke")
	t.Setenv("THEME_DEBOUNCE_MS", "not-a-number")
	t.Setenv("DEV_LOGIN", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.InDelta(t, 1.5, cfg.FarmLat, 1e-9)
	assert.Equal(t, []string{"prices.example.org", "kilimo.go.ke"}, cfg.MarketAllowList)
	assert.Equal(t, 500, cfg.ThemeDebounceMS)
	assert.True(t, cfg.EnableDevLogin)
}
