package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "https://eodhd.com", cfg.EODHD.BaseURL)
	assert.Equal(t, "USDBRL=X", cfg.FX.Pair)
	assert.Equal(t, time.Hour, cfg.FX.CacheTTL)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Pipeline.WindowStart)
	assert.Equal(t, 200*time.Millisecond, cfg.Pipeline.RequestDelay)
	assert.Equal(t, 20*time.Second, cfg.Pipeline.HTTPTimeout)
	assert.Equal(t, 300, cfg.Pipeline.PriceLookbackDays)
	assert.Equal(t, 150, cfg.Pipeline.MinPriceObservations)
	assert.Empty(t, cfg.RefreshCron)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", "test-token")
	t.Setenv("ENV", "production")
	t.Setenv("REPORT_WINDOW_START", "2025-06-01")
	t.Setenv("REQUEST_DELAY", "1s")
	t.Setenv("MIN_PRICE_OBSERVATIONS", "100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), cfg.Pipeline.WindowStart)
	assert.Equal(t, time.Second, cfg.Pipeline.RequestDelay)
	assert.Equal(t, 100, cfg.Pipeline.MinPriceObservations)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EODHD_API_TOKEN")
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", "test-token")
	t.Setenv("ENV", "sandbox")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV must be one of")
}

func TestLoadRejectsBadWindowStart(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", "test-token")
	t.Setenv("REPORT_WINDOW_START", "first of january")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("EODHD_API_TOKEN", "test-token")
	t.Setenv("REQUEST_DELAY", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, cfg.Pipeline.RequestDelay)
}
