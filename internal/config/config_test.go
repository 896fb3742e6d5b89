package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfit-tech/lodestar-contract-api/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CATALOG_API_URL", "http://catalog.local")
	t.Setenv("ORDER_API_URL", "http://orders.local")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.APIPort)
	assert.Equal(t, 1.0, cfg.CoinExchangeRate)
	assert.Equal(t, int64(0), cfg.OnboardingCoins)
	assert.Equal(t, 20, cfg.RateLimitPerSecond)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoad_RequiredURLs(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "")
	t.Setenv("ORDER_API_URL", "http://orders.local")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("CATALOG_API_URL", "http://catalog.local")
	t.Setenv("ORDER_API_URL", "")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("COIN_EXCHANGE_RATE", "1.5")
	t.Setenv("ONBOARDING_COINS", "50")
	t.Setenv("RATE_LIMIT_PER_SECOND", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.CoinExchangeRate)
	assert.Equal(t, int64(50), cfg.OnboardingCoins)
	assert.Equal(t, 5, cfg.RateLimitPerSecond)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_RejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric exchange rate", "COIN_EXCHANGE_RATE", "abc"},
		{"zero exchange rate", "COIN_EXCHANGE_RATE", "0"},
		{"negative onboarding coins", "ONBOARDING_COINS", "-1"},
		{"zero rate limit", "RATE_LIMIT_PER_SECOND", "0"},
		{"negative burst", "RATE_LIMIT_BURST", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
