package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfit-tech/lodestar-contract-api/internal/constants"
)

// Config holds every environment-sourced setting the service reads.
type Config struct {
	Stage   string
	APIPort string

	// External collaborators
	CatalogAPIURL string
	OrderAPIURL   string

	// Grant generation
	CoinExchangeRate float64
	OnboardingCoins  int64

	// CORS
	CORSAllowedOrigins []string

	// Rate limiting
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads configuration from the environment. Required variables missing
// at startup are returned as an error so main can fail fast.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:            getEnv("STAGE", constants.DevEnvironment),
		APIPort:          getEnv("API_PORT", "8000"),
		CatalogAPIURL:    os.Getenv("CATALOG_API_URL"),
		OrderAPIURL:      os.Getenv("ORDER_API_URL"),
		CoinExchangeRate:   1.0,
		OnboardingCoins:    0,
		RateLimitPerSecond: 20,
		RateLimitBurst:     40,
	}

	if cfg.CatalogAPIURL == "" {
		return nil, fmt.Errorf("CATALOG_API_URL environment variable is required")
	}
	if cfg.OrderAPIURL == "" {
		return nil, fmt.Errorf("ORDER_API_URL environment variable is required")
	}

	// The coin exchange rate is deployment configuration, not a business
	// constant; product owners tune it per environment.
	if v := os.Getenv("COIN_EXCHANGE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("COIN_EXCHANGE_RATE must be a positive number, got %q", v)
		}
		cfg.CoinExchangeRate = rate
	}

	if v := os.Getenv("ONBOARDING_COINS"); v != "" {
		coins, err := strconv.ParseInt(v, 10, 64)
		if err != nil || coins < 0 {
			return nil, fmt.Errorf("ONBOARDING_COINS must be a non-negative integer, got %q", v)
		}
		cfg.OnboardingCoins = coins
	}

	if v := os.Getenv("RATE_LIMIT_PER_SECOND"); v != "" {
		rps, err := strconv.Atoi(v)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND must be a positive integer, got %q", v)
		}
		cfg.RateLimitPerSecond = rps
	}

	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer, got %q", v)
		}
		cfg.RateLimitBurst = burst
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, strings.TrimSpace(origin))
		}
	} else {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
