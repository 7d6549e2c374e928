package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// SSOT: every environment variable is read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External APIs
	EODHD EODHDConfig
	FX    FXConfig

	// Pipeline
	Pipeline PipelineConfig

	// Scheduled refresh for the API serve mode. Empty disables it.
	RefreshCron string

	// Logging
	LogLevel  string
	LogFormat string
}

// EODHDConfig holds EODHD (fundamentals + EOD prices) API configuration
type EODHDConfig struct {
	APIToken string
	BaseURL  string
}

// FXConfig holds the exchange-rate provider configuration
type FXConfig struct {
	BaseURL  string
	Pair     string // Yahoo symbol, e.g. "USDBRL=X"
	CacheTTL time.Duration
}

// PipelineConfig holds ranking-pipeline tuning knobs
type PipelineConfig struct {
	// WindowStart is the inclusive lower bound on fundamentals report dates.
	WindowStart time.Time

	// RequestDelay is the fixed pause between consecutive ticker turns,
	// applied unconditionally to respect provider rate limits.
	RequestDelay time.Duration

	// HTTPTimeout bounds every provider call.
	HTTPTimeout time.Duration

	// PriceLookbackDays is the size of the trailing EOD price window.
	PriceLookbackDays int

	// MinPriceObservations is the minimum number of daily closes for a
	// price series to be usable at all.
	MinPriceObservations int
}

// Load reads configuration from environment variables
// SSOT: this function is the only caller of os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	windowStart, err := time.Parse("2006-01-02", getEnv("REPORT_WINDOW_START", "2024-01-01"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_WINDOW_START: %w", err)
	}

	cfg := &Config{
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		EODHD: EODHDConfig{
			APIToken: getEnv("EODHD_API_TOKEN", ""),
			BaseURL:  getEnv("EODHD_BASE_URL", "https://eodhd.com"),
		},

		FX: FXConfig{
			BaseURL:  getEnv("FX_BASE_URL", "https://query1.finance.yahoo.com"),
			Pair:     getEnv("FX_PAIR", "USDBRL=X"),
			CacheTTL: getEnvAsDuration("FX_CACHE_TTL", "1h"),
		},

		Pipeline: PipelineConfig{
			WindowStart:          windowStart,
			RequestDelay:         getEnvAsDuration("REQUEST_DELAY", "200ms"),
			HTTPTimeout:          getEnvAsDuration("HTTP_TIMEOUT", "20s"),
			PriceLookbackDays:    getEnvAsInt("PRICE_LOOKBACK_DAYS", 300),
			MinPriceObservations: getEnvAsInt("MIN_PRICE_OBSERVATIONS", 150),
		},

		RefreshCron: getEnv("REFRESH_CRON", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.EODHD.APIToken == "" {
		return fmt.Errorf("EODHD_API_TOKEN is required")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Pipeline.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	if c.Pipeline.MinPriceObservations <= 0 {
		return fmt.Errorf("MIN_PRICE_OBSERVATIONS must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
