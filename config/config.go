// Package config loads runtime settings from the environment, an optional
// .env file and positional arguments.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSymbol    = "BTC_USDT"
	DefaultInterval  = "1m"
	DefaultRateLimit = 5.0
)

// Config holds the dashboard settings. An empty BaseURL selects the
// adapter's default host.
type Config struct {
	BaseURL     string
	Symbol      string
	Interval    string
	HTTPTimeout time.Duration
	RateLimit   float64
	LogLevel    string
	LogFile     string
}

// Load reads .env (if present) and the environment, then applies args as
// [symbol [interval]]. A .env file that exists but cannot be parsed is an
// error.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return fromEnv(args)
}

func fromEnv(args []string) (Config, error) {
	if len(args) > 2 {
		return Config{}, fmt.Errorf("config: expected at most 2 arguments [symbol [interval]], got %d", len(args))
	}

	timeout, err := getEnvDuration("HTTP_TIMEOUT", 0)
	if err != nil {
		return Config{}, err
	}
	rps, err := getEnvFloat("RATE_LIMIT", DefaultRateLimit)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:     os.Getenv("MEXC_BASE_URL"),
		Symbol:      getEnv("SYMBOL", DefaultSymbol),
		Interval:    getEnv("INTERVAL", DefaultInterval),
		HTTPTimeout: timeout,
		RateLimit:   rps,
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFile:     os.Getenv("LOG_FILE"),
	}
	if len(args) > 0 && args[0] != "" {
		cfg.Symbol = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		cfg.Interval = args[1]
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("config: %s: invalid duration %q", key, v)
	}
	return d, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("config: %s: invalid number %q", key, v)
	}
	return f, nil
}
