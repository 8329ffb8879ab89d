// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/disaster-alert-service/internal/adapter/eonet"
	"github.com/couchcryptid/disaster-alert-service/internal/adapter/usgs"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Provider configuration.
	EONETBaseURL    string
	USGSBaseURL     string
	ProviderTimeout time.Duration
	LookbackDays    int
	MinMagnitude    float64

	// DefaultRadiusKm applies when a request supplies an observer point but
	// no radius.
	DefaultRadiusKm float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	providerTimeout, err := parseDuration("PROVIDER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	lookbackDays, err := parseInt("LOOKBACK_DAYS", 30)
	if err != nil {
		return nil, err
	}

	minMagnitude, err := parseFloat("MIN_MAGNITUDE", 3.0)
	if err != nil {
		return nil, err
	}

	defaultRadius, err := parseFloat("DEFAULT_RADIUS_KM", 500)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		EONETBaseURL:    envOrDefault("EONET_BASE_URL", eonet.DefaultBaseURL),
		USGSBaseURL:     envOrDefault("USGS_BASE_URL", usgs.DefaultBaseURL),
		ProviderTimeout: providerTimeout,
		LookbackDays:    lookbackDays,
		MinMagnitude:    minMagnitude,
		DefaultRadiusKm: defaultRadius,
	}

	if cfg.EONETBaseURL == "" {
		return nil, errors.New("EONET_BASE_URL is required")
	}
	if cfg.USGSBaseURL == "" {
		return nil, errors.New("USGS_BASE_URL is required")
	}
	if cfg.LookbackDays <= 0 {
		return nil, errors.New("LOOKBACK_DAYS must be positive")
	}
	if cfg.MinMagnitude < 0 {
		return nil, errors.New("MIN_MAGNITUDE must not be negative")
	}
	if cfg.DefaultRadiusKm <= 0 {
		return nil, errors.New("DEFAULT_RADIUS_KM must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}
