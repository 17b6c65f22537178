package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr   = ":8080"
	defaultDatabaseURL  = "foodgram.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "24h"
	defaultSearchCI     = "true"
)

type Config struct {
	ListenAddr   string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration

	// IngredientSearchCaseInsensitive controls whether the ingredient
	// name prefix search for autocomplete ignores case.
	IngredientSearchCaseInsensitive bool
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	ttl, err := parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = ttl

	ci, err := parseBoolEnv("INGREDIENT_SEARCH_CASE_INSENSITIVE", defaultSearchCI)
	if err != nil {
		return nil, err
	}
	cfg.IngredientSearchCaseInsensitive = ci

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func parseBoolEnv(key, fallback string) (bool, error) {
	raw := getEnv(key, fallback)
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return b, nil
}
