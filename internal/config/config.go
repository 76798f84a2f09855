package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Firestore connection
	FirestoreProjectID  string
	FirestoreCollection string

	// Auth for the admin API (the public share routes stay open)
	AdminAPIKey string

	// Timeline rendering
	DefaultHourWidth float64

	// Base URL used when building shareable links
	ShareBaseURL string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8092"),

		FirestoreProjectID:  os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCollection: envOr("FIRESTORE_COLLECTION", "preventivi"),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		DefaultHourWidth: envFloat("DEFAULT_HOUR_WIDTH", 220),

		ShareBaseURL: envOr("SHARE_BASE_URL", "http://localhost:8092"),
	}

	if cfg.DefaultHourWidth <= 0 {
		cfg.DefaultHourWidth = 220
	}

	return cfg
}

func (c Config) Validate() error {
	if c.FirestoreProjectID == "" {
		return fmt.Errorf("FIRESTORE_PROJECT_ID is required")
	}
	if c.AdminAPIKey == "" {
		return fmt.Errorf("ADMIN_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
