// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:8081"] (Expo dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// HomeAirport is the IATA code outbound flights depart from.
	// Defaults to "CDG". Must be a 3-letter code.
	HomeAirport string

	// EmailDomain is the host part of generated booking-forwarding addresses.
	// Defaults to "wayko.app".
	EmailDomain string

	// ImageSearchURL is the base URL of the remote destination-image search.
	// Empty (the default) disables remote lookups; the curated table and the
	// fixed fallback image still apply.
	ImageSearchURL string

	// PlacesSearchURL is the base URL of the destination autocomplete service.
	// Empty (the default) disables it; searches then yield empty lists.
	PlacesSearchURL string
}

// Load reads configuration from environment variables and returns a Config.
// No variable is required — the server has no hard external dependency — but
// malformed values are rejected with an error naming the variable.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),
		HomeAirport:     strings.ToUpper(getEnv("HOME_AIRPORT", "CDG")),
		EmailDomain:     getEnv("EMAIL_DOMAIN", "wayko.app"),
		ImageSearchURL:  os.Getenv("IMAGE_SEARCH_URL"),
		PlacesSearchURL: os.Getenv("PLACES_SEARCH_URL"),
	}

	if len(cfg.HomeAirport) != 3 {
		return Config{}, fmt.Errorf("HOME_AIRPORT must be a 3-letter IATA code, got %q", cfg.HomeAirport)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
