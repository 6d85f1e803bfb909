package config

import (
	"fmt"
	"os"
)

// DefaultDatabaseURL is the production realtime database the mobile app
// writes to.
const DefaultDatabaseURL = "https://mp-alertify-default-rtdb.asia-southeast1.firebasedatabase.app/"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type FirebaseConfig struct {
	// AdminJSON is the raw service-account credential blob.
	AdminJSON   []byte
	DatabaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	adminJSON := os.Getenv("FIREBASE_ADMIN_JSON")
	if adminJSON == "" {
		return nil, fmt.Errorf("FIREBASE_ADMIN_JSON is required")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		Firebase: FirebaseConfig{
			AdminJSON:   []byte(adminJSON),
			DatabaseURL: getEnv("FIREBASE_DATABASE_URL", DefaultDatabaseURL),
		},
	}, nil
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
