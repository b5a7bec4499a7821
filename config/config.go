package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// SnapshotDBPath is the SQLite file holding the persisted catalog snapshot.
	SnapshotDBPath string

	// TicketmasterAPIKey authorizes calls to the Discovery API. Empty means
	// catalog syncs fail until one is provided; the seeded catalog still works.
	TicketmasterAPIKey string

	// CORSAllowedOrigin is the origin allowed to call the API from a browser.
	CORSAllowedOrigin string

	// Email settings for reservation confirmations.
	EmailProvider      string // "ses" or "noop"
	EmailFromAddress   string
	EmailFromName      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		SnapshotDBPath:     os.Getenv("SNAPSHOT_DB_PATH"),
		TicketmasterAPIKey: os.Getenv("TICKETMASTER_API_KEY"),
		CORSAllowedOrigin:  os.Getenv("CORS_ALLOWED_ORIGIN"),
		EmailProvider:      os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SnapshotDBPath == "" {
		cfg.SnapshotDBPath = "stagefront.db"
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "*"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.EmailFromName == "" {
		cfg.EmailFromName = "Stagefront"
	}

	return cfg, nil
}
