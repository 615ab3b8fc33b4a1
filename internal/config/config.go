// Package config loads settings from a .env file and environment variables.
// Environment variables win over .env values.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SQLite   = "sqlite3"
	Postgres = "postgres"
)

type Config struct {
	DBDriver    string
	DatabaseURL string

	Port            string
	Debug           bool
	SessionLifetime time.Duration

	// Group registrations without a classification by their raw category
	// references instead of leaving them out of bracket generation.
	GroupUnclassified bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_DRIVER", SQLite)
	v.SetDefault("DATABASE_URL", "federation.db?_journal_mode=WAL")
	v.SetDefault("PORT", ":8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("SESSION_LIFETIME", "24h")
	v.SetDefault("GROUP_UNCLASSIFIED", false)

	cfg := &Config{
		DBDriver:          v.GetString("DB_DRIVER"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		Port:              v.GetString("PORT"),
		Debug:             v.GetBool("DEBUG"),
		SessionLifetime:   v.GetDuration("SESSION_LIFETIME"),
		GroupUnclassified: v.GetBool("GROUP_UNCLASSIFIED"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBDriver != SQLite && c.DBDriver != Postgres {
		return fmt.Errorf("config: DB_DRIVER must be %q or %q, got %q", SQLite, Postgres, c.DBDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL must be set")
	}
	if c.SessionLifetime <= 0 {
		return fmt.Errorf("config: SESSION_LIFETIME must be positive")
	}
	return nil
}
