package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"proposal-tracker-backend"`

	Server struct {
		Port int `env:"PORT" envDefault:"8080"`

		// Public base URL of this backend, substituted into the embed
		// script so browser beacons reach the right origin. When empty
		// the embed endpoint falls back to the request's own host.
		PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:""`

		CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	Webhook struct {
		// When true, webhook updates shallow-overlay non-empty fields
		// onto the stored record instead of replacing it.
		MergeUpdates bool `env:"WEBHOOK_MERGE_UPDATES" envDefault:"false"`
	}

	Redis struct {
		// Empty addr selects the in-memory record store.
		Addr     string `env:"REDIS_ADDR" envDefault:""`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Missing .env is fine; production sets variables directly.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
