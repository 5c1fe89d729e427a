package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string  `envconfig:"APP_ENV"`
	Port         int     `envconfig:"PORT" default:"8080"`
	SentryDSN    string  `envconfig:"SENTRY_DSN"`
	AllowOrigins string  `envconfig:"ALLOW_ORIGINS"`
	RateLimit    float64 `envconfig:"RATE_LIMIT" default:"20"`

	Catalog struct {
		Source      string `envconfig:"CATALOG_SOURCE" default:"file"`
		MoviesFile  string `envconfig:"CATALOG_MOVIES_FILE"`
		ReviewsFile string `envconfig:"CATALOG_REVIEWS_FILE"`
	}
	DB struct {
		Driver    string `envconfig:"DB_DRIVER"`
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.Catalog.Source {
	case SourceFile, SourcePostgres:
	default:
		return nil, fmt.Errorf("load config error: unknown catalog source %q", cfg.Catalog.Source)
	}

	return cfg, nil
}
