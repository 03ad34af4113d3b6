package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime parameters. It is built once at startup and
// passed down explicitly; nothing reads the environment afterwards.
type Config struct {
	Port       string     `env:"PORT" envDefault:"8080"`
	LogLevel   int        `env:"LOG_LEVEL" envDefault:"0"`
	Mongo      Mongo      `envPrefix:"MONGO_"`
	JWT        JWT        `envPrefix:"JWT_"`
	MarketData MarketData `envPrefix:"TWELVE_"`
}

// Mongo contains database connection parameters.
type Mongo struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DB" envDefault:"stockwatch"`
}

// JWT contains token signing parameters. A missing secret is a startup
// failure, not a per-request error.
type JWT struct {
	Secret string `env:"SECRET,notEmpty"`
}

// MarketData contains Twelve Data quote API parameters.
type MarketData struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.twelvedata.com"`
	APIKey  string `env:"KEY"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
