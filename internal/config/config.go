// Package config loads the planner configuration from the environment.
//
// Loading order:
//  1. .env file via godotenv (optional).
//  2. envconfig populates Config from environment variables.
//  3. validator checks the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every setting used by the planner binaries.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	Origin   string `envconfig:"ORIGIN" default:"*"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn warning error"`

	WeatherConfig
	DBConfig
	LLMConfig

	MaxCities        int           `envconfig:"MAX_CITIES" default:"8" validate:"gte=1,lte=30"`
	FetchConcurrency int           `envconfig:"FETCH_CONCURRENCY" default:"4" validate:"gte=1,lte=32"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s" validate:"gt=0"`
}

// WeatherConfig configures the weather provider.
type WeatherConfig struct {
	APIKey string `envconfig:"OPENWEATHER_API_KEY" validate:"required"`
	URL    string `envconfig:"OPENWEATHER_URL" default:"https://api.openweathermap.org/data/2.5" validate:"required,url"`
}

// DBConfig configures plan persistence. An empty connection string disables it.
type DBConfig struct {
	ConnString string `envconfig:"DB_CONN_STRING" validate:"omitempty,uri"`
	Name       string `envconfig:"DB_NAME" default:"travel_planner" validate:"required_with=ConnString"`
}

// LLMConfig configures the agent chain. An empty URL disables the chain.
type LLMConfig struct {
	URL              string `envconfig:"LLM_URL" validate:"omitempty,url"`
	APIKey           string `envconfig:"LLM_API_KEY"`
	ResearcherModel  string `envconfig:"RESEARCHER_MODEL" default:"claude-3-haiku"`
	AdvisorModel     string `envconfig:"ADVISOR_MODEL" default:"claude-3-sonnet"`
	CoordinatorModel string `envconfig:"COORDINATOR_MODEL" default:"claude-3-haiku"`
}

// PersistenceEnabled reports whether plans should be stored.
func (c *Config) PersistenceEnabled() bool {
	return c.DBConfig.ConnString != ""
}

// AgentsEnabled reports whether the agent chain should run.
func (c *Config) AgentsEnabled() bool {
	return c.LLMConfig.URL != ""
}

// Load reads the configuration, applying .env files first if present.
func Load(envFiles ...string) (*Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
