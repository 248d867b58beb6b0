// Package app builds the planner service from configuration.
package app

import (
	"net/http"

	"github.com/katiamach/weather-travel-planner/internal/agent"
	"github.com/katiamach/weather-travel-planner/internal/config"
	"github.com/katiamach/weather-travel-planner/internal/httpclient"
	"github.com/katiamach/weather-travel-planner/internal/logger"
	"github.com/katiamach/weather-travel-planner/internal/service"
	"github.com/katiamach/weather-travel-planner/internal/weather"
)

const userAgent = "weather-travel-planner/1.0"

// NewWeatherProvider creates the OpenWeather provider.
func NewWeatherProvider(cfg *config.Config) *weather.OpenWeather {
	client := httpclient.New(&http.Client{Timeout: cfg.HTTPTimeout}, "openweather", userAgent)
	return weather.NewOpenWeather(client, cfg.WeatherConfig.URL, cfg.WeatherConfig.APIKey)
}

// NewChain creates the agent chain, or nil when no model endpoint is configured.
func NewChain(cfg *config.Config) *agent.Chain {
	if !cfg.AgentsEnabled() {
		return nil
	}

	// model calls are slower than weather calls
	client := httpclient.New(&http.Client{Timeout: 4 * cfg.HTTPTimeout}, "llm", userAgent)
	chat := agent.NewChatClient(client, cfg.LLMConfig.URL, cfg.LLMConfig.APIKey)

	return agent.NewChain(chat,
		cfg.LLMConfig.ResearcherModel,
		cfg.LLMConfig.AdvisorModel,
		cfg.LLMConfig.CoordinatorModel,
	)
}

// NewPlanner creates the planner service with the configured collaborators.
func NewPlanner(cfg *config.Config, opts ...service.Option) *service.PlannerService {
	options := []service.Option{
		service.WithMaxCities(cfg.MaxCities),
		service.WithConcurrency(cfg.FetchConcurrency),
	}

	if chain := NewChain(cfg); chain != nil {
		logger.Info("Agent chain enabled")
		options = append(options, service.WithChain(chain))
	} else {
		logger.Info("No model endpoint configured, using comfort summary")
	}

	return service.New(NewWeatherProvider(cfg), append(options, opts...)...)
}
