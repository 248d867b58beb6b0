package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/weather-travel-planner/internal/config"
	"github.com/katiamach/weather-travel-planner/internal/model"
)

func testConfig(weatherURL string) *config.Config {
	return &config.Config{
		WeatherConfig:    config.WeatherConfig{APIKey: "key", URL: weatherURL},
		LLMConfig:        config.LLMConfig{ResearcherModel: "r", AdvisorModel: "a", CoordinatorModel: "c"},
		MaxCities:        2,
		FetchConcurrency: 2,
		HTTPTimeout:      time.Second,
	}
}

func TestNewChain(t *testing.T) {
	cfg := testConfig("http://localhost")
	assert.Nil(t, NewChain(cfg))

	cfg.LLMConfig.URL = "http://localhost:4000/v1"
	chain := NewChain(cfg)
	assert.NotNil(t, chain)
	assert.Equal(t, "r", chain.Researcher.Model)
	assert.Equal(t, "a", chain.Advisor.Model)
	assert.Equal(t, "c", chain.Coordinator.Model)
}

func TestNewPlanner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"weather":[{"description":"clear sky"}],"main":{"temp":22.5,"humidity":50},"wind":{"speed":3.5}}`))
	}))
	defer srv.Close()

	ps := NewPlanner(testConfig(srv.URL))

	plan, err := ps.Plan(context.Background(), &model.PlanRequest{Region: "Nevada", Year: 2025})
	assert.Nil(t, err)
	// limited to the first two cities, ties go to the first
	assert.Len(t, plan.Cities, 2)
	assert.Equal(t, "Las Vegas", plan.RecommendedCity)
	assert.Equal(t, 100.0, plan.Cities[0].Comfort.OverallScore)
}

