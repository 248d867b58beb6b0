// Package weather fetches current conditions and forecasts for a city.
package weather

import (
	"context"
	"errors"

	"github.com/katiamach/weather-travel-planner/internal/model"
)

//go:generate mockgen -source=provider.go -destination=mock/mock.go Provider

// Provider errors.
var (
	ErrCityNotFound = errors.New("city not found")
	ErrUnauthorized = errors.New("weather provider rejected the api key")
	ErrNoData       = errors.New("weather provider returned no data")
)

// Provider is a source of weather data in metric units (°C, %, m/s).
type Provider interface {
	Current(ctx context.Context, city, region string) (*model.Observation, error)
	Forecast(ctx context.Context, city, region string) (*model.Forecast, error)
}
