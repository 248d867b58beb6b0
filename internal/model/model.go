package model

import (
	"time"

	"github.com/katiamach/weather-travel-planner/internal/comfort"
)

// PlanRequest contains plan request parameters.
type PlanRequest struct {
	Region string   `json:"region" validate:"required"`
	Year   int      `json:"year" validate:"omitempty,gte=2000,lte=2100"`
	Cities []string `json:"cities" validate:"omitempty,max=30,dive,required"`
}

// CompareRequest contains city comparison request parameters.
type CompareRequest struct {
	Region string       `json:"region" validate:"required"`
	Cities []string     `json:"cities" validate:"required,min=1,max=20,dive,required"`
	Origin *Coordinates `json:"origin"`
}

// ExtractRequest contains recommendation text to pick a city from.
type ExtractRequest struct {
	Text       string   `json:"text"`
	Candidates []string `json:"candidates"`
}

// ExtractResponse is the city picked from a recommendation text.
type ExtractResponse struct {
	City string `json:"city"`
	Tier string `json:"tier,omitempty"`
}

// Coordinates is a point on the globe.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"gte=-180,lte=180"`
}

// HolidayWeekend is the date range a plan is made for.
type HolidayWeekend struct {
	Name  string `json:"name" bson:"name"`
	Year  int    `json:"year" bson:"year"`
	Start string `json:"startDate" bson:"startDate"`
	End   string `json:"endDate" bson:"endDate"`
}

// Observation is the current weather in a city.
type Observation struct {
	City        string      `json:"city" bson:"city"`
	Region      string      `json:"region" bson:"region"`
	Temperature float64     `json:"temperature" bson:"temperature"` // °C
	FeelsLike   float64     `json:"feelsLike" bson:"feelsLike"`     // °C
	Humidity    float64     `json:"humidity" bson:"humidity"`       // %
	WindSpeed   float64     `json:"windSpeed" bson:"windSpeed"`     // m/s
	Pressure    float64     `json:"pressure" bson:"pressure"`       // hPa
	Conditions  string      `json:"conditions" bson:"conditions"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	ObservedAt  time.Time   `json:"observedAt" bson:"observedAt"`
}

// Sample converts the observation into a comfort sample.
func (o *Observation) Sample() comfort.Sample {
	return comfort.Sample{
		Temperature: o.Temperature,
		Humidity:    o.Humidity,
		WindSpeed:   o.WindSpeed,
	}
}

// DailyForecast is a per-day summary of a forecast.
type DailyForecast struct {
	Date           string  `json:"date"`
	AvgTemperature float64 `json:"avgTemperature"`
	Condition      string  `json:"condition"`
	AvgHumidity    float64 `json:"avgHumidity"`
	AvgWind        float64 `json:"avgWind"`
}

// Forecast is a multi-day forecast for a city.
type Forecast struct {
	City   string          `json:"city"`
	Region string          `json:"region"`
	Days   []DailyForecast `json:"days"`
}

// CityReport is the weather and comfort of one analysed city.
type CityReport struct {
	City        string          `json:"city" bson:"city"`
	Observation *Observation    `json:"observation,omitempty" bson:"observation,omitempty"`
	Comfort     *comfort.Result `json:"comfort,omitempty" bson:"comfort,omitempty"`
	Error       string          `json:"error,omitempty" bson:"error,omitempty"`
}

// Plan is a finished travel recommendation.
type Plan struct {
	ID                   string         `json:"id" bson:"id"`
	Region               string         `json:"region" bson:"region"`
	Year                 int            `json:"year" bson:"year"`
	Holiday              HolidayWeekend `json:"holiday" bson:"holiday"`
	Cities               []*CityReport  `json:"cities" bson:"cities"`
	WeatherAnalysis      string         `json:"weatherAnalysis" bson:"weatherAnalysis"`
	TravelRecommendation string         `json:"travelRecommendation" bson:"travelRecommendation"`
	FinalRecommendation  string         `json:"finalRecommendation" bson:"finalRecommendation"`
	RecommendedCity      string         `json:"recommendedCity" bson:"recommendedCity"`
	MatchedTier          string         `json:"matchedTier,omitempty" bson:"matchedTier,omitempty"`
	CurrentWeather       *Observation   `json:"currentWeather,omitempty" bson:"currentWeather,omitempty"`
	CreatedAt            time.Time      `json:"createdAt" bson:"createdAt"`
}

// CityComparison is one row of a city comparison.
type CityComparison struct {
	City        string         `json:"city"`
	Temperature float64        `json:"temperature"`
	Humidity    float64        `json:"humidity"`
	WindSpeed   float64        `json:"windSpeed"`
	Conditions  string         `json:"conditions"`
	Comfort     comfort.Result `json:"comfort"`
	DistanceKm  *float64       `json:"distanceKm,omitempty"`
}
