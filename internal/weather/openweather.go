package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/katiamach/weather-travel-planner/internal/httpclient"
	"github.com/katiamach/weather-travel-planner/internal/model"
)

const maxResponseBytes = 4 << 20

/*
	OpenWeather API response codes
	200  success
	400  bad request
	401  invalid API key
	404  city not found
	429  rate limit exceeded
	5xx  server error
*/

type currentData struct {
	DateTime    int64 `json:"dt"`
	Coordinates struct {
		Latitude  float64 `json:"lat"`
		Longitude float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

type forecastData struct {
	List []struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		DateText string `json:"dt_txt"`
	} `json:"list"`
}

// OpenWeather is a Provider backed by the OpenWeather 2.5 API.
type OpenWeather struct {
	client  *httpclient.BaseClient
	baseURL string
	apiKey  string
}

// NewOpenWeather creates an OpenWeather provider.
func NewOpenWeather(client *httpclient.BaseClient, baseURL, apiKey string) *OpenWeather {
	return &OpenWeather{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Current gets the current weather in a city.
func (ow *OpenWeather) Current(ctx context.Context, city, region string) (*model.Observation, error) {
	var data currentData
	if err := ow.fetch(ctx, "weather", city, region, &data); err != nil {
		return nil, err
	}

	if len(data.Weather) == 0 {
		return nil, ErrNoData
	}

	observedAt := time.Now().UTC()
	if data.DateTime > 0 {
		observedAt = time.Unix(data.DateTime, 0).UTC()
	}

	return &model.Observation{
		City:        city,
		Region:      region,
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Pressure:    data.Main.Pressure,
		Conditions:  data.Weather[0].Description,
		Coordinates: model.Coordinates{
			Latitude:  data.Coordinates.Latitude,
			Longitude: data.Coordinates.Longitude,
		},
		ObservedAt: observedAt,
	}, nil
}

// Forecast gets the 5-day forecast for a city, averaged per day.
func (ow *OpenWeather) Forecast(ctx context.Context, city, region string) (*model.Forecast, error) {
	var data forecastData
	if err := ow.fetch(ctx, "forecast", city, region, &data); err != nil {
		return nil, err
	}

	if len(data.List) == 0 {
		return nil, ErrNoData
	}

	return &model.Forecast{
		City:   city,
		Region: region,
		Days:   summarizeDays(&data),
	}, nil
}

// summarizeDays averages 3-hourly items per date, keeping the dates in the
// order the API returned them.
func summarizeDays(data *forecastData) []model.DailyForecast {
	type dayData struct {
		temps      []float64
		humidity   []float64
		wind       []float64
		conditions []string
	}

	var dates []string
	days := make(map[string]*dayData)

	for _, item := range data.List {
		date := strings.Split(item.DateText, " ")[0]

		day, ok := days[date]
		if !ok {
			day = &dayData{}
			days[date] = day
			dates = append(dates, date)
		}

		day.temps = append(day.temps, item.Main.Temp)
		day.humidity = append(day.humidity, item.Main.Humidity)
		day.wind = append(day.wind, item.Wind.Speed)
		if len(item.Weather) > 0 {
			day.conditions = append(day.conditions, item.Weather[0].Description)
		}
	}

	summary := make([]model.DailyForecast, 0, len(dates))
	for _, date := range dates {
		day := days[date]
		summary = append(summary, model.DailyForecast{
			Date:           date,
			AvgTemperature: average(day.temps),
			Condition:      mostCommon(day.conditions),
			AvgHumidity:    average(day.humidity),
			AvgWind:        average(day.wind),
		})
	}

	return summary
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// mostCommon returns the most frequent value; ties go to the first seen.
func mostCommon(values []string) string {
	counts := make(map[string]int, len(values))
	var best string
	var bestCount int

	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}

	return best
}

func (ow *OpenWeather) fetch(ctx context.Context, endpoint, city, region string, target interface{}) error {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s,%s,US", city, region))
	params.Set("units", "metric")
	params.Set("appid", ow.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ow.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := ow.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to get %s for %s: %w", endpoint, city, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s, %s", ErrCityNotFound, city, region)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("weather api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
