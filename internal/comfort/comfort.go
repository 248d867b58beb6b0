// Package comfort scores how pleasant weather conditions are for a visitor.
package comfort

import (
	"fmt"
	"math"
)

// Level is a qualitative comfort band.
type Level string

// Comfort levels.
const (
	Excellent Level = "Excellent"
	Good      Level = "Good"
	Moderate  Level = "Moderate"
	Poor      Level = "Poor"
)

// Band thresholds on the overall score.
const (
	excellentFrom = 80
	goodFrom      = 60
	moderateFrom  = 40
)

// Sample is a single weather measurement.
type Sample struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // percent
	WindSpeed   float64 `json:"windSpeed"`   // m/s
}

// Result is the comfort analysis of a Sample.
type Result struct {
	TemperatureScore float64 `json:"temperatureScore" bson:"temperatureScore"`
	HumidityScore    float64 `json:"humidityScore" bson:"humidityScore"`
	WindScore        float64 `json:"windScore" bson:"windScore"`
	OverallScore     float64 `json:"overallScore" bson:"overallScore"`
	Level            Level   `json:"comfortLevel" bson:"comfortLevel"`
	Analysis         string  `json:"analysis" bson:"analysis"`
}

// Axis scores one measurement as 100 minus a capped penalty
// proportional to the distance from the ideal value.
type Axis struct {
	Ideal      float64
	Penalty    float64
	MaxPenalty float64
}

// Score returns the axis sub-score for v.
func (a Axis) Score(v float64) float64 {
	return 100 - math.Min(math.Abs(v-a.Ideal)*a.Penalty, a.MaxPenalty)
}

// Model combines three axes into an unweighted mean.
type Model struct {
	Temperature Axis
	Humidity    Axis
	Wind        Axis
}

// DefaultModel: ideal 22.5 °C, 50 % humidity and 3.5 m/s wind.
// Every penalty is capped at 50, so no overall score falls below 50.
var DefaultModel = Model{
	Temperature: Axis{Ideal: 22.5, Penalty: 5, MaxPenalty: 50},
	Humidity:    Axis{Ideal: 50, Penalty: 1.5, MaxPenalty: 50},
	Wind:        Axis{Ideal: 3.5, Penalty: 10, MaxPenalty: 50},
}

// Score analyses s with the model.
func (m Model) Score(s Sample) Result {
	ts := m.Temperature.Score(s.Temperature)
	hs := m.Humidity.Score(s.Humidity)
	ws := m.Wind.Score(s.WindSpeed)

	overall := (ts + hs + ws) / 3
	level := LevelFor(overall)

	return Result{
		TemperatureScore: ts,
		HumidityScore:    hs,
		WindScore:        ws,
		OverallScore:     overall,
		Level:            level,
		Analysis:         fmt.Sprintf("Weather comfort is %s with an overall score of %.1f/100", level, overall),
	}
}

// Score analyses a temperature (°C), humidity (%) and wind speed (m/s) triple
// with DefaultModel.
func Score(temperature, humidity, windSpeed float64) Result {
	return DefaultModel.Score(Sample{
		Temperature: temperature,
		Humidity:    humidity,
		WindSpeed:   windSpeed,
	})
}

// LevelFor bands an overall score.
func LevelFor(overall float64) Level {
	switch {
	case overall >= excellentFrom:
		return Excellent
	case overall >= goodFrom:
		return Good
	case overall >= moderateFrom:
		return Moderate
	default:
		return Poor
	}
}
