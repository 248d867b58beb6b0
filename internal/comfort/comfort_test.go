package comfort

import (
	"math"
	"testing"

	"github.com/tj/assert"
)

const delta = 1e-9

func TestScoreIdealPoint(t *testing.T) {
	res := Score(22.5, 50, 3.5)

	assert.Equal(t, 100.0, res.TemperatureScore)
	assert.Equal(t, 100.0, res.HumidityScore)
	assert.Equal(t, 100.0, res.WindScore)
	assert.Equal(t, 100.0, res.OverallScore)
	assert.Equal(t, Excellent, res.Level)
	assert.Equal(t, "Weather comfort is Excellent with an overall score of 100.0/100", res.Analysis)
}

func TestScore(t *testing.T) {
	cases := []struct {
		name        string
		temperature float64
		humidity    float64
		wind        float64
		expTemp     float64
		expHum      float64
		expWind     float64
		expOverall  float64
		expLevel    Level
	}{
		{
			name:        "pleasant",
			temperature: 25, humidity: 55, wind: 4,
			expTemp: 87.5, expHum: 92.5, expWind: 95,
			expOverall: 275.0 / 3, expLevel: Excellent,
		},
		{
			name:        "warm and humid",
			temperature: 28.5, humidity: 70, wind: 6,
			expTemp: 70, expHum: 70, expWind: 75,
			expOverall: 215.0 / 3, expLevel: Good,
		},
		{
			name:        "hot, sticky and windy",
			temperature: 30, humidity: 80, wind: 10,
			expTemp: 62.5, expHum: 55, expWind: 50,
			expOverall: 167.5 / 3, expLevel: Moderate,
		},
		{
			name:        "every penalty capped",
			temperature: -20, humidity: 100, wind: 30,
			expTemp: 50, expHum: 50, expWind: 50,
			expOverall: 50, expLevel: Moderate,
		},
		{
			name:        "dead calm",
			temperature: 22.5, humidity: 50, wind: 0,
			expTemp: 100, expHum: 100, expWind: 65,
			expOverall: 265.0 / 3, expLevel: Excellent,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Score(tc.temperature, tc.humidity, tc.wind)

			assert.InDelta(t, tc.expTemp, res.TemperatureScore, delta)
			assert.InDelta(t, tc.expHum, res.HumidityScore, delta)
			assert.InDelta(t, tc.expWind, res.WindScore, delta)
			assert.InDelta(t, tc.expOverall, res.OverallScore, delta)
			assert.Equal(t, tc.expLevel, res.Level)
		})
	}
}

func TestScoreNeverBelowFifty(t *testing.T) {
	values := []float64{
		math.Inf(-1), -1e9, -273.15, -40, -1, 0, 3.5, 22.5, 50, 51.7, 100, 150, 1e9, math.Inf(1),
	}

	for _, temp := range values {
		for _, hum := range values {
			for _, wind := range values {
				res := Score(temp, hum, wind)
				assert.True(t, res.TemperatureScore >= 50, "TemperatureScore %v for %v/%v/%v", res.TemperatureScore, temp, hum, wind)
				assert.True(t, res.HumidityScore >= 50, "HumidityScore %v for %v/%v/%v", res.HumidityScore, temp, hum, wind)
				assert.True(t, res.WindScore >= 50, "WindScore %v for %v/%v/%v", res.WindScore, temp, hum, wind)
				assert.True(t, res.OverallScore >= 50, "OverallScore %v for %v/%v/%v", res.OverallScore, temp, hum, wind)
				assert.NotEqual(t, Poor, res.Level)
			}
		}
	}
}

func TestScoreSymmetricAroundIdeal(t *testing.T) {
	for _, d := range []float64{0, 0.1, 0.75, 1.3, 4, 9.99, 12, 100} {
		assert.InDelta(t, Score(22.5+d, 50, 3.5).TemperatureScore, Score(22.5-d, 50, 3.5).TemperatureScore, delta)
		assert.InDelta(t, Score(22.5, 50+d, 3.5).HumidityScore, Score(22.5, 50-d, 3.5).HumidityScore, delta)
		assert.InDelta(t, Score(22.5, 50, 3.5+d).WindScore, Score(22.5, 50, 3.5-d).WindScore, delta)
	}
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		overall  float64
		expLevel Level
	}{
		{overall: 100, expLevel: Excellent},
		{overall: 80, expLevel: Excellent},
		{overall: 79.999, expLevel: Good},
		{overall: 60, expLevel: Good},
		{overall: 59.999, expLevel: Moderate},
		{overall: 40, expLevel: Moderate},
		{overall: 39.999, expLevel: Poor},
		{overall: -10, expLevel: Poor},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expLevel, LevelFor(tc.overall), "overall %v", tc.overall)
	}
}

func TestUncappedModelReachesPoor(t *testing.T) {
	uncapped := DefaultModel
	uncapped.Temperature.MaxPenalty = math.Inf(1)
	uncapped.Humidity.MaxPenalty = math.Inf(1)
	uncapped.Wind.MaxPenalty = math.Inf(1)

	res := uncapped.Score(Sample{Temperature: -5, Humidity: 95, WindSpeed: 12})

	// 100-137.5, 100-67.5, 100-85
	assert.InDelta(t, -37.5, res.TemperatureScore, delta)
	assert.InDelta(t, 32.5, res.HumidityScore, delta)
	assert.InDelta(t, 15, res.WindScore, delta)
	assert.InDelta(t, 10.0/3, res.OverallScore, delta)
	assert.Equal(t, Poor, res.Level)

	// the capped formula on the same sample stays at the floor
	assert.Equal(t, Moderate, DefaultModel.Score(Sample{Temperature: -5, Humidity: 95, WindSpeed: 12}).Level)
}
