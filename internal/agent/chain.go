package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/katiamach/weather-travel-planner/internal/model"
)

// Stage names.
const (
	StageResearcher  = "researcher"
	StageAdvisor     = "advisor"
	StageCoordinator = "coordinator"
)

const researcherSystem = `You are a Weather Research Assistant specialized in US climate patterns.
Your job is to analyze weather data for different cities in any US state.
Provide detailed information about current conditions and forecasts.
When analyzing weather, consider temperature, precipitation, humidity, and wind.
Use the comfort scores you are given to evaluate overall comfort levels.`

const advisorSystem = `You are a Travel Advisor specializing in US destinations.
Your job is to recommend the best cities to visit based on weather conditions.
Consider factors like temperature (20-25°C is ideal), clear skies, low precipitation chance,
and moderate humidity (40-60%).
Provide detailed recommendations with reasoning.
Use the comfort scores you are given to compare destinations.`

const coordinatorSystem = `You are a Travel Planning Coordinator.
Your job is to coordinate between the Weather Research Assistant and Travel Advisor
to find the best city in a US state to visit during the holiday weekend based on weather.
Summarize findings and make a final recommendation.
Include specific details about expected weather conditions and why they make for an ideal visit.`

// Stage is one language-model step of a Chain.
type Stage struct {
	Name      string
	Model     string
	System    string
	Generator Generator
}

// Brief is the input of a Chain run.
type Brief struct {
	Region  string
	Cities  []string
	Holiday model.HolidayWeekend
	Reports []*model.CityReport
}

// Transcript holds the raw output of every stage.
type Transcript struct {
	WeatherAnalysis      Result
	TravelRecommendation Result
	FinalRecommendation  Result
}

// Chain runs the researcher, advisor and coordinator stages in sequence.
type Chain struct {
	Researcher  Stage
	Advisor     Stage
	Coordinator Stage
}

// NewChain creates a Chain whose stages share one generator.
func NewChain(gen Generator, researcherModel, advisorModel, coordinatorModel string) *Chain {
	return &Chain{
		Researcher:  Stage{Name: StageResearcher, Model: researcherModel, System: researcherSystem, Generator: gen},
		Advisor:     Stage{Name: StageAdvisor, Model: advisorModel, System: advisorSystem, Generator: gen},
		Coordinator: Stage{Name: StageCoordinator, Model: coordinatorModel, System: coordinatorSystem, Generator: gen},
	}
}

// Run asks each stage in turn, feeding it the outputs of the earlier ones.
func (c *Chain) Run(ctx context.Context, b Brief) (*Transcript, error) {
	window := holidayWindow(b.Holiday)

	analysis, err := c.Researcher.run(ctx, fmt.Sprintf(`Please check the weather for these %s cities:
- %s

Current conditions and comfort scores:
%s

Analyze which cities are likely to have the best weather for %s.
Consider temperature, precipitation chance, and overall conditions.`,
		b.Region, strings.Join(b.Cities, ", "), ComfortTable(b.Reports), window))
	if err != nil {
		return nil, err
	}

	recommendation, err := c.Advisor.run(ctx, fmt.Sprintf(`Based on this weather analysis:

%s

Which %s city would you recommend for a visit during %s?
Please explain your reasoning and provide details about why this location offers the best weather experience.`,
		Text(analysis), b.Region, window))
	if err != nil {
		return nil, err
	}

	final, err := c.Coordinator.run(ctx, fmt.Sprintf(`Please review the weather analysis and travel recommendation:

Weather Analysis:
%s

Travel Recommendation:
%s

Provide a final summary and recommendation for the best city in %s to visit during
%s based on weather conditions. Include any additional considerations
travelers should keep in mind.`,
		Text(analysis), Text(recommendation), b.Region, window))
	if err != nil {
		return nil, err
	}

	return &Transcript{
		WeatherAnalysis:      analysis,
		TravelRecommendation: recommendation,
		FinalRecommendation:  final,
	}, nil
}

func (s Stage) run(ctx context.Context, user string) (Result, error) {
	res, err := s.Generator.Generate(ctx, Prompt{Model: s.Model, System: s.System, User: user})
	if err != nil {
		return nil, fmt.Errorf("%s stage failed: %w", s.Name, err)
	}
	return res, nil
}

// ComfortTable renders one line per analysed city.
func ComfortTable(reports []*model.CityReport) string {
	lines := make([]string, 0, len(reports))
	for _, r := range reports {
		if r.Observation == nil || r.Comfort == nil {
			lines = append(lines, fmt.Sprintf("- %s: no data (%s)", r.City, r.Error))
			continue
		}

		lines = append(lines, fmt.Sprintf("- %s: %.1f°C, %.0f%% humidity, %.1f m/s wind, %s; comfort %.1f/100 (%s)",
			r.City,
			r.Observation.Temperature,
			r.Observation.Humidity,
			r.Observation.WindSpeed,
			r.Observation.Conditions,
			r.Comfort.OverallScore,
			r.Comfort.Level,
		))
	}
	return strings.Join(lines, "\n")
}

func holidayWindow(h model.HolidayWeekend) string {
	if h.Start == "" {
		return h.Name
	}
	return fmt.Sprintf("%s (%s to %s)", h.Name, h.Start, h.End)
}
