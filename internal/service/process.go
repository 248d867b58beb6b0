package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umahmood/haversine"
	"golang.org/x/sync/errgroup"

	"github.com/katiamach/weather-travel-planner/internal/agent"
	"github.com/katiamach/weather-travel-planner/internal/comfort"
	"github.com/katiamach/weather-travel-planner/internal/extract"
	"github.com/katiamach/weather-travel-planner/internal/logger"
	"github.com/katiamach/weather-travel-planner/internal/model"
	"github.com/katiamach/weather-travel-planner/internal/region"
	"github.com/katiamach/weather-travel-planner/internal/weather"
)

func newPlanID() string {
	return uuid.NewString()
}

// Plan implements finding the best city of a region for the holiday weekend.
func (ps *PlannerService) Plan(ctx context.Context, req *model.PlanRequest) (*model.Plan, error) {
	regionName := region.Normalize(req.Region)

	candidates, err := ps.Cities(regionName)
	if err != nil {
		return nil, err
	}
	if len(req.Cities) > 0 {
		candidates = req.Cities
	}

	// only the first cities are analysed, but all of them can be recommended
	selected := candidates
	if len(selected) > ps.maxCities {
		selected = selected[:ps.maxCities]
	}

	holiday := ps.HolidayWeekend(req.Year)

	reports := ps.fetchReports(ctx, regionName, selected)
	if !hasWeather(reports) {
		return nil, ErrNoWeatherData
	}

	plan := &model.Plan{
		Region:  regionName,
		Year:    holiday.Year,
		Holiday: holiday,
		Cities:  reports,
	}

	if ps.chain == nil {
		best := summarize(plan)
		plan.RecommendedCity = best.City
		plan.MatchedTier = ComfortScoreTier
	} else {
		if err := ps.recommend(ctx, plan, candidates); err != nil {
			return nil, err
		}

		m, _ := ps.extractor.Resolve(plan.FinalRecommendation, candidates)
		plan.RecommendedCity = m.City
		plan.MatchedTier = m.Tier
	}

	if plan.RecommendedCity != extract.NoRecommendation {
		obs, err := ps.weather.Current(ctx, plan.RecommendedCity, regionName)
		if err != nil {
			logger.WithFields(logrus.Fields{"city": plan.RecommendedCity, "region": regionName}).
				Warn(fmt.Sprintf("failed to get recommended city weather: %v", err))
		} else {
			plan.CurrentWeather = obs
		}
	}

	plan.ID = ps.newID()
	plan.CreatedAt = ps.now().UTC()

	if ps.repo != nil {
		if err := ps.repo.InsertPlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to insert plan: %w", err)
		}
	}

	return plan, nil
}

// recommend fills the three recommendation texts of the plan from the agent chain.
func (ps *PlannerService) recommend(ctx context.Context, plan *model.Plan, candidates []string) error {
	transcript, err := ps.chain.Run(ctx, agent.Brief{
		Region:  plan.Region,
		Cities:  candidates,
		Holiday: plan.Holiday,
		Reports: plan.Cities,
	})
	if err != nil {
		return fmt.Errorf("failed to run agent chain: %w", err)
	}
	logger.Debug(fmt.Sprintf("agent chain finished for %s", plan.Region))

	plan.WeatherAnalysis = agent.Text(transcript.WeatherAnalysis)
	plan.TravelRecommendation = agent.Text(transcript.TravelRecommendation)
	plan.FinalRecommendation = agent.Text(transcript.FinalRecommendation)

	return nil
}

// summarize writes the recommendation texts from comfort scores alone and
// returns the report they recommend.
func summarize(plan *model.Plan) *model.CityReport {
	best := bestReport(plan.Cities)
	window := fmt.Sprintf("%s (%s to %s)", plan.Holiday.Name, plan.Holiday.Start, plan.Holiday.End)

	plan.WeatherAnalysis = fmt.Sprintf("Current conditions and comfort scores in %s:\n%s",
		plan.Region, agent.ComfortTable(plan.Cities))

	plan.TravelRecommendation = fmt.Sprintf("%s has the highest comfort score in %s: %.1f/100 (%s).",
		best.City, plan.Region, best.Comfort.OverallScore, best.Comfort.Level)

	plan.FinalRecommendation = fmt.Sprintf("We recommend %s for %s. Expect %.1f°C, %.0f%% humidity, %.1f m/s wind and %s. %s.",
		best.City,
		window,
		best.Observation.Temperature,
		best.Observation.Humidity,
		best.Observation.WindSpeed,
		best.Observation.Conditions,
		best.Comfort.Analysis,
	)

	return best
}

// bestReport returns the first report with the highest overall score.
func bestReport(reports []*model.CityReport) *model.CityReport {
	var best *model.CityReport
	for _, r := range reports {
		if r.Comfort == nil {
			continue
		}
		if best == nil || r.Comfort.OverallScore > best.Comfort.OverallScore {
			best = r
		}
	}
	return best
}

func hasWeather(reports []*model.CityReport) bool {
	for _, r := range reports {
		if r.Comfort != nil {
			return true
		}
	}
	return false
}

// fetchReports gets and scores the current weather of every city concurrently.
// A failed city keeps its error and is left unscored.
func (ps *PlannerService) fetchReports(ctx context.Context, regionName string, cities []string) []*model.CityReport {
	reports := make([]*model.CityReport, len(cities))

	var g errgroup.Group
	g.SetLimit(ps.concurrency)

	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			report := &model.CityReport{City: city}
			reports[i] = report

			obs, err := ps.weather.Current(ctx, city, regionName)
			if err != nil {
				logger.WithFields(logrus.Fields{"city": city, "region": regionName}).
					Warn(fmt.Sprintf("failed to get current weather: %v", err))
				report.Error = userError(err)
				return nil
			}

			score := comfort.DefaultModel.Score(obs.Sample())
			report.Observation = obs
			report.Comfort = &score

			return nil
		})
	}

	_ = g.Wait()

	return reports
}

// userError hides provider details behind a short reason.
func userError(err error) string {
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return weather.ErrCityNotFound.Error()
	case errors.Is(err, weather.ErrNoData):
		return weather.ErrNoData.Error()
	default:
		return "weather unavailable"
	}
}

// Compare implements scoring a list of cities side by side.
func (ps *PlannerService) Compare(ctx context.Context, req *model.CompareRequest) ([]*model.CityComparison, error) {
	regionName := region.Normalize(req.Region)
	if _, err := ps.Cities(regionName); err != nil {
		return nil, err
	}

	reports := ps.fetchReports(ctx, regionName, req.Cities)

	comparisons := make([]*model.CityComparison, 0, len(reports))
	for _, r := range reports {
		if r.Comfort == nil {
			continue
		}

		c := &model.CityComparison{
			City:        r.City,
			Temperature: r.Observation.Temperature,
			Humidity:    r.Observation.Humidity,
			WindSpeed:   r.Observation.WindSpeed,
			Conditions:  r.Observation.Conditions,
			Comfort:     *r.Comfort,
		}

		if req.Origin != nil {
			_, km := haversine.Distance(
				haversine.Coord{Lat: req.Origin.Latitude, Lon: req.Origin.Longitude},
				haversine.Coord{Lat: r.Observation.Coordinates.Latitude, Lon: r.Observation.Coordinates.Longitude},
			)
			c.DistanceKm = &km
		}

		comparisons = append(comparisons, c)
	}

	if len(comparisons) == 0 {
		return nil, ErrNoWeatherData
	}

	return comparisons, nil
}
