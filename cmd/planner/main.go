package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katiamach/weather-travel-planner/internal/app"
	"github.com/katiamach/weather-travel-planner/internal/config"
	"github.com/katiamach/weather-travel-planner/internal/extract"
	"github.com/katiamach/weather-travel-planner/internal/logger"
	"github.com/katiamach/weather-travel-planner/internal/model"
	"github.com/katiamach/weather-travel-planner/internal/service"
	"github.com/katiamach/weather-travel-planner/internal/weather"
)

var title = cases.Title(language.English)

func printHeader(header string) {
	fmt.Printf("%s\n", header)
	fmt.Printf("%s\n", strings.Repeat("-", len(header)))
}

func displayPlan(p *model.Plan) {
	printHeader(fmt.Sprintf("%s %s: %s to %s", p.Region, p.Holiday.Name, p.Holiday.Start, p.Holiday.End))
	fmt.Println()

	printHeader("Comfort Scores")
	for _, c := range p.Cities {
		if c.Comfort == nil {
			fmt.Printf("%-20s no data (%s)\n", c.City, c.Error)
			continue
		}
		fmt.Printf("%-20s %5.1f/100 %-10s %-22s %4.1f°C %3.0f%% %4.1f m/s\n",
			c.City,
			c.Comfort.OverallScore,
			c.Comfort.Level,
			title.String(c.Observation.Conditions),
			c.Observation.Temperature,
			c.Observation.Humidity,
			c.Observation.WindSpeed)
	}
	fmt.Println()

	printHeader("Weather Analysis")
	fmt.Println(p.WeatherAnalysis)
	fmt.Println()

	printHeader("Travel Recommendation")
	fmt.Println(p.TravelRecommendation)
	fmt.Println()

	printHeader("Final Recommendation")
	fmt.Println(p.FinalRecommendation)
	fmt.Println()

	fmt.Printf("Recommended City: %s\n", p.RecommendedCity)
	if p.CurrentWeather != nil {
		fmt.Println()
		displayCurrentWeather(p.CurrentWeather)
	}
}

func displayCurrentWeather(o *model.Observation) {
	printHeader(fmt.Sprintf("Current Weather in %s:", o.City))
	fmt.Printf("Conditions:  %s\n", title.String(o.Conditions))
	fmt.Printf("Temperature: %.1f°C\n", o.Temperature)
	fmt.Printf("Feels Like:  %.1f°C\n", o.FeelsLike)
	fmt.Printf("Humidity:    %.0f%%\n", o.Humidity)
	fmt.Printf("Wind Speed:  %.1f m/s\n", o.WindSpeed)
	fmt.Printf("Pressure:    %.0f hPa\n", o.Pressure)
}

func displayForecast(f *model.Forecast) {
	fmt.Println()
	printHeader(fmt.Sprintf("5-Day Forecast for %s:", f.City))
	for _, day := range f.Days {
		fmt.Printf("%s: %-25s Avg: %4.1f°C. Humidity: %3.0f%%. Wind: %4.1f m/s.\n",
			day.Date,
			title.String(day.Condition),
			day.AvgTemperature,
			day.AvgHumidity,
			day.AvgWind)
	}
}

func displayComparisons(region string, comparisons []*model.CityComparison) {
	printHeader(fmt.Sprintf("City Comparison for %s:", region))
	for _, c := range comparisons {
		fmt.Printf("%-20s %5.1f/100 %-10s %-22s %4.1f°C %3.0f%% %4.1f m/s\n",
			c.City,
			c.Comfort.OverallScore,
			c.Comfort.Level,
			title.String(c.Conditions),
			c.Temperature,
			c.Humidity,
			c.WindSpeed)
	}
}

func splitCities(s string) []string {
	var cities []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

func main() {
	region := flag.String("region", "", "US state to analyze, e.g. California")
	year := flag.Int("year", 0, "holiday year, defaults to the current year")
	compare := flag.String("compare", "", "comma separated cities to compare instead of planning")
	forecast := flag.Bool("forecast", false, "show the 5-day forecast of the recommended city")
	flag.Parse()

	if *region == "" {
		fmt.Println("Usage: planner -region <state> [-year 2026] [-compare \"Napa,Monterey\"] [-forecast]")
		fmt.Println("Examples: planner -region California")
		fmt.Println("          planner -region \"new york\" -year 2026")
		fmt.Println("          planner -region California -compare \"Napa,Monterey,Palm Springs\"")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Please set OPENWEATHER_API_KEY in the environment or in a .env file")
		os.Exit(1)
	}

	// keep the console for results
	if err := logger.SetLevel("error"); err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	provider := app.NewWeatherProvider(cfg)
	planner := app.NewPlanner(cfg)

	if *compare != "" {
		comparisons, err := planner.Compare(ctx, &model.CompareRequest{Region: *region, Cities: splitCities(*compare)})
		if err != nil {
			fmt.Printf("Error comparing cities: %v\n", err)
			os.Exit(1)
		}

		displayComparisons(*region, comparisons)
		return
	}

	if cfg.AgentsEnabled() {
		fmt.Println("Using language models for multi-agent collaboration")
	}
	fmt.Printf("Finding the best weather in %s for the holiday weekend...\n\n", *region)

	plan, err := planner.Plan(ctx, &model.PlanRequest{Region: *region, Year: *year})
	if err != nil {
		fmt.Printf("Error planning trip: %v\n", err)
		if errors.Is(err, service.ErrUnknownRegion) {
			fmt.Printf("Known regions: %s\n", strings.Join(planner.Regions(), ", "))
		}
		os.Exit(1)
	}

	displayPlan(plan)

	if *forecast && plan.RecommendedCity != extract.NoRecommendation {
		showForecast(ctx, provider, plan.RecommendedCity, plan.Region)
	}
}

func showForecast(ctx context.Context, provider weather.Provider, city, region string) {
	f, err := provider.Forecast(ctx, city, region)
	if err != nil {
		fmt.Printf("Error getting forecast: %v\n", err)
		return
	}

	displayForecast(f)
}
