package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katiamach/weather-travel-planner/internal/agent"
	"github.com/katiamach/weather-travel-planner/internal/calendar"
	"github.com/katiamach/weather-travel-planner/internal/extract"
	"github.com/katiamach/weather-travel-planner/internal/model"
	"github.com/katiamach/weather-travel-planner/internal/region"
	"github.com/katiamach/weather-travel-planner/internal/repository"
	"github.com/katiamach/weather-travel-planner/internal/weather"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Repository

var (
	ErrUnknownRegion       = errors.New("unknown region, please, check region name")
	ErrNoWeatherData       = errors.New("unfortunately, weather data is not available for any of the cities")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrPersistenceDisabled = errors.New("plan storage is not configured")
)

const (
	defaultMaxCities   = 8
	defaultConcurrency = 4
	defaultListLimit   = 20
)

// ComfortScoreTier marks a plan whose city was chosen by comfort score
// without an agent chain.
const ComfortScoreTier = "comfort-score"

// Repository provides necessary repo methods.
type Repository interface {
	InsertPlan(ctx context.Context, plan *model.Plan) error
	GetPlan(ctx context.Context, id string) (*model.Plan, error)
	ListPlans(ctx context.Context, region string, limit int) ([]*model.Plan, error)
}

// PlannerService finds the city with the best holiday weekend weather.
type PlannerService struct {
	weather     weather.Provider
	chain       *agent.Chain
	repo        Repository
	extractor   extract.Extractor
	maxCities   int
	concurrency int
	now         func() time.Time
	newID       func() string
}

// Option configures a PlannerService.
type Option func(*PlannerService)

// WithRepository enables plan persistence.
func WithRepository(repo Repository) Option {
	return func(ps *PlannerService) {
		ps.repo = repo
	}
}

// WithChain makes plans use the agent chain instead of the built-in summary.
func WithChain(chain *agent.Chain) Option {
	return func(ps *PlannerService) {
		ps.chain = chain
	}
}

// WithMaxCities limits how many candidates get analysed.
func WithMaxCities(n int) Option {
	return func(ps *PlannerService) {
		if n > 0 {
			ps.maxCities = n
		}
	}
}

// WithConcurrency limits parallel weather requests.
func WithConcurrency(n int) Option {
	return func(ps *PlannerService) {
		if n > 0 {
			ps.concurrency = n
		}
	}
}

// WithExtractor overrides the default recommendation extractor.
func WithExtractor(e extract.Extractor) Option {
	return func(ps *PlannerService) {
		ps.extractor = e
	}
}

// New creates new PlannerService.
func New(provider weather.Provider, opts ...Option) *PlannerService {
	ps := &PlannerService{
		weather:     provider,
		maxCities:   defaultMaxCities,
		concurrency: defaultConcurrency,
		now:         time.Now,
		newID:       newPlanID,
	}

	for _, opt := range opts {
		opt(ps)
	}

	return ps
}

// Regions returns all supported regions.
func (ps *PlannerService) Regions() []string {
	return region.Regions()
}

// Cities returns the candidate cities of a region.
func (ps *PlannerService) Cities(name string) ([]string, error) {
	cities, err := region.Cities(name)
	if errors.Is(err, region.ErrUnknownRegion) {
		return nil, ErrUnknownRegion
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}

	return cities, nil
}

// HolidayWeekend returns the holiday weekend of the year, the current one if zero.
func (ps *PlannerService) HolidayWeekend(year int) model.HolidayWeekend {
	if year == 0 {
		year = ps.now().Year()
	}

	return calendar.MemorialDayWeekend(year)
}

// GetPlan implements retrieving a stored plan.
func (ps *PlannerService) GetPlan(ctx context.Context, id string) (*model.Plan, error) {
	if ps.repo == nil {
		return nil, ErrPersistenceDisabled
	}

	plan, err := ps.repo.GetPlan(ctx, id)
	if errors.Is(err, repository.ErrNoSuchPlan) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return plan, nil
}

// ListPlans implements retrieving the newest stored plans, optionally for one region.
func (ps *PlannerService) ListPlans(ctx context.Context, regionName string, limit int) ([]*model.Plan, error) {
	if ps.repo == nil {
		return nil, ErrPersistenceDisabled
	}

	if regionName != "" {
		regionName = region.Normalize(regionName)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	plans, err := ps.repo.ListPlans(ctx, regionName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return plans, nil
}
