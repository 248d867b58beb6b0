package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/katiamach/weather-travel-planner/internal/comfort"
	"github.com/katiamach/weather-travel-planner/internal/extract"
	"github.com/katiamach/weather-travel-planner/internal/logger"
	"github.com/katiamach/weather-travel-planner/internal/model"
	"github.com/katiamach/weather-travel-planner/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go PlannerService

var errInternal = errors.New("internal server error")

const (
	maxListLimit = 100
	maxBodyBytes = 1 << 20
)

// PlannerService provides planner service methods.
type PlannerService interface {
	Plan(ctx context.Context, req *model.PlanRequest) (*model.Plan, error)
	Compare(ctx context.Context, req *model.CompareRequest) ([]*model.CityComparison, error)
	GetPlan(ctx context.Context, id string) (*model.Plan, error)
	ListPlans(ctx context.Context, region string, limit int) ([]*model.Plan, error)
	Regions() []string
	Cities(region string) ([]string, error)
	HolidayWeekend(year int) model.HolidayWeekend
}

// PlannerServer is a server for travel plan processing.
type PlannerServer struct {
	service   PlannerService
	validate  *validator.Validate
	extractor extract.Extractor
}

// NewPlannerServer creates new PlannerServer.
func NewPlannerServer(service PlannerService) *PlannerServer {
	return &PlannerServer{
		service:  service,
		validate: validator.New(),
	}
}

// RegionsHandler handles Regions request.
func (s *PlannerServer) RegionsHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.service.Regions())
}

// CitiesHandler handles Cities request.
func (s *PlannerServer) CitiesHandler(w http.ResponseWriter, r *http.Request) {
	cities, err := s.service.Cities(mux.Vars(r)["region"])
	if err != nil {
		s.respondServiceErr(w, "failed to get cities", err)
		return
	}

	respond(w, http.StatusOK, cities)
}

// HolidayHandler handles HolidayWeekend request.
func (s *PlannerServer) HolidayHandler(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r.URL.Query(), "year", 0)
	if err == nil && year != 0 && (year < 2000 || year > 2100) {
		err = errors.New("year parameter must be between 2000 and 2100")
	}
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	respond(w, http.StatusOK, s.service.HolidayWeekend(year))
}

// CreatePlanHandler handles Plan request.
func (s *PlannerServer) CreatePlanHandler(w http.ResponseWriter, r *http.Request) {
	req := new(model.PlanRequest)
	if err := s.decodeAndValidate(w, r, req); err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	plan, err := s.service.Plan(r.Context(), req)
	if err != nil {
		s.respondServiceErr(w, "failed to make plan", err)
		return
	}

	respond(w, http.StatusCreated, plan)
}

// ListPlansHandler handles ListPlans request.
func (s *PlannerServer) ListPlansHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit, err := intParam(params, "limit", 0)
	if err == nil && (limit < 0 || limit > maxListLimit) {
		err = fmt.Errorf("limit parameter must be between 0 and %d", maxListLimit)
	}
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	plans, err := s.service.ListPlans(r.Context(), params.Get("region"), limit)
	if err != nil {
		s.respondServiceErr(w, "failed to list plans", err)
		return
	}

	respond(w, http.StatusOK, plans)
}

// GetPlanHandler handles GetPlan request.
func (s *PlannerServer) GetPlanHandler(w http.ResponseWriter, r *http.Request) {
	plan, err := s.service.GetPlan(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceErr(w, "failed to get plan", err)
		return
	}

	respond(w, http.StatusOK, plan)
}

// CompareHandler handles Compare request.
func (s *PlannerServer) CompareHandler(w http.ResponseWriter, r *http.Request) {
	req := new(model.CompareRequest)
	if err := s.decodeAndValidate(w, r, req); err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	comparisons, err := s.service.Compare(r.Context(), req)
	if err != nil {
		s.respondServiceErr(w, "failed to compare cities", err)
		return
	}

	respond(w, http.StatusOK, comparisons)
}

// ComfortHandler scores the weather given in the query.
func (s *PlannerServer) ComfortHandler(w http.ResponseWriter, r *http.Request) {
	sample, err := validateComfortParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	respond(w, http.StatusOK, comfort.DefaultModel.Score(*sample))
}

// ExtractHandler picks the recommended city out of a text.
func (s *PlannerServer) ExtractHandler(w http.ResponseWriter, r *http.Request) {
	req := new(model.ExtractRequest)
	if err := s.decodeAndValidate(w, r, req); err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	m, _ := s.extractor.Resolve(req.Text, req.Candidates)

	respond(w, http.StatusOK, model.ExtractResponse{City: m.City, Tier: m.Tier})
}

func (s *PlannerServer) decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	return nil
}

// respondServiceErr maps service errors to status codes, hiding unexpected ones.
func (s *PlannerServer) respondServiceErr(w http.ResponseWriter, msg string, err error) {
	logger.Error(fmt.Errorf("%s: %w", msg, err))

	switch {
	case errors.Is(err, service.ErrUnknownRegion), errors.Is(err, service.ErrPlanNotFound):
		respondErr(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrNoWeatherData):
		respondErr(w, http.StatusBadGateway, err)
	case errors.Is(err, service.ErrPersistenceDisabled):
		respondErr(w, http.StatusNotImplemented, err)
	default:
		respondErr(w, http.StatusInternalServerError, errInternal)
	}
}

func validateComfortParams(params url.Values) (*comfort.Sample, error) {
	temperature, err := floatParam(params, "temperature")
	if err != nil {
		return nil, err
	}

	humidity, err := floatParam(params, "humidity")
	if err != nil {
		return nil, err
	}

	wind, err := floatParam(params, "wind")
	if err != nil {
		return nil, err
	}

	return &comfort.Sample{Temperature: temperature, Humidity: humidity, WindSpeed: wind}, nil
}

func floatParam(params url.Values, name string) (float64, error) {
	str := params.Get(name)
	if str == "" {
		return 0, fmt.Errorf("%s parameter not provided in query", name)
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%s parameter is not a number: %w", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s parameter must be finite", name)
	}

	return v, nil
}

func intParam(params url.Values, name string, def int) (int, error) {
	str := params.Get(name)
	if str == "" {
		return def, nil
	}

	v, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("%s parameter is not a number: %w", name, err)
	}

	return v, nil
}
