package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/weather-travel-planner/internal/config"
	"github.com/katiamach/weather-travel-planner/internal/logger"
	"github.com/katiamach/weather-travel-planner/internal/transport/rest/handler"
)

// NewRouter registers planner routes.
func NewRouter(server *handler.PlannerServer) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/regions", server.RegionsHandler).Methods("GET")
	r.HandleFunc("/regions/{region}/cities", server.CitiesHandler).Methods("GET")
	r.HandleFunc("/holiday", server.HolidayHandler).Methods("GET")
	r.HandleFunc("/plans", server.CreatePlanHandler).Methods("POST")
	r.HandleFunc("/plans", server.ListPlansHandler).Methods("GET")
	r.HandleFunc("/plans/{id}", server.GetPlanHandler).Methods("GET")
	r.HandleFunc("/comparisons", server.CompareHandler).Methods("POST")
	r.HandleFunc("/comfort", server.ComfortHandler).Methods("GET")
	r.HandleFunc("/extract", server.ExtractHandler).Methods("POST")

	return r
}

// NewHandler wraps the planner routes with CORS.
func NewHandler(cfg *config.Config, service handler.PlannerService) http.Handler {
	r := NewRouter(handler.NewPlannerServer(service))

	options := setupCorsOptions(cfg.Origin)
	return handlers.CORS(options...)(r)
}

// RunAPI runs travel planner API until ctx is done.
func RunAPI(ctx context.Context, cfg *config.Config, service handler.PlannerService) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewHandler(cfg, service),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting travel planner api at port %s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down travel planner api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
