package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katiamach/weather-travel-planner/internal/api"
	"github.com/katiamach/weather-travel-planner/internal/app"
	"github.com/katiamach/weather-travel-planner/internal/config"
	"github.com/katiamach/weather-travel-planner/internal/logger"
	"github.com/katiamach/weather-travel-planner/internal/repository"
	"github.com/katiamach/weather-travel-planner/internal/service"
)

func main() {
	if err := run(); err != nil {
		logger.Fatal(fmt.Errorf("failed to run travel planner api: %w", err))
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []service.Option
	if cfg.PersistenceEnabled() {
		repo, err := repository.New(ctx, cfg.DBConfig.ConnString, cfg.DBConfig.Name)
		if err != nil {
			return err
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error(err)
			}
		}()

		opts = append(opts, service.WithRepository(repo))
	} else {
		logger.Warn("DB_CONN_STRING is not set, plans will not be stored")
	}

	return api.RunAPI(ctx, cfg, app.NewPlanner(cfg, opts...))
}
