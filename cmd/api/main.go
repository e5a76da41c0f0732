package main

import (
	"context"
	"fmt"
	"os"

	"day-planner/config"
	"day-planner/internal/httpserver"
	"day-planner/internal/middleware"
	plannerDelivery "day-planner/internal/planner/delivery/http"
	plannerUC "day-planner/internal/planner/usecase"
	"day-planner/internal/store/memory"
	taskDelivery "day-planner/internal/task/delivery/http"
	taskUC "day-planner/internal/task/usecase"
	"day-planner/pkg/datemath"
	"day-planner/pkg/log"
)

// @title       Day Planner API
// @description Allocates pending tasks to daily time slots and composes per-day plans.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date arithmetic in the configured timezone
	dates, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Store (task store, template provider, overrides, profiles)
	store := memory.New()
	if cfg.Store.SeedPath != "" {
		if err := store.LoadSeed(cfg.Store.SeedPath, dates.Location()); err != nil {
			logger.Warnf(ctx, "Seed file not loaded (starting empty): %v", err)
		} else {
			logger.Infof(ctx, "Seed loaded from %s", cfg.Store.SeedPath)
		}
	}

	// 5. Planner domain
	plannerUseCase := plannerUC.New(logger, store, store, store, store, dates, cfg.Planner)
	plannerHandler := plannerDelivery.New(logger, plannerUseCase)

	// 6. Task ingestion domain
	taskUseCase := taskUC.New(logger, store)
	taskHandler := taskDelivery.New(logger, taskUseCase)

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.RateLim.RequestsPerMin),
		PlannerHandler: plannerHandler,
		TaskHandler:    taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
