package main

import (
	"fmt"
	"log"

	"github.com/nutrilog/backend/config"
	httpDelivery "github.com/nutrilog/backend/internal/delivery/http"
	"github.com/nutrilog/backend/internal/domain"
	"github.com/nutrilog/backend/internal/infrastructure/limiter"
	"github.com/nutrilog/backend/internal/infrastructure/storage"
	"github.com/nutrilog/backend/internal/logger"
	"github.com/nutrilog/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Mode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting nutrilog backend",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"database", cfg.Database.Path,
	)

	// Open storage and run migrations
	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		zlog.Fatal("failed to open database", "error", err)
	}

	foodRepo := storage.NewFoodRepo(db)
	mealRepo := storage.NewMealRepo(db)

	// Initialize usecase layer
	aggregator := usecase.NewAggregationService()
	libraryService := usecase.NewLibraryService(foodRepo)
	mealService := usecase.NewMealService(foodRepo, mealRepo)
	reportService := usecase.NewReportService(aggregator, domain.DefaultTargets())

	// Per-client rate limiting
	store := limiter.NewStore(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(libraryService, mealService, reportService, aggregator, zlog)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, store, zlog)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		zlog.Fatal("failed to start server", "error", err)
	}
}
