package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bazarly/backend/config"
	httpDelivery "github.com/bazarly/backend/internal/delivery/http"
	"github.com/bazarly/backend/internal/infrastructure/cache"
	"github.com/bazarly/backend/internal/infrastructure/catalogfile"
	"github.com/bazarly/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg.Log)
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("search_mode", cfg.Search.Mode).
		Msg("starting bazarly backend v1.0.0")

	// The merged catalog is a build artifact; the server treats it as an
	// immutable snapshot for its whole lifetime.
	repo := catalogfile.NewRepository()
	catalog, err := repo.Load(context.Background(), cfg.Catalog.MergedPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Catalog.MergedPath).Msg("failed to load catalog")
	}
	logger.Info().Int("products", len(catalog)).Str("path", cfg.Catalog.MergedPath).Msg("catalog loaded")

	memoryCache := cache.NewMemoryCache()

	catalogService := usecase.NewCatalogService(catalog, memoryCache, usecase.CatalogServiceConfig{
		Search: usecase.SearchConfig{
			Mode:               usecase.SearchMode(cfg.Search.Mode),
			MinQueryLength:     cfg.Search.MinQueryLength,
			MaxEditDistance:    cfg.Search.MaxEditDistance,
			EnableDebugLogging: cfg.Search.Debug,
		},
		PageSize: cfg.Search.PageSize,
		CacheTTL: cfg.Cache.TTL,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
