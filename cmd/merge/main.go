// Command merge is the offline build step that consolidates duplicate
// product records before the catalog is bundled. It reads the raw
// catalog from the configured input path, writes a backup of the
// untouched input and the merged output together, and prints merge
// statistics. It takes no flags; paths come from configuration.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bazarly/backend/config"
	"github.com/bazarly/backend/internal/infrastructure/catalogfile"
	"github.com/bazarly/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg.Log)
	logger.Info().Str("input", cfg.Catalog.InputPath).Msg("starting product merge")

	ctx := context.Background()
	repo := catalogfile.NewRepository()

	products, err := repo.Load(ctx, cfg.Catalog.InputPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read catalog")
	}
	logger.Info().Int("products", len(products)).Msg("catalog read")

	merged, stats, err := usecase.NewMergeService().Merge(products)
	if err != nil {
		logger.Fatal().Err(err).Msg("merge rejected")
	}

	// Backup and merged output are committed together; on any write
	// failure neither file is replaced.
	if err := repo.SaveMerged(ctx, products, merged, cfg.Catalog.BackupPath, cfg.Catalog.MergedPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to write output")
	}

	logger.Info().
		Int("original", stats.OriginalCount).
		Int("merged", stats.MergedCount).
		Int("duplicates_removed", stats.DuplicatesRemoved).
		Int("total_stores", stats.TotalStores).
		Int("multi_store", stats.MultiStoreProducts).
		Int("single_store", stats.SingleStoreProducts).
		Float64("seconds", stats.ProcessingSeconds).
		Msg("merge complete")
	logger.Info().
		Str("backup", cfg.Catalog.BackupPath).
		Str("output", cfg.Catalog.MergedPath).
		Msg("files written")
}
