package domain

import (
	"context"
	"time"
)

// CatalogRepository defines the interface for reading and writing catalog files.
type CatalogRepository interface {
	Load(ctx context.Context, path string) ([]Product, error)
	// SaveMerged writes a backup of the raw input and the merged output.
	// Both files are committed together or not at all.
	SaveMerged(ctx context.Context, raw, merged []Product, backupPath, outputPath string) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
