// Package catalogfile reads and writes the JSON catalog files produced
// by the scraping pipeline and consumed by the storefront.
package catalogfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bazarly/backend/internal/domain"
	"github.com/bazarly/backend/internal/usecase"
)

// Repository implements domain.CatalogRepository over local JSON files.
type Repository struct{}

// NewRepository creates a new catalog file repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Load reads and validates a catalog file. Any malformed record fails
// the whole load; a partial catalog is never returned.
func (r *Repository) Load(ctx context.Context, path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON product array: %v", domain.ErrInvalidCatalog, path, err)
	}

	if err := usecase.ValidateCatalog(products); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return products, nil
}

// SaveMerged writes the untouched input as a backup and the merged
// catalog as the build output. Both files are staged as temp files first
// and renamed only after every write succeeded, so a failure leaves the
// previous files in place.
func (r *Repository) SaveMerged(ctx context.Context, raw, merged []domain.Product, backupPath, outputPath string) error {
	backupTmp, err := stageJSON(backupPath, raw)
	if err != nil {
		return fmt.Errorf("staging backup: %w", err)
	}

	outputTmp, err := stageJSON(outputPath, merged)
	if err != nil {
		os.Remove(backupTmp)
		return fmt.Errorf("staging merged output: %w", err)
	}

	if err := os.Rename(backupTmp, backupPath); err != nil {
		os.Remove(backupTmp)
		os.Remove(outputTmp)
		return fmt.Errorf("committing backup: %w", err)
	}
	if err := os.Rename(outputTmp, outputPath); err != nil {
		os.Remove(outputTmp)
		return fmt.Errorf("committing merged output: %w", err)
	}
	return nil
}

// stageJSON writes v as indented JSON to a temp file next to the target
// path and returns the temp file name.
func stageJSON(target string, v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
