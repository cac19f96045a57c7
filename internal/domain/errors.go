package domain

import "errors"

var (
	// ErrInvalidCatalog is returned when a catalog record fails validation
	// (missing name/category, empty store list, non-positive price).
	ErrInvalidCatalog = errors.New("invalid catalog data")

	// ErrCatalogNotFound is returned when the catalog file cannot be read
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
