package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bazarly/backend/internal/domain"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	Search   SearchConfig
	PageSize int
	CacheTTL time.Duration
}

// SearchResult is one page of a ranked, filtered search.
type SearchResult struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	HasMore  bool             `json:"hasMore"`
}

// OfferComparison is one store's entry in the price-comparison view,
// with the pre-discount price reconstructed for display.
type OfferComparison struct {
	Store         string  `json:"store"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      float64 `json:"discount,omitempty"`
	InStock       bool    `json:"inStock"`
}

// CatalogService serves queries over an immutable catalog snapshot.
// Ranked pages are memoized in the cache; recomputation is idempotent,
// so a stale entry is never wrong, only redundant.
type CatalogService struct {
	catalog       []domain.Product
	searchService *SearchService
	cache         domain.CacheRepository
	pageSize      int
	cacheTTL      time.Duration

	byID       map[string]domain.Product
	categories []string
	storeNames []string
}

// NewCatalogService creates a catalog service over a merged catalog snapshot.
func NewCatalogService(
	catalog []domain.Product,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
) *CatalogService {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = 24
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	return &CatalogService{
		catalog:       catalog,
		searchService: NewSearchService(config.Search),
		cache:         cache,
		pageSize:      pageSize,
		cacheTTL:      cacheTTL,
		byID:          byID,
		categories:    UniqueCategories(catalog),
		storeNames:    UniqueStoreNames(catalog),
	}
}

// SearchPage runs the search pipeline and returns the requested page.
// Flow: check cache -> rank and filter -> paginate -> cache -> return.
func (s *CatalogService) SearchPage(ctx context.Context, query string, filters domain.Filters, page int) (*SearchResult, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d", domain.ErrInvalidRequest, page)
	}

	cacheKey := s.searchCacheKey(query, filters, page)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if result, ok := cached.(*SearchResult); ok {
			return result, nil
		}
	}

	ranked := s.searchService.Search(s.catalog, query, filters)
	pageItems, hasMore := Paginate(ranked, page, s.pageSize)

	result := &SearchResult{
		Products: pageItems,
		Total:    len(ranked),
		Page:     page,
		PageSize: s.pageSize,
		HasMore:  hasMore,
	}

	// A failed cache write only costs the next call a recomputation.
	_ = s.cache.Set(ctx, cacheKey, result, s.cacheTTL)

	return result, nil
}

// CompareOffers returns a product's offers sorted cheapest-first for the
// comparison view.
func (s *CatalogService) CompareOffers(ctx context.Context, productID string) ([]OfferComparison, error) {
	product, ok := s.byID[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}

	offers := make([]OfferComparison, 0, len(product.Stores))
	for _, offer := range product.Stores {
		offers = append(offers, OfferComparison{
			Store:         offer.Name,
			Price:         offer.Price,
			OriginalPrice: OriginalPrice(offer.Price, offer.Discount),
			Discount:      offer.Discount,
			InStock:       offer.InStock,
		})
	}
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})
	return offers, nil
}

// Categories returns the sorted category list computed at startup.
func (s *CatalogService) Categories() []string {
	return s.categories
}

// StoreNames returns the sorted store-name list computed at startup.
func (s *CatalogService) StoreNames() []string {
	return s.storeNames
}

// Size returns the number of products in the snapshot.
func (s *CatalogService) Size() int {
	return len(s.catalog)
}

// searchCacheKey builds a normalized memoization key from the full input
// tuple. Format: "search:{query}:{filters}:{page}".
func (s *CatalogService) searchCacheKey(query string, filters domain.Filters, page int) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(normalizeText(query))
	b.WriteString(":")
	if filters.InStockOnly {
		b.WriteString("s")
	}
	if filters.PromotionalOnly {
		b.WriteString("p")
	}
	if filters.StoreMode == domain.StoreMatchAll {
		b.WriteString("a")
	}
	b.WriteString(":")
	b.WriteString(strings.Join(filters.Stores, ","))
	b.WriteString(":")
	b.WriteString(strings.Join(filters.Categories, ","))
	b.WriteString(":")
	if filters.MinPrice != nil {
		fmt.Fprintf(&b, "%.2f", *filters.MinPrice)
	}
	b.WriteString("-")
	if filters.MaxPrice != nil {
		fmt.Fprintf(&b, "%.2f", *filters.MaxPrice)
	}
	fmt.Fprintf(&b, ":%d", page)
	return b.String()
}
