package usecase

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/bazarly/backend/internal/domain"
)

// SearchMode selects the matching strategy.
type SearchMode string

const (
	// ModeRelevance matches the query against name, brand, category and
	// store names and orders results by a weighted relevance score.
	// This is the canonical mode.
	ModeRelevance SearchMode = "relevance"
	// ModeFuzzy restricts matching to the product name with a bounded
	// edit distance and a minimum query length.
	ModeFuzzy SearchMode = "fuzzy"
)

// Relevance weights. Name and brand take their highest applicable tier
// only; store matches accumulate per matching offer.
const (
	scoreNameExact        = 1000
	scoreNamePrefix       = 500
	scoreNameWordBoundary = 300
	scoreNameContains     = 100
	scoreBrandExact       = 200
	scoreBrandPrefix      = 150
	scoreBrandContains    = 50
	scoreCategoryContains = 30
	scorePerStoreMatch    = 10
	scorePromotionalBoost = 5
)

// SearchConfig holds configuration for the search service
type SearchConfig struct {
	Mode               SearchMode
	MinQueryLength     int // fuzzy mode only
	MaxEditDistance    int // fuzzy mode only
	EnableDebugLogging bool
}

// SearchService ranks and filters a catalog snapshot for a query.
// All methods are pure over their inputs; the service itself is
// stateless and safe for concurrent use.
type SearchService struct {
	mode               SearchMode
	minQueryLength     int
	maxEditDistance    int
	enableDebugLogging bool
}

// NewSearchService creates a new search service with the given configuration
func NewSearchService(config SearchConfig) *SearchService {
	mode := config.Mode
	if mode == "" {
		mode = ModeRelevance
	}

	minLen := config.MinQueryLength
	if minLen <= 0 {
		minLen = 3
	}

	maxDist := config.MaxEditDistance
	if maxDist <= 0 {
		maxDist = 1
	}

	return &SearchService{
		mode:               mode,
		minQueryLength:     minLen,
		maxEditDistance:    maxDist,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Search returns the catalog restricted to products matching the query
// and filters, ordered by descending relevance. Ties keep the original
// catalog order. An empty query matches everything.
func (s *SearchService) Search(catalog []domain.Product, query string, filters domain.Filters) []domain.Product {
	normalizedQuery := normalizeText(query)

	type scored struct {
		product domain.Product
		score   int
	}

	var matches []scored
	switch {
	case normalizedQuery == "":
		matches = make([]scored, 0, len(catalog))
		for _, p := range catalog {
			matches = append(matches, scored{product: p})
		}

	case s.mode == ModeFuzzy:
		// Short queries return nothing in strict mode, by contract.
		if len([]rune(normalizedQuery)) < s.minQueryLength {
			return []domain.Product{}
		}
		for _, p := range catalog {
			rank, ok := fuzzyNameMatch(normalizeText(p.Name), normalizedQuery, s.maxEditDistance)
			if !ok {
				continue
			}
			matches = append(matches, scored{product: p, score: rank})
		}

	default:
		for _, p := range catalog {
			score := s.scoreProduct(p, normalizedQuery)
			if score <= 0 {
				continue
			}
			if s.enableDebugLogging {
				log.Debug().Str("product", p.Name).Int("score", score).Str("query", query).Msg("search match")
			}
			matches = append(matches, scored{product: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	results := make([]domain.Product, 0, len(matches))
	for _, m := range matches {
		if s.applyFilters(m.product, filters) {
			results = append(results, m.product)
		}
	}
	return results
}

// scoreProduct computes the relevance of one product for a normalized
// query. Zero means the query appears in none of the matched fields.
func (s *SearchService) scoreProduct(p domain.Product, query string) int {
	score := 0

	name := normalizeText(p.Name)
	switch {
	case name == query:
		score += scoreNameExact
	case strings.HasPrefix(name, query):
		score += scoreNamePrefix
	case containsAtBoundary(name, query):
		score += scoreNameWordBoundary
	case strings.Contains(name, query):
		score += scoreNameContains
	}

	if p.Brand != "" {
		brand := normalizeText(p.Brand)
		switch {
		case brand == query:
			score += scoreBrandExact
		case strings.HasPrefix(brand, query):
			score += scoreBrandPrefix
		case strings.Contains(brand, query):
			score += scoreBrandContains
		}
	}

	if strings.Contains(normalizeText(p.Category), query) {
		score += scoreCategoryContains
	}

	for _, offer := range p.Stores {
		if strings.Contains(normalizeText(offer.Name), query) {
			score += scorePerStoreMatch
		}
	}

	if score == 0 {
		return 0
	}
	if p.IsPromotional {
		score += scorePromotionalBoost
	}
	return score
}

// applyFilters checks a product against every active predicate.
func (s *SearchService) applyFilters(p domain.Product, filters domain.Filters) bool {
	if filters.IsZero() {
		return true
	}

	if filters.InStockOnly {
		anyInStock := false
		for _, offer := range p.Stores {
			if offer.InStock {
				anyInStock = true
				break
			}
		}
		if !anyInStock {
			return false
		}
	}

	if filters.PromotionalOnly {
		if !p.IsPromotional || !IsPromotionValid(p.ValidUntil) {
			return false
		}
	}

	if len(filters.Stores) > 0 && !matchesStores(p, filters.Stores, filters.StoreMode) {
		return false
	}

	if len(filters.Categories) > 0 {
		category := strings.ToLower(strings.TrimSpace(p.Category))
		inSet := false
		for _, c := range filters.Categories {
			if category == strings.ToLower(strings.TrimSpace(c)) {
				inSet = true
				break
			}
		}
		if !inSet {
			return false
		}
	}

	if filters.MinPrice != nil || filters.MaxPrice != nil {
		inRange := false
		for _, offer := range p.Stores {
			if !offer.InStock {
				continue
			}
			if filters.MinPrice != nil && offer.Price < *filters.MinPrice {
				continue
			}
			if filters.MaxPrice != nil && offer.Price > *filters.MaxPrice {
				continue
			}
			inRange = true
			break
		}
		if !inRange {
			return false
		}
	}

	return true
}

// matchesStores applies the store filter in either mode: any offer
// matching one of the selected stores, or every offer belonging to the
// selected set.
func matchesStores(p domain.Product, stores []string, mode domain.StoreMatchMode) bool {
	if mode == domain.StoreMatchAll {
		for _, offer := range p.Stores {
			offerName := normalizeText(offer.Name)
			member := false
			for _, s := range stores {
				if offerName == normalizeText(s) {
					member = true
					break
				}
			}
			if !member {
				return false
			}
		}
		return true
	}

	for _, offer := range p.Stores {
		offerName := normalizeText(offer.Name)
		for _, s := range stores {
			if strings.Contains(offerName, normalizeText(s)) {
				return true
			}
		}
	}
	return false
}

// UniqueCategories returns the alphabetically sorted set of categories
// present in the catalog.
func UniqueCategories(catalog []domain.Product) []string {
	categories := lo.Uniq(lo.Map(catalog, func(p domain.Product, _ int) string {
		return p.Category
	}))
	sort.Strings(categories)
	return categories
}

// UniqueStoreNames returns the alphabetically sorted set of store names
// appearing in any offer.
func UniqueStoreNames(catalog []domain.Product) []string {
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		for _, offer := range p.Stores {
			names = append(names, offer.Name)
		}
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}
