package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/bazarly/backend/internal/domain"
)

// priceTolerance is the maximum price difference under which two offers
// from the same store are considered the same offer.
const priceTolerance = 0.01

// idSanitizeRegex keeps product ids URL- and filename-safe.
var idSanitizeRegex = regexp.MustCompile(`[^a-z0-9]+`)

// MergeService consolidates duplicate product records into one record
// per merge key, unioning their store offers.
type MergeService struct{}

// NewMergeService creates a new merge service.
func NewMergeService() *MergeService {
	return &MergeService{}
}

// Merge deduplicates products by merge key and returns the consolidated
// catalog together with run statistics. The input is validated up front;
// a single malformed record rejects the whole run so a partial catalog
// is never produced.
//
// Output order is the first-seen order of each merge key, and ids are
// derived from a hash of the merge key, so identical input always yields
// identical output.
func (s *MergeService) Merge(products []domain.Product) ([]domain.Product, domain.MergeStats, error) {
	start := time.Now()

	if err := ValidateCatalog(products); err != nil {
		return nil, domain.MergeStats{}, err
	}

	byKey := make(map[string]*domain.Product, len(products))
	order := make([]string, 0, len(products))

	for _, p := range products {
		key := mergeKey(p.Name, p.Category)

		existing, ok := byKey[key]
		if !ok {
			merged := p
			merged.ID = stableID(key)
			// Dedup within the record too; raw feeds occasionally repeat
			// a store row.
			merged.Stores = make([]domain.StoreOffer, 0, len(p.Stores))
			for _, offer := range p.Stores {
				if !hasOffer(merged.Stores, offer) {
					merged.Stores = append(merged.Stores, offer)
				}
			}
			byKey[key] = &merged
			order = append(order, key)
			continue
		}

		for _, offer := range p.Stores {
			if !hasOffer(existing.Stores, offer) {
				existing.Stores = append(existing.Stores, offer)
			}
		}

		if p.IsPromotional {
			existing.IsPromotional = true
		}
		if p.Image != "" && !strings.Contains(p.Image, "placeholder") {
			if existing.Image == "" || strings.Contains(existing.Image, "placeholder") {
				existing.Image = p.Image
			}
		}
		if p.Brand != "" && existing.Brand == "" {
			existing.Brand = p.Brand
		}
		if p.ValidFrom != "" && existing.ValidFrom == "" {
			existing.ValidFrom = p.ValidFrom
		}
		if p.ValidUntil != "" && existing.ValidUntil == "" {
			existing.ValidUntil = p.ValidUntil
		}
		if p.LastUpdated != "" {
			existing.LastUpdated = p.LastUpdated
		}
	}

	merged := make([]domain.Product, 0, len(order))
	totalStores := 0
	multiStore := 0
	for _, key := range order {
		p := *byKey[key]
		merged = append(merged, p)
		totalStores += len(p.Stores)
		if len(p.Stores) > 1 {
			multiStore++
		}
	}

	stats := domain.MergeStats{
		OriginalCount:       len(products),
		MergedCount:         len(merged),
		DuplicatesRemoved:   len(products) - len(merged),
		TotalStores:         totalStores,
		MultiStoreProducts:  multiStore,
		SingleStoreProducts: len(merged) - multiStore,
		ProcessingSeconds:   time.Since(start).Seconds(),
	}

	return merged, stats, nil
}

// ValidateCatalog checks every record against the catalog invariants:
// name and category present, at least one store offer, positive prices,
// discounts within [0,100).
func ValidateCatalog(products []domain.Product) error {
	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: product %d has no name", domain.ErrInvalidCatalog, i)
		}
		if strings.TrimSpace(p.Category) == "" {
			return fmt.Errorf("%w: product %d (%q) has no category", domain.ErrInvalidCatalog, i, p.Name)
		}
		if len(p.Stores) == 0 {
			return fmt.Errorf("%w: product %d (%q) has no store offers", domain.ErrInvalidCatalog, i, p.Name)
		}
		for j, offer := range p.Stores {
			if strings.TrimSpace(offer.Name) == "" {
				return fmt.Errorf("%w: product %d (%q) offer %d has no store name", domain.ErrInvalidCatalog, i, p.Name, j)
			}
			if offer.Price <= 0 {
				return fmt.Errorf("%w: product %d (%q) offer %q has price %v", domain.ErrInvalidCatalog, i, p.Name, offer.Name, offer.Price)
			}
			if offer.Discount < 0 || offer.Discount >= 100 {
				return fmt.Errorf("%w: product %d (%q) offer %q has discount %v", domain.ErrInvalidCatalog, i, p.Name, offer.Name, offer.Discount)
			}
		}
	}
	return nil
}

// hasOffer reports whether an equivalent offer (same store name, price
// within tolerance) is already present.
func hasOffer(offers []domain.StoreOffer, candidate domain.StoreOffer) bool {
	for _, o := range offers {
		if o.Name == candidate.Name && math.Abs(o.Price-candidate.Price) < priceTolerance {
			return true
		}
	}
	return false
}

// stableID derives a deterministic product id from the merge key:
// the sanitized key plus a short hash suffix. Re-running the merge on
// unchanged input produces byte-identical output.
func stableID(key string) string {
	sum := sha256.Sum256([]byte(key))
	sanitized := strings.Trim(idSanitizeRegex.ReplaceAllString(key, "_"), "_")
	return sanitized + "_" + hex.EncodeToString(sum[:])[:12]
}
