package usecase

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/bazarly/backend/internal/domain"
)

// CheapestOffer returns the lowest-priced offer for a product, or false
// when the product has no offers.
func CheapestOffer(p domain.Product) (domain.StoreOffer, bool) {
	if len(p.Stores) == 0 {
		return domain.StoreOffer{}, false
	}
	return lo.MinBy(p.Stores, func(a, b domain.StoreOffer) bool {
		return a.Price < b.Price
	}), true
}

// OriginalPrice reconstructs the pre-discount price from the final price
// and the discount percentage.
func OriginalPrice(price, discount float64) float64 {
	if discount <= 0 {
		return price
	}
	return price / (1 - discount/100)
}

// IsPromotionValid reports whether a promotion is still running.
// An absent or unparseable end date counts as always valid.
func IsPromotionValid(validUntil string) bool {
	if validUntil == "" {
		return true
	}
	until, err := time.Parse("2006-01-02", validUntil)
	if err != nil {
		return true
	}
	today := time.Now().Truncate(24 * time.Hour)
	return !today.After(until)
}

// SortByPrice returns a copy of the catalog ordered by each product's
// cheapest offer, ascending by default.
func SortByPrice(products []domain.Product, ascending bool) []domain.Product {
	sorted := append([]domain.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi := cheapestPrice(sorted[i])
		pj := cheapestPrice(sorted[j])
		if ascending {
			return pi < pj
		}
		return pi > pj
	})
	return sorted
}

// SortByDiscount returns a copy ordered by the cheapest offer's discount,
// highest first by default.
func SortByDiscount(products []domain.Product, descending bool) []domain.Product {
	sorted := append([]domain.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := cheapestDiscount(sorted[i])
		dj := cheapestDiscount(sorted[j])
		if descending {
			return di > dj
		}
		return di < dj
	})
	return sorted
}

// PromotionalProducts returns products with an active promotion.
func PromotionalProducts(products []domain.Product) []domain.Product {
	return lo.Filter(products, func(p domain.Product, _ int) bool {
		return p.IsPromotional && IsPromotionValid(p.ValidUntil)
	})
}

// MultiStoreProducts returns products carried by more than one store.
func MultiStoreProducts(products []domain.Product) []domain.Product {
	return lo.Filter(products, func(p domain.Product, _ int) bool {
		return len(p.Stores) > 1
	})
}

// AveragePrice is the mean cheapest-offer price across the catalog.
func AveragePrice(products []domain.Product) float64 {
	if len(products) == 0 {
		return 0
	}
	total := lo.SumBy(products, cheapestPrice)
	return total / float64(len(products))
}

// AverageDiscount is the mean discount over products whose cheapest
// offer carries one.
func AverageDiscount(products []domain.Product) float64 {
	discounted := lo.Filter(products, func(p domain.Product, _ int) bool {
		return cheapestDiscount(p) > 0
	})
	if len(discounted) == 0 {
		return 0
	}
	total := lo.SumBy(discounted, cheapestDiscount)
	return total / float64(len(discounted))
}

func cheapestPrice(p domain.Product) float64 {
	offer, ok := CheapestOffer(p)
	if !ok {
		return 0
	}
	return offer.Price
}

func cheapestDiscount(p domain.Product) float64 {
	offer, ok := CheapestOffer(p)
	if !ok {
		return 0
	}
	return offer.Discount
}
