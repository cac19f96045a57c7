package usecase

import (
	"math"
	"testing"

	"github.com/bazarly/backend/internal/domain"
)

func TestCheapestOffer(t *testing.T) {
	t.Run("picks the lowest price", func(t *testing.T) {
		p := domain.Product{Stores: []domain.StoreOffer{
			{Name: "Bravo", Price: 2.50},
			{Name: "Oba", Price: 2.30},
			{Name: "Araz", Price: 2.40},
		}}
		offer, ok := CheapestOffer(p)
		if !ok || offer.Name != "Oba" {
			t.Errorf("cheapest = %+v ok=%v, want Oba", offer, ok)
		}
	})

	t.Run("no offers", func(t *testing.T) {
		if _, ok := CheapestOffer(domain.Product{}); ok {
			t.Error("ok = true for a product without offers")
		}
	})
}

func TestOriginalPrice(t *testing.T) {
	tests := []struct {
		price    float64
		discount float64
		want     float64
	}{
		{9.0, 10, 10.0},
		{2.50, 0, 2.50},
		{5.0, 50, 10.0},
	}
	for _, tt := range tests {
		if got := OriginalPrice(tt.price, tt.discount); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("OriginalPrice(%v, %v) = %v, want %v", tt.price, tt.discount, got, tt.want)
		}
	}
}

func TestIsPromotionValid(t *testing.T) {
	tests := []struct {
		name       string
		validUntil string
		want       bool
	}{
		{"absent end date is always valid", "", true},
		{"future end date", "2099-12-31", true},
		{"past end date", "2020-01-01", false},
		{"unparseable date counts as valid", "soon", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPromotionValid(tt.validUntil); got != tt.want {
				t.Errorf("IsPromotionValid(%q) = %v, want %v", tt.validUntil, got, tt.want)
			}
		})
	}
}

func TestSortByPrice(t *testing.T) {
	products := []domain.Product{
		{ID: "mid", Stores: []domain.StoreOffer{{Name: "Bravo", Price: 2.0}}},
		{ID: "cheap", Stores: []domain.StoreOffer{{Name: "Oba", Price: 1.0}, {Name: "Bravo", Price: 5.0}}},
		{ID: "dear", Stores: []domain.StoreOffer{{Name: "Araz", Price: 9.0}}},
	}

	asc := SortByPrice(products, true)
	if asc[0].ID != "cheap" || asc[2].ID != "dear" {
		t.Errorf("ascending order = %v", ids(asc))
	}

	desc := SortByPrice(products, false)
	if desc[0].ID != "dear" || desc[2].ID != "cheap" {
		t.Errorf("descending order = %v", ids(desc))
	}

	// Input must stay untouched.
	if products[0].ID != "mid" {
		t.Error("SortByPrice mutated its input")
	}
}

func TestSortByDiscount(t *testing.T) {
	products := []domain.Product{
		{ID: "none", Stores: []domain.StoreOffer{{Name: "Bravo", Price: 2.0}}},
		{ID: "big", Stores: []domain.StoreOffer{{Name: "Oba", Price: 1.0, Discount: 40}}},
		{ID: "small", Stores: []domain.StoreOffer{{Name: "Araz", Price: 9.0, Discount: 5}}},
	}

	desc := SortByDiscount(products, true)
	if desc[0].ID != "big" || desc[2].ID != "none" {
		t.Errorf("order = %v, want big first and none last", ids(desc))
	}
}

func TestAverages(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Stores: []domain.StoreOffer{{Name: "Bravo", Price: 2.0, Discount: 10}}},
		{ID: "b", Stores: []domain.StoreOffer{{Name: "Oba", Price: 4.0}}},
	}

	if got := AveragePrice(products); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("AveragePrice = %v, want 3.0", got)
	}
	if got := AverageDiscount(products); math.Abs(got-10.0) > 1e-9 {
		t.Errorf("AverageDiscount = %v, want 10.0 (only discounted products count)", got)
	}

	if got := AveragePrice(nil); got != 0 {
		t.Errorf("AveragePrice(nil) = %v, want 0", got)
	}
	if got := AverageDiscount(products[1:]); got != 0 {
		t.Errorf("AverageDiscount with no discounts = %v, want 0", got)
	}
}

func TestPromotionalAndMultiStoreSelections(t *testing.T) {
	products := []domain.Product{
		{ID: "active", IsPromotional: true, ValidUntil: "2099-01-01", Stores: []domain.StoreOffer{{Name: "Bravo", Price: 1}}},
		{ID: "expired", IsPromotional: true, ValidUntil: "2020-01-01", Stores: []domain.StoreOffer{{Name: "Bravo", Price: 1}}},
		{ID: "multi", Stores: []domain.StoreOffer{{Name: "Bravo", Price: 1}, {Name: "Oba", Price: 2}}},
	}

	promos := PromotionalProducts(products)
	if len(promos) != 1 || promos[0].ID != "active" {
		t.Errorf("promotional = %v, want only the active one", ids(promos))
	}

	multi := MultiStoreProducts(products)
	if len(multi) != 1 || multi[0].ID != "multi" {
		t.Errorf("multi-store = %v, want only the two-offer product", ids(multi))
	}
}
