package usecase

import (
	"fmt"
	"testing"

	"github.com/bazarly/backend/internal/domain"
)

func numberedProducts(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:       fmt.Sprintf("p%d", i),
			Name:     fmt.Sprintf("Məhsul %d", i),
			Category: "Digər",
			Stores:   []domain.StoreOffer{{Name: "Bravo", Price: 1}},
		})
	}
	return products
}

func TestPaginate(t *testing.T) {
	products := numberedProducts(50)

	tests := []struct {
		name        string
		page        int
		pageSize    int
		wantLen     int
		wantFirst   string
		wantHasMore bool
	}{
		{"first page", 1, 24, 24, "p0", true},
		{"middle page", 2, 24, 24, "p24", true},
		{"last partial page", 3, 24, 2, "p48", false},
		{"page past the end", 4, 24, 0, "", false},
		{"exact fit has no more", 1, 50, 50, "p0", false},
		{"zero page", 0, 24, 0, "", false},
		{"zero page size", 1, 0, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasMore := Paginate(products, tt.page, tt.pageSize)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].ID != tt.wantFirst {
				t.Errorf("first = %q, want %q", got[0].ID, tt.wantFirst)
			}
			if hasMore != tt.wantHasMore {
				t.Errorf("hasMore = %v, want %v", hasMore, tt.wantHasMore)
			}
		})
	}
}

func TestPaginateAccumulated(t *testing.T) {
	products := numberedProducts(50)

	t.Run("page n returns pages 1..n", func(t *testing.T) {
		got, hasMore := PaginateAccumulated(products, 2, 24)
		if len(got) != 48 {
			t.Fatalf("len = %d, want 48", len(got))
		}
		if got[0].ID != "p0" || got[47].ID != "p47" {
			t.Errorf("accumulated slice must start at the beginning")
		}
		if !hasMore {
			t.Error("hasMore = false, want true with 2 items remaining")
		}
	})

	t.Run("accumulation matches appended pages", func(t *testing.T) {
		page1, _ := Paginate(products, 1, 24)
		page2, _ := Paginate(products, 2, 24)
		acc, _ := PaginateAccumulated(products, 2, 24)

		appended := append(append([]domain.Product{}, page1...), page2...)
		if len(acc) != len(appended) {
			t.Fatalf("len = %d, want %d", len(acc), len(appended))
		}
		for i := range acc {
			if acc[i].ID != appended[i].ID {
				t.Errorf("position %d = %q, want %q", i, acc[i].ID, appended[i].ID)
			}
		}
	})

	t.Run("past the end returns everything", func(t *testing.T) {
		got, hasMore := PaginateAccumulated(products, 10, 24)
		if len(got) != 50 || hasMore {
			t.Errorf("len = %d hasMore = %v, want 50 and false", len(got), hasMore)
		}
	})
}
