package usecase

import "github.com/bazarly/backend/internal/domain"

// Paginate slices the ranked result list into fixed-size pages.
// Pages are 1-based; hasMore reports whether items remain beyond the
// returned slice. Out-of-range pages yield an empty slice.
func Paginate(products []domain.Product, page, pageSize int) ([]domain.Product, bool) {
	if page < 1 || pageSize < 1 {
		return []domain.Product{}, false
	}

	start := (page - 1) * pageSize
	if start >= len(products) {
		return []domain.Product{}, false
	}

	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], end < len(products)
}

// PaginateAccumulated returns pages 1 through page as one slice, for
// infinite-scroll consumers that append each new page to the previous
// ones.
func PaginateAccumulated(products []domain.Product, page, pageSize int) ([]domain.Product, bool) {
	if page < 1 || pageSize < 1 {
		return []domain.Product{}, false
	}

	end := page * pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[:end], end < len(products)
}
