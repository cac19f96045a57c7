package domain

// StoreMatchMode controls how the store filter is applied.
type StoreMatchMode int

const (
	// StoreMatchAny passes a product when at least one of its offers
	// matches one of the selected stores (substring, case-insensitive).
	StoreMatchAny StoreMatchMode = iota
	// StoreMatchAll passes a product only when every one of its offers
	// belongs to the selected store set.
	StoreMatchAll
)

// Filters is the set of predicates applied after search matching.
// All active predicates are AND-combined; zero values mean "not active".
type Filters struct {
	InStockOnly     bool           `json:"inStockOnly,omitempty"`
	PromotionalOnly bool           `json:"promotionalOnly,omitempty"`
	Stores          []string       `json:"stores,omitempty"`
	StoreMode       StoreMatchMode `json:"storeMode,omitempty"`
	Categories      []string       `json:"categories,omitempty"`
	MinPrice        *float64       `json:"minPrice,omitempty"`
	MaxPrice        *float64       `json:"maxPrice,omitempty"`
}

// IsZero reports whether no filter predicate is active.
func (f Filters) IsZero() bool {
	return !f.InStockOnly && !f.PromotionalOnly &&
		len(f.Stores) == 0 && len(f.Categories) == 0 &&
		f.MinPrice == nil && f.MaxPrice == nil
}
