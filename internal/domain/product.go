package domain

// StoreOffer is a single store's price/availability entry for a product.
// Price is the final price after any discount has been applied; Discount,
// when present, is the percentage that was taken off the original price.
type StoreOffer struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount,omitempty"` // percent, [0,100)
	InStock  bool    `json:"inStock"`
	StoreID  string  `json:"storeId,omitempty"`
}

// Product is one catalog entry with its offers across stores.
type Product struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Brand         string       `json:"brand,omitempty"`
	Image         string       `json:"image"`
	IsPromotional bool         `json:"isPromotional,omitempty"`
	ValidFrom     string       `json:"validFrom,omitempty"`   // YYYY-MM-DD
	ValidUntil    string       `json:"validUntil,omitempty"`  // YYYY-MM-DD
	LastUpdated   string       `json:"lastUpdated,omitempty"` // YYYY-MM-DD
	Stores        []StoreOffer `json:"stores"`
}

// MergeStats summarizes one merge run for operator reporting.
type MergeStats struct {
	OriginalCount       int     `json:"originalCount"`
	MergedCount         int     `json:"mergedCount"`
	DuplicatesRemoved   int     `json:"duplicatesRemoved"`
	TotalStores         int     `json:"totalStores"`
	MultiStoreProducts  int     `json:"multiStoreProducts"`
	SingleStoreProducts int     `json:"singleStoreProducts"`
	ProcessingSeconds   float64 `json:"processingTime"`
}
