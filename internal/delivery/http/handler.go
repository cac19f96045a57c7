package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bazarly/backend/internal/domain"
	"github.com/bazarly/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalogService *usecase.CatalogService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalogService *usecase.CatalogService) *Handler {
	return &Handler{catalogService: catalogService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "bazarly-backend",
		"version":  "1.0.0",
		"products": h.catalogService.Size(),
	})
}

// SearchProducts handles catalog search requests.
// Query parameters: q, categories, stores, all_stores, in_stock, promo,
// min_price, max_price, page.
func (h *Handler) SearchProducts(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
			return
		}
	}

	result, err := h.catalogService.SearchPage(c.Request.Context(), c.Query("q"), filters, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompareOffers returns a product's store offers sorted cheapest-first.
func (h *Handler) CompareOffers(c *gin.Context) {
	offers, err := h.catalogService.CompareOffers(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comparison failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// ListCategories returns the sorted category list.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogService.Categories()})
}

// ListStores returns the sorted store-name list.
func (h *Handler) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stores": h.catalogService.StoreNames()})
}

// parseFilters builds a domain.Filters from query parameters.
func parseFilters(c *gin.Context) (domain.Filters, error) {
	var filters domain.Filters

	filters.InStockOnly = c.Query("in_stock") == "true"
	filters.PromotionalOnly = c.Query("promo") == "true"

	if raw := c.Query("categories"); raw != "" {
		filters.Categories = splitParam(raw)
	}
	if raw := c.Query("stores"); raw != "" {
		filters.Stores = splitParam(raw)
	}
	if c.Query("all_stores") == "true" {
		filters.StoreMode = domain.StoreMatchAll
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("min_price must be a number")
		}
		filters.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("max_price must be a number")
		}
		filters.MaxPrice = &v
	}

	return filters, nil
}

// splitParam splits a comma-separated query parameter, dropping empties.
func splitParam(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
