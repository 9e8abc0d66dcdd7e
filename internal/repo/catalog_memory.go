package repo

import (
	"strings"

	"github.com/dopetech/storefront/internal/models"
)

// MemoryCatalogRepository is an in-memory, read-only implementation of
// CatalogRepository. The product list is fixed at construction and never
// mutated, so it is safe for concurrent readers without locking.
type MemoryCatalogRepository struct {
	products []models.Product
}

// NewMemoryCatalogRepository creates a catalog over the given products,
// preserving their order.
func NewMemoryCatalogRepository(products []models.Product) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{products: products}
}

func matchesFilter(p models.Product, cf CatalogFilter) bool {
	if cf.Category != "" && cf.Category != models.CategoryAll && p.Category != cf.Category {
		return false
	}
	if cf.Query != "" {
		q := strings.ToLower(cf.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

// Filter returns the products matching the category and query, in catalog
// order, plus the match count. An unknown category simply matches nothing.
func (r *MemoryCatalogRepository) Filter(cf CatalogFilter) ([]models.Product, int, error) {
	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, cf) {
			filtered = append(filtered, p)
		}
	}
	return filtered, len(filtered), nil
}

// GetAll retrieves every product in catalog order.
func (r *MemoryCatalogRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *MemoryCatalogRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}
