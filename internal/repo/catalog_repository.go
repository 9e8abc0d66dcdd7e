package repo

import (
	"errors"

	"github.com/dopetech/storefront/internal/models"
)

// CatalogFilter holds the two user-driven filter inputs. The zero value
// matches every product.
type CatalogFilter struct {
	Category models.Category
	Query    string
}

// CatalogRepository defines read access to the seeded product catalog.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Filter(cf CatalogFilter) ([]models.Product, int, error)
}

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")
