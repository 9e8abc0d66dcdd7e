// Package view composes the state the rendering layer consumes on each
// cycle: the filtered catalog, the cart lines and their aggregates, and the
// current filter, theme and readiness flags.
package view

import (
	"github.com/dopetech/storefront/internal/models"
	"github.com/dopetech/storefront/internal/prefs"
	"github.com/dopetech/storefront/internal/readiness"
	"github.com/dopetech/storefront/internal/repo"
)

// CategoryEntry is one entry of the category menu.
type CategoryEntry struct {
	ID   models.Category `json:"id"`
	Name string          `json:"name"`
}

// FilterState echoes the filter inputs the snapshot was computed from.
type FilterState struct {
	Category models.Category `json:"category"`
	Query    string          `json:"query"`
}

// Snapshot is the composed view state for one render cycle.
type Snapshot struct {
	Products     []models.Product  `json:"products"`
	ProductCount int               `json:"product_count"`
	Categories   []CategoryEntry   `json:"categories"`
	Cart         []models.CartItem `json:"cart"`
	CartCount    int               `json:"cart_count"`
	CartTotal    float64           `json:"cart_total"`
	Filter       FilterState       `json:"filter"`
	DarkMode     bool              `json:"dark_mode"`
	Ready        bool              `json:"ready"`
}

var categoryNames = map[models.Category]string{
	models.CategoryAll:         "All Products",
	models.CategoryKeyboard:    "Keyboards",
	models.CategoryMouse:       "Mice",
	models.CategoryAudio:       "Audio",
	models.CategorySpeaker:     "Speakers",
	models.CategoryAccessories: "Accessories",
}

// CategoryMenu returns the category menu in display order, starting with
// the "all" wildcard.
func CategoryMenu() []CategoryEntry {
	menu := []CategoryEntry{{ID: models.CategoryAll, Name: categoryNames[models.CategoryAll]}}
	for _, c := range models.Categories() {
		menu = append(menu, CategoryEntry{ID: c, Name: categoryNames[c]})
	}
	return menu
}

// Compose derives a snapshot from the current store state. It is a pure
// read: aggregates are recomputed on every call rather than cached.
func Compose(catalog repo.CatalogRepository, cart repo.CartRepository, preferences *prefs.Manager, gate *readiness.Gate, filter repo.CatalogFilter) (Snapshot, error) {
	products, total, err := catalog.Filter(filter)
	if err != nil {
		return Snapshot{}, err
	}

	category := filter.Category
	if category == "" {
		category = models.CategoryAll
	}

	return Snapshot{
		Products:     products,
		ProductCount: total,
		Categories:   CategoryMenu(),
		Cart:         cart.Items(),
		CartCount:    cart.Count(),
		CartTotal:    cart.Total(),
		Filter:       FilterState{Category: category, Query: filter.Query},
		DarkMode:     preferences.IsDarkMode(),
		Ready:        gate.Ready(),
	}, nil
}
