package repo

import (
	"sync"

	"github.com/dopetech/storefront/internal/models"
)

// MemoryCartRepository is the in-memory implementation of CartRepository.
// The cart lives for the lifetime of the process; there is no persistence.
// A mutex guards the lines because HTTP handlers may touch the cart from
// concurrent requests.
type MemoryCartRepository struct {
	mu    sync.Mutex
	items []models.CartItem
}

// NewMemoryCartRepository creates an empty cart.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{items: []models.CartItem{}}
}

// Add puts one unit of the product in the cart, merging into an existing
// line when the product is already present.
func (r *MemoryCartRepository) Add(product models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == product.ID {
			r.items[i].Quantity++
			return
		}
	}
	r.items = append(r.items, models.CartItem{Product: product, Quantity: 1})
}

// Remove deletes the line with the given product id, if present.
func (r *MemoryCartRepository) Remove(productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(productID)
}

func (r *MemoryCartRepository) remove(productID int) {
	for i, item := range r.items {
		if item.ID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity to exactly quantity, removing the
// line when quantity is zero or negative. Lines keep their position on
// update.
func (r *MemoryCartRepository) SetQuantity(productID int, quantity int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quantity <= 0 {
		r.remove(productID)
		return
	}
	for i, item := range r.items {
		if item.ID == productID {
			r.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a copy of the cart lines in insertion order.
func (r *MemoryCartRepository) Items() []models.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.CartItem, len(r.items))
	copy(out, r.items)
	return out
}

// Total returns the sum of price times quantity over all lines.
func (r *MemoryCartRepository) Total() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, item := range r.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the sum of quantities over all lines.
func (r *MemoryCartRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, item := range r.items {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart.
func (r *MemoryCartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []models.CartItem{}
}
