package repo

import "github.com/dopetech/storefront/internal/models"

// CartRepository defines the operations on the session cart. All mutations
// are total: removing or updating an id that is not in the cart is a silent
// no-op, never an error, and the cart always holds at most one line per
// product id.
type CartRepository interface {
	// Add puts one unit of the product in the cart. If a line for the
	// product already exists its quantity is incremented in place;
	// otherwise a new line with quantity 1 is appended. Add does not
	// consult InStock; stock gating is caller policy.
	Add(product models.Product)

	// Remove deletes the line with the given product id, if present.
	Remove(productID int)

	// SetQuantity sets the line's quantity to exactly quantity. A value of
	// zero or less removes the line instead.
	SetQuantity(productID int, quantity int)

	// Items returns the cart lines in insertion order.
	Items() []models.CartItem

	// Total returns the sum of price times quantity over all lines.
	Total() float64

	// Count returns the sum of quantities over all lines.
	Count() int

	// Clear empties the cart.
	Clear()
}
