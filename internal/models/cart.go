package models

// CartItem is a cart line: a product plus the quantity selected. The cart
// holds at most one line per product id.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
