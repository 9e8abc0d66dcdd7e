package models

// Category identifies one of the fixed product categories in the catalog.
type Category string

const (
	CategoryAll         Category = "all" // filter wildcard, not a product category
	CategoryKeyboard    Category = "keyboard"
	CategoryMouse       Category = "mouse"
	CategoryAudio       Category = "audio"
	CategorySpeaker     Category = "speaker"
	CategoryAccessories Category = "accessories"
)

// Categories lists the product categories in menu order, excluding the
// "all" wildcard.
func Categories() []Category {
	return []Category{
		CategoryKeyboard,
		CategoryMouse,
		CategoryAudio,
		CategorySpeaker,
		CategoryAccessories,
	}
}

// Product represents a catalog entry. Products are seeded at startup and
// never mutated at runtime.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Image         string   `json:"image"`
	Category      Category `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	InStock       bool     `json:"in_stock"`
	Discount      int      `json:"discount"` // informational percentage, not applied to Price
}
