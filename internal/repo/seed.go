package repo

import "github.com/dopetech/storefront/internal/models"

// SeedProducts returns the embedded product catalog. This is the read-only
// initial data feed; there is no backing API or database.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "DopeTech Mechanical Keyboard",
			Price:         299.99,
			OriginalPrice: 349.99,
			Image:         "/products/keyboard.png",
			Category:      models.CategoryKeyboard,
			Rating:        4.8,
			Reviews:       124,
			Description:   "Premium mechanical keyboard with Cherry MX switches",
			Features:      []string{"RGB Backlight", "Wireless", "Programmable Keys"},
			InStock:       true,
			Discount:      14,
		},
		{
			ID:            2,
			Name:          "DopeTech Gaming Mouse",
			Price:         89.99,
			OriginalPrice: 119.99,
			Image:         "/products/mouse.png",
			Category:      models.CategoryMouse,
			Rating:        4.9,
			Reviews:       89,
			Description:   "High-precision gaming mouse with 25,600 DPI",
			Features:      []string{"25,600 DPI", "RGB", "Programmable Buttons"},
			InStock:       true,
			Discount:      25,
		},
		{
			ID:            3,
			Name:          "DopeTech Wireless Headphones",
			Price:         199.99,
			OriginalPrice: 249.99,
			Image:         "/products/headphones.png",
			Category:      models.CategoryAudio,
			Rating:        4.7,
			Reviews:       156,
			Description:   "Studio-grade wireless headphones with ANC",
			Features:      []string{"Active Noise Cancellation", "40h Battery", "Bluetooth 5.0"},
			InStock:       true,
			Discount:      20,
		},
		{
			ID:            4,
			Name:          "DopeTech Smart Speaker",
			Price:         149.99,
			OriginalPrice: 179.99,
			Image:         "/products/speaker.png",
			Category:      models.CategorySpeaker,
			Rating:        4.6,
			Reviews:       73,
			Description:   "360-degree smart speaker with voice control",
			Features:      []string{"360° Audio", "Voice Control", "Smart Home Integration"},
			InStock:       false,
			Discount:      17,
		},
		{
			ID:            5,
			Name:          "DopeTech Security Key",
			Price:         49.99,
			OriginalPrice: 59.99,
			Image:         "/products/key.png",
			Category:      models.CategoryAccessories,
			Rating:        4.5,
			Reviews:       42,
			Description:   "Biometric security key for enhanced protection",
			Features:      []string{"Fingerprint Sensor", "NFC", "Water Resistant"},
			InStock:       true,
			Discount:      17,
		},
	}
}
