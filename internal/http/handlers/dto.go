package handlers

import "github.com/dopetech/storefront/internal/models"

type ProductResponse struct {
	Id            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	InStock       bool     `json:"in_stock"`
	Discount      int      `json:"discount"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
}

type QuantityUpdateRequest struct {
	Quantity int `json:"quantity"` // zero or negative removes the line
}

type CartItemResponse struct {
	ProductResponse
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total float64            `json:"total"`
}

type ThemeResponse struct {
	Theme    string `json:"theme"`
	DarkMode bool   `json:"dark_mode"`
}

type ReadinessResponse struct {
	Ready bool `json:"ready"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      string(p.Category),
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Description:   p.Description,
		Features:      p.Features,
		InStock:       p.InStock,
		Discount:      p.Discount,
	}
}

func toCartResponse(items []models.CartItem, count int, total float64) CartResponse {
	resp := CartResponse{
		Items: make([]CartItemResponse, len(items)),
		Count: count,
		Total: total,
	}
	for i, item := range items {
		resp.Items[i] = CartItemResponse{
			ProductResponse: toProductResponse(item.Product),
			Quantity:        item.Quantity,
			LineTotal:       item.Price * float64(item.Quantity),
		}
	}
	return resp
}
