package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/dopetech/storefront/internal/http/handlers"
)

// NewRouter builds the storefront API router.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(RateLimitMiddleware)

	r.Get("/storefront", handlers.StorefrontHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.FilterProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	r.Get("/cart", handlers.GetCartHandler)
	r.Post("/cart/items", handlers.AddCartItemHandler)
	r.Put("/cart/items/{id}", handlers.UpdateCartItemHandler)
	r.Delete("/cart/items/{id}", handlers.RemoveCartItemHandler)

	r.Get("/theme", handlers.GetThemeHandler)
	r.Post("/theme/toggle", handlers.ToggleThemeHandler)

	r.Get("/ready", handlers.ReadinessHandler)
	r.Post("/checkout", handlers.CheckoutHandler)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
