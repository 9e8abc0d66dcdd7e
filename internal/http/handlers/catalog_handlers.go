package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dopetech/storefront/internal/models"
	repo "github.com/dopetech/storefront/internal/repo"
)

// GetProductsHandler godoc
// @Summary List the full catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := catalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// catalogFilterFromQuery maps the category/q query parameters onto a
// CatalogFilter. An empty category means "all".
func catalogFilterFromQuery(r *http.Request) repo.CatalogFilter {
	q := r.URL.Query()
	category := models.Category(q.Get("category"))
	if category == "" {
		category = models.CategoryAll
	}
	return repo.CatalogFilter{
		Category: category,
		Query:    q.Get("q"),
	}
}

// FilterProductsHandler godoc
// @Summary Filter products by category and search text
// @Tags catalog
// @Produce json
// @Param category query string false "Category id, or all"
// @Param q query string false "Case-insensitive text matched against name and description"
// @Success 200 {object} ProductsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /products/search [get]
func FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	// An unknown category is not an error: it matches nothing and the
	// client renders the empty state.
	products, total, err := catalogRepo.Filter(catalogFilterFromQuery(r))
	if err != nil {
		http.Error(w, "could not filter products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}
