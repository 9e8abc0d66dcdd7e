package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	repo "github.com/dopetech/storefront/internal/repo"
)

// GetCartHandler godoc
// @Summary Get the cart lines, item count and total
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartResponse(cartRepo.Items(), cartRepo.Count(), cartRepo.Total()))
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Description Adding a product already in the cart increments its line quantity instead of creating a second line.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddCartItemRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Unknown product"
// @Failure 409 {string} string "Out of stock"
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateAddCartItem(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product, err := catalogRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	// Stock gating is API policy, not a cart rule: the store itself
	// accepts any product.
	if !product.InStock {
		http.Error(w, "product is out of stock", http.StatusConflict)
		return
	}

	cartRepo.Add(product)
	writeJSON(w, http.StatusOK, toCartResponse(cartRepo.Items(), cartRepo.Count(), cartRepo.Total()))
}

// UpdateCartItemHandler godoc
// @Summary Set a cart line's quantity
// @Description A quantity of zero or less removes the line. Updating a product that is not in the cart is a no-op.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param update body QuantityUpdateRequest true "New absolute quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID or input"
// @Router /cart/items/{id} [put]
func UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantityUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	cartRepo.SetQuantity(id, req.Quantity)
	writeJSON(w, http.StatusOK, toCartResponse(cartRepo.Items(), cartRepo.Count(), cartRepo.Total()))
}

// RemoveCartItemHandler godoc
// @Summary Remove a cart line
// @Description Removing a product that is not in the cart succeeds silently.
// @Tags cart
// @Param id path int true "Product ID"
// @Success 204 "Removed"
// @Failure 400 {string} string "Invalid ID"
// @Router /cart/items/{id} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	cartRepo.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}
