package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/dopetech/storefront/internal/http"
	handler "github.com/dopetech/storefront/internal/http/handlers"
)

func TestAddCartItemHandler_Valid(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	w := addCartItem(r, 1)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(resp.Items))
	}
	if resp.Items[0].Id != 1 {
		t.Errorf("expected product id 1, got %d", resp.Items[0].Id)
	}
	if resp.Count != 1 {
		t.Errorf("expected count 1, got %d", resp.Count)
	}
	if resp.Total != 299.99 {
		t.Errorf("expected total 299.99, got %v", resp.Total)
	}
}

func TestAddCartItemHandler_MergesOnSecondAdd(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	addCartItem(r, 2)
	w := addCartItem(r, 2)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(resp.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d lines", len(resp.Items))
	}
	if resp.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", resp.Items[0].Quantity)
	}
	if resp.Items[0].LineTotal != 2*89.99 {
		t.Errorf("expected line total %v, got %v", 2*89.99, resp.Items[0].LineTotal)
	}
}

func TestAddCartItemHandler_UnknownProduct(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	w := addCartItem(r, 99)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestAddCartItemHandler_OutOfStock(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	// Product 4 (smart speaker) is seeded out of stock.
	w := addCartItem(r, 4)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}

	resp, _, err := getCart(r)
	if err != nil {
		t.Fatalf("error decoding cart: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected cart untouched, got %d lines", len(resp.Items))
	}
}

func TestAddCartItemHandler_InvalidProductID(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	w := addCartItem(r, 0)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var errs []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	found := false
	for _, e := range errs {
		if strings.EqualFold(e.Field, "ProductID") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ProductID validation error, got %v", errs)
	}
}

func TestAddCartItemHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	badJSON := `{product_id: 1}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestUpdateCartItemHandler_SetsExactQuantity(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	addCartItem(r, 1)
	w := updateCartItem(r, 1, 5)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Count != 5 {
		t.Errorf("expected count 5, got %d", resp.Count)
	}
	if resp.Total != 5*299.99 {
		t.Errorf("expected total %v, got %v", 5*299.99, resp.Total)
	}
}

func TestUpdateCartItemHandler_ZeroRemovesLine(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	addCartItem(r, 1)
	w := updateCartItem(r, 1, 0)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(resp.Items))
	}
}

func TestUpdateCartItemHandler_UnknownIDIsNoOp(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	addCartItem(r, 1)
	w := updateCartItem(r, 99, 3)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp, _, err := getCart(r)
	if err != nil {
		t.Fatalf("error decoding cart: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("expected count 1, got %d", resp.Count)
	}
}

func TestUpdateCartItemHandler_InvalidID(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/cart/items/abc", handler.QuantityUpdateRequest{Quantity: 1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestRemoveCartItemHandler(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	addCartItem(r, 1)
	w := removeCartItem(r, 1)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content, got %d", w.Code)
	}

	// Removing an id that is not in the cart is still a 204, not an error.
	w = removeCartItem(r, 1)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content for absent id, got %d", w.Code)
	}
}

func TestGetCartHandler_Empty(t *testing.T) {
	t.Cleanup(resetState)
	r := api.NewRouter()

	resp, w, err := getCart(r)
	if err != nil {
		t.Fatalf("error decoding cart: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", w.Code)
	}
	if len(resp.Items) != 0 || resp.Count != 0 || resp.Total != 0 {
		t.Errorf("expected empty cart with zero aggregates, got %+v", resp)
	}
}
