package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	handler "github.com/dopetech/storefront/internal/http/handlers"
	rl "github.com/dopetech/storefront/internal/http/rate_limiter"
	"github.com/dopetech/storefront/internal/prefs"
	"github.com/dopetech/storefront/internal/readiness"
	"github.com/dopetech/storefront/internal/repo"
)

var (
	cartRepo   *repo.MemoryCartRepository
	themeStore *prefs.MemoryThemeStore
	gate       *readiness.Gate
)

func init() {
	handler.SetCatalogRepo(repo.NewMemoryCatalogRepository(repo.SeedProducts()))

	cartRepo = repo.NewMemoryCartRepository()
	handler.SetCartRepo(cartRepo)

	resetTheme()
	openGate()
}

// resetTheme installs a fresh light-mode manager over a fresh store.
func resetTheme() {
	themeStore = prefs.NewMemoryThemeStore()
	handler.SetThemeManager(prefs.NewManager(themeStore, false))
}

// openGate installs a gate that has already fired.
func openGate() {
	gate = readiness.NewGate()
	gate.Start(time.Millisecond)
	<-gate.Done()
	handler.SetReadinessGate(gate)
}

func resetState() {
	cartRepo.Clear()
	rl.CleanupAllVisitors()
	resetTheme()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addCartItem(r http.Handler, productID int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: productID})
}

func updateCartItem(r http.Handler, productID, quantity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, fmt.Sprintf("/cart/items/%d", productID), handler.QuantityUpdateRequest{Quantity: quantity})
}

func removeCartItem(r http.Handler, productID int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodDelete, fmt.Sprintf("/cart/items/%d", productID), nil)
}

func getCart(r http.Handler) (handler.CartResponse, *httptest.ResponseRecorder, error) {
	w := doJSON(r, http.MethodGet, "/cart", nil)
	var resp handler.CartResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, w, err
}
