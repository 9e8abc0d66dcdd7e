package handlers

import (
	"net/http"

	"github.com/dopetech/storefront/internal/view"
)

// StorefrontHandler godoc
// @Summary Get the composed storefront view
// @Description Returns the filtered product list, category menu, cart state with aggregates, current filter, theme and readiness flag in one snapshot.
// @Tags storefront
// @Produce json
// @Param category query string false "Category id, or all"
// @Param q query string false "Search text"
// @Success 200 {object} view.Snapshot
// @Failure 500 {string} string "Internal error"
// @Router /storefront [get]
func StorefrontHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := view.Compose(catalogRepo, cartRepo, themeMgr, gate, catalogFilterFromQuery(r))
	if err != nil {
		http.Error(w, "could not compose view", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// ReadinessHandler godoc
// @Summary Report whether the startup gate has opened
// @Tags storefront
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /ready [get]
func ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	ready := gate.Ready()
	if !ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, ReadinessResponse{Ready: ready})
}

// CheckoutHandler godoc
// @Summary Checkout stub
// @Description There is no checkout backend; the endpoint exists so the button has somewhere to point.
// @Tags storefront
// @Success 501 {string} string "Not implemented"
// @Router /checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "checkout is not implemented", http.StatusNotImplemented)
}
