package handlers

import "net/http"

// GetThemeHandler godoc
// @Summary Get the current display mode
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /theme [get]
func GetThemeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeResponse{
		Theme:    themeMgr.Theme(),
		DarkMode: themeMgr.IsDarkMode(),
	})
}

// ToggleThemeHandler godoc
// @Summary Toggle between dark and light mode
// @Description The new mode is persisted best-effort; a persistence failure does not fail the request.
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /theme/toggle [post]
func ToggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	dark := themeMgr.Toggle()
	writeJSON(w, http.StatusOK, ThemeResponse{
		Theme:    themeMgr.Theme(),
		DarkMode: dark,
	})
}
