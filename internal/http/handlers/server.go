package handlers

import (
	"github.com/dopetech/storefront/internal/prefs"
	"github.com/dopetech/storefront/internal/readiness"
	repo "github.com/dopetech/storefront/internal/repo"
)

var (
	catalogRepo repo.CatalogRepository
	cartRepo    repo.CartRepository
	themeMgr    *prefs.Manager
	gate        *readiness.Gate
)

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetCartRepo(r repo.CartRepository) {
	cartRepo = r
}

func SetThemeManager(m *prefs.Manager) {
	themeMgr = m
}

func SetReadinessGate(g *readiness.Gate) {
	gate = g
}
