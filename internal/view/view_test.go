package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopetech/storefront/internal/models"
	"github.com/dopetech/storefront/internal/prefs"
	"github.com/dopetech/storefront/internal/readiness"
	"github.com/dopetech/storefront/internal/repo"
)

func TestCompose(t *testing.T) {
	catalog := repo.NewMemoryCatalogRepository(repo.SeedProducts())
	cart := repo.NewMemoryCartRepository()
	preferences := prefs.NewManager(prefs.NewMemoryThemeStore(), true)
	gate := readiness.NewGate()

	keyboard, err := catalog.GetByID(1)
	require.NoError(t, err)
	cart.Add(keyboard)
	cart.Add(keyboard)

	snap, err := Compose(catalog, cart, preferences, gate, repo.CatalogFilter{Category: models.CategoryKeyboard})
	require.NoError(t, err)

	assert.Equal(t, 1, snap.ProductCount)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, models.CategoryKeyboard, snap.Products[0].Category)

	require.Len(t, snap.Cart, 1)
	assert.Equal(t, 2, snap.CartCount)
	assert.Equal(t, 2*keyboard.Price, snap.CartTotal)

	assert.Equal(t, models.CategoryKeyboard, snap.Filter.Category)
	assert.True(t, snap.DarkMode)
	assert.False(t, snap.Ready, "gate has not been started")

	// Menu starts with the wildcard and covers every category.
	require.Len(t, snap.Categories, 6)
	assert.Equal(t, models.CategoryAll, snap.Categories[0].ID)
	assert.Equal(t, "All Products", snap.Categories[0].Name)
}

func TestCompose_EmptyFilterDefaultsToAll(t *testing.T) {
	catalog := repo.NewMemoryCatalogRepository(repo.SeedProducts())
	cart := repo.NewMemoryCartRepository()
	preferences := prefs.NewManager(prefs.NewMemoryThemeStore(), false)
	gate := readiness.NewGate()

	snap, err := Compose(catalog, cart, preferences, gate, repo.CatalogFilter{})
	require.NoError(t, err)

	assert.Equal(t, models.CategoryAll, snap.Filter.Category)
	assert.Equal(t, 5, snap.ProductCount)
	assert.Empty(t, snap.Cart)
	assert.Equal(t, 0, snap.CartCount)
	assert.Equal(t, 0.0, snap.CartTotal)
}
