package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewManager_FallsBackToSystemSignal(t *testing.T) {
	assert.False(t, NewManager(NewMemoryThemeStore(), false).IsDarkMode())
	assert.True(t, NewManager(NewMemoryThemeStore(), true).IsDarkMode())
}

func TestNewManager_PersistedValueWinsOverSystemSignal(t *testing.T) {
	store := NewMemoryThemeStore()
	store.Save(ThemeDark)
	assert.True(t, NewManager(store, false).IsDarkMode())

	store.Save(ThemeLight)
	assert.False(t, NewManager(store, true).IsDarkMode())
}

func TestToggle_PersistsNewMode(t *testing.T) {
	store := NewMemoryThemeStore()
	m := NewManager(store, false)

	dark := m.Toggle()
	assert.True(t, dark)
	assert.Equal(t, ThemeDark, m.Theme())

	saved, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, saved)

	m.Toggle()
	saved, _ = store.Load()
	assert.Equal(t, ThemeLight, saved)
}

func TestToggle_RoundTripAcrossRestart(t *testing.T) {
	store := NewMemoryThemeStore()

	// First session: start light, toggle to dark.
	first := NewManager(store, false)
	first.Toggle()

	// A fresh manager over the same store restores dark without looking
	// at the system signal.
	second := NewManager(store, false)
	assert.True(t, second.IsDarkMode())
}
