package prefs

import "sync"

// Manager owns the dark-mode preference for the session. At construction it
// restores the persisted theme if one exists; otherwise it takes the
// system-level dark signal. Every explicit toggle is persisted
// synchronously.
type Manager struct {
	mu       sync.Mutex
	store    ThemeStore
	darkMode bool
}

// NewManager initializes the preference from the store, falling back to
// systemDark when nothing is persisted.
func NewManager(store ThemeStore, systemDark bool) *Manager {
	m := &Manager{store: store}
	if theme, ok := store.Load(); ok {
		m.darkMode = theme == ThemeDark
	} else {
		m.darkMode = systemDark
	}
	return m
}

// IsDarkMode reports the current display mode.
func (m *Manager) IsDarkMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.darkMode
}

// Theme returns the current mode as its persisted tag.
func (m *Manager) Theme() string {
	if m.IsDarkMode() {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle flips the display mode and persists the new value.
func (m *Manager) Toggle() bool {
	m.mu.Lock()
	m.darkMode = !m.darkMode
	dark := m.darkMode
	m.mu.Unlock()

	if dark {
		m.store.Save(ThemeDark)
	} else {
		m.store.Save(ThemeLight)
	}
	return dark
}
