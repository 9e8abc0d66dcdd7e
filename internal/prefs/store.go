package prefs

// Theme values persisted under the theme key.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ThemeStore persists the display-mode preference. Both operations are
// best-effort: Load reports whether a value was found, and Save failures
// are swallowed by implementations, since the manager can always fall back
// to the system-level signal.
type ThemeStore interface {
	Load() (theme string, ok bool)
	Save(theme string)
}

// MemoryThemeStore is a ThemeStore backed by a plain variable, used in
// tests and as the fallback when Redis is unavailable.
type MemoryThemeStore struct {
	theme string
}

// NewMemoryThemeStore creates an empty in-memory store.
func NewMemoryThemeStore() *MemoryThemeStore {
	return &MemoryThemeStore{}
}

func (s *MemoryThemeStore) Load() (string, bool) {
	return s.theme, s.theme != ""
}

func (s *MemoryThemeStore) Save(theme string) {
	s.theme = theme
}
