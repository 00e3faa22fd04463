// Package lifecycle holds the ambient context the host shell shares with an
// embedded frame: locale, theme, CSS variables, and placement flags.
//
// The store is populated from inbound context events; all reads are
// absent-safe and return zero values until the first snapshot arrives.
package lifecycle

import (
	"maps"
	"sync"
)

// Snapshot is one consistent view of the ambient context.
type Snapshot struct {
	// CurrentLocale is the active locale (e.g. "en", "de").
	CurrentLocale string

	// CurrentTheme is the active theme name.
	CurrentTheme string

	// CSSVariables maps CSS custom-property names to values.
	CSSVariables map[string]string

	// SplitView reports whether the frame runs inside a split view.
	SplitView bool

	// Modal reports whether the frame runs inside a modal.
	Modal bool

	// Drawer reports whether the frame runs inside a drawer.
	Drawer bool
}

// Store is the thread-safe ambient context store.
type Store struct {
	mu          sync.RWMutex
	snapshot    Snapshot
	initialized bool
}

// NewStore creates an empty, uninitialized store.
func NewStore() *Store {
	return &Store{}
}

// Apply replaces the stored snapshot and marks the store initialized.
func (s *Store) Apply(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.initialized = true
}

// SetLocale updates only the current locale, keeping the rest of the
// snapshot. Used for host-announced locale changes between full context
// updates.
func (s *Store) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.CurrentLocale = locale
	s.initialized = true
}

// Snapshot returns a copy of the current context and whether the store has
// been initialized.
func (s *Store) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.snapshot
	if snapshot.CSSVariables != nil {
		snapshot.CSSVariables = maps.Clone(snapshot.CSSVariables)
	}

	return snapshot, s.initialized
}

// CurrentLocale returns the active locale, or "" before initialization.
func (s *Store) CurrentLocale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.CurrentLocale
}

// CurrentTheme returns the active theme, or "" before initialization.
func (s *Store) CurrentTheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.CurrentTheme
}

// CSSVariables returns a copy of the CSS custom-property map. Never nil.
func (s *Store) CSSVariables() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot.CSSVariables == nil {
		return map[string]string{}
	}

	return maps.Clone(s.snapshot.CSSVariables)
}

// SplitView reports whether the frame runs inside a split view.
func (s *Store) SplitView() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.SplitView
}

// Modal reports whether the frame runs inside a modal.
func (s *Store) Modal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Modal
}

// Drawer reports whether the frame runs inside a drawer.
func (s *Store) Drawer() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Drawer
}

// SnapshotFromPayload decodes a context-update data payload into a Snapshot.
func SnapshotFromPayload(data map[string]any) Snapshot {
	snapshot := Snapshot{}

	snapshot.CurrentLocale, _ = data["currentLocale"].(string)
	snapshot.CurrentTheme, _ = data["currentTheme"].(string)
	snapshot.SplitView, _ = data["splitView"].(bool)
	snapshot.Modal, _ = data["modal"].(bool)
	snapshot.Drawer, _ = data["drawer"].(bool)

	if raw, ok := data["cssVariables"].(map[string]any); ok {
		vars := make(map[string]string, len(raw))

		for name, value := range raw {
			if str, ok := value.(string); ok {
				vars[name] = str
			}
		}

		snapshot.CSSVariables = vars
	}

	return snapshot
}
