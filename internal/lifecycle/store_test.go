package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_ReadsBeforeInitializationAreAbsentSafe(t *testing.T) {
	store := NewStore()

	require.Empty(t, store.CurrentLocale())
	require.Empty(t, store.CurrentTheme())
	require.NotNil(t, store.CSSVariables())
	require.Empty(t, store.CSSVariables())
	require.False(t, store.SplitView())
	require.False(t, store.Modal())
	require.False(t, store.Drawer())

	_, initialized := store.Snapshot()
	require.False(t, initialized)
}

func TestStore_ApplyAndRead(t *testing.T) {
	store := NewStore()

	store.Apply(Snapshot{
		CurrentLocale: "de",
		CurrentTheme:  "sap_horizon",
		CSSVariables:  map[string]string{"--brand-color": "#123456"},
		SplitView:     true,
		Modal:         false,
		Drawer:        true,
	})

	require.Equal(t, "de", store.CurrentLocale())
	require.Equal(t, "sap_horizon", store.CurrentTheme())
	require.Equal(t, map[string]string{"--brand-color": "#123456"}, store.CSSVariables())
	require.True(t, store.SplitView())
	require.False(t, store.Modal())
	require.True(t, store.Drawer())

	snapshot, initialized := store.Snapshot()
	require.True(t, initialized)
	require.Equal(t, "de", snapshot.CurrentLocale)
}

func TestStore_SetLocaleKeepsRestOfSnapshot(t *testing.T) {
	store := NewStore()
	store.Apply(Snapshot{CurrentLocale: "en", CurrentTheme: "dark"})

	store.SetLocale("fr")

	require.Equal(t, "fr", store.CurrentLocale())
	require.Equal(t, "dark", store.CurrentTheme())
}

func TestStore_CSSVariablesReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Apply(Snapshot{CSSVariables: map[string]string{"--a": "1"}})

	vars := store.CSSVariables()
	vars["--a"] = "mutated"

	require.Equal(t, "1", store.CSSVariables()["--a"])
}

func TestSnapshotFromPayload(t *testing.T) {
	snapshot := SnapshotFromPayload(map[string]any{
		"currentLocale": "en",
		"currentTheme":  "light",
		"splitView":     true,
		"modal":         true,
		"drawer":        false,
		"cssVariables": map[string]any{
			"--brand-color": "#123456",
			"--spacing":     8, // non-string values are skipped
		},
	})

	require.Equal(t, "en", snapshot.CurrentLocale)
	require.Equal(t, "light", snapshot.CurrentTheme)
	require.True(t, snapshot.SplitView)
	require.True(t, snapshot.Modal)
	require.False(t, snapshot.Drawer)
	require.Equal(t, map[string]string{"--brand-color": "#123456"}, snapshot.CSSVariables)
}

func TestSnapshotFromPayload_Empty(t *testing.T) {
	snapshot := SnapshotFromPayload(map[string]any{})

	require.Empty(t, snapshot.CurrentLocale)
	require.Nil(t, snapshot.CSSVariables)
}
