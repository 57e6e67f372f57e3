package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/folio-service/internal/domain"
)

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	_, prefs, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestSaveThenOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	store, prefs, err := Open(path)
	require.NoError(t, err)

	prefs.Theme = prefs.Theme.Toggle()
	prefs.Background = "three"
	require.NoError(t, store.Save(prefs))

	_, reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, reloaded.Theme)
	assert.Equal(t, "three", reloaded.Background)
}

func TestOpenIgnoresUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))

	_, prefs, err := Open(path)

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
	assert.Equal(t, domain.DefaultBackground, prefs.Background)
}
