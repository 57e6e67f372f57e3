// Package preferences persists the display preferences of the terminal
// gallery in a small YAML file under the keys "theme" and "background".
package preferences

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/just-nibble/folio-service/internal/domain"
)

const (
	KeyTheme      = "theme"
	KeyBackground = "background"
)

// Store reads the file once on Open; Save rewrites it.
type Store struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// Open loads preferences from path. A missing file yields the defaults.
func Open(path string) (*Store, domain.Preferences, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	d := domain.DefaultPreferences()
	v.SetDefault(KeyTheme, string(d.Theme))
	v.SetDefault(KeyBackground, d.Background)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return nil, d, errors.Wrapf(err, "failed to read preferences: %s", path)
		}
	}

	prefs := domain.Preferences{
		Theme:      domain.Theme(v.GetString(KeyTheme)),
		Background: v.GetString(KeyBackground),
	}
	if prefs.Theme != domain.ThemeLight && prefs.Theme != domain.ThemeDark {
		prefs.Theme = d.Theme
	}
	if prefs.Background == "" {
		prefs.Background = d.Background
	}

	return &Store{path: path, v: v}, prefs, nil
}

// Save writes p to the preferences file.
func (s *Store) Save(p domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(KeyTheme, string(p.Theme))
	s.v.Set(KeyBackground, p.Background)

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create preferences directory")
		}
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.Wrapf(err, "failed to write preferences: %s", s.path)
	}
	return nil
}
