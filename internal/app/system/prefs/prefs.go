// Package prefs persists small per-user viewer preferences in a YAML file.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// ThemeKey is the key under which the dark-theme flag is stored.
const ThemeKey = "dark"

// Store is a key-value store backed by one YAML file. A missing file reads
// as empty; the file and its directory are created on first write.
type Store struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// Open loads the preferences at path.
func Open(path string) (*Store, error) {
	s := Empty(path)

	if _, err := os.Stat(path); err == nil {
		if err := s.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read prefs %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat prefs %s: %w", path, err)
	}

	return s, nil
}

// Empty returns a Store for path that ignores the file's current contents.
// The first write replaces the file.
func Empty(path string) *Store {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return &Store{path: path, v: v}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Bool returns the flag stored under key; absent keys are false.
func (s *Store) Bool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetBool(key)
}

// SetBool stores val under key and writes the file.
func (s *Store) SetBool(key string, val bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	s.v.Set(key, val)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write prefs %s: %w", s.path, err)
	}
	return nil
}

// Theme adapts a Store to the theme flag under ThemeKey.
type Theme struct {
	Store *Store
}

// Load reports whether the dark theme is selected.
func (t Theme) Load() (bool, error) {
	return t.Store.Bool(ThemeKey), nil
}

// Save persists the dark-theme flag.
func (t Theme) Save(dark bool) error {
	return t.Store.SetBool(ThemeKey, dark)
}
