package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

const settingsFile = "settings.toml"

// appName is the directory name used under the user's config dir.
const appName = "lacquer"

// DefaultDir returns $XDG_CONFIG_HOME/lacquer (or the platform equivalent).
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

type settingsData struct {
	Theme     string   `toml:"theme,omitempty"`
	ThemeDirs []string `toml:"theme_dirs,omitempty"`
}

// Settings stores user preferences in settings.toml inside dir.
type Settings struct {
	mu   sync.RWMutex
	data settingsData
	dir  string // directory holding settings.toml
}

// NewSettings creates settings that persist to the given directory.
func NewSettings(dir string) *Settings {
	return &Settings{dir: dir}
}

// Dir is the directory settings persist to.
func (s *Settings) Dir() string {
	return s.dir
}

// Load reads settings from disk. A missing file is not an error.
func (s *Settings) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, settingsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	var parsed settingsData
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	s.data = parsed
	return nil
}

// Save writes settings to disk, creating the directory if needed.
func (s *Settings) Save() error {
	s.mu.RLock()
	data, err := toml.Marshal(s.data)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, settingsFile), data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Theme is the selected theme id, or "" when none was chosen.
func (s *Settings) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Theme
}

// SetTheme records the selected theme id.
func (s *Settings) SetTheme(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Theme = id
}

// ThemeDirs returns the extra discovery directories configured by the user.
func (s *Settings) ThemeDirs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.data.ThemeDirs...)
}

// AddThemeDir appends a discovery directory unless it is already present.
func (s *Settings) AddThemeDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.data.ThemeDirs {
		if d == dir {
			return
		}
	}
	s.data.ThemeDirs = append(s.data.ThemeDirs, dir)
}
