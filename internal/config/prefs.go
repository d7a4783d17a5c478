package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user choices made inside the UI.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/tally/prefs.toml"
	// DefaultTheme is used when no preference is stored.
	DefaultTheme = "Nightfox"
)

// DefaultPrefsPath returns the preferences file location used when none is
// given.
func DefaultPrefsPath() string {
	return defaultPrefsPath
}

// LoadPrefs reads preferences from path. Preferences are cosmetic, so any
// failure is logged and the defaults are returned.
func LoadPrefs(path string, logger *log.Logger) Prefs {
	defaults := Prefs{Theme: DefaultTheme}

	resolved, err := resolvePath(path, defaultPrefsPath)
	if err != nil {
		logger.Warn("prefs path unusable", "path", path, "err", err)
		return defaults
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("read prefs", "path", resolved, "err", err)
		}
		return defaults
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		logger.Warn("parse prefs", "path", resolved, "err", err)
		return defaults
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	return p
}

// SavePrefs writes p to path, creating parent directories. The file is
// replaced atomically.
func SavePrefs(path string, p Prefs) error {
	resolved, err := resolvePath(path, defaultPrefsPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
