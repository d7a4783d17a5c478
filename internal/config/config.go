package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

// Group is one labelled list of items.
type Group struct {
	Label string   `toml:"label"`
	Items []string `toml:"items"`
}

// Config is the resolved tally configuration.
type Config struct {
	Groups   []Group
	LogFile  string
	LogLevel log.Level
}

const (
	defaultConfigPath = "~/.config/tally/config.toml"
	defaultLogFile    = "~/.local/state/tally/tally.log"
	defaultLogLevel   = "info"
)

// DefaultGroups returns the built-in group table.
func DefaultGroups() []Group {
	return []Group{
		{Label: "Classics", Items: []string{"apple", "banana", "orange", "blueberry"}},
		{Label: "Greens", Items: []string{"kiwi", "lime", "grape", "honeydew"}},
		{Label: "Orchard", Items: []string{"pear", "pineapple", "mango", "cherry"}},
		{Label: "Berries", Items: []string{"strawberry", "raspberry", "plum", "peach"}},
	}
}

// Load reads the config at path, or the default location when path is blank.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Groups:   DefaultGroups(),
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: log.InfoLevel,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile  *string `toml:"log_file"`
		LogLevel string  `toml:"log_level"`
		Groups   []Group `toml:"groups"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// An explicit empty log_file disables logging.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if trimmed := strings.TrimSpace(*raw.LogFile); trimmed != "" {
			cfg.LogFile = mustExpand(trimmed)
		}
	}

	level := strings.TrimSpace(raw.LogLevel)
	if level == "" {
		level = defaultLogLevel
	}
	cfg.LogLevel, err = log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return Config{}, fmt.Errorf("parse config: log_level %q: %w", raw.LogLevel, err)
	}

	if len(raw.Groups) > 0 {
		cfg.Groups = normalizeGroups(raw.Groups)
	}

	return cfg, nil
}

// Labels returns the group labels in order.
func (c Config) Labels() []string {
	labels := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		labels[i] = g.Label
	}
	return labels
}

// Table returns the items of every group in order.
func (c Config) Table() [][]string {
	table := make([][]string, len(c.Groups))
	for i, g := range c.Groups {
		items := make([]string, len(g.Items))
		copy(items, g.Items)
		table[i] = items
	}
	return table
}

// normalizeGroups trims labels and names unlabelled groups "List <n>". Items
// are kept verbatim.
func normalizeGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		label := strings.TrimSpace(g.Label)
		if label == "" {
			label = fmt.Sprintf("List %d", i+1)
		}
		items := g.Items
		if items == nil {
			items = []string{}
		}
		out[i] = Group{Label: label, Items: items}
	}
	return out
}
