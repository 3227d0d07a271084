package gitls

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme selects the glyph and color shown for each status. Colors are ANSI
// color numbers or hex values as understood by lipgloss.
type Theme struct {
	Created     string `yaml:"created"`
	Deleted     string `yaml:"deleted"`
	RenamedAway string `yaml:"renamed_away"`
	RenamedIn   string `yaml:"renamed_in"`
	Unchanged   string `yaml:"unchanged"`
	Percent     string `yaml:"percent,omitempty"` // colors only
}

type Config struct {
	Glyphs Theme `yaml:"glyphs"`
	Colors Theme `yaml:"colors"`
	// LSColors overrides the LS_COLORS environment variable when set.
	LSColors string `yaml:"ls_colors"`
}

func DefaultConfig() *Config {
	return &Config{
		Glyphs: Theme{
			Created:     "●",
			Deleted:     "●",
			RenamedAway: "←",
			RenamedIn:   "→",
			Unchanged:   "▪",
		},
		Colors: Theme{
			Created:     "2",
			Deleted:     "1",
			RenamedAway: "1",
			RenamedIn:   "2",
			Unchanged:   "4",
			Percent:     "3",
		},
	}
}

// DefaultConfigPath returns ~/.config/gitls/config.yaml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitls", "config.yaml")
}

// LoadConfig reads the YAML file at path over the defaults. A missing file is
// not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	g := c.Glyphs
	for name, v := range map[string]string{
		"created":      g.Created,
		"deleted":      g.Deleted,
		"renamed_away": g.RenamedAway,
		"renamed_in":   g.RenamedIn,
		"unchanged":    g.Unchanged,
	} {
		if v == "" {
			return fmt.Errorf("glyphs.%s must not be empty", name)
		}
	}
	return nil
}

// ResolveLSColors returns the LS_COLORS string to style paths with.
func (c *Config) ResolveLSColors() string {
	if c.LSColors != "" {
		return c.LSColors
	}
	return os.Getenv("LS_COLORS")
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}
