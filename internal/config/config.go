package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Mavwarf/mangaicons/internal/icon"
	"github.com/Mavwarf/mangaicons/internal/paths"
)

// DefaultSizes are the icon sizes the browser extension ships.
var DefaultSizes = []int{48, 96}

// Theme holds color overrides as hex strings. Empty fields keep the
// built-in palette.
type Theme struct {
	Fill    string `json:"fill,omitempty"`
	Outline string `json:"outline,omitempty"`
	Accent  string `json:"accent,omitempty"`
	Paper   string `json:"paper,omitempty"`
	Ink     string `json:"ink,omitempty"`
}

// Config holds the generator settings.
type Config struct {
	Sizes       []int  `json:"sizes"`
	OutputDir   string `json:"output_dir,omitempty"`
	Filename    string `json:"filename,omitempty"`
	Supersample int    `json:"supersample,omitempty"`
	Log         bool   `json:"log,omitempty"`
	Theme       Theme  `json:"theme,omitempty"`

	// Path is the file the config was read from, empty for defaults.
	Path string `json:"-"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Sizes:       append([]int(nil), DefaultSizes...),
		Filename:    paths.DefaultPattern,
		Supersample: 1,
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Validate checks sizes, filename pattern, supersample factor and colors.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no icon sizes configured")
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if err := icon.CheckSize(s); err != nil {
			return err
		}
		if seen[s] {
			return fmt.Errorf("duplicate icon size %d", s)
		}
		seen[s] = true
	}
	if !strings.Contains(c.Filename, paths.SizePlaceholder) {
		return fmt.Errorf("filename %q must contain %s", c.Filename, paths.SizePlaceholder)
	}
	if c.Supersample < 1 || c.Supersample > icon.MaxSupersample {
		return fmt.Errorf("supersample must be 1-%d, got %d", icon.MaxSupersample, c.Supersample)
	}
	_, err := c.IconTheme()
	return err
}

// IconTheme applies the configured color overrides to icon.DefaultTheme.
func (c Config) IconTheme() (icon.Theme, error) {
	th := icon.DefaultTheme
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"fill", c.Theme.Fill, &th.Fill},
		{"outline", c.Theme.Outline, &th.Outline},
		{"accent", c.Theme.Accent, &th.Accent},
		{"paper", c.Theme.Paper, &th.Paper},
		{"ink", c.Theme.Ink, &th.Ink},
	} {
		if f.hex == "" {
			continue
		}
		col, err := icon.ParseHex(f.hex)
		if err != nil {
			return icon.Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return th, nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. mkicon-config.json next to the running binary
//  3. ~/.config/mkicon/mkicon-config.json
//
// A missing file is not an error: Default() is returned. An explicit
// path that cannot be read is.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}
