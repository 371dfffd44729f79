package config

import (
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/meshedit/pkg/mesh"
	"gopkg.in/yaml.v3"
)

// Config holds the editor settings read from meshedit.yaml
type Config struct {
	// Window
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// Editing
	Tolerance  float64 `yaml:"tolerance"`
	PickRadius float64 `yaml:"pick_radius"`

	// Reloading
	WatchDebounce time.Duration `yaml:"watch_debounce"`

	// New primitives
	Primitive string `yaml:"primitive"`
	Segments  int    `yaml:"segments"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Tolerance float64
	Primitive string
	Segments  int
}

// Default returns a resolved configuration without a file
func Default() Config {
	var cfg Config
	cfg.Resolve(Flags{})
	return cfg
}

// Load reads a YAML config file.
// Fields not set in the file keep their zero values until Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to an empty
// configuration otherwise. Parse errors are still returned.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, nil
	}
	return Load(path)
}

// Resolve applies CLI flags and fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.WindowWidth = flags.Width
	}
	if flags.Height > 0 {
		c.WindowHeight = flags.Height
	}
	if flags.Tolerance > 0 {
		c.Tolerance = flags.Tolerance
	}
	if flags.Primitive != "" {
		c.Primitive = flags.Primitive
	}
	if flags.Segments > 0 {
		c.Segments = flags.Segments
	}

	if c.WindowWidth <= 0 {
		c.WindowWidth = 1400
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 900
	}
	if c.Tolerance <= 0 {
		c.Tolerance = mesh.DefaultTolerance
	}
	if c.PickRadius <= 0 {
		c.PickRadius = 10
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = 100 * time.Millisecond
	}
	if c.Primitive == "" {
		c.Primitive = "box"
	}
	if c.Segments <= 0 {
		c.Segments = 32
	}
}
