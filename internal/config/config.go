// Package config holds the window constants and the optional sand.gcfg
// settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"
	"gopkg.in/warnings.v0"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	TitleWindowTitle   = "The Rings of Power"
	PathwayWindowTitle = "Sand Pathway Sample"

	// DefaultFile is looked up in the working directory at startup.
	DefaultFile = "sand.gcfg"

	JitterFixed  = "fixed"
	JitterReroll = "reroll"
)

// ExampleFile documents every setting along with its default.
const ExampleFile = `# sand.gcfg: every variable is optional.

[Title]
# Path of the image drawn behind the sand. Empty uses the bundled title.png.
# Image = path/to/title.png

# Seed of the grain scatter. 0 picks one from the clock at startup.
Seed = 0

# fixed:  the same scatter every frame, only the wave moves.
# reroll: a new scatter every frame.
Jitter = fixed

# Grain slots per pixel of the diagonal.
Density = 0.1

[Pathways]
Particles = 1500
Curves = 3
# Fraction of the pathway travelled per second.
Speed = 0.03

[Audio]
# Plays a quiet sand hiss while the window is open.
Enabled = false
# Volume in halvings, 0 is unchanged, negative is quieter.
Volume = -2

[Log]
# DEBUG, INFO, WARN or ERROR.
Level = INFO
`

type Title struct {
	Image   string
	Seed    int64
	Jitter  string
	Density float64
}

type Pathways struct {
	Particles int
	Curves    int
	Speed     float64
}

type Audio struct {
	Enabled bool
	Volume  float64
}

type Log struct {
	Level slog.Level
}

// Config is the parsed settings file.
type Config struct {
	Title    Title
	Pathways Pathways
	Audio    Audio
	Log      Log

	warnings []error
}

// Warnings lists unknown sections or variables found while parsing.
func (c *Config) Warnings() []error { return c.warnings }

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Title: Title{
			Jitter:  JitterFixed,
			Density: 0.1,
		},
		Pathways: Pathways{
			Particles: 1500,
			Curves:    3,
			Speed:     0.03,
		},
		Audio: Audio{
			Volume: -2,
		},
		Log: Log{
			Level: slog.LevelInfo,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	cfg := Default()
	if err := cfg.apply(gcfg.ReadFileInto(cfg, path)); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads settings from a string over the defaults.
func Parse(s string) (*Config, error) {
	cfg := Default()
	if err := cfg.apply(gcfg.ReadStringInto(cfg, s)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(err error) error {
	var list warnings.List
	if errors.As(err, &list) {
		c.warnings = list.Warnings
		err = list.Fatal
	}
	if err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	c.Title.Jitter = strings.ToLower(strings.TrimSpace(c.Title.Jitter))
	switch c.Title.Jitter {
	case JitterFixed, JitterReroll:
	default:
		return fmt.Errorf("Title.Jitter must be %q or %q, got %q", JitterFixed, JitterReroll, c.Title.Jitter)
	}
	if c.Title.Density <= 0 {
		return fmt.Errorf("Title.Density must be positive, got %v", c.Title.Density)
	}
	if c.Pathways.Particles < 0 {
		return fmt.Errorf("Pathways.Particles must not be negative, got %d", c.Pathways.Particles)
	}
	if c.Pathways.Curves < 1 {
		return fmt.Errorf("Pathways.Curves must be at least 1, got %d", c.Pathways.Curves)
	}
	return nil
}
