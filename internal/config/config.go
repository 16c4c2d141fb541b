package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode selects which harness drives the scene.
type Mode string

const (
	ModeDesktop  Mode = "desktop"  // GPU window
	ModeTerminal Mode = "terminal" // CPU render into the terminal
	ModeSnapshot Mode = "snapshot" // CPU render of a single frame to PNG
)

const (
	// DefaultWidth and DefaultHeight size the desktop window and snapshots.
	DefaultWidth  = 800
	DefaultHeight = 600
	// DefaultFPS paces the terminal viewer; MaxFPS caps it.
	DefaultFPS = 30
	MaxFPS     = 240
	// DefaultOutputDir receives snapshots.
	DefaultOutputDir = "output"
)

// Config captures the runtime tunables shared by every harness.
type Config struct {
	Mode      Mode
	Width     int
	Height    int
	FPS       int
	Workers   int // CPU render workers, 0 = one per CPU
	OutputDir string
	Mute      bool
}

// Load reads the configuration from PLANETS_* environment variables,
// applying defaults and collecting every invalid override into one error.
func Load() (*Config, error) {
	cfg := &Config{
		Mode:      Mode(strings.ToLower(getString("PLANETS_MODE", string(ModeDesktop)))),
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FPS:       DefaultFPS,
		OutputDir: getString("PLANETS_OUTPUT", DefaultOutputDir),
	}

	var problems []string

	if raw := strings.TrimSpace(os.Getenv("PLANETS_WIDTH")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("PLANETS_WIDTH must be a positive integer, got %q", raw))
		} else {
			cfg.Width = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("PLANETS_HEIGHT")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("PLANETS_HEIGHT must be a positive integer, got %q", raw))
		} else {
			cfg.Height = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("PLANETS_FPS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("PLANETS_FPS must be an integer, got %q", raw))
		} else {
			cfg.FPS = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("PLANETS_WORKERS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("PLANETS_WORKERS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Workers = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("PLANETS_MUTE")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("PLANETS_MUTE must be a boolean value, got %q", raw))
		} else {
			cfg.Mute = value
		}
	}

	if err := cfg.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}
	return cfg, nil
}

// Validate checks values that may also arrive from command-line flags.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDesktop, ModeTerminal, ModeSnapshot:
	default:
		return fmt.Errorf("mode must be one of desktop, terminal, snapshot, got %q", c.Mode)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be in 1..%d, got %d", MaxFPS, c.FPS)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
