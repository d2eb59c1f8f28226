// Package config provides YAML-based configuration loading and spawn
// presets for the 2048 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Grid        GridConfig        `yaml:"grid"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Render      RenderConfig      `yaml:"render"`
	Transitions TransitionsConfig `yaml:"transitions"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size int `yaml:"size"` // Cells per side
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`
	FourProbability float64 `yaml:"four_probability"` // Chance a new tile is 4
}

// RenderConfig defines the terminal layout of one cell.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Characters, including the left border
	CellHeight int `yaml:"cell_height"` // Rows, including the top border
}

// TransitionsConfig defines visual transition timing.
type TransitionsConfig struct {
	Await      bool `yaml:"await"` // Hold input until a transition finishes
	SlideTicks int  `yaml:"slide_ticks"`
	PopTicks   int  `yaml:"pop_ticks"`
}

// Validate reports the first out-of-range setting.
func (c T2048Config) Validate() error {
	if c.Grid.Size < 2 {
		return fmt.Errorf("%w: grid.size %d is below 2", ErrInvalidConfig, c.Grid.Size)
	}
	if n := c.Spawn.InitialTiles; n < 1 || n > c.Grid.Size*c.Grid.Size {
		return fmt.Errorf("%w: spawn.initial_tiles %d is outside [1, %d]",
			ErrInvalidConfig, n, c.Grid.Size*c.Grid.Size)
	}
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: spawn.four_probability %g is outside [0, 1]", ErrInvalidConfig, p)
	}
	if c.Render.CellWidth < 3 || c.Render.CellHeight < 1 {
		return fmt.Errorf("%w: render cell %dx%d is too small",
			ErrInvalidConfig, c.Render.CellWidth, c.Render.CellHeight)
	}
	if c.Transitions.SlideTicks < 0 || c.Transitions.PopTicks < 0 {
		return fmt.Errorf("%w: transition ticks must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Preset represents a named spawn preset.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetEasy    Preset = "easy"
	PresetHard    Preset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(name string) Preset {
	switch Preset(name) {
	case PresetClassic, PresetEasy, PresetHard:
		return Preset(name)
	default:
		return ""
	}
}

// FourProbabilityForPreset returns the four-tile chance of a preset.
func FourProbabilityForPreset(preset Preset) float64 {
	switch preset {
	case PresetEasy:
		return 0.1
	case PresetHard:
		return 0.75
	default:
		return 0.5
	}
}
