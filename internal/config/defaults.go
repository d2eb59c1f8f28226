package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Grid: GridConfig{
			Size: 4,
		},
		Spawn: SpawnConfig{
			InitialTiles:    2,
			FourProbability: 0.5,
		},
		Render: RenderConfig{
			CellWidth:  7,
			CellHeight: 2,
		},
		Transitions: TransitionsConfig{
			Await:      true,
			SlideTicks: 8,
			PopTicks:   6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
