package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseT2048(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultT2048Config())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	data := []byte("grid:\n  size: 5\nspawn:\n  four_probability: 0.25\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Grid.Size != 5 {
		t.Errorf("Grid.Size = %d, want 5", cfg.Grid.Size)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("FourProbability = %g, want 0.25", cfg.Spawn.FourProbability)
	}
	// Keys not present in the file keep their defaults
	if cfg.Spawn.InitialTiles != 2 {
		t.Errorf("InitialTiles = %d, want 2", cfg.Spawn.InitialTiles)
	}
	if !cfg.Transitions.Await {
		t.Error("Transitions.Await should default to true")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  size: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadT2048(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadT2048(size 1) error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*T2048Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*T2048Config) {}},
		{name: "size 2", modify: func(c *T2048Config) { c.Grid.Size = 2 }},
		{name: "size 1", modify: func(c *T2048Config) { c.Grid.Size = 1 }, wantErr: true},
		{name: "no initial tiles", modify: func(c *T2048Config) { c.Spawn.InitialTiles = 0 }, wantErr: true},
		{name: "full board of initial tiles", modify: func(c *T2048Config) { c.Spawn.InitialTiles = 16 }},
		{name: "too many initial tiles", modify: func(c *T2048Config) { c.Spawn.InitialTiles = 17 }, wantErr: true},
		{name: "probability zero", modify: func(c *T2048Config) { c.Spawn.FourProbability = 0 }},
		{name: "probability one", modify: func(c *T2048Config) { c.Spawn.FourProbability = 1 }},
		{name: "negative probability", modify: func(c *T2048Config) { c.Spawn.FourProbability = -0.1 }, wantErr: true},
		{name: "probability above one", modify: func(c *T2048Config) { c.Spawn.FourProbability = 1.5 }, wantErr: true},
		{name: "narrow cell", modify: func(c *T2048Config) { c.Render.CellWidth = 2 }, wantErr: true},
		{name: "negative ticks", modify: func(c *T2048Config) { c.Transitions.PopTicks = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want wrapped ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset Preset
		want   float64
	}{
		{PresetClassic, 0.5},
		{PresetEasy, 0.1},
		{PresetHard, 0.75},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultT2048Config()
			ApplyT2048Preset(&cfg, tt.preset)
			if cfg.Spawn.FourProbability != tt.want {
				t.Errorf("FourProbability = %g, want %g", cfg.Spawn.FourProbability, tt.want)
			}
		})
	}

	cfg := DefaultT2048Config()
	cfg.Spawn.FourProbability = 0.3
	ApplyT2048Preset(&cfg, "")
	if cfg.Spawn.FourProbability != 0.3 {
		t.Error("empty preset should leave the config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("hard"); got != PresetHard {
		t.Errorf("ParsePreset(hard) = %q", got)
	}
	if got := ParsePreset("insane"); got != "" {
		t.Errorf("ParsePreset(insane) = %q, want empty", got)
	}
}
