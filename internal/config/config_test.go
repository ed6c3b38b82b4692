package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/san-kum/dynctl/internal/algebra"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "body" {
		t.Errorf("expected model body, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(c *Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"no steps", func(c *Config) { c.Steps = -1 }},
		{"no waypoints", func(c *Config) { c.Waypoints = nil }},
		{"negative force", func(c *Config) { c.Limits.MaxForce = -1 }},
		{"unknown matcher", func(c *Config) { c.Matcher.Kind = "close" }},
		{"unknown model", func(c *Config) { c.Model = "pendulum" }},
		{"zero tolerance", func(c *Config) { c.Matcher.Tolerance = 0 }},
		{"massless", func(c *Config) { c.Body.Mass = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.tweak(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := []byte(`
name: zigzag
steps: 500
waypoints:
  - position: [1, 0, 0]
  - position: [1, 1, 0]
    attitude: [0, 0, 0.3]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "zigzag" || cfg.Steps != 500 {
		t.Errorf("got name %q steps %d", cfg.Name, cfg.Steps)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("dt = %v, want default %v", cfg.Dt, DefaultDt)
	}
	states := cfg.WaypointStates()
	if len(states) != 2 || states[1].Attitude != algebra.V3(0, 0, 0.3) {
		t.Errorf("waypoints = %v", states)
	}
}

func TestSaveLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.yaml")
	cfg := GetPreset("body", "square")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Waypoints) != len(cfg.Waypoints) || loaded.Waypoints[2] != cfg.Waypoints[2] {
		t.Errorf("waypoints = %v, want %v", loaded.Waypoints, cfg.Waypoints)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("point", "line")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Controller != "lqr" {
		t.Errorf("expected lqr, got %s", cfg.Controller)
	}

	cfg.Waypoints[0].Position[0] = 42
	if again := GetPreset("point", "line"); again.Waypoints[0].Position[0] == 42 {
		t.Error("preset mutated through returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("body", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "square")
	if cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("body")
	want := []string{"hover", "loop", "offset", "square"}
	if len(presets) != len(want) {
		t.Fatalf("got %v, want %v", presets, want)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("got %v, want %v", presets, want)
		}
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresetsValid(t *testing.T) {
	for model, byName := range Presets {
		for name, cfg := range byName {
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", model, name, err)
			}
		}
	}
}
