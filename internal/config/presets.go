package config

import (
	"sort"

	"github.com/samber/lo"
)

func square(side float64) []Pose {
	return []Pose{
		{Position: Vector{side, 0, 0}},
		{Position: Vector{side, side, 0}},
		{Position: Vector{0, side, 0}},
		{Position: Vector{0, 0, 0}},
	}
}

func preset(model, name string, tweak func(c *Config)) *Config {
	c := DefaultConfig()
	c.Model = model
	c.Name = name
	tweak(c)
	return c
}

var Presets = map[string]map[string]*Config{
	"body": {
		"square": preset("body", "square", func(c *Config) {
			c.Steps = 6000
			c.Waypoints = square(2)
		}),
		"loop": preset("body", "loop", func(c *Config) {
			c.Steps = 8000
			c.Loop = true
			c.StopOnComplete = false
			c.Waypoints = square(1)
		}),
		"hover": preset("body", "hover", func(c *Config) {
			c.Steps = 2000
			c.Initial = Pose{Position: Vector{0, 0, 0}}
			c.Waypoints = []Pose{{Position: Vector{0, 0, 2}, Attitude: Vector{0, 0, 0.5}}}
			c.Matcher = MatcherConfig{Kind: "radius", Tolerance: 0.05}
		}),
		"offset": preset("body", "offset", func(c *Config) {
			c.Handle = Vector{0.2, 0, 0}
			c.Waypoints = square(1)
			c.Steps = 6000
		}),
	},
	"point": {
		"line": preset("point", "line", func(c *Config) {
			c.Controller = "lqr"
			c.Matcher = MatcherConfig{Kind: "radius", Tolerance: 0.05}
			c.Body.Integrator = "verlet"
			c.Waypoints = []Pose{
				{Position: Vector{1, 0, 0}},
				{Position: Vector{2, 0, 0}},
				{Position: Vector{3, 0, 0}},
			}
		}),
		"drift": preset("point", "drift", func(c *Config) {
			c.Controller = "none"
			c.Initial = Pose{Position: Vector{0, 0, 1}}
			c.Steps = 500
			c.StopOnComplete = false
		}),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := lo.Keys(modelPresets)
	sort.Strings(names)
	return names
}
