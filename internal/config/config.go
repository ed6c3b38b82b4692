package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/rigidbody"
)

const (
	DefaultDt        = 0.01
	DefaultSteps     = 3000
	DefaultTolerance = 0.1
	DefaultMaxForce  = 10.0
	DefaultMaxTorque = 5.0
)

var ErrInvalidConfig = errors.New("config: invalid")

var (
	Models      = []string{"body", "point"}
	Matchers    = []string{"radius", "plane", "exact"}
	Controllers = []string{"pid", "lqr", "none"}
	Integrators = []string{"euler", "rk4", "verlet", "leapfrog"}
)

type Config struct {
	Name           string        `yaml:"name"`
	Model          string        `yaml:"model"`
	Controller     string        `yaml:"controller"`
	Dt             float64       `yaml:"dt"`
	Steps          int           `yaml:"steps"`
	Loop           bool          `yaml:"loop"`
	StopOnComplete bool          `yaml:"stop_on_complete"`
	Seed           int64         `yaml:"seed"`
	Matcher        MatcherConfig `yaml:"matcher"`
	Gains          GainsConfig   `yaml:"gains"`
	Limits         LimitsConfig  `yaml:"limits"`
	Body           BodyConfig    `yaml:"body"`
	Handle         Vector        `yaml:"handle"`
	Initial        Pose          `yaml:"initial"`
	Waypoints      []Pose        `yaml:"waypoints"`
}

type MatcherConfig struct {
	Kind      string  `yaml:"kind"`
	Tolerance float64 `yaml:"tolerance"`
}

// GainsConfig holds (kp, ki, kd) triples.
type GainsConfig struct {
	Position Vector `yaml:"position"`
	Attitude Vector `yaml:"attitude"`
}

// LimitsConfig bounds the actuator. Zero disables a limit.
type LimitsConfig struct {
	MaxForce  float64 `yaml:"max_force"`
	MaxTorque float64 `yaml:"max_torque"`
}

type BodyConfig struct {
	Mass           float64 `yaml:"mass"`
	Inertia        float64 `yaml:"inertia"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`
	Integrator     string  `yaml:"integrator"`
}

// Vector is written as a flow sequence [x, y, z].
type Vector [3]float64

func (v Vector) Vec3() algebra.Vec3 { return algebra.V3(v[0], v[1], v[2]) }
func (v Vector) IsZero() bool       { return v == Vector{} }

type Pose struct {
	Position Vector `yaml:"position,flow"`
	Attitude Vector `yaml:"attitude,flow"`
}

func (p Pose) State() rigidbody.StaticState {
	return rigidbody.StaticState{Position: p.Position.Vec3(), Attitude: p.Attitude.Vec3()}
}

func DefaultConfig() *Config {
	return &Config{
		Name:           "default",
		Model:          "body",
		Controller:     "pid",
		Dt:             DefaultDt,
		Steps:          DefaultSteps,
		StopOnComplete: true,
		Matcher:        MatcherConfig{Kind: "radius", Tolerance: DefaultTolerance},
		Gains: GainsConfig{
			Position: Vector{4, 0, 4},
			Attitude: Vector{2, 0, 1},
		},
		Limits: LimitsConfig{MaxForce: DefaultMaxForce, MaxTorque: DefaultMaxTorque},
		Body: BodyConfig{
			Mass:           1,
			Inertia:        0.1,
			LinearDamping:  0.1,
			AngularDamping: 0.1,
			Integrator:     "rk4",
		},
		Waypoints: []Pose{{Position: Vector{1, 0, 0}}},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first offending field wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case !lo.Contains(Models, c.Model):
		return errors.Wrapf(ErrInvalidConfig, "unknown model %q", c.Model)
	case c.Dt <= 0:
		return errors.Wrapf(ErrInvalidConfig, "dt must be positive, got %v", c.Dt)
	case c.Steps <= 0:
		return errors.Wrapf(ErrInvalidConfig, "steps must be positive, got %d", c.Steps)
	case len(c.Waypoints) == 0:
		return errors.Wrap(ErrInvalidConfig, "no waypoints")
	case c.Limits.MaxForce < 0 || c.Limits.MaxTorque < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative limits %+v", c.Limits)
	case !lo.Contains(Matchers, c.Matcher.Kind):
		return errors.Wrapf(ErrInvalidConfig, "unknown matcher %q", c.Matcher.Kind)
	case c.Matcher.Kind == "radius" && c.Matcher.Tolerance <= 0:
		return errors.Wrapf(ErrInvalidConfig, "matcher tolerance must be positive, got %v", c.Matcher.Tolerance)
	case c.Body.Mass <= 0 || (c.Model == "body" && c.Body.Inertia <= 0):
		return errors.Wrapf(ErrInvalidConfig, "mass and inertia must be positive, got %+v", c.Body)
	}
	return nil
}

// WaypointStates converts the waypoints to rigid body poses.
func (c *Config) WaypointStates() []rigidbody.StaticState {
	return lo.Map(c.Waypoints, func(p Pose, _ int) rigidbody.StaticState { return p.State() })
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Waypoints = append([]Pose(nil), c.Waypoints...)
	return &out
}
