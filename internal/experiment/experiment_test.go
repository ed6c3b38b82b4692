package experiment

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/sim"
)

func TestBuildDefault(t *testing.T) {
	exp, err := Build(config.DefaultConfig(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	steps := 0
	exp.AddObserver(sim.ObserverFunc(func(sim.Sample) { steps++ }))

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Completed {
		t.Fatalf("not completed after %d steps", result.StepsTaken)
	}
	if steps != result.StepsTaken {
		t.Errorf("observer saw %d steps, result has %d", steps, result.StepsTaken)
	}
	if got := result.Metrics["waypoints_reached"]; got != 1 {
		t.Errorf("waypoints_reached = %v, want 1", got)
	}
	if len(result.States[0]) != 6 {
		t.Errorf("state row = %v", result.States[0])
	}
}

func TestBuildPresets(t *testing.T) {
	tests := []struct {
		model, preset string
		waypoints     float64
	}{
		{"point", "line", 3},
		{"body", "hover", 1},
		{"body", "offset", 4},
	}

	for _, tt := range tests {
		t.Run(tt.model+"/"+tt.preset, func(t *testing.T) {
			cfg := config.GetPreset(tt.model, tt.preset)
			exp, err := Build(cfg, zaptest.NewLogger(t))
			if err != nil {
				t.Fatal(err)
			}
			result, err := exp.Run(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if !result.Completed {
				t.Errorf("not completed, final state %v", result.States[len(result.States)-1])
			}
			if got := result.Metrics["waypoints_reached"]; got != tt.waypoints {
				t.Errorf("waypoints_reached = %v, want %v", got, tt.waypoints)
			}
		})
	}
}

func TestOpenLoopDoesNotMove(t *testing.T) {
	cfg := config.GetPreset("point", "drift")
	exp, err := Build(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.StepsTaken != cfg.Steps || result.Completed {
		t.Errorf("steps = %d completed = %v", result.StepsTaken, result.Completed)
	}
	last := result.States[len(result.States)-1]
	if last[2] != 1 {
		t.Errorf("z = %v, want 1", last[2])
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(c *config.Config)
		want  error
	}{
		{"integrator", func(c *config.Config) { c.Body.Integrator = "rk45" }, ErrUnknownComponent},
		{"controller", func(c *config.Config) { c.Controller = "mpc" }, ErrUnknownComponent},
		{"lqr on body", func(c *config.Config) { c.Controller = "lqr" }, ErrUnknownComponent},
		{"invalid", func(c *config.Config) { c.Dt = -1 }, config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.tweak(cfg)
			if _, err := Build(cfg, nil); !errors.Is(err, tt.want) {
				t.Errorf("Build() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistryLists(t *testing.T) {
	r := NewRegistry()
	if got := r.ListIntegrators(); len(got) != 4 || got[0] != "euler" || got[3] != "verlet" {
		t.Errorf("ListIntegrators() = %v", got)
	}
	if got := r.ListModels(); len(got) != 2 || got[0] != "body" {
		t.Errorf("ListModels() = %v", got)
	}
	if got := r.ListMatchers(); len(got) != 3 {
		t.Errorf("ListMatchers() = %v", got)
	}
}
