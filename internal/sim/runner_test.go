package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/clock"
	"github.com/san-kum/dynctl/internal/control"
	"github.com/san-kum/dynctl/internal/dynamo"
	"github.com/san-kum/dynctl/internal/trajectory"
)

type F = algebra.Float

func plant() *dynamo.FuncSystem[F, F] {
	return dynamo.NewSystem(F(0), func(x, u F) F { return x + u })
}

func halfGain() *control.Error[F, F] {
	return control.NewError(func(e F) F { return 0.5 * e })
}

type countMetric struct {
	count int
	sum   float64
}

func (m *countMetric) Name() string { return "count" }
func (m *countMetric) Observe(s Sample) {
	m.count++
	m.sum += s.Error[0]
}
func (m *countMetric) Value() float64 { return float64(m.count) }
func (m *countMetric) Reset()         { m.count, m.sum = 0, 0 }

func TestRunnerHold(t *testing.T) {
	r := NewRunner[F, F](plant(), Hold[F, F](halfGain(), 10), clock.NewFixed(0.1), zaptest.NewLogger(t))
	metric := &countMetric{}
	r.AddMetric(metric)

	var seen []int
	r.AddObserver(ObserverFunc(func(s Sample) { seen = append(seen, s.Step) }))

	result, err := r.Run(context.Background(), Config{Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 || len(result.Times) != 11 {
		t.Errorf("expected 11 states and times, got %d and %d", len(result.States), len(result.Times))
	}
	if len(result.Inputs) != 10 || len(result.Errors) != 10 {
		t.Errorf("expected 10 inputs and errors, got %d and %d", len(result.Inputs), len(result.Errors))
	}
	if result.Metrics["count"] != 10 {
		t.Errorf("expected 10 observations, got %v", result.Metrics["count"])
	}
	if len(seen) != 10 || seen[9] != 9 {
		t.Errorf("observer saw %v", seen)
	}
	if result.Errors[0][0] != 10 {
		t.Errorf("first error = %v, want 10", result.Errors[0])
	}

	final := result.States[len(result.States)-1][0]
	want := 10 * (1 - math.Pow(0.5, 10))
	if math.Abs(final-want) > 1e-9 {
		t.Errorf("final state %v, want %v", final, want)
	}
	if math.Abs(result.Times[10]-1) > 1e-9 {
		t.Errorf("final time %v, want 1", result.Times[10])
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		cfg  Config
	}{
		{"zero steps", 0.1, Config{Steps: 0}},
		{"negative steps", 0.1, Config{Steps: -1}},
		{"zero dt", 0, Config{Steps: 10}},
		{"negative dt", -0.1, Config{Steps: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner[F, F](plant(), Hold[F, F](halfGain(), 1), clock.NewFixed(tt.dt), nil)
			_, err := r.Run(context.Background(), tt.cfg)
			if !errors.Is(err, dynamo.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner[F, F](plant(), Hold[F, F](halfGain(), 1), clock.NewFixed(0.1), zaptest.NewLogger(t))
	result, err := r.Run(ctx, Config{Steps: 10})
	if !errors.Is(err, context.Canceled) || !errors.Is(err, dynamo.ErrContextCanceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	var stepErr *dynamo.StepError
	if !errors.As(err, &stepErr) || stepErr.Step != 0 {
		t.Errorf("expected StepError at step 0, got %v", err)
	}
	if result.StepsTaken != 0 {
		t.Errorf("steps taken = %d", result.StepsTaken)
	}
}

func TestRunnerDetectsDivergence(t *testing.T) {
	nan := control.NewManual[F](F(math.NaN()))
	r := NewRunner[F, F](plant(), Hold[F, F](nan, 0), clock.NewFixed(0.1), zaptest.NewLogger(t))
	_, err := r.Run(context.Background(), Config{Steps: 5, ValidateState: true})
	if !errors.Is(err, dynamo.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestRunnerStopsOnComplete(t *testing.T) {
	traj, err := trajectory.NewTracked([]F{2, 4}, trajectory.WithinRadius[F](0.01), false)
	if err != nil {
		t.Fatal(err)
	}
	tracker := trajectory.NewErrorTracker[F, F](halfGain(), traj)
	r := NewRunner[F, F](plant(), tracker, clock.NewFixed(0.1), zaptest.NewLogger(t))

	result, err := r.Run(context.Background(), Config{Steps: 500, StopOnComplete: true})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Completed {
		t.Fatal("run did not complete")
	}
	if result.StepsTaken >= 500 {
		t.Errorf("run did not stop early: %d steps", result.StepsTaken)
	}
	if len(result.Events) != 2 {
		t.Fatalf("events = %v", result.Events)
	}
	if result.Events[0].Kind != "point_reached" || result.Events[1].Kind != "completed" {
		t.Errorf("event kinds = %q, %q", result.Events[0].Kind, result.Events[1].Kind)
	}
	if result.Events[1].Point[0] != 4 {
		t.Errorf("completed at %v, want 4", result.Events[1].Point)
	}
}

func TestHoldError(t *testing.T) {
	h := Hold[F, F](halfGain(), 3)
	h.Control(1)
	if h.Error() != 2 {
		t.Errorf("Error() = %v, want 2", h.Error())
	}
	open := Hold[F, F](control.NewManual[F](F(1)), 3)
	open.Control(1)
	if open.Error() != 0 {
		t.Errorf("Error() without error controller = %v, want 0", open.Error())
	}
}
