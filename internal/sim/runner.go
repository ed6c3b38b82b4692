// Package sim ticks a control policy against a system and records the run.
package sim

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/clock"
	"github.com/san-kum/dynctl/internal/dynamo"
	"github.com/san-kum/dynctl/internal/trajectory"
)

// Runner drives one loop: each tick reads the state, asks the policy for an
// input, applies it and advances the clock.
type Runner[S, U any] struct {
	system    dynamo.System[S, U]
	policy    Policy[S, U]
	clock     *clock.Fixed
	logger    *zap.Logger
	metrics   []Metric
	observers []Observer
}

func NewRunner[S, U any](system dynamo.System[S, U], policy Policy[S, U], clk *clock.Fixed, logger *zap.Logger) *Runner[S, U] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner[S, U]{
		system: system,
		policy: policy,
		clock:  clk,
		logger: logger,
	}
}

func (r *Runner[S, U]) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner[S, U]) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner[S, U]) Clock() *clock.Fixed         { return r.clock }
func (r *Runner[S, U]) System() dynamo.System[S, U] { return r.system }

func (r *Runner[S, U]) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg, r.clock); err != nil {
		return nil, err
	}

	result := &Result{
		Times:   make([]float64, 0, cfg.Steps+1),
		States:  make([][]float64, 0, cfg.Steps+1),
		Inputs:  make([][]float64, 0, cfg.Steps),
		Errors:  make([][]float64, 0, cfg.Steps),
		Metrics: make(map[string]float64),
	}
	for _, m := range r.metrics {
		m.Reset()
	}

	r.logger.Info("run started",
		zap.Int("steps", cfg.Steps),
		zap.Float64("dt", r.clock.DeltaTime()),
		zap.Bool("stop_on_complete", cfg.StopOnComplete))

	result.Times = append(result.Times, r.clock.Time())
	result.States = append(result.States, flatten(r.system.State()))

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, &dynamo.StepError{
				Step:    i,
				Time:    r.clock.Time(),
				Wrapped: multierr.Combine(dynamo.ErrContextCanceled, ctx.Err()),
			}
		default:
		}

		state := r.system.State()
		u, ev := r.control(state)

		sample := Sample{
			Step:  i,
			Time:  r.clock.Time(),
			State: flatten(state),
			Input: flatten(u),
			Error: r.currentError(),
			Event: ev.Kind,
		}
		for _, m := range r.metrics {
			m.Observe(sample)
		}
		for _, obs := range r.observers {
			obs.OnStep(sample)
		}
		if ev.Kind != trajectory.None {
			r.record(result, sample, ev)
		}

		r.system.Update(u)
		r.clock.Advance()
		result.StepsTaken++

		next := flatten(r.system.State())
		if cfg.ValidateState && !algebra.VecN(next).IsValid() {
			r.logger.Warn("state diverged", zap.Int("step", i), zap.Float64s("state", next))
			return result, &dynamo.StepError{Step: i, Time: r.clock.Time(), Wrapped: dynamo.ErrInvalidState}
		}

		result.Times = append(result.Times, r.clock.Time())
		result.States = append(result.States, next)
		result.Inputs = append(result.Inputs, sample.Input)
		result.Errors = append(result.Errors, sample.Error)

		if ev.Kind == trajectory.Completed {
			result.Completed = true
			if cfg.StopOnComplete {
				break
			}
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	r.logger.Info("run finished",
		zap.Int("steps_taken", result.StepsTaken),
		zap.Bool("completed", result.Completed),
		zap.Float64("t", r.clock.Time()))
	return result, nil
}

func (r *Runner[S, U]) control(state S) (U, trajectory.Event[S]) {
	if s, ok := any(r.policy).(stepper[S, U]); ok {
		return s.Step(state)
	}
	return r.policy.Control(state), trajectory.Event[S]{}
}

func (r *Runner[S, U]) currentError() []float64 {
	if src, ok := any(r.policy).(errorSource[S]); ok {
		return flatten(src.Error())
	}
	return nil
}

func (r *Runner[S, U]) record(result *Result, sample Sample, ev trajectory.Event[S]) {
	rec := EventRecord{
		Step:  sample.Step,
		Time:  sample.Time,
		Kind:  ev.Kind.String(),
		Point: flatten(ev.Point),
	}
	result.Events = append(result.Events, rec)

	if ev.Kind == trajectory.Completed {
		r.logger.Info("trajectory completed", zap.Int("step", rec.Step), zap.Float64("t", rec.Time))
		return
	}
	r.logger.Debug("waypoint reached",
		zap.Int("step", rec.Step),
		zap.Float64("t", rec.Time),
		zap.Float64s("point", rec.Point))
}

func validateConfig(cfg Config, clk *clock.Fixed) error {
	if cfg.Steps <= 0 {
		return errors.Wrapf(dynamo.ErrInvalidArgument, "steps must be positive, got %d", cfg.Steps)
	}
	if dt := clk.DeltaTime(); dt <= 0 || math.IsNaN(dt) {
		return errors.Wrapf(dynamo.ErrInvalidArgument, "dt must be positive, got %f", dt)
	}
	return nil
}

func flatten(v any) []float64 {
	if c, ok := v.(algebra.Componenter); ok {
		return c.Components()
	}
	return nil
}
