package experiment

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/clock"
	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/integrators"
	"github.com/san-kum/dynctl/internal/sim"
	"github.com/san-kum/dynctl/internal/trajectory"
)

// runner is the part of sim.Runner that does not depend on the state and
// input types.
type runner interface {
	Run(ctx context.Context, cfg sim.Config) (*sim.Result, error)
	AddMetric(m sim.Metric)
	AddObserver(o sim.Observer)
}

// build carries the components shared by every model.
type build struct {
	clock      *clock.Fixed
	integrator integrators.Integrator
	matcher    trajectory.Matcher[algebra.Vec3]
	logger     *zap.Logger
}

// Experiment is a configured, ready to run scenario.
type Experiment struct {
	cfg    *config.Config
	runner runner
	clock  *clock.Fixed
}

// Build wires a scenario with the default registry.
func Build(cfg *config.Config, logger *zap.Logger) (*Experiment, error) {
	return NewRegistry().Build(cfg, logger)
}

func (r *Registry) Build(cfg *config.Config, logger *zap.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	model, ok := r.models[cfg.Model]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "model %q", cfg.Model)
	}
	integ, err := r.GetIntegrator(lo.CoalesceOrEmpty(cfg.Body.Integrator, "rk4"))
	if err != nil {
		return nil, err
	}
	matcher, err := r.GetMatcher(cfg.Matcher.Kind, cfg.Matcher.Tolerance)
	if err != nil {
		return nil, err
	}

	b := &build{
		clock:      clock.NewFixed(cfg.Dt),
		integrator: integ,
		matcher:    matcher,
		logger:     logger.Named("sim").With(zap.String("scenario", cfg.Name)),
	}
	run, err := model(cfg, b)
	if err != nil {
		return nil, err
	}
	for _, m := range r.DefaultMetrics(cfg) {
		run.AddMetric(m)
	}

	logger.Debug("experiment built",
		zap.String("scenario", cfg.Name),
		zap.String("model", cfg.Model),
		zap.String("controller", cfg.Controller),
		zap.Int("waypoints", len(cfg.Waypoints)),
	)
	return &Experiment{cfg: cfg, runner: run, clock: b.clock}, nil
}

func (e *Experiment) Config() *config.Config { return e.cfg }
func (e *Experiment) Clock() *clock.Fixed    { return e.clock }

// AddObserver registers o for every tick, e.g. a live view.
func (e *Experiment) AddObserver(o sim.Observer) { e.runner.AddObserver(o) }
func (e *Experiment) AddMetric(m sim.Metric)     { e.runner.AddMetric(m) }

// Waypoints returns the positions the scenario visits.
func (e *Experiment) Waypoints() []algebra.Vec3 {
	return lo.Map(e.cfg.Waypoints, func(p config.Pose, _ int) algebra.Vec3 { return p.Position.Vec3() })
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	return e.runner.Run(ctx, sim.Config{
		Steps:          e.cfg.Steps,
		StopOnComplete: e.cfg.StopOnComplete,
		ValidateState:  true,
	})
}
