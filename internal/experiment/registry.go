package experiment

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/integrators"
	"github.com/san-kum/dynctl/internal/metrics"
	"github.com/san-kum/dynctl/internal/sim"
	"github.com/san-kum/dynctl/internal/trajectory"
)

var ErrUnknownComponent = errors.New("experiment: unknown component")

// builder assembles the system, policy and runner of one model.
type builder func(cfg *config.Config, b *build) (runner, error)

type Registry struct {
	models      map[string]builder
	integrators map[string]func() integrators.Integrator
	matchers    map[string]func(tolerance float64) trajectory.Matcher[algebra.Vec3]
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]builder),
		integrators: make(map[string]func() integrators.Integrator),
		matchers:    make(map[string]func(float64) trajectory.Matcher[algebra.Vec3]),
	}

	r.models["body"] = buildBody
	r.models["point"] = buildPoint

	r.integrators["euler"] = func() integrators.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() integrators.Integrator { return integrators.NewRK4() }
	r.integrators["verlet"] = func() integrators.Integrator { return integrators.NewVerlet() }
	r.integrators["leapfrog"] = func() integrators.Integrator { return integrators.NewLeapfrog() }

	r.matchers["radius"] = func(tol float64) trajectory.Matcher[algebra.Vec3] {
		return trajectory.WithinRadius[algebra.Vec3](tol)
	}
	r.matchers["plane"] = func(float64) trajectory.Matcher[algebra.Vec3] {
		return trajectory.PassedPlane[algebra.Vec3]()
	}
	r.matchers["exact"] = func(float64) trajectory.Matcher[algebra.Vec3] {
		return trajectory.Exact[algebra.Vec3]()
	}

	return r
}

func (r *Registry) GetIntegrator(name string) (integrators.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "integrator %q", name)
	}
	return fn(), nil
}

// GetMatcher returns a matcher over positions.
func (r *Registry) GetMatcher(name string, tolerance float64) (trajectory.Matcher[algebra.Vec3], error) {
	fn, ok := r.matchers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "matcher %q", name)
	}
	return fn(tolerance), nil
}

func (r *Registry) ListModels() []string      { return sortedKeys(r.models) }
func (r *Registry) ListIntegrators() []string { return sortedKeys(r.integrators) }
func (r *Registry) ListMatchers() []string    { return sortedKeys(r.matchers) }

// DefaultMetrics are attached to every experiment.
func (r *Registry) DefaultMetrics(cfg *config.Config) []sim.Metric {
	threshold := cfg.Matcher.Tolerance
	if threshold <= 0 {
		threshold = config.DefaultTolerance
	}
	return metrics.Standard(threshold)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
