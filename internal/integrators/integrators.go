// Package integrators advances continuous dynamics by one fixed tick.
//
// Second order integrators ([Verlet], [Leapfrog]) expect the state laid out as
// n positions followed by n velocities.
package integrators

import "github.com/san-kum/dynctl/internal/algebra"

// Dynamics is a first order ODE dx/dt = f(x, u, t).
type Dynamics interface {
	Derive(x, u algebra.VecN, t float64) algebra.VecN
}

// DynamicsFunc adapts a function to Dynamics.
type DynamicsFunc func(x, u algebra.VecN, t float64) algebra.VecN

func (f DynamicsFunc) Derive(x, u algebra.VecN, t float64) algebra.VecN {
	return f(x, u, t)
}

// Integrator advances x by dt holding u constant.
type Integrator interface {
	Step(dyn Dynamics, x, u algebra.VecN, t, dt float64) algebra.VecN
}
