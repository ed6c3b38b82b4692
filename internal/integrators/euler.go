package integrators

import "github.com/san-kum/dynctl/internal/algebra"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn Dynamics, x, u algebra.VecN, t, dt float64) algebra.VecN {
	dx := dyn.Derive(x, u, t)
	result := make(algebra.VecN, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
