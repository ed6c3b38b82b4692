package integrators

import "github.com/san-kum/dynctl/internal/algebra"

// Verlet is velocity Verlet for a [positions, velocities] state.
type Verlet struct {
	scratch algebra.VecN
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(dyn Dynamics, x, u algebra.VecN, t, dt float64) algebra.VecN {
	n := len(x)
	half := n / 2
	if len(v.scratch) != n {
		v.scratch = make(algebra.VecN, n)
	}

	result := make(algebra.VecN, n)
	dx := dyn.Derive(x, u, t)
	dt2 := dt * dt

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt2
	}

	for i := 0; i < half; i++ {
		v.scratch[i] = result[i]
		v.scratch[half+i] = x[half+i]
	}

	dxNew := dyn.Derive(v.scratch, u, t+dt)
	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + (dx[half+i]+dxNew[half+i])*halfDt
	}
	return result
}

// Leapfrog is the kick-drift-kick scheme for a [positions, velocities] state.
type Leapfrog struct {
	scratch algebra.VecN
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(dyn Dynamics, x, u algebra.VecN, t, dt float64) algebra.VecN {
	n := len(x)
	half := n / 2
	if len(l.scratch) != n {
		l.scratch = make(algebra.VecN, n)
	}

	result := make(algebra.VecN, n)
	dx := dyn.Derive(x, u, t)
	halfDt := dt * 0.5

	for i := 0; i < half; i++ {
		l.scratch[half+i] = x[half+i] + dx[half+i]*halfDt
	}

	for i := 0; i < half; i++ {
		result[i] = x[i] + l.scratch[half+i]*dt
		l.scratch[i] = result[i]
	}

	dxNew := dyn.Derive(l.scratch, u, t+dt)
	for i := 0; i < half; i++ {
		result[half+i] = l.scratch[half+i] + dxNew[half+i]*halfDt
	}
	return result
}
