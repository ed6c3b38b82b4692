package integrators

import "github.com/san-kum/dynctl/internal/algebra"

// RK4 is the classic fourth order Runge-Kutta method. It reuses internal
// buffers and is not safe for concurrent use.
type RK4 struct {
	k1, k2, k3, k4 algebra.VecN
	scratch        algebra.VecN
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(algebra.VecN, n)
		r.k2 = make(algebra.VecN, n)
		r.k3 = make(algebra.VecN, n)
		r.k4 = make(algebra.VecN, n)
		r.scratch = make(algebra.VecN, n)
	}
}

func (r *RK4) Step(dyn Dynamics, x, u algebra.VecN, t, dt float64) algebra.VecN {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, dyn.Derive(x, u, t))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, dyn.Derive(r.scratch, u, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, dyn.Derive(r.scratch, u, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*r.k3[i]
	}
	copy(r.k4, dyn.Derive(r.scratch, u, t+dt))

	result := make(algebra.VecN, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
	return result
}
