package rigidbody

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/clock"
	"github.com/san-kum/dynctl/internal/integrators"
)

// PointMass is a particle pushed by a 3-D force. Its state is the
// [position, velocity] vector, its input the force.
type PointMass struct {
	Mass    float64
	Damping float64

	integ integrators.Integrator
	clock clock.Clock
	x     algebra.VecN
	input algebra.VecN
}

func NewPointMass(mass, damping float64, position algebra.Vec3, integ integrators.Integrator, clk clock.Clock) *PointMass {
	x := make(algebra.VecN, 6)
	copy(x, position.Components())
	return &PointMass{Mass: mass, Damping: damping, integ: integ, clock: clk, x: x}
}

func (p *PointMass) State() algebra.VecN { return p.x.Clone() }
func (p *PointMass) Input() algebra.VecN { return p.input }

func (p *PointMass) Position() algebra.Vec3 { return algebra.V3(p.x[0], p.x[1], p.x[2]) }

func (p *PointMass) Update(force algebra.VecN) {
	p.input = force
	u := make(algebra.VecN, 3)
	copy(u, force)
	p.x = p.integ.Step(p, p.x, u, p.clock.Time(), p.clock.DeltaTime())
}

func (p *PointMass) Derive(x, u algebra.VecN, _ float64) algebra.VecN {
	dx := make(algebra.VecN, 6)
	for i := 0; i < 3; i++ {
		dx[i] = x[3+i]
		dx[3+i] = u[i]/p.Mass - p.Damping*x[3+i]
	}
	return dx
}

// Waypoint is the point mass state at rest at position.
func Waypoint(position algebra.Vec3) algebra.VecN {
	x := make(algebra.VecN, 6)
	copy(x, position.Components())
	return x
}
