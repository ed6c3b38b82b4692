package rigidbody

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/clock"
	"github.com/san-kum/dynctl/internal/integrators"
)

// BodyParams describes the inertia of a simulated body. Inertia is the
// moment of inertia about any axis through the center of mass (the body is
// treated as isotropic). Damping terms are linear drag coefficients.
type BodyParams struct {
	Mass           float64
	Inertia        float64
	LinearDamping  float64
	AngularDamping float64
}

func DefaultBodyParams() BodyParams {
	return BodyParams{
		Mass:           1.0,
		Inertia:        0.1,
		LinearDamping:  0.1,
		AngularDamping: 0.1,
	}
}

// Body is a simulated rigid body. Translation is integrated with the
// configured integrator over the state [position, velocity]; orientation is
// kept as a unit quaternion and advanced by the angular velocity each tick.
//
// Forces are applied at ActionPoint, an offset from the center of mass in
// world axes, so an off-center force also produces a torque.
type Body struct {
	ActionPoint algebra.Vec3

	params BodyParams
	integ  integrators.Integrator
	clock  clock.Clock

	x     algebra.VecN
	omega algebra.Vec3
	q     mgl64.Quat
	input DynamicInput
}

func NewBody(params BodyParams, initial StaticState, integ integrators.Integrator, clk clock.Clock) *Body {
	b := &Body{
		params: params,
		integ:  integ,
		clock:  clk,
		x:      make(algebra.VecN, 6),
		q:      toQuat(initial.Attitude),
	}
	copy(b.x, initial.Position.Components())
	return b
}

func (b *Body) State() StaticState {
	return StaticState{
		Position: algebra.V3(b.x[0], b.x[1], b.x[2]),
		Attitude: fromQuat(b.q),
	}
}

func (b *Body) Input() DynamicInput { return b.input }

// Velocity is the linear velocity of the center of mass.
func (b *Body) Velocity() algebra.Vec3 { return algebra.V3(b.x[3], b.x[4], b.x[5]) }

// AngularVelocity is in world axes, radians per second.
func (b *Body) AngularVelocity() algebra.Vec3 { return b.omega }

func (b *Body) Update(in DynamicInput) {
	b.input = in
	dt := b.clock.DeltaTime()
	t := b.clock.Time()

	b.x = b.integ.Step(b, b.x, algebra.VecN(in.Force.Components()), t, dt)

	torque := in.Torque.Plus(b.ActionPoint.Cross(in.Force))
	alpha := torque.ScaleReal(1 / b.params.Inertia).Minus(b.omega.ScaleReal(b.params.AngularDamping))
	b.omega = b.omega.Plus(alpha.ScaleReal(dt))
	b.q = toQuat(b.omega.ScaleReal(dt)).Mul(b.q).Normalize()
}

// Derive is the translational dynamics: x = [p, v], u = force.
func (b *Body) Derive(x, u algebra.VecN, _ float64) algebra.VecN {
	dx := make(algebra.VecN, 6)
	for i := 0; i < 3; i++ {
		dx[i] = x[3+i]
		dx[3+i] = u[i]/b.params.Mass - b.params.LinearDamping*x[3+i]
	}
	return dx
}

func toQuat(aa algebra.Vec3) mgl64.Quat {
	angle := aa.Magnitude()
	if angle < algebra.Epsilon {
		return mgl64.QuatIdent()
	}
	axis := aa.Normalized()
	return mgl64.QuatRotate(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z})
}

// fromQuat returns the axis-angle vector of q with an angle in [0, π].
func fromQuat(q mgl64.Quat) algebra.Vec3 {
	q = q.Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}
	w := math.Min(q.W, 1)
	s := math.Sqrt(1 - w*w)
	if s < algebra.Epsilon {
		return algebra.Vec3{}
	}
	angle := 2 * math.Acos(w)
	return algebra.V3(q.V[0], q.V[1], q.V[2]).ScaleReal(angle / s)
}
