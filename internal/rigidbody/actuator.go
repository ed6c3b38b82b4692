package rigidbody

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/dynamo"
)

// Actuator saturates the force and torque sent to a body. A vector longer
// than its limit is scaled down to the limit along the same direction. A
// non-positive limit disables saturation.
//
// Input reports the input as commanded; Applied reports it after saturation.
type Actuator struct {
	*dynamo.InputMappedSystem[StaticState, DynamicInput, DynamicInput]

	MaxForce  float64
	MaxTorque float64
	applied   DynamicInput
}

func NewActuator(sys dynamo.System[StaticState, DynamicInput], maxForce, maxTorque float64) *Actuator {
	a := &Actuator{MaxForce: maxForce, MaxTorque: maxTorque}
	a.InputMappedSystem = dynamo.MapSystemInput(sys, a.limit)
	return a
}

func (a *Actuator) limit(_ StaticState, in DynamicInput) DynamicInput {
	out := in
	if a.MaxForce > 0 {
		out.Force = in.Force.ClampMagnitude(a.MaxForce)
	}
	if a.MaxTorque > 0 {
		out.Torque = in.Torque.ClampMagnitude(a.MaxTorque)
	}
	a.applied = out
	return out
}

// Applied is the last input after saturation.
func (a *Actuator) Applied() DynamicInput { return a.applied }

// Saturated reports whether the last input was clamped.
func (a *Actuator) Saturated() bool {
	return a.applied != a.Input()
}

// ClampForce is an input mapper for force-driven systems such as PointMass:
// it scales the force down to limit when it is longer. A non-positive limit
// disables it.
func ClampForce(limit float64) func(state, force algebra.VecN) algebra.VecN {
	return func(_ algebra.VecN, force algebra.VecN) algebra.VecN {
		if limit <= 0 || force.SqrMagnitude() <= limit*limit {
			return force
		}
		return force.Normalized().ScaleReal(limit)
	}
}
