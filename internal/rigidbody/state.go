// Package rigidbody controls the pose of a rigid body with forces and
// torques.
//
// A pose is a [StaticState] (position plus axis-angle attitude); the body is
// driven by a [DynamicInput] (force plus torque). Gains are [algebra.Vec2]
// values whose X weights the translational part and Y the rotational part.
package rigidbody

import (
	"fmt"

	"github.com/san-kum/dynctl/internal/algebra"
)

// StaticState is the pose of a body. Attitude is an axis-angle vector in
// radians.
//
// Plus composes attitudes as rotations, which is not commutative: a.Plus(b)
// applies b's rotation and then a's. StaticState is nevertheless used where
// an abelian group is expected; for small attitude errors the composition is
// close to commutative and the controllers behave.
type StaticState struct {
	Position algebra.Vec3 `json:"position" yaml:"position"`
	Attitude algebra.Vec3 `json:"attitude" yaml:"attitude"`
}

func (s StaticState) String() string {
	return fmt.Sprintf("(%v; %v)", s.Position, s.Attitude)
}

func (s StaticState) Zero() StaticState { return StaticState{} }

func (s StaticState) Opposite() StaticState {
	return StaticState{Position: s.Position.Opposite(), Attitude: s.Attitude.Opposite()}
}

func (s StaticState) Plus(other StaticState) StaticState {
	return StaticState{
		Position: s.Position.Plus(other.Position),
		Attitude: algebra.ComposeAxisAngle(other.Attitude, s.Attitude),
	}
}

func (s StaticState) Minus(other StaticState) StaticState {
	return s.Plus(other.Opposite())
}

func (s StaticState) ScalarOne() algebra.Vec2 { return algebra.Vec2{X: 1, Y: 1} }

// Scale weights the position by g.X and the attitude by g.Y.
func (s StaticState) Scale(g algebra.Vec2) StaticState {
	return StaticState{Position: s.Position.ScaleReal(g.X), Attitude: s.Attitude.ScaleReal(g.Y)}
}

func (s StaticState) ScaleReal(a float64) StaticState {
	return s.Scale(algebra.Vec2{X: a, Y: a})
}

func (s StaticState) Components() []float64 {
	return append(s.Position.Components(), s.Attitude.Components()...)
}

// DynamicInput is a force and a torque applied to a body for one tick.
type DynamicInput struct {
	Force  algebra.Vec3 `json:"force" yaml:"force"`
	Torque algebra.Vec3 `json:"torque" yaml:"torque"`
}

func (in DynamicInput) String() string {
	return fmt.Sprintf("(%v; %v)", in.Force, in.Torque)
}

func (in DynamicInput) Zero() DynamicInput { return DynamicInput{} }

func (in DynamicInput) Opposite() DynamicInput {
	return DynamicInput{Force: in.Force.Opposite(), Torque: in.Torque.Opposite()}
}

func (in DynamicInput) Plus(other DynamicInput) DynamicInput {
	return DynamicInput{Force: in.Force.Plus(other.Force), Torque: in.Torque.Plus(other.Torque)}
}

func (in DynamicInput) Minus(other DynamicInput) DynamicInput {
	return in.Plus(other.Opposite())
}

func (in DynamicInput) ScalarOne() algebra.Vec2 { return algebra.Vec2{X: 1, Y: 1} }

func (in DynamicInput) Scale(g algebra.Vec2) DynamicInput {
	return DynamicInput{Force: in.Force.ScaleReal(g.X), Torque: in.Torque.ScaleReal(g.Y)}
}

func (in DynamicInput) ScaleReal(a float64) DynamicInput {
	return in.Scale(algebra.Vec2{X: a, Y: a})
}

func (in DynamicInput) Components() []float64 {
	return append(in.Force.Components(), in.Torque.Components()...)
}
