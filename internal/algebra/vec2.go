package algebra

import (
	"fmt"
	"math"
)

// Vec2 is a planar vector. It is a field under component-wise operations and
// an inner product space over the reals.
//
// Vec2 is also used as a pair of independent gains, X and Y weighting two
// logical axes of a composite state.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) String() string { return fmt.Sprintf("(%g; %g)", v.X, v.Y) }

func (v Vec2) Zero() Vec2     { return Vec2{} }
func (v Vec2) Opposite() Vec2 { return Vec2{-v.X, -v.Y} }

func (v Vec2) Plus(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Minus(other Vec2) Vec2 {
	return v.Plus(other.Opposite())
}

func (v Vec2) One() Vec2     { return Vec2{1, 1} }
func (v Vec2) Inverse() Vec2 { return Vec2{1 / v.X, 1 / v.Y} }

func (v Vec2) Multiply(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) ScalarOne() Float   { return 1 }
func (v Vec2) Scale(a Float) Vec2 { return v.ScaleReal(float64(a)) }

func (v Vec2) ScaleReal(a float64) Vec2 {
	return Vec2{a * v.X, a * v.Y}
}

func (v Vec2) Dot(other Vec2) float64 { return v.X*other.X + v.Y*other.Y }
func (v Vec2) SqrMagnitude() float64  { return v.Dot(v) }
func (v Vec2) Magnitude() float64     { return math.Sqrt(v.SqrMagnitude()) }

func (v Vec2) Normalized() Vec2 {
	m := v.Magnitude()
	if m < Epsilon {
		return Vec2{}
	}
	return v.ScaleReal(1 / m)
}

// Cross returns the z component of the cross product of v and other.
func (v Vec2) Cross(other Vec2) Float {
	return Float(v.X*other.Y - v.Y*other.X)
}

func (v Vec2) Components() []float64 { return []float64{v.X, v.Y} }
