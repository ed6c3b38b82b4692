package algebra

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Vec3 is a spatial vector. It is a field under component-wise operations and
// an inner product space over the reals.
type Vec3 struct {
	X, Y, Z float64
}

// V3 builds a Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// FromR3 converts an r3 vector.
func FromR3(v r3.Vector) Vec3 { return Vec3(v) }

// R3 converts v to an r3 vector.
func (v Vec3) R3() r3.Vector { return r3.Vector(v) }

func (v Vec3) String() string { return fmt.Sprintf("(%g; %g; %g)", v.X, v.Y, v.Z) }

func (v Vec3) Zero() Vec3     { return Vec3{} }
func (v Vec3) Opposite() Vec3 { return FromR3(v.R3().Mul(-1)) }

func (v Vec3) Plus(other Vec3) Vec3 {
	return FromR3(v.R3().Add(other.R3()))
}

func (v Vec3) Minus(other Vec3) Vec3 {
	return v.Plus(other.Opposite())
}

func (v Vec3) One() Vec3 { return Vec3{1, 1, 1} }

func (v Vec3) Inverse() Vec3 {
	return Vec3{1 / v.X, 1 / v.Y, 1 / v.Z}
}

func (v Vec3) Multiply(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) ScalarOne() Float   { return 1 }
func (v Vec3) Scale(a Float) Vec3 { return v.ScaleReal(float64(a)) }

func (v Vec3) ScaleReal(a float64) Vec3 {
	return FromR3(v.R3().Mul(a))
}

func (v Vec3) Dot(other Vec3) float64 { return v.R3().Dot(other.R3()) }
func (v Vec3) SqrMagnitude() float64  { return v.R3().Norm2() }
func (v Vec3) Magnitude() float64     { return v.R3().Norm() }

func (v Vec3) Normalized() Vec3 {
	m := v.Magnitude()
	if m < Epsilon {
		return Vec3{}
	}
	return v.ScaleReal(1 / m)
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return FromR3(v.R3().Cross(other.R3()))
}

// ClampMagnitude returns v scaled down to max when its magnitude exceeds max.
func (v Vec3) ClampMagnitude(max float64) Vec3 {
	if v.SqrMagnitude() > max*max {
		return v.Normalized().ScaleReal(max)
	}
	return v
}

func (v Vec3) Components() []float64 { return []float64{v.X, v.Y, v.Z} }
