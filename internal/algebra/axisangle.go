package algebra

import "math"

// ComposeAxisAngle composes two rotations given in axis-angle form (the
// direction is the axis, the magnitude is the angle in radians) and returns
// the rotation equivalent to applying a and then b.
//
// The composition goes through Gibbs vectors (axis scaled by tan(angle/2)).
// It is not commutative.
func ComposeAxisAngle(a, b Vec3) Vec3 {
	ga := gibbs(a)
	gb := gibbs(b)
	num := ga.Plus(gb).Minus(ga.Cross(gb))
	den := 1 - ga.Dot(gb)
	if math.Abs(den) < Epsilon {
		// half turn: the Gibbs vector is at infinity
		return num.Normalized().ScaleReal(math.Pi)
	}
	g := num.ScaleReal(1 / den)
	return g.Normalized().ScaleReal(2 * math.Atan(g.Magnitude()))
}

func gibbs(r Vec3) Vec3 {
	return r.Normalized().ScaleReal(math.Tan(r.Magnitude() / 2))
}
