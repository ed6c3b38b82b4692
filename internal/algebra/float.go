package algebra

import "math"

// Float is the field of real numbers.
type Float float64

func (f Float) Zero() Float             { return 0 }
func (f Float) Opposite() Float         { return -f }
func (f Float) Plus(other Float) Float  { return f + other }
func (f Float) Minus(other Float) Float { return f - other }

func (f Float) One() Float                 { return 1 }
func (f Float) Inverse() Float             { return 1 / f }
func (f Float) Multiply(other Float) Float { return f * other }

// ScalarOne and Scale make Float a vector space over itself.
func (f Float) ScalarOne() Float          { return 1 }
func (f Float) Scale(a Float) Float       { return f * a }
func (f Float) ScaleReal(a float64) Float { return f * Float(a) }

func (f Float) Dot(other Float) float64 { return float64(f * other) }
func (f Float) Magnitude() float64      { return math.Abs(float64(f)) }
func (f Float) SqrMagnitude() float64   { return float64(f * f) }

func (f Float) Normalized() Float {
	m := f.Magnitude()
	if m < Epsilon {
		return 0
	}
	return f / Float(m)
}

func (f Float) Components() []float64 { return []float64{float64(f)} }
