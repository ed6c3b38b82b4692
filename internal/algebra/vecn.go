package algebra

import "math"

// VecN is a vector of arbitrary dimension. Binary operations between vectors
// of different lengths treat the missing components of the shorter one as
// zero, so the result has the length of the longer operand.
type VecN []float64

func (v VecN) Clone() VecN {
	c := make(VecN, len(v))
	copy(c, v)
	return c
}

// IsValid reports whether every component is finite.
func (v VecN) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v VecN) Zero() VecN { return make(VecN, len(v)) }

func (v VecN) Opposite() VecN { return v.ScaleReal(-1) }

func (v VecN) Plus(other VecN) VecN {
	return zipWith(v, other, func(a, b float64) float64 { return a + b })
}

func (v VecN) Minus(other VecN) VecN {
	return zipWith(v, other, func(a, b float64) float64 { return a - b })
}

func (v VecN) ScalarOne() Float   { return 1 }
func (v VecN) Scale(a Float) VecN { return v.ScaleReal(float64(a)) }

func (v VecN) ScaleReal(a float64) VecN {
	result := make(VecN, len(v))
	for i := range v {
		result[i] = v[i] * a
	}
	return result
}

func (v VecN) Dot(other VecN) float64 {
	n := min(len(v), len(other))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += v[i] * other[i]
	}
	return sum
}

func (v VecN) SqrMagnitude() float64 { return v.Dot(v) }
func (v VecN) Magnitude() float64    { return math.Sqrt(v.SqrMagnitude()) }

func (v VecN) Normalized() VecN {
	m := v.Magnitude()
	if m < Epsilon {
		return v.Zero()
	}
	return v.ScaleReal(1 / m)
}

func (v VecN) Components() []float64 { return v.Clone() }

func zipWith(a, b VecN, f func(x, y float64) float64) VecN {
	result := make(VecN, max(len(a), len(b)))
	for i := range result {
		var x, y float64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		result[i] = f(x, y)
	}
	return result
}
