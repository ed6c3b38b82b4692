package algebra

// Epsilon is the magnitude under which a vector is considered null.
const Epsilon = 1e-12

// Group is a set with an associative Plus, an identity Zero and an inverse
// Opposite. Minus(b) must equal Plus(b.Opposite()).
type Group[T any] interface {
	Zero() T
	Opposite() T
	Plus(other T) T
	Minus(other T) T
}

// Abelian is a Group whose Plus is commutative. It is a marker only.
type Abelian[T any] interface {
	Group[T]
}

// Field is an Abelian group with a commutative, associative Multiply that
// distributes over Plus, an identity One and an Inverse for every non-zero
// element.
type Field[T any] interface {
	Abelian[T]
	One() T
	Inverse() T
	Multiply(other T) T
}

// Vector is an Abelian group V scaled by the elements of a field F.
type Vector[V any, F Field[F]] interface {
	Abelian[V]
	ScalarOne() F
	Scale(a F) V
}

// RealVector is an Abelian group scaled by real numbers.
type RealVector[V any] interface {
	Abelian[V]
	ScaleReal(a float64) V
}

// InnerProductSpace is a RealVector with a symmetric, positive-definite Dot.
// Magnitude is sqrt(Dot(self)). Normalized is the vector divided by its
// Magnitude, or Zero when the Magnitude is below Epsilon.
type InnerProductSpace[V any] interface {
	RealVector[V]
	Dot(other V) float64
	Magnitude() float64
	SqrMagnitude() float64
	Normalized() V
}

// Componenter flattens a value into its numeric components, in a stable order.
type Componenter interface {
	Components() []float64
}
