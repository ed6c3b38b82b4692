package algebra

// Bijection pairs a mapping with its inverse. Direct(Inverse(b)) == b and
// Inverse(Direct(a)) == a are expected to hold but are not checked.
type Bijection[A, B any] struct {
	direct  func(A) B
	inverse func(B) A
}

func NewBijection[A, B any](direct func(A) B, inverse func(B) A) Bijection[A, B] {
	return Bijection[A, B]{direct: direct, inverse: inverse}
}

// Identity returns the bijection mapping every value to itself.
func Identity[T any]() Bijection[T, T] {
	id := func(t T) T { return t }
	return Bijection[T, T]{direct: id, inverse: id}
}

func (b Bijection[A, B]) Direct(a A) B  { return b.direct(a) }
func (b Bijection[A, B]) Inverse(x B) A { return b.inverse(x) }

// Flip swaps the two directions.
func (b Bijection[A, B]) Flip() Bijection[B, A] {
	return Bijection[B, A]{direct: b.inverse, inverse: b.direct}
}

// Then chains b with next, yielding A -> C.
func Then[A, B, C any](b Bijection[A, B], next Bijection[B, C]) Bijection[A, C] {
	return Bijection[A, C]{
		direct:  func(a A) C { return next.Direct(b.Direct(a)) },
		inverse: func(c C) A { return b.Inverse(next.Inverse(c)) },
	}
}
