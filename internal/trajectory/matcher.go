package trajectory

import "github.com/san-kum/dynctl/internal/algebra"

// Exact reaches a waypoint when the state equals it exactly.
func Exact[S comparable]() Matcher[S] {
	return func(current, _, next S) bool {
		return current == next
	}
}

// WithinRadius reaches a waypoint when the state is at most r away from it.
func WithinRadius[S algebra.InnerProductSpace[S]](r float64) Matcher[S] {
	return func(current, _, next S) bool {
		return current.Minus(next).SqrMagnitude() <= r*r
	}
}

// PassedPlane reaches a waypoint once the state crosses the plane through it
// perpendicular to the previous→next segment. When previous and next
// coincide the waypoint counts as reached.
func PassedPlane[S algebra.InnerProductSpace[S]]() Matcher[S] {
	return func(current, previous, next S) bool {
		dir := next.Minus(previous)
		if dir.Magnitude() < algebra.Epsilon {
			return true
		}
		dir = dir.Normalized()
		return current.Dot(dir) > next.Dot(dir)
	}
}

// Project evaluates m on a projection of the state, such as its position.
func Project[S, V any](project func(S) V, m Matcher[V]) Matcher[S] {
	return func(current, previous, next S) bool {
		return m(project(current), project(previous), project(next))
	}
}
