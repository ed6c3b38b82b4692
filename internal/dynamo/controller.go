package dynamo

// Controller computes the input that steers state toward target.
type Controller[S, U any] interface {
	Control(state, target S) U
}

// ControlFunc adapts an ordinary function to the Controller interface.
type ControlFunc[S, U any] func(state, target S) U

func (f ControlFunc[S, U]) Control(state, target S) U {
	return f(state, target)
}

// NewController returns a stateless Controller backed by control.
func NewController[S, U any](control func(state, target S) U) Controller[S, U] {
	return ControlFunc[S, U](control)
}
