package control

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/dynamo"
)

// FeedbackFunc converts an error into an input.
type FeedbackFunc[S, U any] func(err S) U

// ErrorController is a Controller that exposes the error it last acted on.
type ErrorController[S, U any] interface {
	dynamo.Controller[S, U]
	Error() S
}

// Error is the basic ErrorController: its output is feedback(target - state).
type Error[S algebra.Abelian[S], U any] struct {
	feedback FeedbackFunc[S, U]
	err      S
}

func NewError[S algebra.Abelian[S], U any](feedback FeedbackFunc[S, U]) *Error[S, U] {
	return &Error[S, U]{feedback: feedback}
}

func (c *Error[S, U]) Control(state, target S) U {
	c.err = target.Minus(state)
	return c.feedback(c.err)
}

// Error returns the error computed by the last Control call.
func (c *Error[S, U]) Error() S { return c.err }
