package control

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/dynamo"
)

// StateMappedError exposes an ErrorController over SO as one over SR. The
// exposed error is the inner error mapped back through the bijection.
type StateMappedError[SR, SO, U any] struct {
	inner  ErrorController[SO, U]
	ctrl   dynamo.Controller[SR, U]
	mapper algebra.Bijection[SR, SO]
}

func MapErrorState[SR, SO, U any](c ErrorController[SO, U], mapper algebra.Bijection[SR, SO]) *StateMappedError[SR, SO, U] {
	return &StateMappedError[SR, SO, U]{
		inner:  c,
		ctrl:   dynamo.MapControllerState[SR, SO, U](c, mapper.Direct),
		mapper: mapper,
	}
}

func (c *StateMappedError[SR, SO, U]) Control(state, target SR) U {
	return c.ctrl.Control(state, target)
}

func (c *StateMappedError[SR, SO, U]) Error() SR {
	return c.mapper.Inverse(c.inner.Error())
}

// OutputMappedError exposes an ErrorController producing UO as one producing
// UR. The error is passed through unchanged.
type OutputMappedError[S, UO, UR any] struct {
	inner ErrorController[S, UO]
	ctrl  dynamo.Controller[S, UR]
}

func MapErrorOutput[S, UO, UR any](c ErrorController[S, UO], unmapper func(state S, output UO) UR) *OutputMappedError[S, UO, UR] {
	return &OutputMappedError[S, UO, UR]{
		inner: c,
		ctrl:  dynamo.MapControllerOutput[S, UO, UR](c, unmapper),
	}
}

func (c *OutputMappedError[S, UO, UR]) Control(state, target S) UR {
	return c.ctrl.Control(state, target)
}

func (c *OutputMappedError[S, UO, UR]) Error() S { return c.inner.Error() }

// WrapError retargets an ErrorController[SO, UO] to an ErrorController[SR, UR].
func WrapError[SR, UR, SO, UO any](c ErrorController[SO, UO], stateMapper algebra.Bijection[SR, SO], outputUnmapper func(SO, UO) UR) ErrorController[SR, UR] {
	return MapErrorState[SR, SO, UR](MapErrorOutput(c, outputUnmapper), stateMapper)
}
