package dynamo

import "github.com/san-kum/dynctl/internal/algebra"

// WrapController retargets a Controller[SO, UO] to a Controller[SR, UR].
// Inputs are mapped first; outputUnmapper sees the mapped SO state.
func WrapController[SR, UR, SO, UO any](c Controller[SO, UO], stateMapper func(SR) SO, outputUnmapper func(SO, UO) UR) Controller[SR, UR] {
	return MapControllerState[SR, SO, UR](MapControllerOutput(c, outputUnmapper), stateMapper)
}

// WrapSystem retargets a System[SO, UO] to a System[SR, UR]. inputMapper sees
// the unmapped SR state.
func WrapSystem[SR, UR, SO, UO any](sys System[SO, UO], inputMapper func(SR, UR) UO, stateUnmapper func(SO) SR) System[SR, UR] {
	return MapSystemInput[SR, UO, UR](MapSystemState(sys, stateUnmapper), inputMapper)
}

// WrappedControlledSystem exposes a ControlledSystem over SO as one over SR.
type WrappedControlledSystem[SR, SO any] struct {
	inner  ControlledSystem[SO]
	mapper algebra.Bijection[SR, SO]
}

// WrapControlledSystem retargets cs through mapper. The target is both read
// and written across the boundary, so mapper must be a true bijection; this
// is not verified.
func WrapControlledSystem[SR, SO any](cs ControlledSystem[SO], mapper algebra.Bijection[SR, SO]) *WrappedControlledSystem[SR, SO] {
	return &WrappedControlledSystem[SR, SO]{inner: cs, mapper: mapper}
}

func (w *WrappedControlledSystem[SR, SO]) State() SR {
	return w.mapper.Inverse(w.inner.State())
}

func (w *WrappedControlledSystem[SR, SO]) Target() SR {
	return w.mapper.Inverse(w.inner.Target())
}

func (w *WrappedControlledSystem[SR, SO]) SetTarget(target SR) {
	w.inner.SetTarget(w.mapper.Direct(target))
}

func (w *WrappedControlledSystem[SR, SO]) Update() { w.inner.Update() }
