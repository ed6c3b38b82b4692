package dynamo

// StateMappedController exposes a Controller over SO as one over SR.
type StateMappedController[SR, SO, U any] struct {
	inner  Controller[SO, U]
	mapper func(SR) SO
}

// MapControllerState converts both state and target through mapper before
// delegating to c.
func MapControllerState[SR, SO, U any](c Controller[SO, U], mapper func(SR) SO) *StateMappedController[SR, SO, U] {
	return &StateMappedController[SR, SO, U]{inner: c, mapper: mapper}
}

func (c *StateMappedController[SR, SO, U]) Control(state, target SR) U {
	return c.inner.Control(c.mapper(state), c.mapper(target))
}

// OutputMappedController exposes a Controller producing UO as one producing UR.
type OutputMappedController[S, UO, UR any] struct {
	inner    Controller[S, UO]
	unmapper func(S, UO) UR
}

// MapControllerOutput converts the output of c through unmapper. The state is
// handed to unmapper unchanged so the conversion may depend on it.
func MapControllerOutput[S, UO, UR any](c Controller[S, UO], unmapper func(state S, output UO) UR) *OutputMappedController[S, UO, UR] {
	return &OutputMappedController[S, UO, UR]{inner: c, unmapper: unmapper}
}

func (c *OutputMappedController[S, UO, UR]) Control(state, target S) UR {
	return c.unmapper(state, c.inner.Control(state, target))
}

// InputMappedSystem exposes a System accepting UO as one accepting UR.
type InputMappedSystem[S, UO, UR any] struct {
	inner  System[S, UO]
	mapper func(S, UR) UO
	input  UR
}

// MapSystemInput records each UR input and converts it through mapper, given
// the current state, before applying it to sys.
func MapSystemInput[S, UO, UR any](sys System[S, UO], mapper func(state S, input UR) UO) *InputMappedSystem[S, UO, UR] {
	return &InputMappedSystem[S, UO, UR]{inner: sys, mapper: mapper}
}

func (s *InputMappedSystem[S, UO, UR]) State() S { return s.inner.State() }

// Input returns the last input as it was received, before mapping.
func (s *InputMappedSystem[S, UO, UR]) Input() UR { return s.input }

func (s *InputMappedSystem[S, UO, UR]) Update(input UR) {
	s.input = input
	s.inner.Update(s.mapper(s.State(), input))
}

// StateMappedSystem exposes a System whose state is SO as one whose state is SR.
type StateMappedSystem[SO, SR, U any] struct {
	inner    System[SO, U]
	unmapper func(SO) SR
}

func MapSystemState[SO, SR, U any](sys System[SO, U], unmapper func(SO) SR) *StateMappedSystem[SO, SR, U] {
	return &StateMappedSystem[SO, SR, U]{inner: sys, unmapper: unmapper}
}

func (s *StateMappedSystem[SO, SR, U]) State() SR      { return s.unmapper(s.inner.State()) }
func (s *StateMappedSystem[SO, SR, U]) Input() U       { return s.inner.Input() }
func (s *StateMappedSystem[SO, SR, U]) Update(input U) { s.inner.Update(input) }
