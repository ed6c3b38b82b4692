package dynamo

// System owns a state of type S and advances it when an input of type U is
// applied.
type System[S, U any] interface {
	// State returns the current state.
	State() S
	// Input returns the last applied input, or the zero U before any Update.
	Input() U
	// Update records input and advances the state.
	Update(input U)
}

// SimulateFunc is a pure state transition: it returns the state reached from
// previous when input is applied for one tick.
type SimulateFunc[S, U any] func(previous S, input U) S

// FuncSystem is a System whose transition is a SimulateFunc.
type FuncSystem[S, U any] struct {
	state    S
	input    U
	simulate SimulateFunc[S, U]
}

func NewSystem[S, U any](initial S, simulate SimulateFunc[S, U]) *FuncSystem[S, U] {
	return &FuncSystem[S, U]{state: initial, simulate: simulate}
}

func (s *FuncSystem[S, U]) State() S { return s.state }
func (s *FuncSystem[S, U]) Input() U { return s.input }

func (s *FuncSystem[S, U]) Update(input U) {
	s.input = input
	s.state = s.simulate(s.state, input)
}
