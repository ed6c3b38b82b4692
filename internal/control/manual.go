package control

// Manual is an open-loop controller: it ignores state and target and returns
// whatever input was last set.
type Manual[S, U any] struct {
	input U
}

func NewManual[S, U any](initial U) *Manual[S, U] {
	return &Manual[S, U]{input: initial}
}

// Set replaces the input returned from now on.
func (c *Manual[S, U]) Set(input U) {
	c.input = input
}

func (c *Manual[S, U]) Control(state, target S) U {
	return c.input
}
