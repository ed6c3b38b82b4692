package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/dynctl/internal/sim"
)

// ControlEffort is the mean magnitude of the applied input.
type ControlEffort struct {
	name    string
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{
		name: "control_effort",
	}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) Observe(s sim.Sample) {
	if len(s.Input) > 0 {
		c.sum += floats.Norm(s.Input, 2)
	}
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}
