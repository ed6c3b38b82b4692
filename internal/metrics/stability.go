package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/dynctl/internal/sim"
)

// Settled is the fraction of samples whose error magnitude is within
// threshold.
type Settled struct {
	name      string
	threshold float64
	settled   int
	samples   int
}

func NewSettled(threshold float64) *Settled {
	return &Settled{
		name:      "settled",
		threshold: threshold,
	}
}

func (s *Settled) Name() string {
	return s.name
}

func (s *Settled) Observe(sample sim.Sample) {
	s.samples++
	if len(sample.Error) == 0 || floats.Norm(sample.Error, 2) <= s.threshold {
		s.settled++
	}
}

func (s *Settled) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.settled) / float64(s.samples)
}

func (s *Settled) Reset() {
	s.settled = 0
	s.samples = 0
}
