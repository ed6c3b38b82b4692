package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/dynctl/internal/sim"
)

// TrackingError is the root mean square of the error magnitude.
type TrackingError struct {
	name    string
	squares []float64
}

func NewTrackingError() *TrackingError {
	return &TrackingError{name: "tracking_rms"}
}

func (e *TrackingError) Name() string { return e.name }

func (e *TrackingError) Observe(s sim.Sample) {
	n := 0.0
	if len(s.Error) > 0 {
		n = floats.Norm(s.Error, 2)
	}
	e.squares = append(e.squares, n*n)
}

func (e *TrackingError) Value() float64 {
	if len(e.squares) == 0 {
		return 0
	}
	return math.Sqrt(stat.Mean(e.squares, nil))
}

func (e *TrackingError) Reset() { e.squares = e.squares[:0] }

// PeakError is the largest error magnitude observed.
type PeakError struct {
	norms []float64
}

func NewPeakError() *PeakError { return &PeakError{} }

func (p *PeakError) Name() string { return "peak_error" }

func (p *PeakError) Observe(s sim.Sample) {
	if len(s.Error) > 0 {
		p.norms = append(p.norms, floats.Norm(s.Error, 2))
	}
}

func (p *PeakError) Value() float64 {
	if len(p.norms) == 0 {
		return 0
	}
	return floats.Max(p.norms)
}

func (p *PeakError) Reset() { p.norms = p.norms[:0] }
