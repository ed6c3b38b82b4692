package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/dynctl/internal/sim"
	"github.com/san-kum/dynctl/internal/trajectory"
)

func samples() []sim.Sample {
	return []sim.Sample{
		{Step: 0, Input: []float64{3, 4}, Error: []float64{3, 4}},
		{Step: 1, Input: []float64{0, 1}, Error: []float64{1, 0}, Event: trajectory.PointReached},
		{Step: 2, Input: []float64{0, 0}, Error: []float64{0, 0}, Event: trajectory.Completed},
	}
}

func feed(m sim.Metric) float64 {
	m.Reset()
	for _, s := range samples() {
		m.Observe(s)
	}
	return m.Value()
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		metric sim.Metric
		want   float64
	}{
		{NewTrackingError(), math.Sqrt((25 + 1 + 0) / 3.0)},
		{NewPeakError(), 5},
		{NewControlEffort(), 2},
		{NewSettled(1), 2.0 / 3},
		{NewWaypointCounter(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.metric.Name(), func(t *testing.T) {
			if got := feed(tt.metric); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
			// Reset then replay gives the same answer
			if got := feed(tt.metric); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("after Reset: Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyMetrics(t *testing.T) {
	for _, m := range Standard(0.1) {
		m.Reset()
		want := 0.0
		if m.Name() == "settled" {
			want = 1
		}
		if got := m.Value(); got != want {
			t.Errorf("%s: empty Value() = %v, want %v", m.Name(), got, want)
		}
	}
}
