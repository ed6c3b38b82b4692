package metrics

import (
	"github.com/san-kum/dynctl/internal/sim"
	"github.com/san-kum/dynctl/internal/trajectory"
)

// WaypointCounter counts the waypoints reached, including the final one.
type WaypointCounter struct {
	reached int
}

func NewWaypointCounter() *WaypointCounter { return &WaypointCounter{} }

func (w *WaypointCounter) Name() string { return "waypoints_reached" }

func (w *WaypointCounter) Observe(s sim.Sample) {
	if s.Event != trajectory.None {
		w.reached++
	}
}

func (w *WaypointCounter) Value() float64 { return float64(w.reached) }
func (w *WaypointCounter) Reset()         { w.reached = 0 }

// Standard returns the metrics recorded on every run.
func Standard(settleThreshold float64) []sim.Metric {
	return []sim.Metric{
		NewTrackingError(),
		NewPeakError(),
		NewControlEffort(),
		NewSettled(settleThreshold),
		NewWaypointCounter(),
	}
}
