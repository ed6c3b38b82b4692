// Package trajectory drives a controller along an ordered list of waypoints.
//
// A [Tracked] trajectory holds a cursor over its points that a [Matcher]
// advances; a [Tracker] asks the cursor to advance on every control step and
// then steers toward the current waypoint.
package trajectory

import (
	"github.com/pkg/errors"

	"github.com/san-kum/dynctl/internal/dynamo"
)

// Trajectory is an immutable, non-empty sequence of waypoints.
type Trajectory[S any] struct {
	points []S
}

// New snapshots points. It fails with dynamo.ErrInvalidArgument when points
// is empty.
func New[S any](points []S) (*Trajectory[S], error) {
	if len(points) == 0 {
		return nil, errors.Wrap(dynamo.ErrInvalidArgument, "trajectory: no points")
	}
	snapshot := make([]S, len(points))
	copy(snapshot, points)
	return &Trajectory[S]{points: snapshot}, nil
}

// Points returns a copy of the waypoints.
func (t *Trajectory[S]) Points() []S {
	out := make([]S, len(t.points))
	copy(out, t.points)
	return out
}

func (t *Trajectory[S]) Len() int       { return len(t.points) }
func (t *Trajectory[S]) At(i int) S     { return t.points[i] }
func (t *Trajectory[S]) lastIndex() int { return len(t.points) - 1 }
