package trajectory

import (
	"github.com/san-kum/dynctl/internal/control"
	"github.com/san-kum/dynctl/internal/dynamo"
)

// EventKind tells what happened to the cursor during a control step.
type EventKind int

const (
	None EventKind = iota
	PointReached
	Completed
)

func (k EventKind) String() string {
	switch k {
	case PointReached:
		return "point_reached"
	case Completed:
		return "completed"
	default:
		return "none"
	}
}

// Event is the outcome of one control step. Point is the waypoint just
// reached; it is only meaningful when Kind is not None. Completed implies the
// point was reached.
type Event[S any] struct {
	Kind  EventKind
	Point S
}

// Tracker steers a controller toward the current waypoint of a trajectory.
type Tracker[S, U any] struct {
	controller  dynamo.Controller[S, U]
	trajectory  *Tracked[S]
	onReached   []func(S)
	onCompleted []func()
}

func NewTracker[S, U any](c dynamo.Controller[S, U], t *Tracked[S]) *Tracker[S, U] {
	return &Tracker[S, U]{controller: c, trajectory: t}
}

// OnPointReached registers fn to be called with each waypoint reached.
func (t *Tracker[S, U]) OnPointReached(fn func(point S)) {
	t.onReached = append(t.onReached, fn)
}

// OnCompleted registers fn to be called once the trajectory completes.
func (t *Tracker[S, U]) OnCompleted(fn func()) {
	t.onCompleted = append(t.onCompleted, fn)
}

func (t *Tracker[S, U]) Trajectory() *Tracked[S]             { return t.trajectory }
func (t *Tracker[S, U]) Controller() dynamo.Controller[S, U] { return t.controller }

// Control advances the trajectory with state and returns the controller
// output toward the waypoint targeted afterwards. Callbacks run before it
// returns.
func (t *Tracker[S, U]) Control(state S) U {
	u, _ := t.Step(state)
	return u
}

// Step is Control that also reports what happened to the cursor.
func (t *Tracker[S, U]) Step(state S) (U, Event[S]) {
	var ev Event[S]
	if t.trajectory.Update(state) {
		ev.Kind = PointReached
		ev.Point, _ = t.trajectory.PreviousPoint()
		for _, fn := range t.onReached {
			fn(ev.Point)
		}
		if t.trajectory.Completed() {
			ev.Kind = Completed
			for _, fn := range t.onCompleted {
				fn()
			}
		}
	}
	return t.controller.Control(state, t.trajectory.NextPoint()), ev
}

// ErrorTracker is a Tracker over an ErrorController, exposing its error.
type ErrorTracker[S, U any] struct {
	*Tracker[S, U]
	errorController control.ErrorController[S, U]
}

func NewErrorTracker[S, U any](c control.ErrorController[S, U], t *Tracked[S]) *ErrorTracker[S, U] {
	return &ErrorTracker[S, U]{Tracker: NewTracker[S, U](c, t), errorController: c}
}

// Error is the error of the last control step.
func (t *ErrorTracker[S, U]) Error() S { return t.errorController.Error() }
