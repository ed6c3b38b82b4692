package trajectory

// Matcher decides whether the cursor moves on to the waypoint after next. It
// receives the current state, the previously reached point and the point
// currently targeted, in that order.
type Matcher[S any] func(current, previous, next S) bool

// Tracked is a Trajectory with a cursor. The cursor only moves through Update.
type Tracked[S any] struct {
	*Trajectory[S]

	matcher     Matcher[S]
	loop        bool
	previous    S
	hasPrevious bool
	next        int
	completed   bool
}

// NewTracked builds a cursor over points, targeting the first one. A looping
// trajectory wraps around to its first point instead of completing.
func NewTracked[S any](points []S, matcher Matcher[S], loop bool) (*Tracked[S], error) {
	t, err := New(points)
	if err != nil {
		return nil, err
	}
	return &Tracked[S]{Trajectory: t, matcher: matcher, loop: loop}, nil
}

// Update feeds the current state to the cursor and reports whether a
// waypoint was reached.
//
// The first call records current as the previous point, whether or not it
// matches. Once completed, Update returns false without consulting the
// matcher.
func (t *Tracked[S]) Update(current S) bool {
	if !t.hasPrevious {
		t.previous = current
		t.hasPrevious = true
	}
	if t.completed {
		return false
	}

	reached := t.points[t.next]
	if !t.matcher(current, t.previous, reached) {
		return false
	}

	last := t.lastIndex()
	t.completed = !t.loop && t.next == last
	t.previous = reached
	switch {
	case t.loop && t.next == last:
		t.next = 0
	case t.next < last:
		t.next++
	}
	return true
}

// NextPoint is the waypoint currently targeted, or the last one once the
// trajectory is completed.
func (t *Tracked[S]) NextPoint() S {
	if t.completed {
		return t.points[t.lastIndex()]
	}
	return t.points[t.next]
}

func (t *Tracked[S]) NextPointIndex() int { return t.next }

// PreviousPoint returns the most recently reached waypoint. Before the first
// Update ok is false; until a waypoint is reached it is the first state fed
// to Update.
func (t *Tracked[S]) PreviousPoint() (point S, ok bool) {
	return t.previous, t.hasPrevious
}

func (t *Tracked[S]) Completed() bool { return t.completed }
func (t *Tracked[S]) Loop() bool      { return t.loop }
