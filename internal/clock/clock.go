// Package clock provides the time source consumed by stateful controllers.
// Controllers never read the system time; they are handed a Clock and only
// see the elapsed time of the current tick.
package clock

import (
	"time"

	clk "github.com/benbjohnson/clock"
)

// Clock reports the current time and the length of the current tick, in
// seconds.
type Clock interface {
	Time() float64
	DeltaTime() float64
}

// Fixed is a stepped clock advancing by a constant tick.
type Fixed struct {
	t  float64
	dt float64
}

func NewFixed(dt float64) *Fixed {
	return &Fixed{dt: dt}
}

func (c *Fixed) Time() float64      { return c.t }
func (c *Fixed) DeltaTime() float64 { return c.dt }

// Advance moves the clock forward by one tick.
func (c *Fixed) Advance() {
	c.t += c.dt
}

// SetDeltaTime changes the length of the following ticks.
func (c *Fixed) SetDeltaTime(dt float64) {
	c.dt = dt
}

// Wall measures ticks against a real (or mocked) clock. DeltaTime is the time
// elapsed between the two most recent calls to Tick.
type Wall struct {
	src   clk.Clock
	start time.Time
	last  time.Time
	dt    float64
}

// NewWall starts a wall clock on src, or on the system clock when src is nil.
func NewWall(src clk.Clock) *Wall {
	if src == nil {
		src = clk.New()
	}
	now := src.Now()
	return &Wall{src: src, start: now, last: now}
}

// Tick marks the start of a new control step.
func (w *Wall) Tick() {
	now := w.src.Now()
	w.dt = now.Sub(w.last).Seconds()
	w.last = now
}

func (w *Wall) Time() float64      { return w.last.Sub(w.start).Seconds() }
func (w *Wall) DeltaTime() float64 { return w.dt }
