package sim

import (
	"github.com/san-kum/dynctl/internal/dynamo"
	"github.com/san-kum/dynctl/internal/trajectory"
)

// Policy computes the input for the current state. A trajectory tracker is a
// Policy; so is a controller holding a fixed target (see Hold).
type Policy[S, U any] interface {
	Control(state S) U
}

// stepper is a Policy that also reports trajectory events.
type stepper[S, U any] interface {
	Step(state S) (U, trajectory.Event[S])
}

// errorSource is a Policy that exposes its last error.
type errorSource[S any] interface {
	Error() S
}

// Sample is one tick as seen by metrics and observers. Values are flattened
// when the state and input types provide their components.
type Sample struct {
	Step  int
	Time  float64
	State []float64
	Input []float64
	Error []float64
	Event trajectory.EventKind
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Sample)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s Sample)

func (f ObserverFunc) OnStep(s Sample) { f(s) }

type Config struct {
	Steps          int
	StopOnComplete bool
	ValidateState  bool
}

func DefaultConfig() Config {
	return Config{
		Steps:          1000,
		StopOnComplete: true,
		ValidateState:  true,
	}
}

// EventRecord is a trajectory event that happened during a run.
type EventRecord struct {
	Step  int       `json:"step"`
	Time  float64   `json:"time"`
	Kind  string    `json:"kind"`
	Point []float64 `json:"point,omitempty"`
}

type Result struct {
	Times      []float64
	States     [][]float64
	Inputs     [][]float64
	Errors     [][]float64
	Events     []EventRecord
	Metrics    map[string]float64
	StepsTaken int
	Completed  bool
}

// Hold returns a Policy steering c toward a fixed target.
func Hold[S, U any](c dynamo.Controller[S, U], target S) *Held[S, U] {
	return &Held[S, U]{controller: c, target: target}
}

type Held[S, U any] struct {
	controller dynamo.Controller[S, U]
	target     S
}

func (h *Held[S, U]) Control(state S) U { return h.controller.Control(state, h.target) }

// Error forwards the controller error when it has one.
func (h *Held[S, U]) Error() S {
	if src, ok := h.controller.(errorSource[S]); ok {
		return src.Error()
	}
	var zero S
	return zero
}
