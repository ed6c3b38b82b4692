package dynamo

// ControlledSystem hides a controller/system pair behind a mutable target.
type ControlledSystem[S any] interface {
	State() S
	Target() S
	SetTarget(target S)
	// Update runs one tick: the controller output for (State, Target) is
	// applied to the underlying system.
	Update()
}

// Loop is the ControlledSystem built from one Controller and one System.
type Loop[S, U any] struct {
	controller Controller[S, U]
	system     System[S, U]
	target     S
}

func NewControlledSystem[S, U any](controller Controller[S, U], system System[S, U]) *Loop[S, U] {
	return &Loop[S, U]{controller: controller, system: system}
}

func (l *Loop[S, U]) State() S             { return l.system.State() }
func (l *Loop[S, U]) Target() S            { return l.target }
func (l *Loop[S, U]) SetTarget(target S)   { l.target = target }
func (l *Loop[S, U]) System() System[S, U] { return l.system }

func (l *Loop[S, U]) Update() {
	l.system.Update(l.controller.Control(l.State(), l.target))
}
