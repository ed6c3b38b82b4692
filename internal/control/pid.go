package control

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/clock"
)

// PIDState is the constraint on a PID error: it is scaled by gains of type G
// and by elapsed time.
type PIDState[S any, G algebra.Field[G]] interface {
	algebra.Vector[S, G]
	algebra.RealVector[S]
}

// PID is a proportional-integral-derivative controller.
//
// Each term is converted through the user feedback function on its own and
// the three results are summed in input space:
//
//	u = feedback(p)·Kp + feedback(i)·Ki + feedback(d)·Kd
//
// The clock's DeltaTime must be non-zero on every Control call; the
// derivative term divides by it.
type PID[S PIDState[S, G], U algebra.Vector[U, G], G algebra.Field[G]] struct {
	Kp G
	Ki G
	Kd G

	feedback FeedbackFunc[S, U]
	clock    clock.Clock
	inner    *Error[S, U]

	pErr       S
	iErr       S
	dErr       S
	integrated S
	prevErr    S
	first      bool
}

func NewPID[S PIDState[S, G], U algebra.Vector[U, G], G algebra.Field[G]](feedback FeedbackFunc[S, U], clk clock.Clock) *PID[S, U, G] {
	p := &PID[S, U, G]{
		feedback: feedback,
		clock:    clk,
		first:    true,
	}
	p.inner = NewError(p.combine)
	return p
}

// SetGains sets the three gains at once.
func (p *PID[S, U, G]) SetGains(kp, ki, kd G) {
	p.Kp, p.Ki, p.Kd = kp, ki, kd
}

func (p *PID[S, U, G]) Control(state, target S) U {
	return p.inner.Control(state, target)
}

func (p *PID[S, U, G]) Error() S  { return p.inner.Error() }
func (p *PID[S, U, G]) PError() S { return p.pErr }
func (p *PID[S, U, G]) IError() S { return p.iErr }
func (p *PID[S, U, G]) DError() S { return p.dErr }

// Reset clears integral and derivative memory.
func (p *PID[S, U, G]) Reset() {
	var zero S
	p.pErr, p.iErr, p.dErr = zero, zero, zero
	p.integrated, p.prevErr = zero, zero
	p.first = true
}

func (p *PID[S, U, G]) combine(err S) U {
	dt := p.clock.DeltaTime()
	if p.first {
		p.integrated = err.Zero()
		p.prevErr = err.Zero()
		p.first = false
	}

	p.pErr = err

	p.integrated = p.integrated.Plus(err.ScaleReal(dt))
	p.iErr = p.integrated

	p.dErr = err.Minus(p.prevErr).ScaleReal(1 / dt)
	p.prevErr = err

	pu := p.feedback(p.pErr).Scale(p.Kp)
	iu := p.feedback(p.iErr).Scale(p.Ki)
	du := p.feedback(p.dErr).Scale(p.Kd)
	return pu.Plus(iu).Plus(du)
}
