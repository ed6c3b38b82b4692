package rigidbody

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/clock"
	"github.com/san-kum/dynctl/internal/control"
)

// Controller is a PID on the pose of a body. Position error becomes force
// and attitude error becomes torque, each with its own (kp, ki, kd) gains.
type Controller struct {
	pid    *control.PID[StaticState, DynamicInput, algebra.Vec2]
	force  algebra.Vec3
	torque algebra.Vec3
}

func NewController(clk clock.Clock) *Controller {
	c := &Controller{}
	c.pid = control.NewPID[StaticState, DynamicInput, algebra.Vec2](c.feedback, clk)
	return c
}

func (c *Controller) feedback(err StaticState) DynamicInput {
	return DynamicInput{Force: err.Position, Torque: err.Attitude}
}

func (c *Controller) Control(state, target StaticState) DynamicInput {
	out := c.pid.Control(state, target)
	c.force, c.torque = out.Force, out.Torque
	return out
}

func (c *Controller) Error() StaticState { return c.pid.Error() }

// Force and Torque are the last output.
func (c *Controller) Force() algebra.Vec3  { return c.force }
func (c *Controller) Torque() algebra.Vec3 { return c.torque }

// PID exposes the underlying controller, for its per-term errors.
func (c *Controller) PID() *control.PID[StaticState, DynamicInput, algebra.Vec2] {
	return c.pid
}

// PositionGains returns (kp, ki, kd) for the translational axis.
func (c *Controller) PositionGains() algebra.Vec3 {
	return algebra.V3(c.pid.Kp.X, c.pid.Ki.X, c.pid.Kd.X)
}

func (c *Controller) SetPositionGains(g algebra.Vec3) {
	c.pid.Kp.X, c.pid.Ki.X, c.pid.Kd.X = g.X, g.Y, g.Z
}

// AttitudeGains returns (kp, ki, kd) for the rotational axis.
func (c *Controller) AttitudeGains() algebra.Vec3 {
	return algebra.V3(c.pid.Kp.Y, c.pid.Ki.Y, c.pid.Kd.Y)
}

func (c *Controller) SetAttitudeGains(g algebra.Vec3) {
	c.pid.Kp.Y, c.pid.Ki.Y, c.pid.Kd.Y = g.X, g.Y, g.Z
}

// OffsetController is a Controller for a body pushed at a handle point away
// from its center of mass. The torque the force induces around the center is
// subtracted from the commanded torque.
type OffsetController struct {
	HandlePoint algebra.Vec3

	*Controller
	mapped *control.OutputMappedError[StaticState, DynamicInput, DynamicInput]
	force  algebra.Vec3
	torque algebra.Vec3
}

func NewOffsetController(clk clock.Clock, handle algebra.Vec3) *OffsetController {
	c := &OffsetController{HandlePoint: handle, Controller: NewController(clk)}
	c.mapped = control.MapErrorOutput[StaticState, DynamicInput, DynamicInput](c.Controller, c.compensate)
	return c
}

func (c *OffsetController) compensate(_ StaticState, in DynamicInput) DynamicInput {
	c.force = in.Force
	c.torque = in.Torque.Minus(c.HandlePoint.Cross(in.Force))
	return DynamicInput{Force: c.force, Torque: c.torque}
}

func (c *OffsetController) Control(state, target StaticState) DynamicInput {
	return c.mapped.Control(state, target)
}

func (c *OffsetController) Error() StaticState { return c.mapped.Error() }

// Force and Torque are the last compensated output.
func (c *OffsetController) Force() algebra.Vec3  { return c.force }
func (c *OffsetController) Torque() algebra.Vec3 { return c.torque }
