package rigidbody

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/control"
	"github.com/san-kum/dynctl/internal/trajectory"
)

// PoseController is what a Tracker needs from its controller: pose error
// feedback with tunable gains.
type PoseController interface {
	control.ErrorController[StaticState, DynamicInput]
	PositionGains() algebra.Vec3
	SetPositionGains(g algebra.Vec3)
	AttitudeGains() algebra.Vec3
	SetAttitudeGains(g algebra.Vec3)
	Force() algebra.Vec3
	Torque() algebra.Vec3
}

var (
	_ PoseController = (*Controller)(nil)
	_ PoseController = (*OffsetController)(nil)
)

// Tracker follows a trajectory of poses.
type Tracker struct {
	*trajectory.ErrorTracker[StaticState, DynamicInput]
	controller PoseController
}

func NewTracker(c PoseController, traj *trajectory.Tracked[StaticState]) *Tracker {
	return &Tracker{
		ErrorTracker: trajectory.NewErrorTracker[StaticState, DynamicInput](c, traj),
		controller:   c,
	}
}

func (t *Tracker) Force() algebra.Vec3  { return t.controller.Force() }
func (t *Tracker) Torque() algebra.Vec3 { return t.controller.Torque() }

func (t *Tracker) PositionGains() algebra.Vec3     { return t.controller.PositionGains() }
func (t *Tracker) SetPositionGains(g algebra.Vec3) { t.controller.SetPositionGains(g) }
func (t *Tracker) AttitudeGains() algebra.Vec3     { return t.controller.AttitudeGains() }
func (t *Tracker) SetAttitudeGains(g algebra.Vec3) { t.controller.SetAttitudeGains(g) }
