package experiment

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/control"
	"github.com/san-kum/dynctl/internal/dynamo"
	"github.com/san-kum/dynctl/internal/rigidbody"
	"github.com/san-kum/dynctl/internal/sim"
	"github.com/san-kum/dynctl/internal/trajectory"
)

func bodyPosition(s rigidbody.StaticState) algebra.Vec3 { return s.Position }

func pointPosition(x algebra.VecN) algebra.Vec3 {
	p := make(algebra.VecN, 3)
	copy(p, x)
	return algebra.V3(p[0], p[1], p[2])
}

func buildBody(cfg *config.Config, b *build) (runner, error) {
	params := rigidbody.BodyParams{
		Mass:           cfg.Body.Mass,
		Inertia:        cfg.Body.Inertia,
		LinearDamping:  cfg.Body.LinearDamping,
		AngularDamping: cfg.Body.AngularDamping,
	}
	body := rigidbody.NewBody(params, cfg.Initial.State(), b.integrator, b.clock)
	act := rigidbody.NewActuator(body, cfg.Limits.MaxForce, cfg.Limits.MaxTorque)

	traj, err := trajectory.NewTracked(cfg.WaypointStates(), trajectory.Project(bodyPosition, b.matcher), cfg.Loop)
	if err != nil {
		return nil, err
	}

	var policy sim.Policy[rigidbody.StaticState, rigidbody.DynamicInput]
	switch cfg.Controller {
	case "pid":
		var pose rigidbody.PoseController
		if cfg.Handle.IsZero() {
			pose = rigidbody.NewController(b.clock)
		} else {
			body.ActionPoint = cfg.Handle.Vec3()
			pose = rigidbody.NewOffsetController(b.clock, cfg.Handle.Vec3())
		}
		tracker := rigidbody.NewTracker(pose, traj)
		tracker.SetPositionGains(cfg.Gains.Position.Vec3())
		tracker.SetAttitudeGains(cfg.Gains.Attitude.Vec3())
		policy = tracker
	case "none":
		policy = trajectory.NewTracker[rigidbody.StaticState, rigidbody.DynamicInput](
			control.NewManual[rigidbody.StaticState](rigidbody.DynamicInput{}), traj)
	default:
		return nil, errors.Wrapf(ErrUnknownComponent, "controller %q for model body", cfg.Controller)
	}

	return sim.NewRunner[rigidbody.StaticState, rigidbody.DynamicInput](act, policy, b.clock, b.logger), nil
}

func buildPoint(cfg *config.Config, b *build) (runner, error) {
	pm := rigidbody.NewPointMass(cfg.Body.Mass, cfg.Body.LinearDamping, cfg.Initial.Position.Vec3(), b.integrator, b.clock)
	sys := dynamo.MapSystemInput[algebra.VecN, algebra.VecN, algebra.VecN](pm, rigidbody.ClampForce(cfg.Limits.MaxForce))

	points := lo.Map(cfg.Waypoints, func(p config.Pose, _ int) algebra.VecN {
		return rigidbody.Waypoint(p.Position.Vec3())
	})
	traj, err := trajectory.NewTracked(points, trajectory.Project(pointPosition, b.matcher), cfg.Loop)
	if err != nil {
		return nil, err
	}

	gains := cfg.Gains.Position
	var policy sim.Policy[algebra.VecN, algebra.VecN]
	switch cfg.Controller {
	case "pid":
		pid := control.NewPID[algebra.VecN, algebra.VecN, algebra.Float](positionPart, b.clock)
		pid.SetGains(algebra.Float(gains[0]), algebra.Float(gains[1]), algebra.Float(gains[2]))
		policy = trajectory.NewErrorTracker[algebra.VecN, algebra.VecN](pid, traj)
	case "lqr":
		k := control.NewError(control.MatrixFeedback(control.PDGains(gains[0], gains[2], 3)))
		policy = trajectory.NewErrorTracker[algebra.VecN, algebra.VecN](k, traj)
	case "none":
		policy = trajectory.NewTracker[algebra.VecN, algebra.VecN](
			control.NewManual[algebra.VecN](make(algebra.VecN, 3)), traj)
	default:
		return nil, errors.Wrapf(ErrUnknownComponent, "controller %q for model point", cfg.Controller)
	}

	return sim.NewRunner[algebra.VecN, algebra.VecN](sys, policy, b.clock, b.logger), nil
}

// positionPart maps a [position, velocity] error to a force along the
// position error.
func positionPart(e algebra.VecN) algebra.VecN {
	f := make(algebra.VecN, 3)
	copy(f, e)
	return f
}
