package rigidbody

import (
	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/trajectory"
)

func position(s StaticState) algebra.Vec3 { return s.Position }

// PassedPlane reaches a pose once the body position crosses the plane through
// the target position, perpendicular to the segment from the previous one.
// Attitude is ignored.
func PassedPlane() trajectory.Matcher[StaticState] {
	return trajectory.Project(position, trajectory.PassedPlane[algebra.Vec3]())
}

// WithinRadius reaches a pose once the body is within r of its position.
func WithinRadius(r float64) trajectory.Matcher[StaticState] {
	return trajectory.Project(position, trajectory.WithinRadius[algebra.Vec3](r))
}
