package rig

import "github.com/go-gl/mathgl/mgl64"

// Strategy moves a holder after targets. Implementations receive their holder
// at construction and are driven by Rig once per frame.
type Strategy interface {
	// ControlsHolderRotation reports whether the strategy owns the holder's
	// rotation. When false, steady following and target-to-target
	// transitions never touch rotation.
	ControlsHolderRotation() bool

	// OnSteadyUpdate eases the holder toward target.
	OnSteadyUpdate(target Target, dt float64)

	// OnFocusToFollowUpdate eases the holder from a focus point toward a
	// moving target as t goes from 0 to 1.
	OnFocusToFollowUpdate(from Pose, targetPosition mgl64.Vec3, targetRotation mgl64.Quat, t, dt float64)

	// OnTargetToTargetUpdate eases the holder from one target to another.
	// Position and rotation progress independently.
	OnTargetToTargetUpdate(from Pose, to Target, positionT, rotationT, dt float64)
}

// FollowConfig tunes SmoothFollow. Rates are per second; 0 means the holder
// never moves on that channel.
type FollowConfig struct {
	PositionRate     float64
	RotationRate     float64
	ControlsRotation bool
}

// SmoothFollow is the default Strategy: frame-delta-scaled linear easing
// toward the target, or toward a waypoint sliding along the transition.
type SmoothFollow struct {
	holder Holder
	cfg    FollowConfig
}

var _ Strategy = (*SmoothFollow)(nil)

func NewSmoothFollow(holder Holder, cfg FollowConfig) *SmoothFollow {
	return &SmoothFollow{holder: holder, cfg: cfg}
}

func (s *SmoothFollow) SetConfig(cfg FollowConfig) { s.cfg = cfg }
func (s *SmoothFollow) ControlsHolderRotation() bool {
	return s.cfg.ControlsRotation
}

func (s *SmoothFollow) OnSteadyUpdate(target Target, dt float64) {
	cur := s.holder.Pose()
	goal := target.Pose()
	s.holder.SetPosition(ExpLerp(cur.Position, goal.Position, s.cfg.PositionRate, dt))
	if s.cfg.ControlsRotation {
		s.holder.SetRotation(ExpSlerp(cur.Rotation, goal.Rotation, s.cfg.RotationRate, dt))
	}
}

func (s *SmoothFollow) OnFocusToFollowUpdate(from Pose, targetPosition mgl64.Vec3, targetRotation mgl64.Quat, t, dt float64) {
	cur := s.holder.Pose()
	posWaypoint := Lerp(from.Position, targetPosition, t)
	rotWaypoint := Slerp(from.Rotation, targetRotation, t)

	if s.cfg.ControlsRotation {
		s.holder.SetPose(Pose{
			Position: ExpLerp(cur.Position, posWaypoint, s.cfg.PositionRate, dt),
			Rotation: ExpSlerp(cur.Rotation, rotWaypoint, s.cfg.RotationRate, dt),
		})
		return
	}

	s.holder.SetPosition(ExpLerp(cur.Position, posWaypoint, s.cfg.PositionRate, dt))
	// Rotation tracks transition progress directly instead of the rate.
	if !QuatEqual(cur.Rotation, rotWaypoint) {
		s.holder.SetRotation(Slerp(cur.Rotation, rotWaypoint, t))
	}
}

func (s *SmoothFollow) OnTargetToTargetUpdate(from Pose, to Target, positionT, rotationT, dt float64) {
	cur := s.holder.Pose()
	goal := to.Pose()
	posWaypoint := Lerp(from.Position, goal.Position, positionT)

	if !s.cfg.ControlsRotation {
		s.holder.SetPosition(ExpLerp(cur.Position, posWaypoint, s.cfg.PositionRate, dt))
		return
	}

	rotWaypoint := Slerp(from.Rotation, goal.Rotation, rotationT)
	s.holder.SetPose(Pose{
		Position: ExpLerp(cur.Position, posWaypoint, s.cfg.PositionRate, dt),
		Rotation: ExpSlerp(cur.Rotation, rotWaypoint, s.cfg.RotationRate, dt),
	})
}
