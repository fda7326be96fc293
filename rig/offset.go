package rig

import "github.com/go-gl/mathgl/mgl64"

// Offset places the holder relative to a target. Position is expressed in
// the target's local frame.
type Offset struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Apply returns p moved by the offset.
func (o Offset) Apply(p Pose) Pose {
	rot := o.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	return Pose{
		Position: p.Position.Add(p.Rotation.Rotate(o.Position)),
		Rotation: p.Rotation.Mul(rot),
	}
}

// OffsetFollow wraps another Strategy and offsets every target pose it is
// given. Focus points are passed through unchanged.
type OffsetFollow struct {
	inner  Strategy
	offset Offset
}

var _ Strategy = (*OffsetFollow)(nil)

func NewOffsetFollow(inner Strategy, offset Offset) *OffsetFollow {
	return &OffsetFollow{inner: inner, offset: offset}
}

func (s *OffsetFollow) Inner() Strategy    { return s.inner }
func (s *OffsetFollow) Offset() Offset     { return s.offset }
func (s *OffsetFollow) SetOffset(o Offset) { s.offset = o }
func (s *OffsetFollow) ControlsHolderRotation() bool {
	return s.inner.ControlsHolderRotation()
}

func (s *OffsetFollow) OnSteadyUpdate(target Target, dt float64) {
	s.inner.OnSteadyUpdate(s.wrap(target), dt)
}

func (s *OffsetFollow) OnFocusToFollowUpdate(from Pose, targetPosition mgl64.Vec3, targetRotation mgl64.Quat, t, dt float64) {
	p := s.offset.Apply(Pose{Position: targetPosition, Rotation: targetRotation})
	s.inner.OnFocusToFollowUpdate(from, p.Position, p.Rotation, t, dt)
}

func (s *OffsetFollow) OnTargetToTargetUpdate(from Pose, to Target, positionT, rotationT, dt float64) {
	s.inner.OnTargetToTargetUpdate(s.offset.Apply(from), s.wrap(to), positionT, rotationT, dt)
}

func (s *OffsetFollow) wrap(t Target) Target {
	return offsetTarget{target: t, offset: s.offset}
}

type offsetTarget struct {
	target Target
	offset Offset
}

func (o offsetTarget) Pose() Pose {
	return o.offset.Apply(o.target.Pose())
}
