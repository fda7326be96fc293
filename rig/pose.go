// Package rig moves a camera holder after a follow target. A Strategy does
// the blending; Rig picks which strategy update runs each frame.
package rig

import "github.com/go-gl/mathgl/mgl64"

// Pose is a world-space position and rotation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityPose returns a pose at the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent()}
}

// Target is a read-only transform the rig can follow.
type Target interface {
	Pose() Pose
}

// Holder is the transform the lens is attached to.
type Holder interface {
	Target
	SetPosition(p mgl64.Vec3)
	SetRotation(q mgl64.Quat)
	// SetPose writes position and rotation together.
	SetPose(p Pose)
}

// Node is an in-memory Holder.
type Node struct {
	pose Pose
}

var _ Holder = (*Node)(nil)

func NewNode(p Pose) *Node {
	return &Node{pose: p}
}

func (n *Node) Pose() Pose               { return n.pose }
func (n *Node) SetPosition(p mgl64.Vec3) { n.pose.Position = p }
func (n *Node) SetRotation(q mgl64.Quat) { n.pose.Rotation = q }
func (n *Node) SetPose(p Pose)           { n.pose = p }
