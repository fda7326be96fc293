package obj

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultFieldOfView      = 60.0
	DefaultOrthographicSize = 5.0
	DefaultNearClip         = 0.3
	DefaultFarClip          = 1000.0
)

// Camera is a plain perspective/orthographic camera. Every projection
// parameter is stored directly, including the aspect ratio.
type Camera struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat

	Orthographic bool
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float64
	// OrthographicSize is half of the vertical view size in world units.
	OrthographicSize float64
	Aspect           float64
	Near             float64
	Far              float64
}

// NewCamera creates a perspective camera with the given aspect ratio.
func NewCamera(aspect float64) *Camera {
	return &Camera{
		Rotation:         mgl64.QuatIdent(),
		FieldOfView:      DefaultFieldOfView,
		OrthographicSize: DefaultOrthographicSize,
		Aspect:           aspect,
		Near:             DefaultNearClip,
		Far:              DefaultFarClip,
	}
}

// SetView places the camera at the given world position and orientation.
func (c *Camera) SetView(pos mgl64.Vec3, rot mgl64.Quat) {
	c.Position = pos
	c.Rotation = rot
}

// ProjectionMatrix returns the projection for the current mode.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	if c.Orthographic {
		h := c.OrthographicSize
		w := h * c.Aspect
		return mgl64.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FieldOfView), c.Aspect, c.Near, c.Far)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	inv := c.Rotation.Inverse().Mat4()
	return inv.Mul4(mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// WorldToScreen projects p onto a w x h pixel viewport. ok is false when the
// point is behind the camera.
func (c *Camera) WorldToScreen(p mgl64.Vec3, w, h int) (x, y float64, ok bool) {
	clip := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * float64(w)
	y = (1 - ndc.Y()) / 2 * float64(h)
	return x, y, true
}
