// Package view renders the 2D demo world through a virtual camera on an
// ebiten render target.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/camerarig/obj"
)

// ModeOverride forces a virtual camera into a projection mode regardless of
// the output camera's default.
type ModeOverride int

const (
	ModeOverrideNone ModeOverride = iota
	ModeOverrideOrthographic
	ModeOverridePerspective
)

func (m ModeOverride) String() string {
	switch m {
	case ModeOverrideOrthographic:
		return "orthographic"
	case ModeOverridePerspective:
		return "perspective"
	default:
		return "none"
	}
}

// LensSettings holds the projection parameters of a virtual camera.
type LensSettings struct {
	FieldOfView      float64
	OrthographicSize float64
	ModeOverride     ModeOverride
}

// VirtualCamera renders a 2D world plane (z = 0) as seen from a position in
// front of it. Its aspect ratio always comes from the render target.
type VirtualCamera struct {
	Lens LensSettings

	// DefaultOrthographic is the output camera mode used when Lens.ModeOverride
	// is ModeOverrideNone.
	DefaultOrthographic bool

	Position mgl64.Vec3
	Rotation mgl64.Quat

	screenW int
	screenH int
	off     *ebiten.Image
}

// NewVirtualCamera creates a virtual camera with the given logical screen size.
func NewVirtualCamera(screenW, screenH int) *VirtualCamera {
	return &VirtualCamera{
		Lens: LensSettings{
			FieldOfView:      obj.DefaultFieldOfView,
			OrthographicSize: obj.DefaultOrthographicSize,
		},
		Rotation: mgl64.QuatIdent(),
		screenW:  screenW,
		screenH:  screenH,
	}
}

// SetScreenSize updates the logical size of the render target.
func (c *VirtualCamera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.screenW == w && c.screenH == h {
		return
	}
	c.screenW = w
	c.screenH = h
	c.off = nil
}

// SetView places the camera at the given world position and orientation.
func (c *VirtualCamera) SetView(pos mgl64.Vec3, rot mgl64.Quat) {
	c.Position = pos
	c.Rotation = rot
}

// Orthographic reports the effective projection mode.
func (c *VirtualCamera) Orthographic() bool {
	switch c.Lens.ModeOverride {
	case ModeOverrideOrthographic:
		return true
	case ModeOverridePerspective:
		return false
	default:
		return c.DefaultOrthographic
	}
}

// Aspect returns width/height of the render target.
func (c *VirtualCamera) Aspect() float64 {
	if c.screenH == 0 {
		return 1
	}
	return float64(c.screenW) / float64(c.screenH)
}

// HalfHeight returns half of the visible world height on the z = 0 plane.
func (c *VirtualCamera) HalfHeight() float64 {
	if c.Orthographic() {
		return c.Lens.OrthographicSize
	}
	dist := math.Abs(c.Position.Z())
	return dist * math.Tan(mgl64.DegToRad(c.Lens.FieldOfView)/2)
}

// Zoom returns screen pixels per world unit.
func (c *VirtualCamera) Zoom() float64 {
	hh := c.HalfHeight()
	if hh <= 0 {
		return 1
	}
	return float64(c.screenH) / 2 / hh
}

// Roll returns the camera rotation about the view axis in radians.
func (c *VirtualCamera) Roll() float64 {
	q := c.Rotation
	x, y, z := q.V.X(), q.V.Y(), q.V.Z()
	return math.Atan2(2*(q.W*z+x*y), 1-2*(y*y+z*z))
}

// GeoM returns the world-to-screen transform for the current view.
func (c *VirtualCamera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.Position.X(), -c.Position.Y())
	g.Rotate(-c.Roll())
	z := c.Zoom()
	g.Scale(z, z)
	g.Translate(float64(c.screenW)/2, float64(c.screenH)/2)
	return g
}

// Render clears the offscreen target, lets drawWorld paint into it using
// GeoM, then copies it onto screen.
func (c *VirtualCamera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image, geo ebiten.GeoM)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off, c.GeoM())
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
