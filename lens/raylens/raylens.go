// Package raylens adapts a raylib Camera3D to lens.Lens.
//
// raylib keeps a single Fovy field: the vertical field of view in degrees for
// perspective cameras, and the full view height in world units for
// orthographic ones. Lens remembers the value of the inactive mode and swaps
// it in on every mode change, so all four properties stay defined.
package raylens

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camerarig/lens"
	"github.com/milk9111/camerarig/rig"
)

const (
	fallbackFieldOfView      = 60.0
	fallbackOrthographicSize = 5.0
)

// Lens wraps a raylib camera. Aspect comes from the render target and
// SetAspect is ignored.
type Lens struct {
	cam *rl.Camera3D

	fieldOfView      float64
	orthographicSize float64
	aspect           func() float64
}

var _ lens.Lens = (*Lens)(nil)

// New wraps cam. aspect reports the render target's width/height; nil reads
// the current raylib render size.
func New(cam *rl.Camera3D, aspect func() float64) *Lens {
	if aspect == nil {
		aspect = renderAspect
	}
	l := &Lens{cam: cam, aspect: aspect}

	// Seed the inactive value so both modes frame the same height at the
	// current target distance.
	dist := float64(rl.Vector3Distance(cam.Position, cam.Target))
	if cam.Projection == rl.CameraOrthographic {
		l.orthographicSize = float64(cam.Fovy) / 2
		l.fieldOfView = fallbackFieldOfView
		if dist > 0 {
			l.fieldOfView = mgl64.RadToDeg(2 * math.Atan(l.orthographicSize/dist))
		}
	} else {
		l.fieldOfView = float64(cam.Fovy)
		l.orthographicSize = fallbackOrthographicSize
		if dist > 0 {
			l.orthographicSize = dist * math.Tan(mgl64.DegToRad(l.fieldOfView)/2)
		}
	}
	return l
}

func (l *Lens) Orthographic() bool {
	return l.cam.Projection == rl.CameraOrthographic
}

func (l *Lens) SetOrthographic(v bool) {
	if v == l.Orthographic() {
		return
	}
	if v {
		l.fieldOfView = float64(l.cam.Fovy)
		l.cam.Projection = rl.CameraOrthographic
		l.cam.Fovy = float32(2 * l.orthographicSize)
		return
	}
	l.orthographicSize = float64(l.cam.Fovy) / 2
	l.cam.Projection = rl.CameraPerspective
	l.cam.Fovy = float32(l.fieldOfView)
}

func (l *Lens) FieldOfView() float64 {
	if l.Orthographic() {
		return l.fieldOfView
	}
	return float64(l.cam.Fovy)
}

func (l *Lens) SetFieldOfView(deg float64) {
	l.fieldOfView = deg
	if !l.Orthographic() {
		l.cam.Fovy = float32(deg)
	}
}

func (l *Lens) OrthographicSize() float64 {
	if l.Orthographic() {
		return float64(l.cam.Fovy) / 2
	}
	return l.orthographicSize
}

func (l *Lens) SetOrthographicSize(size float64) {
	l.orthographicSize = size
	if l.Orthographic() {
		l.cam.Fovy = float32(2 * size)
	}
}

func (l *Lens) Aspect() float64 { return l.aspect() }

// SetAspect is a no-op: raylib derives aspect from the render size.
func (l *Lens) SetAspect(float64) {}

// SyncPose points cam along p: position at p.Position, looking down the
// pose's -Z axis with its +Y axis up.
func SyncPose(cam *rl.Camera3D, p rig.Pose) {
	forward := p.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
	up := p.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
	cam.Position = toVector3(p.Position)
	cam.Target = toVector3(p.Position.Add(forward))
	cam.Up = toVector3(up)
}

func toVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func renderAspect() float64 {
	h := rl.GetRenderHeight()
	if h == 0 {
		return 1
	}
	return float64(rl.GetRenderWidth()) / float64(h)
}
