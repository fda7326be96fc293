package view

import "github.com/milk9111/camerarig/lens"

// VirtualLens adapts a VirtualCamera. The projection mode is switched
// through the camera's mode override, and aspect is read-only.
type VirtualLens struct {
	cam *VirtualCamera
}

var _ lens.Lens = (*VirtualLens)(nil)

func NewVirtualLens(cam *VirtualCamera) *VirtualLens {
	return &VirtualLens{cam: cam}
}

func (l *VirtualLens) Orthographic() bool { return l.cam.Orthographic() }

func (l *VirtualLens) SetOrthographic(v bool) {
	if v {
		l.cam.Lens.ModeOverride = ModeOverrideOrthographic
		return
	}
	l.cam.Lens.ModeOverride = ModeOverridePerspective
}

func (l *VirtualLens) FieldOfView() float64       { return l.cam.Lens.FieldOfView }
func (l *VirtualLens) SetFieldOfView(deg float64) { l.cam.Lens.FieldOfView = deg }

func (l *VirtualLens) OrthographicSize() float64 { return l.cam.Lens.OrthographicSize }

func (l *VirtualLens) SetOrthographicSize(size float64) {
	l.cam.Lens.OrthographicSize = size
}

func (l *VirtualLens) Aspect() float64 { return l.cam.Aspect() }

// SetAspect is a no-op: the aspect follows the render target.
func (l *VirtualLens) SetAspect(float64) {}
