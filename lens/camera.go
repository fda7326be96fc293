package lens

import "github.com/milk9111/camerarig/obj"

// CameraLens adapts a plain obj.Camera.
type CameraLens struct {
	cam *obj.Camera
}

var _ Lens = (*CameraLens)(nil)

func NewCameraLens(cam *obj.Camera) *CameraLens {
	return &CameraLens{cam: cam}
}

func (l *CameraLens) Orthographic() bool     { return l.cam.Orthographic }
func (l *CameraLens) SetOrthographic(v bool) { l.cam.Orthographic = v }

func (l *CameraLens) FieldOfView() float64          { return l.cam.FieldOfView }
func (l *CameraLens) SetFieldOfView(deg float64)    { l.cam.FieldOfView = deg }
func (l *CameraLens) OrthographicSize() float64     { return l.cam.OrthographicSize }
func (l *CameraLens) SetOrthographicSize(s float64) { l.cam.OrthographicSize = s }

func (l *CameraLens) Aspect() float64          { return l.cam.Aspect }
func (l *CameraLens) SetAspect(aspect float64) { l.cam.Aspect = aspect }
