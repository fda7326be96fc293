package obj

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraWorldToScreenCenter(t *testing.T) {
	cam := NewCamera(16.0 / 9.0)
	cam.SetView(mgl64.Vec3{0, 0, 10}, mgl64.QuatIdent())

	x, y, ok := cam.WorldToScreen(mgl64.Vec3{0, 0, 0}, 1280, 720)
	if !ok {
		t.Fatalf("origin should be in front of the camera")
	}
	if math.Abs(x-640) > 1e-6 || math.Abs(y-360) > 1e-6 {
		t.Fatalf("origin projected to (%v, %v), want screen center", x, y)
	}

	if _, _, ok := cam.WorldToScreen(mgl64.Vec3{0, 0, 20}, 1280, 720); ok {
		t.Fatalf("point behind the camera should not project")
	}
}

func TestCameraOrthographicProjection(t *testing.T) {
	cam := NewCamera(1)
	cam.Orthographic = true
	cam.OrthographicSize = 5
	cam.SetView(mgl64.Vec3{0, 0, 10}, mgl64.QuatIdent())

	// The top edge of the view is OrthographicSize above the center.
	_, y, ok := cam.WorldToScreen(mgl64.Vec3{0, 5, 0}, 100, 100)
	if !ok {
		t.Fatalf("point should project")
	}
	if math.Abs(y) > 1e-6 {
		t.Fatalf("y = %v, want 0", y)
	}
}
