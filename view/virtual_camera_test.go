package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestVirtualCameraZoom(t *testing.T) {
	cam := NewVirtualCamera(800, 600)
	cam.Lens.ModeOverride = ModeOverrideOrthographic
	cam.Lens.OrthographicSize = 3

	if got := cam.Zoom(); math.Abs(got-100) > 1e-9 {
		t.Fatalf("ortho zoom = %v, want 100", got)
	}

	cam.Lens.ModeOverride = ModeOverridePerspective
	cam.Lens.FieldOfView = 90
	cam.SetView(mgl64.Vec3{0, 0, 3}, mgl64.QuatIdent())
	if got := cam.Zoom(); math.Abs(got-100) > 1e-9 {
		t.Fatalf("perspective zoom = %v, want 100", got)
	}
}

func TestVirtualCameraGeoM(t *testing.T) {
	cam := NewVirtualCamera(800, 600)
	cam.Lens.ModeOverride = ModeOverrideOrthographic
	cam.Lens.OrthographicSize = 300
	cam.SetView(mgl64.Vec3{50, 20, 0}, mgl64.QuatIdent())

	geo := cam.GeoM()
	x, y := geo.Apply(50, 20)
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Fatalf("view center mapped to (%v, %v), want (400, 300)", x, y)
	}

	// One world unit off center is Zoom pixels off center.
	x, y = geo.Apply(51, 20)
	if math.Abs(x-401) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Fatalf("offset point mapped to (%v, %v), want (401, 300)", x, y)
	}
}

func TestVirtualCameraRoll(t *testing.T) {
	cam := NewVirtualCamera(100, 100)
	cam.SetView(mgl64.Vec3{}, mgl64.QuatRotate(0.5, mgl64.Vec3{0, 0, 1}))
	if got := cam.Roll(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("roll = %v, want 0.5", got)
	}
}
