package main

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camerarig/lens"
	"github.com/milk9111/camerarig/lens/raylens"
	"github.com/milk9111/camerarig/obj"
	"github.com/milk9111/camerarig/prefabs"
)

func TestConfigureLens(t *testing.T) {
	spec := prefabs.LensSpec{FieldOfView: 50, OrthographicSize: 6, RetargetFieldOfView: 40}

	ray := rl.Camera3D{
		Position:   rl.NewVector3(0, 10, 20),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}
	backends := map[string]lens.Lens{
		"plain":  lens.NewCameraLens(obj.NewCamera(16.0 / 9.0)),
		"raylib": raylens.New(&ray, func() float64 { return 16.0 / 9.0 }),
	}
	for name, l := range backends {
		t.Run(name, func(t *testing.T) {
			configureLens(l, spec)
			if l.FieldOfView() != 50 || l.OrthographicSize() != 6 || l.Orthographic() {
				t.Fatalf("lens = fov %v ortho size %v ortho %v", l.FieldOfView(), l.OrthographicSize(), l.Orthographic())
			}

			// Switching modes later keeps the configured size.
			l.SetOrthographic(true)
			if math.Abs(l.OrthographicSize()-6) > 1e-6 {
				t.Fatalf("ortho size after switch = %v, want 6", l.OrthographicSize())
			}
		})
	}
	if ray.Fovy != 12 {
		t.Fatalf("raylib Fovy = %v, want the full ortho height 12", ray.Fovy)
	}
}

func TestRetargetBump(t *testing.T) {
	cases := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 0},
		{"peak", 0.5, 1},
		{"end", 1, 0},
		{"overshoot", 1.05, 0},
		{"undershoot", -0.1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := retargetBump(c.t); math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("retargetBump(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestCubeEdges(t *testing.T) {
	edges := cubeEdges(mgl64.Vec3{1, 2, 3}, 2)
	if len(edges) != 12 {
		t.Fatalf("edges = %d, want 12", len(edges))
	}
	for _, e := range edges {
		if l := e[1].Sub(e[0]).Len(); math.Abs(l-2) > 1e-12 {
			t.Fatalf("edge %v has length %v", e, l)
		}
	}
}

func TestCopyLensKeepsFraming(t *testing.T) {
	ray := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 10),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	src := raylens.New(&ray, func() float64 { return 1 })
	src.SetOrthographicSize(4)
	src.SetOrthographic(true)

	cam := obj.NewCamera(1)
	copyLens(lens.NewCameraLens(cam), src)
	if !cam.Orthographic || cam.OrthographicSize != 4 || cam.FieldOfView != 60 {
		t.Fatalf("plain camera = %+v", cam)
	}

	ray2 := ray
	ray2.Projection = rl.CameraPerspective
	ray2.Fovy = 90
	dst := raylens.New(&ray2, func() float64 { return 1 })
	copyLens(dst, lens.NewCameraLens(cam))
	if !dst.Orthographic() || ray2.Fovy != 8 || dst.FieldOfView() != 60 {
		t.Fatalf("raylib lens = fovy %v fov %v ortho %v", ray2.Fovy, dst.FieldOfView(), dst.Orthographic())
	}
}
