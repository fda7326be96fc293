// Command rig3d drives the camera rig against a raylib 3D scene: three cubes
// orbit the origin and the rig follows one of them from behind.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camerarig/common"
	"github.com/milk9111/camerarig/lens"
	"github.com/milk9111/camerarig/lens/raylens"
	"github.com/milk9111/camerarig/obj"
	"github.com/milk9111/camerarig/prefabs"
	"github.com/milk9111/camerarig/rig"
	"github.com/milk9111/camerarig/target"
)

type orbiter struct {
	name   string
	radius float64
	speed  float64
	height float64
	phase  float64
	color  rl.Color
	clock  *float64
}

func (o *orbiter) Pose() rig.Pose {
	a := o.phase + o.speed*(*o.clock)
	pos := mgl64.Vec3{o.radius * math.Cos(a), o.height, o.radius * math.Sin(a)}
	// Face along the direction of travel; forward is -Z.
	heading := -a
	if o.speed > 0 {
		heading += math.Pi
	}
	return rig.Pose{Position: pos, Rotation: mgl64.QuatRotate(heading, mgl64.Vec3{0, 1, 0})}
}

func main() {
	specName := flag.String("spec", "rig.yaml", "rig spec in prefabs/")
	width := flag.Int("w", 1280, "window width")
	height := flag.Int("h", 720, "window height")
	plain := flag.Bool("plain", false, "drive a plain camera and draw projected wireframes instead of a raylib Camera3D")
	flag.Parse()

	spec, err := prefabs.LoadRigSpec(*specName)
	if err != nil {
		log.Fatal(err)
	}
	// The 3D demo always follows from behind and above the target.
	spec.Strategy.Kind = prefabs.StrategyOffset
	spec.Strategy.Offset = prefabs.OffsetSpec{Y: 3, Z: 9, Pitch: -15}
	spec.Strategy.ControlsRotation = true

	var clock float64
	orbiters := []*orbiter{
		{name: "red", radius: 8, speed: 0.6, height: 1, color: rl.Red, clock: &clock},
		{name: "green", radius: 14, speed: -0.35, height: 2, phase: 2, color: rl.Green, clock: &clock},
		{name: "blue", radius: 20, speed: 0.25, height: 4, phase: 4, color: rl.Blue, clock: &clock},
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(*width), int32(*height), "camerarig 3d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := rl.Camera3D{
		Position:   rl.NewVector3(0, 10, 20),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(spec.Lens.FieldOfView),
		Projection: rl.CameraPerspective,
	}
	rayLens := raylens.New(&cam, nil)
	plainCam := obj.NewCamera(screenAspect())
	plainLens := lens.NewCameraLens(plainCam)
	var l lens.Lens = rayLens
	if *plain {
		l = plainLens
	}
	configureLens(l, spec.Lens)

	holder := rig.NewNode(rig.IdentityPose())
	strategy, err := spec.Strategy.BuildStrategy(holder)
	if err != nil {
		log.Fatal(err)
	}
	pair, err := spec.Transition.BuildTransition()
	if err != nil {
		log.Fatal(err)
	}
	r := rig.New(holder, l, strategy)

	current := 0
	holder.SetPose(spec.Strategy.Offset.RigOffset().Apply(orbiters[current].Pose()))
	r.Follow(orbiters[current])

	last := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		clock += dt

		if rl.IsKeyPressed(rl.KeyTab) {
			current = (current + 1) % len(orbiters)
			pair.Reset()
			r.BeginRetarget(orbiters[current])
		}
		if rl.IsKeyPressed(rl.KeyF) {
			// Jump to an overview, then ease back onto the target.
			pair.Reset()
			r.BeginFocusToFollow(overview(), orbiters[current])
		}
		if rl.IsKeyPressed(rl.KeyO) {
			r.SetOrthographic(!l.Orthographic())
		}
		if rl.IsKeyPressed(rl.KeyC) {
			next := lens.Lens(plainLens)
			if l == next {
				next = rayLens
			}
			copyLens(next, l)
			r.SetLens(next)
			l = next
		}

		if r.Mode() == rig.ModeSteady {
			r.Update(dt, rig.Progress{})
		} else {
			p := pair.Advance(dt)
			r.Update(dt, p)
			if r.Mode() == rig.ModeTargetToTarget {
				bump := retargetBump(p.Position)
				r.BlendFieldOfView(spec.Lens.FieldOfView, spec.Lens.RetargetFieldOfView, bump)
			}
			if pair.Done() {
				r.EndTransition()
				l.SetFieldOfView(spec.Lens.FieldOfView)
			}
		}
		// Aspect writes only reach backends that store it.
		l.SetAspect(screenAspect())

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		if l == lens.Lens(plainLens) {
			pose := holder.Pose()
			plainCam.SetView(pose.Position, pose.Rotation)
			drawPlain(plainCam, orbiters, current)
		} else {
			raylens.SyncPose(&cam, holder.Pose())
			rl.BeginMode3D(cam)
			rl.DrawGrid(60, 1)
			for i, o := range orbiters {
				pos := o.Pose().Position
				v := rl.NewVector3(float32(pos.X()), float32(pos.Y()), float32(pos.Z()))
				rl.DrawCube(v, 1.5, 1.5, 1.5, o.color)
				if i == current {
					rl.DrawCubeWires(v, 1.8, 1.8, 1.8, rl.Black)
				}
			}
			rl.EndMode3D()
		}
		rl.DrawText(fmt.Sprintf("mode: %s  target: %s  ortho: %v  fov: %.1f", r.Mode(), orbiters[current].name, l.Orthographic(), l.FieldOfView()), 10, 10, 20, rl.DarkGray)
		rl.DrawText("[Tab] next target  [F] overview  [O] ortho  [C] backend", 10, 36, 20, rl.Gray)
		rl.EndDrawing()
	}
}

func overview() rig.Pose {
	return target.Static{
		Position: mgl64.Vec3{0, 30, 30},
		Rotation: mgl64.QuatRotate(-math.Pi/4, mgl64.Vec3{1, 0, 0}),
	}.Pose()
}

// configureLens applies the configured lens values to any backend.
func configureLens(l lens.Lens, spec prefabs.LensSpec) {
	l.SetFieldOfView(spec.FieldOfView)
	l.SetOrthographicSize(spec.OrthographicSize)
	l.SetOrthographic(spec.Orthographic)
}

// copyLens moves the projection state of src onto dst so swapping backends
// keeps the current framing.
func copyLens(dst, src lens.Lens) {
	dst.SetFieldOfView(src.FieldOfView())
	dst.SetOrthographicSize(src.OrthographicSize())
	dst.SetOrthographic(src.Orthographic())
}

// retargetBump maps transition progress to a 0..1..0 lens punch. Progress
// from overshooting curves is clamped so the punch never reverses.
func retargetBump(t float64) float64 {
	return math.Sin(math.Pi * common.Clamp01(t))
}

func screenAspect() float64 {
	h := rl.GetScreenHeight()
	if h == 0 {
		return 1
	}
	return float64(rl.GetScreenWidth()) / float64(h)
}
