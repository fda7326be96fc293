package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camerarig/obj"
)

const gridHalf = 30

// drawPlain renders the scene as wireframes projected through cam's view and
// projection matrices.
func drawPlain(cam *obj.Camera, orbiters []*orbiter, current int) {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	for i := -gridHalf; i <= gridHalf; i += 2 {
		f := float64(i)
		drawEdge(cam, w, h, mgl64.Vec3{f, 0, -gridHalf}, mgl64.Vec3{f, 0, gridHalf}, rl.LightGray)
		drawEdge(cam, w, h, mgl64.Vec3{-gridHalf, 0, f}, mgl64.Vec3{gridHalf, 0, f}, rl.LightGray)
	}
	for i, o := range orbiters {
		pos := o.Pose().Position
		for _, e := range cubeEdges(pos, 1.5) {
			drawEdge(cam, w, h, e[0], e[1], o.color)
		}
		if i == current {
			for _, e := range cubeEdges(pos, 1.8) {
				drawEdge(cam, w, h, e[0], e[1], rl.Black)
			}
		}
	}
}

func drawEdge(cam *obj.Camera, w, h int, a, b mgl64.Vec3, c rl.Color) {
	ax, ay, okA := cam.WorldToScreen(a, w, h)
	bx, by, okB := cam.WorldToScreen(b, w, h)
	if !okA || !okB {
		return
	}
	rl.DrawLineV(rl.NewVector2(float32(ax), float32(ay)), rl.NewVector2(float32(bx), float32(by)), c)
}

// cubeEdges returns the 12 edges of an axis-aligned cube.
func cubeEdges(center mgl64.Vec3, size float64) [][2]mgl64.Vec3 {
	d := size / 2
	var corners [8]mgl64.Vec3
	for i := range corners {
		sx, sy, sz := -d, -d, -d
		if i&1 != 0 {
			sx = d
		}
		if i&2 != 0 {
			sy = d
		}
		if i&4 != 0 {
			sz = d
		}
		corners[i] = center.Add(mgl64.Vec3{sx, sy, sz})
	}
	var edges [][2]mgl64.Vec3
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				edges = append(edges, [2]mgl64.Vec3{corners[i], corners[j]})
			}
		}
	}
	return edges
}
