package rig

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camerarig/common"
)

const quatEqualEpsilon = 1e-6

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp interpolates along the shorter arc between a and b. t is not clamped.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}

// ExpLerp moves a toward b by rate*dt. A factor above 1 lands exactly on b.
func ExpLerp(a, b mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	f := common.Clamp01(rate * dt)
	if f == 1 {
		return b
	}
	return Lerp(a, b, f)
}

// ExpSlerp rotates a toward b by rate*dt. A factor above 1 lands exactly on b.
func ExpSlerp(a, b mgl64.Quat, rate, dt float64) mgl64.Quat {
	f := common.Clamp01(rate * dt)
	if f == 1 {
		return b
	}
	return Slerp(a, b, f)
}

// QuatEqual reports whether a and b describe the same rotation.
func QuatEqual(a, b mgl64.Quat) bool {
	d := a.Dot(b)
	if d < 0 {
		d = -d
	}
	return d > 1-quatEqualEpsilon
}
