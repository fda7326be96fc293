// Package transition times camera transitions and turns elapsed time into
// the eased progress value the rig consumes.
package transition

import (
	"github.com/milk9111/camerarig/common"
	"github.com/milk9111/camerarig/rig"
)

// Driver advances a single transition of fixed duration (seconds).
type Driver struct {
	duration float64
	ease     EaseFunc
	elapsed  float64
}

// NewDriver creates a driver. A nil ease is linear; a duration <= 0 is
// complete from the start.
func NewDriver(duration float64, ease EaseFunc) *Driver {
	if ease == nil {
		ease = Linear
	}
	return &Driver{duration: duration, ease: ease}
}

func (d *Driver) Elapsed() float64 { return d.elapsed }

// Raw returns linear progress in [0, 1].
func (d *Driver) Raw() float64 {
	if d.duration <= 0 {
		return 1
	}
	return common.Clamp01(d.elapsed / d.duration)
}

// Progress returns eased progress.
func (d *Driver) Progress() float64 {
	return d.ease(d.Raw())
}

// Advance adds dt seconds and returns eased progress.
func (d *Driver) Advance(dt float64) float64 {
	if dt > 0 {
		d.elapsed += dt
	}
	return d.Progress()
}

func (d *Driver) Done() bool { return d.Raw() >= 1 }

func (d *Driver) Reset() { d.elapsed = 0 }

// Pair times position and rotation independently.
type Pair struct {
	Position *Driver
	Rotation *Driver
}

func NewPair(position, rotation *Driver) *Pair {
	return &Pair{Position: position, Rotation: rotation}
}

// Advance steps both drivers and returns the frame's progress.
func (p *Pair) Advance(dt float64) rig.Progress {
	return rig.Progress{
		Position: p.Position.Advance(dt),
		Rotation: p.Rotation.Advance(dt),
	}
}

// Progress returns the current progress without advancing.
func (p *Pair) Progress() rig.Progress {
	return rig.Progress{Position: p.Position.Progress(), Rotation: p.Rotation.Progress()}
}

func (p *Pair) Done() bool { return p.Position.Done() && p.Rotation.Done() }

func (p *Pair) Reset() {
	p.Position.Reset()
	p.Rotation.Reset()
}
