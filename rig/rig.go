package rig

import (
	"github.com/milk9111/camerarig/common"
	"github.com/milk9111/camerarig/lens"
)

// Mode selects which strategy update Rig.Update runs.
type Mode int

const (
	ModeSteady Mode = iota
	ModeFocusToFollow
	ModeTargetToTarget
)

func (m Mode) String() string {
	switch m {
	case ModeFocusToFollow:
		return "focus_to_follow"
	case ModeTargetToTarget:
		return "target_to_target"
	default:
		return "steady"
	}
}

// Progress carries the caller's transition progress for one frame.
// Focus-to-follow transitions only read Position.
type Progress struct {
	Position float64
	Rotation float64
}

// Uniform returns a Progress with the same value on both channels.
func Uniform(t float64) Progress {
	return Progress{Position: t, Rotation: t}
}

// Rig owns a holder, the active strategy and the active lens. The caller
// decides when transitions start and end and supplies their progress; Rig
// only dispatches. A Rig must be driven from a single goroutine.
type Rig struct {
	holder   Holder
	lens     lens.Lens
	strategy Strategy

	mode   Mode
	target Target
	from   Pose
}

// New creates a rig in steady mode with no target. strategy should have been
// constructed with holder.
func New(holder Holder, l lens.Lens, strategy Strategy) *Rig {
	return &Rig{holder: holder, lens: l, strategy: strategy}
}

func (r *Rig) Holder() Holder         { return r.holder }
func (r *Rig) Lens() lens.Lens        { return r.lens }
func (r *Rig) SetLens(l lens.Lens)    { r.lens = l }
func (r *Rig) Strategy() Strategy     { return r.strategy }
func (r *Rig) SetStrategy(s Strategy) { r.strategy = s }
func (r *Rig) Mode() Mode             { return r.mode }
func (r *Rig) Target() Target         { return r.target }

// From returns the pose the current transition started from.
func (r *Rig) From() Pose { return r.from }

// Follow tracks target in steady mode, abandoning any transition. Easing
// continues from wherever the holder is.
func (r *Rig) Follow(target Target) {
	r.target = target
	r.mode = ModeSteady
}

// BeginFocusToFollow starts resuming target from a free focus pose.
func (r *Rig) BeginFocusToFollow(focus Pose, target Target) {
	r.from = focus
	r.target = target
	r.mode = ModeFocusToFollow
}

// BeginRetarget starts a transition from the current target to to. The
// current target's pose is captured as the starting point; without a current
// target the holder's pose is used.
func (r *Rig) BeginRetarget(to Target) {
	if r.target != nil {
		r.from = r.target.Pose()
	} else {
		r.from = r.holder.Pose()
	}
	r.target = to
	r.mode = ModeTargetToTarget
}

// EndTransition returns to steady following of the current target.
func (r *Rig) EndTransition() {
	r.mode = ModeSteady
}

// Update runs one frame of the active strategy.
func (r *Rig) Update(dt float64, p Progress) {
	if r.target == nil {
		return
	}

	switch r.mode {
	case ModeFocusToFollow:
		goal := r.target.Pose()
		r.strategy.OnFocusToFollowUpdate(r.from, goal.Position, goal.Rotation, p.Position, dt)
	case ModeTargetToTarget:
		r.strategy.OnTargetToTargetUpdate(r.from, r.target, p.Position, p.Rotation, dt)
	default:
		r.strategy.OnSteadyUpdate(r.target, dt)
	}
}

// BlendFieldOfView sets the lens field of view between from and to at t.
func (r *Rig) BlendFieldOfView(from, to, t float64) {
	r.lens.SetFieldOfView(common.Lerp(from, to, t))
}

// BlendOrthographicSize sets the lens orthographic size between from and to
// at t.
func (r *Rig) BlendOrthographicSize(from, to, t float64) {
	r.lens.SetOrthographicSize(common.Lerp(from, to, t))
}

func (r *Rig) SetOrthographic(v bool) {
	r.lens.SetOrthographic(v)
}
