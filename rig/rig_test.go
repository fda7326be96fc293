package rig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camerarig/lens"
	"github.com/milk9111/camerarig/obj"
)

type strategyCall struct {
	method  string
	from    Pose
	target  Pose
	t, rotT float64
	dt      float64
}

type spyStrategy struct {
	calls []strategyCall
}

func (s *spyStrategy) ControlsHolderRotation() bool { return false }

func (s *spyStrategy) OnSteadyUpdate(target Target, dt float64) {
	s.calls = append(s.calls, strategyCall{method: "steady", target: target.Pose(), dt: dt})
}

func (s *spyStrategy) OnFocusToFollowUpdate(from Pose, targetPosition mgl64.Vec3, targetRotation mgl64.Quat, t, dt float64) {
	s.calls = append(s.calls, strategyCall{
		method: "focus",
		from:   from,
		target: Pose{Position: targetPosition, Rotation: targetRotation},
		t:      t,
		dt:     dt,
	})
}

func (s *spyStrategy) OnTargetToTargetUpdate(from Pose, to Target, positionT, rotationT float64, dt float64) {
	s.calls = append(s.calls, strategyCall{method: "retarget", from: from, target: to.Pose(), t: positionT, rotT: rotationT, dt: dt})
}

func (s *spyStrategy) last(t *testing.T) strategyCall {
	t.Helper()
	if len(s.calls) == 0 {
		t.Fatalf("strategy was not called")
	}
	return s.calls[len(s.calls)-1]
}

func newTestRig() (*Rig, *spyStrategy, *lens.CameraLens) {
	spy := &spyStrategy{}
	l := lens.NewCameraLens(obj.NewCamera(16.0 / 9.0))
	return New(NewNode(IdentityPose()), l, spy), spy, l
}

func TestRigUpdateWithoutTargetIsNoop(t *testing.T) {
	r, spy, _ := newTestRig()
	r.Update(0.016, Uniform(0.5))
	if len(spy.calls) != 0 {
		t.Fatalf("expected no strategy calls, got %d", len(spy.calls))
	}
}

func TestRigDispatch(t *testing.T) {
	a := staticTarget{Position: mgl64.Vec3{1, 0, 0}, Rotation: mgl64.QuatIdent()}
	b := staticTarget{Position: mgl64.Vec3{5, 0, 0}, Rotation: yaw(1)}
	focus := Pose{Position: mgl64.Vec3{0, 9, 0}, Rotation: yaw(-1)}

	t.Run("steady", func(t *testing.T) {
		r, spy, _ := newTestRig()
		r.Follow(a)
		r.Update(0.02, Uniform(0.7))
		c := spy.last(t)
		if c.method != "steady" || c.target != Pose(a) || c.dt != 0.02 {
			t.Fatalf("unexpected call %+v", c)
		}
		if r.Mode() != ModeSteady {
			t.Fatalf("mode = %v", r.Mode())
		}
	})

	t.Run("focus_to_follow", func(t *testing.T) {
		r, spy, _ := newTestRig()
		r.BeginFocusToFollow(focus, b)
		r.Update(0.02, Progress{Position: 0.3, Rotation: 0.9})
		c := spy.last(t)
		if c.method != "focus" || c.from != focus || c.target != Pose(b) || c.t != 0.3 {
			t.Fatalf("unexpected call %+v", c)
		}
		if r.Mode() != ModeFocusToFollow {
			t.Fatalf("mode = %v", r.Mode())
		}
	})

	t.Run("target_to_target", func(t *testing.T) {
		r, spy, _ := newTestRig()
		r.Follow(a)
		r.BeginRetarget(b)
		r.Update(0.02, Progress{Position: 0.3, Rotation: 0.9})
		c := spy.last(t)
		if c.method != "retarget" || c.from != Pose(a) || c.target != Pose(b) || c.t != 0.3 || c.rotT != 0.9 {
			t.Fatalf("unexpected call %+v", c)
		}
		if r.Target() != Target(b) {
			t.Fatalf("target not switched")
		}
	})

	t.Run("end_transition", func(t *testing.T) {
		r, spy, _ := newTestRig()
		r.Follow(a)
		r.BeginRetarget(b)
		r.EndTransition()
		r.Update(0.02, Uniform(1))
		if c := spy.last(t); c.method != "steady" || c.target != Pose(b) {
			t.Fatalf("unexpected call %+v", c)
		}
	})

	t.Run("follow_abandons_transition", func(t *testing.T) {
		r, spy, _ := newTestRig()
		r.BeginFocusToFollow(focus, b)
		r.Follow(a)
		r.Update(0.02, Uniform(0.5))
		if c := spy.last(t); c.method != "steady" || c.target != Pose(a) {
			t.Fatalf("unexpected call %+v", c)
		}
	})
}

func TestRigRetargetWithoutTargetStartsFromHolder(t *testing.T) {
	r, _, _ := newTestRig()
	start := Pose{Position: mgl64.Vec3{3, 3, 3}, Rotation: yaw(0.4)}
	r.Holder().SetPose(start)
	r.BeginRetarget(staticTarget(IdentityPose()))
	if r.From() != start {
		t.Fatalf("from = %+v, want %+v", r.From(), start)
	}
}

func TestRigSetStrategy(t *testing.T) {
	r, spy, _ := newTestRig()
	next := &spyStrategy{}
	r.SetStrategy(next)
	r.Follow(staticTarget(IdentityPose()))
	r.Update(0.016, Uniform(0))
	if len(spy.calls) != 0 || len(next.calls) != 1 {
		t.Fatalf("calls old=%d new=%d", len(spy.calls), len(next.calls))
	}
}

func TestRigLensBlend(t *testing.T) {
	r, _, l := newTestRig()

	r.BlendFieldOfView(60, 30, 0.5)
	if math.Abs(l.FieldOfView()-45) > eps {
		t.Fatalf("fov = %v, want 45", l.FieldOfView())
	}

	r.BlendOrthographicSize(4, 8, 0.25)
	if math.Abs(l.OrthographicSize()-5) > eps {
		t.Fatalf("ortho size = %v, want 5", l.OrthographicSize())
	}

	r.BlendFieldOfView(60, 30, 2)
	if math.Abs(l.FieldOfView()-0) > eps {
		t.Fatalf("fov = %v, want 0 (unclamped)", l.FieldOfView())
	}

	r.SetOrthographic(true)
	if !l.Orthographic() {
		t.Fatalf("expected orthographic lens")
	}
}

func TestRigWithSmoothFollowConverges(t *testing.T) {
	holder := NewNode(IdentityPose())
	r := New(holder, lens.NewCameraLens(obj.NewCamera(1)), NewSmoothFollow(holder, FollowConfig{PositionRate: 8}))
	r.Follow(staticTarget{Position: mgl64.Vec3{10, 0, 0}, Rotation: mgl64.QuatIdent()})

	prev := 0.0
	for i := 0; i < 120; i++ {
		r.Update(1.0/60, Progress{})
		x := holder.Pose().Position.X()
		if x < prev {
			t.Fatalf("frame %d moved backwards: %v < %v", i, x, prev)
		}
		prev = x
	}
	if math.Abs(prev-10) > 0.01 {
		t.Fatalf("x = %v, want ~10", prev)
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{
		ModeSteady:         "steady",
		ModeFocusToFollow:  "focus_to_follow",
		ModeTargetToTarget: "target_to_target",
	} {
		if m.String() != want {
			t.Fatalf("%d.String() = %q, want %q", m, m.String(), want)
		}
	}
}
