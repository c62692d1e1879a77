package flycam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func newCamera() (Transform, Controller) {
	return NewTransform(mgl32.Vec3{}), Controller{}
}

// vecNear compares with an absolute tolerance. mgl32's ApproxEqualThreshold is
// relative and fails on zero components carrying float32 rotation noise.
func vecNear(got, want mgl32.Vec3, tol float32) bool {
	return got.Sub(want).Len() < tol
}

func quatNear(got, want mgl32.Quat, tol float32) bool {
	return got.Sub(want).Len() < tol
}

func TestUpdatePitchStaysClamped(t *testing.T) {
	tr, c := newCamera()
	tn := DefaultTuning()

	deltas := []mgl32.Vec2{
		{0, -1000}, {0, -1000}, {40, 300}, {0, 5000}, {-7, -12}, {0, 1e6}, {0, -1e6}, {3, 0},
	}
	for i, d := range deltas {
		Update(tn, 0.016, Input{Look: d}, &tr, &c)
		if c.Pitch < MinPitch || c.Pitch > MaxPitch {
			t.Fatalf("frame %d: pitch %v outside [%v, %v]", i, c.Pitch, float32(MinPitch), float32(MaxPitch))
		}
	}

	// 1000 dots upward on a level camera saturates at the limit
	tr, c = newCamera()
	Update(tn, 0.016, Input{Look: mgl32.Vec2{0, -1000}}, &tr, &c)
	if c.Pitch != MaxPitch {
		t.Errorf("expected pitch to clamp at %v, got %v", float32(MaxPitch), c.Pitch)
	}
}

func TestUpdateDecayReachesZero(t *testing.T) {
	tr, c := newCamera()
	tn := DefaultTuning()
	c.Velocity = mgl32.Vec3{0, 0, 1500}

	v0 := float64(c.Velocity.LenSqr())
	bound := int(math.Ceil(math.Log2(v0 / StopEpsilon)))

	frames := 0
	for c.Velocity != (mgl32.Vec3{}) {
		Update(tn, 0.016, Input{}, &tr, &c)
		frames++
		if frames > bound {
			t.Fatalf("velocity %v still non-zero after %d frames", c.Velocity, frames)
		}
	}

	// once stopped it stays stopped
	pos := tr.Position
	Update(tn, 0.016, Input{}, &tr, &c)
	if c.Velocity != (mgl32.Vec3{}) || tr.Position != pos {
		t.Errorf("stopped camera drifted: velocity %v position %v", c.Velocity, tr.Position)
	}
}

func TestUpdateDecayHalvesVelocity(t *testing.T) {
	tr, c := newCamera()
	c.Velocity = mgl32.Vec3{10, -4, 2}

	Update(DefaultTuning(), 0, Input{}, &tr, &c)

	want := mgl32.Vec3{5, -2, 1}
	if !vecNear(c.Velocity, want, eps) {
		t.Errorf("expected %v, got %v", want, c.Velocity)
	}
}

func TestUpdateSpeedTiers(t *testing.T) {
	tests := []struct {
		name string
		fast bool
		slow bool
		want float32
	}{
		{"default", false, false, DefaultSpeed},
		{"slow", false, true, SlowSpeed},
		{"fast", true, false, FastSpeed},
		{"fast wins over slow", true, true, FastSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, c := newCamera()
			in := Input{Move: mgl32.Vec3{0, 0, 1}, Fast: tt.fast, Slow: tt.slow}
			Update(DefaultTuning(), 0.016, in, &tr, &c)

			if got := c.Velocity.Len(); !mgl32.FloatEqualThreshold(got, tt.want, eps) {
				t.Errorf("expected speed %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUpdateVelocityIsReplacedNotAccumulated(t *testing.T) {
	tr, c := newCamera()
	c.Velocity = mgl32.Vec3{0, 0, 1400}

	Update(DefaultTuning(), 0.016, Input{Move: mgl32.Vec3{0, 0, 1}, Slow: true}, &tr, &c)

	want := mgl32.Vec3{0, 0, SlowSpeed}
	if !vecNear(c.Velocity, want, eps) {
		t.Errorf("expected %v, got %v", want, c.Velocity)
	}
}

func TestUpdateNormalizesMovement(t *testing.T) {
	tests := []struct {
		name string
		move mgl32.Vec3
	}{
		{"strafe and forward", mgl32.Vec3{1, 0, 1}},
		{"all three axes", mgl32.Vec3{-1, 1, 1}},
		{"single axis", mgl32.Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, c := newCamera()
			Update(DefaultTuning(), 0.016, Input{Move: tt.move}, &tr, &c)

			if got := c.Velocity.Len(); !mgl32.FloatEqualThreshold(got, DefaultSpeed, eps) {
				t.Errorf("expected speed %v, got %v", DefaultSpeed, got)
			}
		})
	}
}

func TestUpdateIdleFrameKeepsOrientation(t *testing.T) {
	tr, c := newCamera()
	tn := DefaultTuning()

	Update(tn, 0.016, Input{Look: mgl32.Vec2{37, -12}, Roll: 1}, &tr, &c)
	before := tr.Rotation
	yaw, pitch := c.Yaw, c.Pitch

	for i := 0; i < 100; i++ {
		Update(tn, 0.016, Input{}, &tr, &c)
	}

	if tr.Rotation != before {
		t.Errorf("rotation drifted from %v to %v", before, tr.Rotation)
	}
	if c.Yaw != yaw || c.Pitch != pitch {
		t.Errorf("angles drifted: yaw %v->%v pitch %v->%v", yaw, c.Yaw, pitch, c.Pitch)
	}
}

func TestUpdateLookScaling(t *testing.T) {
	tn := DefaultTuning()

	tr, c := newCamera()
	Update(tn, 0.016, Input{Look: mgl32.Vec2{180, 0}}, &tr, &c)
	if !mgl32.FloatEqualThreshold(c.Yaw, -1, 1e-6) {
		t.Errorf("expected yaw -1, got %v", c.Yaw)
	}
	if c.Pitch != 0 {
		t.Errorf("expected pitch 0, got %v", c.Pitch)
	}

	tr, c = newCamera()
	Update(tn, 0.016, Input{Look: mgl32.Vec2{0, 180}}, &tr, &c)
	if !mgl32.FloatEqualThreshold(c.Pitch, -1, 1e-6) {
		t.Errorf("expected pitch -1, got %v", c.Pitch)
	}

	// a second downward push of 1 radian passes -pi/2 and clamps
	Update(tn, 0.016, Input{Look: mgl32.Vec2{0, 180}}, &tr, &c)
	if c.Pitch != MinPitch {
		t.Errorf("expected pitch clamped to %v, got %v", float32(MinPitch), c.Pitch)
	}
}

func TestUpdateYawIsUnbounded(t *testing.T) {
	tr, c := newCamera()
	for i := 0; i < 10; i++ {
		Update(DefaultTuning(), 0.016, Input{Look: mgl32.Vec2{-180, 0}}, &tr, &c)
	}
	if !mgl32.FloatEqualThreshold(c.Yaw, 10, 1e-4) {
		t.Errorf("expected yaw 10, got %v", c.Yaw)
	}
}

func TestUpdateLookBuildsYawThenPitch(t *testing.T) {
	tr, c := newCamera()
	// turn left 90 degrees, then look up 45 degrees
	look := mgl32.Vec2{-float32(math.Pi / 2 * 180), -float32(math.Pi / 4 * 180)}
	Update(DefaultTuning(), 0, Input{Look: look}, &tr, &c)

	s := float32(math.Sqrt2 / 2)
	want := mgl32.Vec3{-s, s, 0}
	if got := tr.Forward(); !vecNear(got, want, eps) {
		t.Errorf("expected forward %v, got %v", want, got)
	}
	if got := tr.Right(); !vecNear(got, mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("expected right %v, got %v", mgl32.Vec3{0, 0, -1}, got)
	}
}

func TestUpdateMovesAlongPreviousAxes(t *testing.T) {
	tr, c := newCamera()
	in := Input{
		Move: mgl32.Vec3{0, 0, 1},
		Look: mgl32.Vec2{-float32(math.Pi / 2 * 180), 0},
	}
	Update(DefaultTuning(), 0.1, in, &tr, &c)

	// movement used the identity orientation (forward -Z), not the new heading
	want := mgl32.Vec3{0, 0, -50}
	if !vecNear(tr.Position, want, eps) {
		t.Errorf("expected position %v, got %v", want, tr.Position)
	}

	// the next frame moves along the new heading (-X)
	Update(DefaultTuning(), 0.1, Input{Move: mgl32.Vec3{0, 0, 1}}, &tr, &c)
	want = mgl32.Vec3{-50, 0, -50}
	if !vecNear(tr.Position, want, eps) {
		t.Errorf("expected position %v, got %v", want, tr.Position)
	}
}

func TestUpdateVerticalUsesWorldUp(t *testing.T) {
	tr, c := newCamera()
	// pitch the camera down 45 degrees first
	Update(DefaultTuning(), 0, Input{Look: mgl32.Vec2{0, float32(math.Pi / 4 * 180)}}, &tr, &c)

	Update(DefaultTuning(), 0.5, Input{Move: mgl32.Vec3{0, 1, 0}}, &tr, &c)

	want := mgl32.Vec3{0, 250, 0}
	if !vecNear(tr.Position, want, 1e-3) {
		t.Errorf("expected position %v, got %v", want, tr.Position)
	}
}

func TestUpdateDeltaTimeScalesTranslation(t *testing.T) {
	tr, c := newCamera()
	Update(DefaultTuning(), 0, Input{Move: mgl32.Vec3{1, 0, 0}}, &tr, &c)
	if tr.Position != (mgl32.Vec3{}) {
		t.Errorf("zero dt moved the camera to %v", tr.Position)
	}

	Update(DefaultTuning(), 0.25, Input{Move: mgl32.Vec3{1, 0, 0}, Fast: true}, &tr, &c)
	want := mgl32.Vec3{375, 0, 0}
	if !vecNear(tr.Position, want, eps) {
		t.Errorf("expected position %v, got %v", want, tr.Position)
	}
}

func TestUpdateRollComposesAfterLook(t *testing.T) {
	tr, c := newCamera()
	tn := DefaultTuning()
	look := mgl32.Vec2{90, -45}

	Update(tn, 0, Input{Look: look, Roll: -1}, &tr, &c)

	want := orientation(c.Yaw, c.Pitch).Mul(mgl32.QuatRotate(-RollStep, mgl32.Vec3{0, 0, 1}))
	if !quatNear(tr.Rotation, want, 1e-5) {
		t.Errorf("expected rotation %v, got %v", want, tr.Rotation)
	}
}

func TestUpdateRollAccumulates(t *testing.T) {
	tr, c := newCamera()
	for i := 0; i < 50; i++ {
		Update(DefaultTuning(), 0.016, Input{Roll: 1}, &tr, &c)
	}

	// 50 frames of 0.01 rad about local Z
	want := mgl32.QuatRotate(0.5, mgl32.Vec3{0, 0, 1})
	if !quatNear(tr.Rotation, want, eps) {
		t.Errorf("expected rotation %v, got %v", want, tr.Rotation)
	}
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("roll changed yaw/pitch: %v %v", c.Yaw, c.Pitch)
	}
}

func TestUpdateLookDiscardsEarlierRoll(t *testing.T) {
	tr, c := newCamera()
	tn := DefaultTuning()
	for i := 0; i < 20; i++ {
		Update(tn, 0.016, Input{Roll: 1}, &tr, &c)
	}

	Update(tn, 0.016, Input{Look: mgl32.Vec2{18, 0}}, &tr, &c)

	want := orientation(c.Yaw, c.Pitch)
	if !quatNear(tr.Rotation, want, 1e-5) {
		t.Errorf("expected roll-free rotation %v, got %v", want, tr.Rotation)
	}
}

func TestUpdateRotationStaysUnit(t *testing.T) {
	tr, c := newCamera()
	for i := 0; i < 10000; i++ {
		Update(DefaultTuning(), 0.016, Input{Roll: 1}, &tr, &c)
	}
	if l := tr.Rotation.Len(); !mgl32.FloatEqualThreshold(l, 1, 1e-5) {
		t.Errorf("rotation length drifted to %v", l)
	}
}

func TestTuningMaxSpeed(t *testing.T) {
	tn := Tuning{FastSpeed: 3, SlowSpeed: 1, DefaultSpeed: 2}
	if got := tn.MaxSpeed(Input{Fast: true, Slow: true}); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
	if got := tn.MaxSpeed(Input{Slow: true}); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	if got := tn.MaxSpeed(Input{}); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}
