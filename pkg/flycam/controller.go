// Package flycam implements a free-flying first-person camera controller.
// Update is called once per frame with the elapsed time and an input snapshot
// and moves and rotates the camera's Transform.
package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Controller holds the per-camera state carried between frames
type Controller struct {
	// Euler angles in radians
	Yaw   float32
	Pitch float32

	// Velocity in camera-local space (x right, y up, z forward)
	Velocity mgl32.Vec3
}

// Tuning holds the controller constants
type Tuning struct {
	FastSpeed     float32 `yaml:"fast_speed"`
	SlowSpeed     float32 `yaml:"slow_speed"`
	DefaultSpeed  float32 `yaml:"default_speed"`
	Decay         float32 `yaml:"decay"`
	StopEpsilon   float32 `yaml:"stop_epsilon"`
	RadiansPerDot float32 `yaml:"radians_per_dot"`
	RollStep      float32 `yaml:"roll_step"`
}

// DefaultTuning returns the stock controller constants
func DefaultTuning() Tuning {
	return Tuning{
		FastSpeed:     FastSpeed,
		SlowSpeed:     SlowSpeed,
		DefaultSpeed:  DefaultSpeed,
		Decay:         VelocityDecay,
		StopEpsilon:   StopEpsilon,
		RadiansPerDot: RadiansPerDot,
		RollStep:      RollStep,
	}
}

// MaxSpeed picks the speed tier for the held modifiers. Fast wins over slow.
func (tn Tuning) MaxSpeed(in Input) float32 {
	switch {
	case in.Fast:
		return tn.FastSpeed
	case in.Slow:
		return tn.SlowSpeed
	default:
		return tn.DefaultSpeed
	}
}

// Update advances the controller by one frame of dt seconds and writes the
// resulting pose to t.
//
// Movement uses the orientation from before this frame's look input. Look input
// rebuilds the rotation from yaw and pitch, dropping any roll accumulated on
// earlier frames; roll input is then applied on top of the result.
func Update(tn Tuning, dt float32, in Input, t *Transform, c *Controller) {
	// Movement
	if in.Move != (mgl32.Vec3{}) {
		c.Velocity = in.Move.Normalize().Mul(tn.MaxSpeed(in))
	} else {
		c.Velocity = c.Velocity.Mul(tn.Decay)
		if c.Velocity.LenSqr() < tn.StopEpsilon {
			c.Velocity = mgl32.Vec3{}
		}
	}

	if c.Velocity != (mgl32.Vec3{}) {
		right := t.Right()
		forward := t.Forward()
		t.Position = t.Position.
			Add(right.Mul(c.Velocity.X() * dt)).
			Add(WorldUp.Mul(c.Velocity.Y() * dt)).
			Add(forward.Mul(c.Velocity.Z() * dt))
	}

	// Look
	if in.Look != (mgl32.Vec2{}) {
		c.Pitch = mgl32.Clamp(c.Pitch-in.Look.Y()*tn.RadiansPerDot, MinPitch, MaxPitch)
		c.Yaw -= in.Look.X() * tn.RadiansPerDot
		t.Rotation = orientation(c.Yaw, c.Pitch)
	}

	// Roll
	if in.Roll != 0 {
		roll := mgl32.QuatRotate(in.Roll*tn.RollStep, mgl32.Vec3{0, 0, 1})
		t.Rotation = t.Rotation.Mul(roll).Normalize()
	}
}
