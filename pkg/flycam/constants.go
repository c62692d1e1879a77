package flycam

import "math"

// Controller tuning defaults
const (
	// Mouse look: 180 dots of motion turn the camera by one radian
	RadiansPerDot = 1.0 / 180.0

	// Speed tiers in world units per second
	FastSpeed    = 1500.0
	SlowSpeed    = 50.0
	DefaultSpeed = 500.0

	// Per-frame friction applied while no movement key is held
	VelocityDecay = 0.5
	// Squared speed below which a decaying velocity snaps to zero
	StopEpsilon = 1e-6

	// Roll applied per frame while a roll key is held, in radians
	RollStep = 0.01

	// Pitch limits
	MaxPitch = math.Pi / 2
	MinPitch = -math.Pi / 2
)
