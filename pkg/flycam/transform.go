package flycam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed global up axis (Y-up coordinate system)
var WorldUp = mgl32.Vec3{0, 1, 0}

// Transform is the pose of a camera entity: a position and a unit rotation.
// The camera looks down its local -Z axis.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform creates a transform at position with identity rotation
func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl32.QuatIdent(),
	}
}

// Forward returns the camera's forward direction vector
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the camera's right direction vector
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the camera's local up vector
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// ViewMatrix returns the world-to-view matrix for this pose
func (t Transform) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(t.Position, t.Position.Add(t.Forward()), t.Up())
}

// orientation builds the rotation for a yaw about world Y followed by a
// pitch about the resulting lateral axis. Roll is always zero.
func orientation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, WorldUp).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
}

// Aim points the camera at target and stores the matching yaw and pitch in c,
// so that later look input continues from the new heading instead of snapping back.
// It does nothing when target coincides with the camera position.
func Aim(t *Transform, c *Controller, target mgl32.Vec3) {
	dir := target.Sub(t.Position)
	if dir.LenSqr() == 0 {
		return
	}
	dir = dir.Normalize()

	c.Yaw = float32(math.Atan2(float64(-dir.X()), float64(-dir.Z())))
	c.Pitch = float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1))))
	t.Rotation = orientation(c.Yaw, c.Pitch)
}
