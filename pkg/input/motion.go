package input

import "github.com/go-gl/mathgl/mgl32"

// MotionAccumulator turns absolute cursor positions into a summed delta.
// The first position after creation or Reset only sets the reference point.
type MotionAccumulator struct {
	lastX, lastY float64
	armed        bool
	delta        mgl32.Vec2
}

// Feed records a cursor position reported by the window
func (m *MotionAccumulator) Feed(xpos, ypos float64) {
	if !m.armed {
		m.lastX = xpos
		m.lastY = ypos
		m.armed = true
		return
	}

	// screen coordinates: +y is down
	m.delta = m.delta.Add(mgl32.Vec2{float32(xpos - m.lastX), float32(ypos - m.lastY)})
	m.lastX = xpos
	m.lastY = ypos
}

// Drain returns the delta accumulated since the previous Drain and clears it
func (m *MotionAccumulator) Drain() mgl32.Vec2 {
	d := m.delta
	m.delta = mgl32.Vec2{}
	return d
}

// Reset drops pending motion and forgets the reference point, so a cursor
// warp (e.g. on capture toggle) does not register as motion.
func (m *MotionAccumulator) Reset() {
	m.armed = false
	m.delta = mgl32.Vec2{}
}
