package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/flycam"
)

// Device is the polled keyboard and mouse state of a window
type Device interface {
	GetKeyState(key glfw.Key) glfw.Action
	GetMouseButtonState(button glfw.MouseButton) glfw.Action
}

// Sampler reads a Device through a set of Bindings. It implements both
// flycam.KeyState and flycam.LookSource.
type Sampler struct {
	device   Device
	bindings Bindings
	motion   MotionAccumulator
}

// NewSampler creates a sampler for device
func NewSampler(device Device, bindings Bindings) *Sampler {
	return &Sampler{
		device:   device,
		bindings: bindings,
	}
}

// Held implements flycam.KeyState. Unbound actions are never held.
func (s *Sampler) Held(a flycam.Action) bool {
	key, ok := s.bindings.Keys[a]
	if !ok {
		return false
	}
	return s.device.GetKeyState(key) != glfw.Release
}

// LookHeld implements flycam.LookSource
func (s *Sampler) LookHeld() bool {
	return s.device.GetMouseButtonState(s.bindings.Look) != glfw.Release
}

// DrainMotion implements flycam.LookSource
func (s *Sampler) DrainMotion() mgl32.Vec2 {
	return s.motion.Drain()
}

// HandleCursor feeds a cursor position callback into the sampler
func (s *Sampler) HandleCursor(xpos, ypos float64) {
	s.motion.Feed(xpos, ypos)
}

// ResetMotion discards pending motion and re-arms the reference point
func (s *Sampler) ResetMotion() {
	s.motion.Reset()
}

// Sample returns the controller input for the current frame
func (s *Sampler) Sample() flycam.Input {
	return flycam.SampleInput(s, s)
}
