package scene

import "github.com/leterax/go-flycam/pkg/flycam"

// Camera tags the entity driven by the controller
type Camera struct{}

// Frame is the per-frame resource read by the camera system
type Frame struct {
	Index int
	Dt    float32
	Input flycam.Input
}

// Pose is a snapshot of the controlled camera after a frame
type Pose struct {
	Frame      int
	Transform  flycam.Transform
	Controller flycam.Controller
}
