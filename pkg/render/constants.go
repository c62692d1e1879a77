package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Viewer keys handled outside the controller bindings
const (
	KeyQuit          = glfw.KeyEscape
	KeyToggleCapture = glfw.KeyC
	KeyToggleVSync   = glfw.KeyV
)

// MinFOV is the narrowest field of view scroll zoom can reach, in degrees
const MinFOV = 1.0

// Reference scene constants
const (
	MarkerSize = 40.0
	GridExtent = 5000.0
	GridStep   = 250.0

	// how often frame statistics are logged, in seconds
	statsInterval = 5.0
)
