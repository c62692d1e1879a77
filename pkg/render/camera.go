package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/flycam"
)

// Lens turns a camera pose into view and projection matrices
type Lens struct {
	fov    float32
	maxFOV float32
	near   float32
	far    float32

	projection mgl32.Mat4
	width      int
	height     int
}

// NewLens creates a perspective lens. fov is the vertical field of view in
// degrees and is also the widest zoom level.
func NewLens(fov, near, far float32, width, height int) *Lens {
	l := &Lens{
		fov:    fov,
		maxFOV: fov,
		near:   near,
		far:    far,
		width:  width,
		height: height,
	}
	l.updateProjectionMatrix()
	return l
}

func (l *Lens) updateProjectionMatrix() {
	aspect := float32(1)
	if l.height > 0 {
		aspect = float32(l.width) / float32(l.height)
	}
	l.projection = mgl32.Perspective(mgl32.DegToRad(l.fov), aspect, l.near, l.far)
}

// Resize updates the aspect ratio. Zero sizes (minimized window) are ignored.
func (l *Lens) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.width = width
	l.height = height
	l.updateProjectionMatrix()
}

// Zoom narrows the field of view by yoffset degrees, clamped to [MinFOV, initial fov]
func (l *Lens) Zoom(yoffset float64) {
	l.fov = mgl32.Clamp(l.fov-float32(yoffset), MinFOV, l.maxFOV)
	l.updateProjectionMatrix()
}

// FOV returns the current vertical field of view in degrees
func (l *Lens) FOV() float32 {
	return l.fov
}

// ProjectionMatrix returns the current projection matrix
func (l *Lens) ProjectionMatrix() mgl32.Mat4 {
	return l.projection
}

// ViewProjection returns projection * view for the given pose
func (l *Lens) ViewProjection(t flycam.Transform) mgl32.Mat4 {
	return l.projection.Mul4(t.ViewMatrix())
}
