package scene

import (
	"github.com/leterax/go-flycam/pkg/flycam"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// CameraSystem runs the flycam controller on the single camera entity.
// With zero or several cameras in the world it skips the frame.
type CameraSystem struct {
	Tuning flycam.Tuning

	log    *zap.Logger
	filter *ecs.Filter2[flycam.Transform, flycam.Controller]
	frame  *Frame

	lastMatches int
}

// NewCameraSystem creates the camera system
func NewCameraSystem(tuning flycam.Tuning, log *zap.Logger) *CameraSystem {
	return &CameraSystem{
		Tuning:      tuning,
		log:         log,
		lastMatches: 1,
	}
}

// Initialize implements app.System
func (s *CameraSystem) Initialize(w *ecs.World) {
	s.filter = newCameraFilter(w)
	s.frame = ecs.GetResource[Frame](w)
}

// Update implements app.System
func (s *CameraSystem) Update(w *ecs.World) {
	t, c, n := single(s.filter)
	if n != s.lastMatches {
		// only log transitions, this runs every frame
		s.log.Debug("camera match count changed", zap.Int("cameras", n), zap.Int("frame", s.frame.Index))
		s.lastMatches = n
	}
	if n != 1 {
		return
	}
	flycam.Update(s.Tuning, s.frame.Dt, s.frame.Input, t, c)
}

// Finalize implements app.System
func (s *CameraSystem) Finalize(w *ecs.World) {}

// Recorder appends the camera pose after every frame
type Recorder struct {
	Poses []Pose

	filter *ecs.Filter2[flycam.Transform, flycam.Controller]
	frame  *Frame
}

// Initialize implements app.System
func (r *Recorder) Initialize(w *ecs.World) {
	r.filter = newCameraFilter(w)
	r.frame = ecs.GetResource[Frame](w)
}

// Update implements app.System. Frames without exactly one camera are not recorded.
func (r *Recorder) Update(w *ecs.World) {
	t, c, n := single(r.filter)
	if n != 1 {
		return
	}
	r.Poses = append(r.Poses, Pose{Frame: r.frame.Index, Transform: *t, Controller: *c})
}

// Finalize implements app.System
func (r *Recorder) Finalize(w *ecs.World) {}

func newCameraFilter(w *ecs.World) *ecs.Filter2[flycam.Transform, flycam.Controller] {
	return ecs.NewFilter2[flycam.Transform, flycam.Controller](w).
		With(ecs.C[Camera]())
}

// single runs the filter and returns the components of the first match
// together with the total number of matches.
func single(f *ecs.Filter2[flycam.Transform, flycam.Controller]) (*flycam.Transform, *flycam.Controller, int) {
	var (
		t *flycam.Transform
		c *flycam.Controller
		n int
	)
	query := f.Query()
	for query.Next() {
		if n == 0 {
			t, c = query.Get()
		}
		n++
	}
	return t, c, n
}
