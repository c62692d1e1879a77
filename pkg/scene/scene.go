// Package scene hosts camera entities in an ark ECS world and runs the
// flycam controller on them once per frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/flycam"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// Option configures a Scene
type Option func(*Scene)

// WithRecorder registers r to capture the camera pose after every frame
func WithRecorder(r *Recorder) Option {
	return func(s *Scene) {
		s.recorder = r
	}
}

// WithCapacity sets the initial entity capacity of the world
func WithCapacity(n int) Option {
	return func(s *Scene) {
		s.capacity = n
	}
}

// Scene owns the ECS world holding the camera and marker entities
type Scene struct {
	app   *app.App
	world *ecs.World
	frame Frame

	cameras *ecs.Map3[Camera, flycam.Transform, flycam.Controller]
	markers *ecs.Map1[flycam.Transform]
	view    *ecs.Filter2[flycam.Transform, flycam.Controller]
	props   *ecs.Filter1[flycam.Transform]

	system   *CameraSystem
	recorder *Recorder
	capacity int
	log      *zap.Logger
}

// New creates a scene whose camera system uses tuning
func New(tuning flycam.Tuning, log *zap.Logger, opts ...Option) *Scene {
	s := &Scene{
		capacity: 64,
		log:      log.Named("scene"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = app.New(s.capacity)
	s.world = &s.app.World
	ecs.AddResource(s.world, &s.frame)

	s.cameras = ecs.NewMap3[Camera, flycam.Transform, flycam.Controller](s.world)
	s.markers = ecs.NewMap1[flycam.Transform](s.world)
	s.view = newCameraFilter(s.world)
	s.props = ecs.NewFilter1[flycam.Transform](s.world).
		Without(ecs.C[Camera]())

	s.system = NewCameraSystem(tuning, s.log)
	s.app.AddSystem(s.system)
	if s.recorder != nil {
		s.app.AddSystem(s.recorder)
	}
	s.app.Initialize()

	return s
}

// SpawnCamera creates a controlled camera at t with zeroed controller state
func (s *Scene) SpawnCamera(t flycam.Transform) ecs.Entity {
	return s.SpawnCameraWith(t, flycam.Controller{})
}

// SpawnCameraWith creates a controlled camera with explicit controller state,
// e.g. after flycam.Aim.
func (s *Scene) SpawnCameraWith(t flycam.Transform, c flycam.Controller) ecs.Entity {
	e := s.cameras.NewEntity(&Camera{}, &t, &c)
	s.log.Debug("camera spawned", zap.Uint32("entity", e.ID()), zap.Float32s("position", t.Position[:]))
	return e
}

// SpawnMarker creates an uncontrolled entity with only a transform
func (s *Scene) SpawnMarker(position mgl32.Vec3) ecs.Entity {
	t := flycam.NewTransform(position)
	return s.markers.NewEntity(&t)
}

// Despawn removes an entity from the world
func (s *Scene) Despawn(e ecs.Entity) {
	s.world.RemoveEntity(e)
}

// Step runs one frame: publishes dt and input, then updates all systems
func (s *Scene) Step(dt float32, in flycam.Input) {
	s.frame.Index++
	s.frame.Dt = dt
	s.frame.Input = in
	s.app.Update()
}

// Frames returns the number of frames stepped so far
func (s *Scene) Frames() int {
	return s.frame.Index
}

// ActiveCamera returns the pose of the controlled camera. ok is false when the
// world holds zero or several cameras.
func (s *Scene) ActiveCamera() (t flycam.Transform, c flycam.Controller, ok bool) {
	tp, cp, n := single(s.view)
	if n != 1 {
		return t, c, false
	}
	return *tp, *cp, true
}

// Markers returns the positions of all non-camera entities
func (s *Scene) Markers() []mgl32.Vec3 {
	var out []mgl32.Vec3
	query := s.props.Query()
	for query.Next() {
		t := query.Get()
		out = append(out, t.Position)
	}
	return out
}

// Tuning returns the controller constants in use
func (s *Scene) Tuning() flycam.Tuning {
	return s.system.Tuning
}

// Close finalizes the systems
func (s *Scene) Close() {
	s.app.Finalize()
}
