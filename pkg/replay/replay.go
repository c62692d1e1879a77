package replay

import (
	"fmt"
	"io"

	"github.com/leterax/go-flycam/pkg/flycam"
	"github.com/leterax/go-flycam/pkg/scene"
	"go.uber.org/zap"
)

// Run plays s through a fresh scene and returns the camera pose after every frame
func Run(s *Script, tuning flycam.Tuning, log *zap.Logger) ([]scene.Pose, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	rec := &scene.Recorder{Poses: make([]scene.Pose, 0, s.Len())}
	sc := scene.New(tuning, log, scene.WithRecorder(rec), scene.WithCapacity(4))
	defer sc.Close()

	t := flycam.NewTransform(s.Start.Position)
	var c flycam.Controller
	if s.Start.LookAt != nil {
		flycam.Aim(&t, &c, *s.Start.LookAt)
	}
	sc.SpawnCameraWith(t, c)

	for _, f := range s.Frames {
		keys, err := f.keys()
		if err != nil {
			return nil, err
		}
		dt := s.frameDt(f)
		for i := 0; i < f.count(); i++ {
			look := &flycam.Motion{Button: f.LookHeld, Delta: f.Look}
			sc.Step(dt, flycam.SampleInput(keys, look))
		}
	}

	log.Debug("replay finished", zap.Int("frames", sc.Frames()), zap.Int("poses", len(rec.Poses)))
	return rec.Poses, nil
}

// WritePoses prints one tab-separated line per pose:
// frame, x, y, z, yaw, pitch, speed.
func WritePoses(w io.Writer, poses []scene.Pose) error {
	if _, err := fmt.Fprintln(w, "frame\tx\ty\tz\tyaw\tpitch\tspeed"); err != nil {
		return err
	}
	for _, p := range poses {
		pos := p.Transform.Position
		_, err := fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%.4f\t%.4f\t%.3f\n",
			p.Frame, pos.X(), pos.Y(), pos.Z(), p.Controller.Yaw, p.Controller.Pitch, p.Controller.Velocity.Len())
		if err != nil {
			return err
		}
	}
	return nil
}

// Final returns the last pose, or false when poses is empty
func Final(poses []scene.Pose) (scene.Pose, bool) {
	if len(poses) == 0 {
		return scene.Pose{}, false
	}
	return poses[len(poses)-1], true
}
