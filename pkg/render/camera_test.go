package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/config"
	"github.com/leterax/go-flycam/pkg/flycam"
)

func TestLensZoomClamps(t *testing.T) {
	l := NewLens(config.DefaultFOV, config.DefaultNear, config.DefaultFar, 800, 600)

	l.Zoom(10)
	if l.FOV() != 35 {
		t.Errorf("expected fov 35, got %v", l.FOV())
	}
	l.Zoom(100)
	if l.FOV() != MinFOV {
		t.Errorf("expected fov clamped to %v, got %v", MinFOV, l.FOV())
	}
	l.Zoom(-1000)
	if l.FOV() != config.DefaultFOV {
		t.Errorf("expected fov clamped to %v, got %v", config.DefaultFOV, l.FOV())
	}
}

func TestLensResize(t *testing.T) {
	l := NewLens(60, 1, 100, 800, 600)
	before := l.ProjectionMatrix()

	l.Resize(0, 0)
	if l.ProjectionMatrix() != before {
		t.Error("zero-size resize changed the projection")
	}

	l.Resize(1600, 600)
	want := mgl32.Perspective(mgl32.DegToRad(60), 1600.0/600.0, 1, 100)
	got := l.ProjectionMatrix()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestLensViewProjectionCentresForwardPoint(t *testing.T) {
	l := NewLens(config.DefaultFOV, config.DefaultNear, config.DefaultFar, 800, 800)
	tr := flycam.NewTransform(mgl32.Vec3{0, 2500, 0})
	c := flycam.Controller{}

	// turn right by 90 degrees: the camera now looks down +X
	flycam.Update(flycam.DefaultTuning(), 0, flycam.Input{Look: mgl32.Vec2{float32(math.Pi / 2 * 180), 0}}, &tr, &c)

	target := tr.Position.Add(mgl32.Vec3{100, 0, 0})
	clip := l.ViewProjection(tr).Mul4x1(target.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())

	if math.Abs(float64(ndc.X())) > 1e-3 || math.Abs(float64(ndc.Y())) > 1e-3 {
		t.Errorf("expected point ahead to project to screen centre, got %v", ndc)
	}
	if ndc.Z() < -1 || ndc.Z() > 1 {
		t.Errorf("expected point inside the depth range, got z=%v", ndc.Z())
	}
}
