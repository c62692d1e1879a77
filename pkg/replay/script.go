// Package replay drives the flycam controller from a scripted input sequence
// without a window, for regression checks and tuning experiments.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/flycam"
	"gopkg.in/yaml.v3"
)

// DefaultDt is the frame time used when neither the script nor a frame sets one
const DefaultDt = 1.0 / 60.0

// ErrEmptyScript is returned for scripts without frames
var ErrEmptyScript = errors.New("script has no frames")

// Script is a camera start pose followed by a list of input frames
type Script struct {
	Dt     float32 `yaml:"dt"`
	Start  Start   `yaml:"start"`
	Frames []Step  `yaml:"frames"`
}

// Start is the initial camera pose
type Start struct {
	Position mgl32.Vec3  `yaml:"position"`
	LookAt   *mgl32.Vec3 `yaml:"look_at"`
}

// Step is one scripted frame, optionally repeated
type Step struct {
	Dt       float32    `yaml:"dt"`
	Hold     []string   `yaml:"hold"`
	Look     mgl32.Vec2 `yaml:"look"`
	LookHeld bool       `yaml:"look_held"`
	// Repeat runs the frame this many times; 0 and 1 both mean once.
	// Look motion is delivered again on every repetition.
	Repeat int `yaml:"repeat"`
}

// Load reads a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML script
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks frame times, repeat counts and action names
func (s *Script) Validate() error {
	if len(s.Frames) == 0 {
		return ErrEmptyScript
	}
	if s.Dt < 0 {
		return fmt.Errorf("negative dt %v", s.Dt)
	}
	for i, f := range s.Frames {
		if f.Dt < 0 {
			return fmt.Errorf("frame %d: negative dt %v", i, f.Dt)
		}
		if f.Repeat < 0 {
			return fmt.Errorf("frame %d: negative repeat %d", i, f.Repeat)
		}
		if _, err := f.keys(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Len returns the number of frames after expanding repeats
func (s *Script) Len() int {
	n := 0
	for _, f := range s.Frames {
		n += f.count()
	}
	return n
}

func (f Step) count() int {
	if f.Repeat < 1 {
		return 1
	}
	return f.Repeat
}

func (f Step) keys() (flycam.KeySet, error) {
	keys := make(flycam.KeySet, len(f.Hold))
	for _, name := range f.Hold {
		a, err := flycam.ParseAction(name)
		if err != nil {
			return nil, err
		}
		keys[a] = true
	}
	return keys, nil
}

func (s *Script) frameDt(f Step) float32 {
	switch {
	case f.Dt > 0:
		return f.Dt
	case s.Dt > 0:
		return s.Dt
	default:
		return DefaultDt
	}
}
