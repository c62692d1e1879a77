// Package config loads the go-flycam YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/internal/logger"
	"github.com/leterax/go-flycam/pkg/flycam"
	"github.com/leterax/go-flycam/pkg/input"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Camera lens defaults
const (
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 20000.0
)

// Config is the full viewer configuration. Every field is optional in the file.
type Config struct {
	Window     WindowConfig  `yaml:"window"`
	Camera     CameraConfig  `yaml:"camera"`
	Controller flycam.Tuning `yaml:"controller"`
	Markers    MarkerConfig  `yaml:"markers"`
	Log        logger.Config `yaml:"log"`

	// Bindings overrides the default key for an action, e.g. ascend: space
	Bindings   map[string]string `yaml:"bindings"`
	LookButton string            `yaml:"look_button"`
}

// WindowConfig describes the viewer window
type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	VSync      bool       `yaml:"vsync"`
	ClearColor mgl32.Vec3 `yaml:"clear_color"`
}

// CameraConfig describes the spawned camera and its lens
type CameraConfig struct {
	Position mgl32.Vec3  `yaml:"position"`
	LookAt   *mgl32.Vec3 `yaml:"look_at"`
	FOV      float32     `yaml:"fov"`
	Near     float32     `yaml:"near"`
	Far      float32     `yaml:"far"`
}

// MarkerConfig lays out the reference cubes drawn around the origin
type MarkerConfig struct {
	// Grid is the number of markers along each horizontal axis
	Grid    int     `yaml:"grid"`
	Spacing float32 `yaml:"spacing"`
	Height  float32 `yaml:"height"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "go-flycam",
			VSync:      true,
			ClearColor: mgl32.Vec3{0.4627451, 0.63529414, 0.90980392},
		},
		Camera: CameraConfig{
			Position: mgl32.Vec3{0, 2500, 0},
			FOV:      DefaultFOV,
			Near:     DefaultNear,
			Far:      DefaultFar,
		},
		Controller: flycam.DefaultTuning(),
		Markers: MarkerConfig{
			Grid:    21,
			Spacing: 250,
			Height:  2000,
		},
		Log:        logger.DefaultConfig(),
		LookButton: "left",
	}
}

// Load reads path and merges it over Default
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over Default
func Parse(data []byte) (Config, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads YAML from r over Default and validates the result.
// Unknown fields are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and binding names
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: fov %v out of (0, 180)", ErrInvalid, c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}

	tn := c.Controller
	if tn.FastSpeed <= 0 || tn.SlowSpeed <= 0 || tn.DefaultSpeed <= 0 {
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	}
	if tn.Decay < 0 || tn.Decay >= 1 {
		return fmt.Errorf("%w: decay %v out of [0, 1)", ErrInvalid, tn.Decay)
	}
	if tn.StopEpsilon <= 0 {
		return fmt.Errorf("%w: stop_epsilon must be positive", ErrInvalid)
	}
	if tn.RadiansPerDot <= 0 {
		return fmt.Errorf("%w: radians_per_dot must be positive", ErrInvalid)
	}

	if c.Markers.Grid < 0 || c.Markers.Spacing <= 0 {
		return fmt.Errorf("%w: markers grid=%d spacing=%v", ErrInvalid, c.Markers.Grid, c.Markers.Spacing)
	}

	if _, err := c.InputBindings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// InputBindings applies the configured overrides to input.DefaultBindings
func (c Config) InputBindings() (input.Bindings, error) {
	b := input.DefaultBindings()
	for name, key := range c.Bindings {
		a, err := flycam.ParseAction(name)
		if err != nil {
			return input.Bindings{}, err
		}
		if err := b.Rebind(a, key); err != nil {
			return input.Bindings{}, err
		}
	}

	if c.LookButton != "" {
		button, err := input.ParseMouseButton(c.LookButton)
		if err != nil {
			return input.Bindings{}, err
		}
		b.Look = button
	}
	return b, nil
}

// SpawnTransform returns the initial camera pose and matching controller state
func (c Config) SpawnTransform() (flycam.Transform, flycam.Controller) {
	t := flycam.NewTransform(c.Camera.Position)
	var ctrl flycam.Controller
	if c.Camera.LookAt != nil {
		flycam.Aim(&t, &ctrl, *c.Camera.LookAt)
	}
	return t, ctrl
}

// MarkerPositions lays out Markers.Grid² reference points centred on the
// origin at Markers.Height.
func (c Config) MarkerPositions() []mgl32.Vec3 {
	n := c.Markers.Grid
	out := make([]mgl32.Vec3, 0, n*n)
	half := float32(n-1) / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, mgl32.Vec3{
				(float32(i) - half) * c.Markers.Spacing,
				c.Markers.Height,
				(float32(j) - half) * c.Markers.Spacing,
			})
		}
	}
	return out
}
