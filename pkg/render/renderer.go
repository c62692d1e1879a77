package render

import (
	_ "embed"
	"fmt"

	"openglhelper"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/config"
	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/scene"
	"go.uber.org/zap"
)

var (
	//go:embed shaders/scene.vert
	vertexShader string
	//go:embed shaders/scene.frag
	fragmentShader string
)

var (
	markerColor = mgl32.Vec3{0.85, 0.55, 0.25}
	gridColor   = mgl32.Vec3{0.25, 0.3, 0.35}
)

// Renderer owns the window and the frame loop. Each frame it samples input,
// steps the scene and draws the reference geometry from the camera's pose.
type Renderer struct {
	window  *openglhelper.Window
	lens    *Lens
	scene   *scene.Scene
	sampler *input.Sampler
	log     *zap.Logger

	shader  *openglhelper.Shader
	markers *openglhelper.Mesh
	grid    *openglhelper.Mesh

	clearColor  mgl32.Vec3
	fogDistance float32

	// Timing
	lastFrameTime float64
	statsTime     float64
	statsFrames   int
}

// NewRenderer opens the window, spawns the camera and markers described by cfg
// and uploads the reference geometry.
func NewRenderer(cfg config.Config, log *zap.Logger) (*Renderer, error) {
	bindings, err := cfg.InputBindings()
	if err != nil {
		return nil, fmt.Errorf("invalid bindings: %w", err)
	}

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log = log.Named("render")
	log.Info("window created",
		zap.String("gl_version", window.GLVersion()),
		zap.Bool("vsync", window.VSync()),
	)

	width, height := window.Size()
	r := &Renderer{
		window:      window,
		lens:        NewLens(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, width, height),
		scene:       scene.New(cfg.Controller, log),
		sampler:     input.NewSampler(window, bindings),
		log:         log,
		clearColor:  cfg.Window.ClearColor,
		fogDistance: cfg.Camera.Far * 0.5,
	}

	t, c := cfg.SpawnTransform()
	r.scene.SpawnCameraWith(t, c)
	for _, p := range cfg.MarkerPositions() {
		r.scene.SpawnMarker(p)
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(r.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	shader, err := openglhelper.NewShader(vertexShader, fragmentShader)
	if err != nil {
		r.Cleanup()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	r.markers = openglhelper.NewCube(1)
	r.markers.SetInstances(r.scene.Markers())
	r.grid = openglhelper.NewGrid(GridExtent, GridStep)

	tuning := r.scene.Tuning()
	log.Info("scene ready",
		zap.Int("markers", len(cfg.MarkerPositions())),
		zap.Float32s("camera", t.Position[:]),
		zap.Float32("default_speed", tuning.DefaultSpeed),
		zap.Float32("fast_speed", tuning.FastSpeed),
		zap.Float32("slow_speed", tuning.SlowSpeed),
	)
	return r, nil
}

// Run starts the main loop and returns when the window is closed
func (r *Renderer) Run() {
	r.lastFrameTime = r.window.Time()
	r.statsTime = r.lastFrameTime

	for !r.window.ShouldClose() {
		// Calculate delta time
		currentTime := r.window.Time()
		deltaTime := float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.scene.Step(deltaTime, r.sampler.Sample())

		r.render()
		r.logStats(currentTime)

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

func (r *Renderer) render() {
	r.window.Clear(r.clearColor)

	t, _, ok := r.scene.ActiveCamera()
	if !ok {
		return
	}

	r.shader.Use()
	r.shader.SetMat4("uViewProjection", r.lens.ViewProjection(t))
	r.shader.SetVec3("uCameraPosition", t.Position)
	r.shader.SetVec3("uFogColor", r.clearColor)
	r.shader.SetFloat("uFogDistance", r.fogDistance)

	r.shader.SetFloat("uScale", MarkerSize)
	r.shader.SetVec3("uColor", markerColor)
	r.markers.Draw()

	r.shader.SetFloat("uScale", 1)
	r.shader.SetVec3("uColor", gridColor)
	r.grid.Draw()
}

func (r *Renderer) logStats(now float64) {
	r.statsFrames++
	elapsed := now - r.statsTime
	if elapsed < statsInterval {
		return
	}

	t, c, _ := r.scene.ActiveCamera()
	r.log.Debug("frame stats",
		zap.Float64("fps", float64(r.statsFrames)/elapsed),
		zap.Float32s("position", t.Position[:]),
		zap.Float32("yaw", c.Yaw),
		zap.Float32("pitch", c.Pitch),
		zap.Float32("speed", c.Velocity.Len()),
		zap.Float32("fov", r.lens.FOV()),
	)
	r.statsTime = now
	r.statsFrames = 0
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.markers != nil {
		r.markers.Delete()
	}
	if r.grid != nil {
		r.grid.Delete()
	}
	if r.shader != nil {
		r.shader.Delete()
	}
	r.scene.Close()
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case KeyQuit:
		r.window.SetShouldClose(true)
	case KeyToggleCapture:
		r.window.ToggleMouseCaptured()
		// capture warps the cursor
		r.sampler.ResetMotion()
		r.log.Debug("mouse capture toggled", zap.Bool("captured", r.window.IsMouseCaptured()))
	case KeyToggleVSync:
		r.window.SetVSync(!r.window.VSync())
		r.log.Info("vsync toggled", zap.Bool("vsync", r.window.VSync()))
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.sampler.HandleCursor(xpos, ypos)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	r.lens.Zoom(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.lens.Resize(width, height)
}
