package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window handles GLFW window creation, input polling and cursor capture
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	mouseCaptured bool
	vsync         bool
}

// NewWindow creates a new GLFW window with an OpenGL 4.6 core context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	setSwapInterval(vsync)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)

	// raw motion avoids OS pointer acceleration while the cursor is captured
	if glfw.RawMouseMotionSupported() {
		glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return &Window{
		glfwWindow: glfwWindow,
		width:      fbWidth,
		height:     fbHeight,
		vsync:      vsync,
	}, nil
}

// VSync reports whether buffer swaps wait for the vertical blank
func (w *Window) VSync() bool {
	return w.vsync
}

// SetVSync switches vertical sync on or off for the current context
func (w *Window) SetVSync(on bool) {
	setSwapInterval(on)
	w.vsync = on
}

func setSwapInterval(vsync bool) {
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// GLVersion returns the version string reported by the driver
func (w *Window) GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Clear clears the color and depth buffers
func (w *Window) Clear(color mgl32.Vec3) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose requests the main loop to stop
func (w *Window) SetShouldClose(v bool) {
	w.glfwWindow.SetShouldClose(v)
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// GetKeyState returns the state of the given key
func (w *Window) GetKeyState(key glfw.Key) glfw.Action {
	return w.glfwWindow.GetKey(key)
}

// GetMouseButtonState returns the state of the given mouse button
func (w *Window) GetMouseButtonState(button glfw.MouseButton) glfw.Action {
	return w.glfwWindow.GetMouseButton(button)
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// SetMouseCaptured captures or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// ToggleMouseCaptured toggles the mouse capture state
func (w *Window) ToggleMouseCaptured() {
	w.SetMouseCaptured(!w.mouseCaptured)
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}
