// Package input maps GLFW keyboard and mouse state onto the flycam controller's logical keys.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-flycam/pkg/flycam"
)

var (
	// ErrUnknownKey is returned for key names with no GLFW equivalent
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnknownButton is returned for mouse button names with no GLFW equivalent
	ErrUnknownButton = errors.New("unknown mouse button")
)

// Bindings maps logical keys to physical GLFW keys
type Bindings struct {
	Keys map[flycam.Action]glfw.Key
	Look glfw.MouseButton
}

// DefaultBindings returns the stock layout: WASD to move, E/Q up and down,
// Z/X to roll, left shift fast, left control slow, left mouse button to look.
func DefaultBindings() Bindings {
	return Bindings{
		Keys: map[flycam.Action]glfw.Key{
			flycam.Forward:     glfw.KeyW,
			flycam.Back:        glfw.KeyS,
			flycam.StrafeLeft:  glfw.KeyA,
			flycam.StrafeRight: glfw.KeyD,
			flycam.Ascend:      glfw.KeyE,
			flycam.Descend:     glfw.KeyQ,
			flycam.RollLeft:    glfw.KeyZ,
			flycam.RollRight:   glfw.KeyX,
			flycam.Fast:        glfw.KeyLeftShift,
			flycam.Slow:        glfw.KeyLeftControl,
		},
		Look: glfw.MouseButtonLeft,
	}
}

// Rebind assigns the named key to action a
func (b *Bindings) Rebind(a flycam.Action, name string) error {
	key, err := ParseKey(name)
	if err != nil {
		return fmt.Errorf("binding %s: %w", a, err)
	}
	if b.Keys == nil {
		b.Keys = make(map[flycam.Action]glfw.Key)
	}
	b.Keys[a] = key
	return nil
}

var namedKeys = map[string]glfw.Key{
	"space":         glfw.KeySpace,
	"tab":           glfw.KeyTab,
	"enter":         glfw.KeyEnter,
	"backspace":     glfw.KeyBackspace,
	"left_shift":    glfw.KeyLeftShift,
	"right_shift":   glfw.KeyRightShift,
	"left_control":  glfw.KeyLeftControl,
	"right_control": glfw.KeyRightControl,
	"left_alt":      glfw.KeyLeftAlt,
	"right_alt":     glfw.KeyRightAlt,
	"up":            glfw.KeyUp,
	"down":          glfw.KeyDown,
	"left":          glfw.KeyLeft,
	"right":         glfw.KeyRight,
	"page_up":       glfw.KeyPageUp,
	"page_down":     glfw.KeyPageDown,
	"home":          glfw.KeyHome,
	"end":           glfw.KeyEnd,
}

var namedButtons = map[string]glfw.MouseButton{
	"left":   glfw.MouseButtonLeft,
	"right":  glfw.MouseButtonRight,
	"middle": glfw.MouseButtonMiddle,
}

// ParseKey resolves a key name. Single letters and digits map to their key,
// everything else must be one of KeyNames.
func ParseKey(name string) (glfw.Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			return glfw.KeyA + glfw.Key(c-'a'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}
	if key, ok := namedKeys[n]; ok {
		return key, nil
	}
	return glfw.KeyUnknown, fmt.Errorf("%w: %q (want a letter, a digit or one of %s)",
		ErrUnknownKey, name, strings.Join(KeyNames(), ", "))
}

// ParseMouseButton resolves "left", "right" or "middle"
func ParseMouseButton(name string) (glfw.MouseButton, error) {
	if b, ok := namedButtons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, name)
}

// KeyNames lists the multi-letter key names accepted by ParseKey
func KeyNames() []string {
	names := make([]string, 0, len(namedKeys))
	for n := range namedKeys {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
