package flycam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Action is a logical key the controller reacts to
type Action int

// Logical keys
const (
	Forward Action = iota
	Back
	StrafeLeft
	StrafeRight
	Ascend
	Descend
	RollLeft
	RollRight
	Fast
	Slow

	actionCount
)

var actionNames = [actionCount]string{
	Forward:     "forward",
	Back:        "back",
	StrafeLeft:  "strafe_left",
	StrafeRight: "strafe_right",
	Ascend:      "ascend",
	Descend:     "descend",
	RollLeft:    "roll_left",
	RollRight:   "roll_right",
	Fast:        "fast",
	Slow:        "slow",
}

// ErrUnknownAction is returned by ParseAction for names that match no action
var ErrUnknownAction = errors.New("unknown action")

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns every logical key in declaration order
func Actions() []Action {
	actions := make([]Action, actionCount)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

// ParseAction resolves a config or script name such as "strafe_left"
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// KeyState reports whether a logical key is currently held
type KeyState interface {
	Held(a Action) bool
}

// LookSource provides mouse-look input for one frame
type LookSource interface {
	// LookHeld reports whether the look-enable button is held
	LookHeld() bool
	// DrainMotion returns the motion accumulated since the last call and clears it
	DrainMotion() mgl32.Vec2
}

// Input is the per-frame input snapshot consumed by Update
type Input struct {
	// Move is in camera-local space: x right, y up, z forward. Each axis is -1, 0 or +1.
	Move mgl32.Vec3
	// Roll is +1 for roll-left, -1 for roll-right, 0 when neither or both are held
	Roll float32
	// Look is the accumulated motion delta in dots, zero unless the look button is held
	Look mgl32.Vec2

	Fast bool
	Slow bool
}

// SampleInput builds the frame's input snapshot. Motion is always drained from
// look, even when the look button is up, so it cannot leak into a later frame.
func SampleInput(keys KeyState, look LookSource) Input {
	var in Input

	if keys.Held(Forward) {
		in.Move[2] += 1
	}
	if keys.Held(Back) {
		in.Move[2] -= 1
	}
	if keys.Held(StrafeRight) {
		in.Move[0] += 1
	}
	if keys.Held(StrafeLeft) {
		in.Move[0] -= 1
	}
	if keys.Held(Ascend) {
		in.Move[1] += 1
	}
	if keys.Held(Descend) {
		in.Move[1] -= 1
	}

	if keys.Held(RollLeft) {
		in.Roll += 1
	}
	if keys.Held(RollRight) {
		in.Roll -= 1
	}

	in.Fast = keys.Held(Fast)
	in.Slow = keys.Held(Slow)

	motion := look.DrainMotion()
	if look.LookHeld() {
		in.Look = motion
	}

	return in
}

// KeySet is a KeyState backed by a set of held actions
type KeySet map[Action]bool

// Held implements KeyState
func (k KeySet) Held(a Action) bool {
	return k[a]
}

// Motion is a LookSource holding a single pending delta
type Motion struct {
	Button bool
	Delta  mgl32.Vec2
}

// LookHeld implements LookSource
func (m *Motion) LookHeld() bool {
	return m.Button
}

// DrainMotion implements LookSource
func (m *Motion) DrainMotion() mgl32.Vec2 {
	d := m.Delta
	m.Delta = mgl32.Vec2{}
	return d
}
