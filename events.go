package touchgui

import "github.com/hajimehoshi/ebiten/v2"

// MouseButton identifies an emulated mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// KeyEvent is a synthesized keyboard press or release.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// MouseEvent is a synthesized mouse press or release at an absolute
// screen position.
type MouseEvent struct {
	Pos     Vec2
	Button  MouseButton
	Pressed bool
}

// Sink receives the synthesized input events. It is the same channel the
// game uses for real hardware input, so events delivered here must be
// semantically indistinguishable from genuine key and mouse input.
//
// Implementations must tolerate redundant events: the joystick aux trigger
// re-emits a release (and, while engaged past the deep-push radius, a
// press) every frame rather than edge-triggering. A repeated "pressed"
// for an already-down key must be a no-op.
type Sink interface {
	SendKey(ev KeyEvent)
	SendMouse(ev MouseEvent)
}
