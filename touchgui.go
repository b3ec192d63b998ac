package touchgui

import "time"

// --- Tuning constants ---

const (
	// longTapDuration is how long a motionless look pointer must be held
	// before it is classified as a long tap, without waiting for release.
	longTapDuration = 500 * time.Millisecond

	// simulatedClickDuration is how long an emulated mouse click stays
	// pressed. Server-side logic polls the control state once per tick, so
	// a click shorter than this could go completely unobserved.
	simulatedClickDuration = 50 * time.Millisecond

	// buttonRepeatDelay is the default interval, in seconds, between
	// synthetic key repeat pulses for a held button.
	buttonRepeatDelay = 0.2

	settingsBarTimeout     = 3.0 // seconds of inactivity before collapse
	rareControlsBarTimeout = 2.0

	settingsBarYOffset     = 5.0 // in button sizes, from the bottom edge
	rareControlsBarYOffset = 5.0

	// Bar members occupy one button size each, spaced barSpacingFactor
	// sizes apart, with barMarginFactor of margin before the first member.
	barSpacingFactor = 1.25
	barMarginFactor  = 0.25

	barRevealDuration = 0.2 // seconds for the slide-out animation
)

// --- Geometry ---

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API. The coordinate system has its origin at the top-left, with Y
// increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// LengthSq returns the squared length of v. Useful for threshold
// comparisons that don't need the square root.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsVec reports whether the point p lies inside the rectangle.
func (r Rect) ContainsVec(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Vec3 is a 3D vector used for the shootline endpoints.
type Vec3 struct {
	X, Y, Z float64
}

// Line3 is a 3D line segment. The shootline starts at the camera and ends
// on the camera's far plane; callers scale it to the player's reach.
type Line3 struct {
	Start, End Vec3
}

// --- Pointer events ---

// PointerPhase describes what happened to a pointer in a PointerEvent.
type PointerPhase uint8

const (
	PhasePressed PointerPhase = iota
	PhaseMoved
	PhaseReleased
)

func (p PointerPhase) String() string {
	switch p {
	case PhasePressed:
		return "pressed"
	case PhaseMoved:
		return "moved"
	case PhaseReleased:
		return "released"
	default:
		return "unknown"
	}
}

// PointerEvent is a single raw multi-touch event. IDs are opaque and
// recycled by the OS; events for a given ID must arrive in temporal order
// (pressed before any moved/released referencing that ID).
type PointerEvent struct {
	ID    int
	Pos   Vec2
	Phase PointerPhase
}

// --- Tap classification ---

// TapState classifies the most recent look-pointer gesture.
type TapState uint8

const (
	TapNone TapState = iota
	TapShort
	TapLong
)

func (t TapState) String() string {
	switch t {
	case TapNone:
		return "none"
	case TapShort:
		return "short"
	case TapLong:
		return "long"
	default:
		return "unknown"
	}
}

// InteractionMode selects which of dig/place a short vs long tap maps to.
type InteractionMode uint8

const (
	// ModeShortDigLongPlace: a short tap digs, a long tap places.
	ModeShortDigLongPlace InteractionMode = iota
	// ModeLongDigShortPlace: a long tap digs, a short tap places.
	ModeLongDigShortPlace
)

// modeUnset marks that ApplyContextControls has not run yet, so the first
// call always takes the mode-change path (a no-op with nothing in flight).
const modeUnset = InteractionMode(0xFF)

// RayCaster converts a screen coordinate into a world-space line from the
// camera through that point, ending on the camera's far plane. Supplied by
// the rendering engine.
type RayCaster interface {
	ScreenRay(pos Vec2) Line3
}
