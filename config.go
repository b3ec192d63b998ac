package touchgui

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyUnknown is the sentinel for an action with no resolvable key code.
// Controls bound to it are never shown and never dispatch.
const keyUnknown = ebiten.Key(-1)

// Config carries the numeric settings and the keymap the engine needs.
// All fields can be left at their DefaultConfig values except the screen
// size, which must match the game window.
type Config struct {
	// ScreenW and ScreenH are the screen size in pixels.
	ScreenW, ScreenH float64

	// DisplayDensity is the display's pixel density relative to a desktop
	// monitor (1.0). Camera sensitivity and button sizing scale by it.
	DisplayDensity float64

	// HUDScale is the user's HUD scaling preference.
	HUDScale float64

	// Sensitivity scales look-pointer drag into camera rotation, in
	// degrees per pixel before density compensation.
	Sensitivity float64

	// TouchThreshold is the movement dead zone in pixels: a look pointer
	// that never travels farther than this from its press point still
	// counts as a tap, and joystick displacement under it maps to zero
	// speed.
	TouchThreshold float64

	// FixedJoystick places the joystick at a fixed bottom-left position
	// instead of snapping it under the engaging finger.
	FixedJoystick bool

	// JoystickTriggersAux binds the joystick's deep push to the aux
	// action and removes the dedicated aux button.
	JoystickTriggersAux bool

	// Keymap maps a logical action name ("jump", "sneak", "drop", ...)
	// to an ebiten key name ("Space", "ShiftLeft", "Q", ...). An action
	// that is missing or names an unknown key has its control hidden.
	Keymap map[string]string
}

// DefaultConfig returns a Config with the stock bindings and tuning for
// the given screen size.
func DefaultConfig(screenW, screenH float64) Config {
	return Config{
		ScreenW:        screenW,
		ScreenH:        screenH,
		DisplayDensity: 1.0,
		HUDScale:       1.0,
		Sensitivity:    0.2,
		TouchThreshold: 20,
		Keymap: map[string]string{
			"jump":        "Space",
			"sneak":       "ShiftLeft",
			"zoom":        "Z",
			"aux":         "E",
			"fly":         "K",
			"noclip":      "H",
			"fast":        "J",
			"debug":       "F3",
			"camera":      "C",
			"rangeview":   "R",
			"minimap":     "V",
			"toggle_chat": "F2",
			"chat":        "T",
			"inventory":   "I",
			"drop":        "Q",
		},
	}
}

// buttonSize derives the on-screen control size from the screen height,
// display density, and HUD scale.
func (c Config) buttonSize() float64 {
	return math.Min(c.ScreenH/4.5, 65*c.DisplayDensity*c.HUDScale)
}

// lookupKeyName resolves an ebiten key name to its key code.
func lookupKeyName(name string) (ebiten.Key, bool) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return keyUnknown, false
	}
	return k, true
}

// resolveKey resolves a logical action name through the keymap. A missing
// or unresolvable binding logs once and returns keyUnknown, which hides
// the control; this is a configuration error, never fatal.
func (c Config) resolveKey(action string) ebiten.Key {
	name, ok := c.Keymap[action]
	if !ok {
		log.Printf("touchgui: no key bound for action %q, hiding control", action)
		return keyUnknown
	}
	key, ok := lookupKeyName(name)
	if !ok {
		log.Printf("touchgui: unknown key %q for action %q, hiding control", name, action)
		return keyUnknown
	}
	return key
}
