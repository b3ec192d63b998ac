package touchgui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonID identifies a logical on-screen control. The first block, up to
// buttonCount, indexes the fixed button table; the rest belong to the
// auto-hide bars and the joystick visuals.
type ButtonID int

const (
	ButtonJump ButtonID = iota
	ButtonSneak
	ButtonZoom
	ButtonAux
	buttonCount // end of the fixed table

	ButtonSettingsStarter
	ButtonRareControlsStarter
	ButtonFly
	ButtonNoclip
	ButtonFast
	ButtonDebug
	ButtonCamera
	ButtonRange
	ButtonMinimap
	ButtonToggleChat
	ButtonChat
	ButtonInventory
	ButtonDrop
	ButtonExit
)

// buttonIDNone is the "no button hit" result of a hit test.
const buttonIDNone = buttonCount

// action returns the keymap action name for the id. Exit is special-cased
// to Escape by resolveButtonKey because Escape isn't remappable.
func (id ButtonID) action() string {
	switch id {
	case ButtonJump:
		return "jump"
	case ButtonSneak:
		return "sneak"
	case ButtonZoom:
		return "zoom"
	case ButtonAux:
		return "aux"
	case ButtonFly:
		return "fly"
	case ButtonNoclip:
		return "noclip"
	case ButtonFast:
		return "fast"
	case ButtonDebug:
		return "debug"
	case ButtonCamera:
		return "camera"
	case ButtonRange:
		return "rangeview"
	case ButtonMinimap:
		return "minimap"
	case ButtonToggleChat:
		return "toggle_chat"
	case ButtonChat:
		return "chat"
	case ButtonInventory:
		return "inventory"
	case ButtonDrop:
		return "drop"
	default:
		return ""
	}
}

// resolveButtonKey resolves a ButtonID to its bound key code.
func resolveButtonKey(cfg Config, id ButtonID) ebiten.Key {
	if id == ButtonExit {
		return ebiten.KeyEscape
	}
	return cfg.resolveKey(id.action())
}

type toggleState uint8

const (
	toggleNone toggleState = iota
	toggleFirst
	toggleSecond
)

// buttonInfo is one record of the fixed button table. A button's key is
// emulated "down" exactly while ids is non-empty; extra pointers attach
// and detach without re-firing the key.
type buttonInfo struct {
	key    ebiten.Key
	widget Widget
	rect   Rect

	// ids holds the pointer IDs currently attached to this button.
	ids []int

	// repeatCounter accumulates held time toward the next synthetic
	// repeat pulse. Negative while the button is unpressed.
	repeatCounter float64
	repeatDelay   float64

	// immediateRelease detaches the pointer on the press dispatch path
	// instead of waiting for a physical release (single-shot taps).
	immediateRelease bool
}

// initButton places one fixed-table button. A button whose action has no
// resolvable key is left untouched: never shown, never dispatched.
func (g *GUI) initButton(id ButtonID, r Rect, immediateRelease bool, repeatDelay float64) {
	key := resolveButtonKey(g.cfg, id)
	if key == keyUnknown {
		return
	}

	btn := &g.buttons[id]
	btn.key = key
	btn.rect = r
	btn.repeatCounter = -1
	btn.repeatDelay = repeatDelay
	btn.immediateRelease = immediateRelease
	btn.ids = btn.ids[:0]
	btn.widget = g.addWidget(r, g.buttonTexture(id))
}

// buttonAt returns the fixed-table button containing pos, or buttonIDNone.
func (g *GUI) buttonAt(pos Vec2) ButtonID {
	for i := range g.buttons {
		btn := &g.buttons[i]
		if btn.widget == nil || !btn.widget.Visible() {
			continue
		}
		if btn.rect.ContainsVec(pos) {
			return ButtonID(i)
		}
	}
	return buttonIDNone
}

// buttonFor returns the button the pointer ID is attached to, or
// buttonIDNone.
func (g *GUI) buttonFor(pointerID int) ButtonID {
	for i := range g.buttons {
		if containsID(g.buttons[i].ids, pointerID) {
			return ButtonID(i)
		}
	}
	return buttonIDNone
}

// handleButtonEvent attaches or detaches a pointer and emits the key
// transition when the attachment list changes between empty and
// non-empty. A duplicate press or an unmatched release indicates a
// disambiguation bug, not bad input, and panics.
func (g *GUI) handleButtonEvent(id ButtonID, pointerID int, pressed bool) {
	btn := &g.buttons[id]

	if pressed {
		if containsID(btn.ids, pointerID) {
			panic(fmt.Sprintf("touchgui: pointer %d pressed button %d twice", pointerID, id))
		}
		btn.ids = append(btn.ids, pointerID)

		if len(btn.ids) == 1 {
			btn.repeatCounter = 0
			g.sink.SendKey(KeyEvent{Key: btn.key, Pressed: true})
		}
	}

	if !pressed || btn.immediateRelease {
		i := indexOfID(btn.ids, pointerID)
		if i < 0 {
			panic(fmt.Sprintf("touchgui: pointer %d released button %d it never pressed", pointerID, id))
		}
		btn.ids = removeIDAt(btn.ids, i)

		if len(btn.ids) == 0 {
			btn.repeatCounter = -1
			g.sink.SendKey(KeyEvent{Key: btn.key, Pressed: false})
		}
	}
}

// stepButtons advances repeat counters and emits a synthetic key-up/key-
// down pulse once a held button's counter reaches its delay. Repeats go
// through the sink so server-observable actions (drop, for one) re-fire
// instead of relying on client-side key repeat.
func (g *GUI) stepButtons(dt float64) {
	for i := range g.buttons {
		btn := &g.buttons[i]
		if len(btn.ids) == 0 {
			continue
		}

		btn.repeatCounter += dt
		if btn.repeatCounter < btn.repeatDelay {
			continue
		}
		btn.repeatCounter = 0

		g.sink.SendKey(KeyEvent{Key: btn.key, Pressed: false})
		g.sink.SendKey(KeyEvent{Key: btn.key, Pressed: true})
	}
}

// handleChangedButton re-hit-tests a moving pointer against the fixed
// buttons: sliding off one button and onto another releases the old and
// presses the new, so a finger can sweep across adjacent controls.
func (g *GUI) handleChangedButton(ev PointerEvent) {
	for i := range g.buttons {
		btn := &g.buttons[i]
		if len(btn.ids) == 0 {
			continue
		}
		if !containsID(btn.ids, ev.ID) {
			continue
		}

		current := g.buttonAt(ev.Pos)
		if current == ButtonID(i) {
			return
		}

		g.handleButtonEvent(ButtonID(i), ev.ID, false)
		if current == buttonIDNone {
			return
		}
		g.handleButtonEvent(current, ev.ID, true)
		return
	}

	// The pointer isn't attached anywhere; a slide onto a button from
	// empty space counts as a press.
	current := g.buttonAt(ev.Pos)
	if current == buttonIDNone {
		return
	}
	if !containsID(g.buttons[current].ids, ev.ID) {
		g.handleButtonEvent(current, ev.ID, true)
	}
}

// buttonTexture loads the stock image for a fixed-table button.
func (g *GUI) buttonTexture(id ButtonID) *ebiten.Image {
	if g.textures == nil {
		return nil
	}
	var path string
	switch id {
	case ButtonJump:
		path = "jump_btn.png"
	case ButtonSneak:
		path = "down.png"
	case ButtonZoom:
		path = "zoom.png"
	case ButtonAux:
		path = "aux_btn.png"
	}
	if path == "" {
		return nil
	}
	return g.textures.Texture(path)
}

// --- small slice helpers (index-typed identity, no maps) ---

func containsID(s []int, id int) bool {
	return indexOfID(s, id) >= 0
}

func indexOfID(s []int, id int) int {
	for i := range s {
		if s[i] == id {
			return i
		}
	}
	return -1
}

func removeIDAt(s []int, i int) []int {
	copy(s[i:], s[i+1:])
	return s[:len(s)-1]
}
