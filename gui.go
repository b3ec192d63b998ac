package touchgui

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GUI is the touch-input interpretation engine: it converts raw multi-
// touch pointer events into the control signals the game otherwise
// derives from mouse and keyboard.
//
// All calls must come from the game loop thread. State changes happen
// synchronously inside TranslateEvent, Step, and ApplyContextControls;
// nothing blocks and there is no internal locking.
//
// Construct with New, then call Init before dispatching events.
type GUI struct {
	cfg  Config
	sink Sink

	textures  TextureSource
	newWidget WidgetFactory
	ray       RayCaster
	now       func() time.Time

	initialized bool
	visible     bool

	buttonSize float64

	widgets []Widget

	buttons     [buttonCount]buttonInfo
	settingsBar *AutoHideBar
	rareBar     *AutoHideBar
	joy         joystick
	hotbar      hotbarRegistry

	// Look pointer state. lookPos stays valid after the pointer is
	// released because the emulation layer may still emit mouse events
	// at it.
	hasLookID       bool
	lookID          int
	lookReallyMoved bool
	lookDownTime    time.Time
	lookPos         Vec2

	tapState TapState

	// Accumulated camera deltas, in degrees, read destructively.
	yawChange   float64
	pitchChange float64

	useCrosshair bool
	shootline    Line3

	// Down and current positions of every tracked pointer, keyed by the
	// OS pointer ID.
	pointerDownPos map[int]Vec2
	pointerPos     map[int]Vec2

	// Emulated dig/place state (see emulate.go).
	lastMode          InteractionMode
	digPressed        bool
	digPressedUntil   time.Time
	placePressed      bool
	placePressedUntil time.Time

	inject []PointerEvent
}

// New creates a GUI delivering synthesized events to sink. Call Init
// before use.
func New(cfg Config, sink Sink) *GUI {
	cfg.Sensitivity = math.Min(math.Max(cfg.Sensitivity, 0.001), 10)
	if cfg.DisplayDensity <= 0 {
		cfg.DisplayDensity = 1
	}
	return &GUI{
		cfg:            cfg,
		sink:           sink,
		now:            time.Now,
		buttonSize:     cfg.buttonSize(),
		lastMode:       modeUnset,
		pointerDownPos: make(map[int]Vec2),
		pointerPos:     make(map[int]Vec2),
	}
}

// SetRayCaster supplies the rendering engine's screen-to-world ray query
// used to keep the shootline current.
func (g *GUI) SetRayCaster(ray RayCaster) {
	g.ray = ray
}

// SetUseCrosshair switches between pointing at the touch position and
// pointing at the screen center.
func (g *GUI) SetUseCrosshair(useCrosshair bool) {
	g.useCrosshair = useCrosshair
}

// addWidget creates a widget through the configured factory and retains
// it for Draw.
func (g *GUI) addWidget(r Rect, img *ebiten.Image) Widget {
	w := g.newWidget(r, img)
	g.widgets = append(g.widgets, w)
	return w
}

// texture is a nil-safe TextureSource lookup.
func (g *GUI) texture(path string) *ebiten.Image {
	if g.textures == nil {
		return nil
	}
	return g.textures.Texture(path)
}

// Init lays out every control. tsrc may be nil (textureless widgets);
// factory may be nil to use the stock SpriteWidget.
func (g *GUI) Init(tsrc TextureSource, factory WidgetFactory) {
	g.textures = tsrc
	g.newWidget = factory
	if g.newWidget == nil {
		g.newWidget = NewSpriteWidget
	}

	g.visible = true

	w, h := g.cfg.ScreenW, g.cfg.ScreenH
	s := g.buttonSize
	half := s / 2

	// Joystick visuals sit in the bottom-left corner. The engaged
	// background ring and the knob start hidden.
	g.joy = joystick{
		fixed:       g.cfg.FixedJoystick,
		triggersAux: g.cfg.JoystickTriggersAux,
		auxKey:      g.cfg.resolveKey("aux"),
		buttonSize:  s,
		threshold:   g.cfg.TouchThreshold,
		screenW:     w,
		fixedCenter: Vec2{X: half * 5, Y: h - half*5},
	}
	if g.cfg.FixedJoystick {
		g.joy.btnOff = g.addWidget(Rect{X: s, Y: h - 4*s, Width: 3 * s, Height: 3 * s},
			g.texture("joystick_off.png"))
	} else {
		g.joy.btnOff = g.addWidget(Rect{X: s, Y: h - 3*s, Width: 2 * s, Height: 2 * s},
			g.texture("joystick_off.png"))
	}
	g.joy.btnBg = g.addWidget(Rect{X: s, Y: h - 4*s, Width: 3 * s, Height: 3 * s},
		g.texture("joystick_bg.png"))
	g.joy.btnBg.SetVisible(false)
	g.joy.btnCenter = g.addWidget(Rect{Width: s, Height: s},
		g.texture("joystick_center.png"))
	g.joy.btnCenter.SetVisible(false)

	// Primary action cluster, bottom-right.
	g.initButton(ButtonJump,
		Rect{X: w - 1.75*s, Y: h - s, Width: 1.5 * s, Height: s},
		false, buttonRepeatDelay)
	g.initButton(ButtonSneak,
		Rect{X: w - 3.25*s, Y: h - s, Width: 1.5 * s, Height: s},
		false, buttonRepeatDelay)
	g.initButton(ButtonZoom,
		Rect{X: w - 1.25*s, Y: h - 4*s, Width: s, Height: s},
		false, buttonRepeatDelay)
	if !g.cfg.JoystickTriggersAux {
		g.initButton(ButtonAux,
			Rect{X: w - 1.25*s, Y: h - 2.5*s, Width: s, Height: s},
			false, buttonRepeatDelay)
	}

	g.settingsBar = newAutoHideBar(g, "settings")
	g.settingsBar.init("gear_icon.png",
		Vec2{X: w - 1.25*s, Y: h - (settingsBarYOffset+1)*s + half},
		Vec2{X: w - 0.25*s, Y: h - settingsBarYOffset*s + half},
		BarRightLeft, settingsBarTimeout)
	for _, m := range []struct {
		id    ButtonID
		image string
	}{
		{ButtonFly, "fly_btn.png"},
		{ButtonNoclip, "noclip_btn.png"},
		{ButtonFast, "fast_btn.png"},
		{ButtonDebug, "debug_btn.png"},
		{ButtonCamera, "camera_btn.png"},
		{ButtonRange, "rangeview_btn.png"},
		{ButtonMinimap, "minimap_btn.png"},
	} {
		g.settingsBar.addButton(m.id, m.image)
	}
	// Chat is shown by default, so the hide texture comes first.
	g.settingsBar.addToggleButton(ButtonToggleChat,
		"chat_hide_btn.png", "chat_show_btn.png")

	g.rareBar = newAutoHideBar(g, "rare-controls")
	g.rareBar.init("rare_controls.png",
		Vec2{X: 0.25 * s, Y: h - (rareControlsBarYOffset+1)*s + half},
		Vec2{X: 0.75 * s, Y: h - rareControlsBarYOffset*s + half},
		BarLeftRight, rareControlsBarTimeout)
	for _, m := range []struct {
		id    ButtonID
		image string
	}{
		{ButtonChat, "chat_btn.png"},
		{ButtonInventory, "inventory_btn.png"},
		{ButtonDrop, "drop_btn.png"},
		{ButtonExit, "exit_btn.png"},
	} {
		g.rareBar.addButton(m.id, m.image)
	}

	g.initialized = true
}

// TranslateEvent dispatches one raw pointer event. Each press is
// classified exactly once: fixed button, hotbar slot, bar control,
// joystick, or camera-look pointer, in that order.
func (g *GUI) TranslateEvent(ev PointerEvent) {
	if !g.initialized {
		log.Printf("touchgui: TranslateEvent before Init")
		return
	}
	if !g.visible {
		log.Printf("touchgui: TranslateEvent while hidden")
		return
	}

	switch ev.Phase {
	case PhasePressed:
		g.handlePress(ev)
	case PhaseReleased:
		g.handleRelease(ev.ID)
	case PhaseMoved:
		g.handleMove(ev)
	}
}

func (g *GUI) handlePress(ev PointerEvent) {
	pos := ev.Pos

	if id := g.buttonAt(pos); id != buttonIDNone {
		g.handleButtonEvent(id, ev.ID, true)
		g.settingsBar.deactivate()
		g.rareBar.deactivate()
	} else if g.hotbarAt(pos) {
		g.settingsBar.deactivate()
		g.rareBar.deactivate()
	} else if g.settingsBar.hitTest(ev) {
		g.rareBar.deactivate()
	} else if g.rareBar.hitTest(ev) {
		g.settingsBar.deactivate()
	} else {
		// A press outside every control closes an open bar instead of
		// doing anything else, so a bar can't get stuck open.
		if g.settingsBar.Active() || g.rareBar.Active() {
			g.settingsBar.deactivate()
			g.rareBar.deactivate()
			return
		}

		if g.joy.catches(pos) {
			// First pointer to satisfy the predicate becomes the owner;
			// later presses in the region are tracked but do nothing.
			if !g.joy.hasPointer {
				g.joy.engage(ev)
			}
		} else if !g.hasLookID {
			g.hasLookID = true
			g.lookID = ev.ID
			g.lookReallyMoved = false
			g.lookDownTime = g.now()
			g.lookPos = pos
			// tapState is deliberately not reset here: a pending short
			// tap would be lost when tapping very fast.
		}
	}

	g.pointerDownPos[ev.ID] = pos
	g.pointerPos[ev.ID] = pos
}

func (g *GUI) handleMove(ev PointerEvent) {
	prev, ok := g.pointerPos[ev.ID]
	if !ok {
		log.Printf("touchgui: move for unknown pointer %d", ev.ID)
		return
	}
	// Skip no-op moves, except that an engaged fixed joystick always
	// reprocesses its position.
	if !(g.joy.hasPointer && g.joy.fixed) && prev == ev.Pos {
		return
	}

	down := g.pointerDownPos[ev.ID]

	if g.hasLookID && ev.ID == g.lookID {
		g.handleLookMove(ev, prev, down)
	}
	if g.joy.hasPointer && ev.ID == g.joy.pointerID {
		g.joy.move(ev.Pos, down)
	}
	if !g.hasLookID && !g.joy.hasPointer {
		g.handleChangedButton(ev)
	}
}

// handleRelease resolves a pointer's role one last time and retires it.
// A release with no known role is a protocol anomaly (some backends
// recycle or duplicate IDs) and only logs.
func (g *GUI) handleRelease(id int) {
	if b := g.buttonFor(id); b != buttonIDNone {
		g.handleButtonEvent(b, id, false)
	} else if g.hasLookID && id == g.lookID {
		g.hasLookID = false

		// A pending short tap must survive: downgrading it here would
		// swallow taps arriving faster than they are consumed.
		if !g.lookReallyMoved && g.tapState != TapLong {
			g.tapState = TapShort
		} else {
			g.tapState = TapNone
		}
	} else if g.joy.hasPointer && id == g.joy.pointerID {
		g.joy.release()
		g.joy.applyStatus(g.sink)
	} else {
		log.Printf("touchgui: released unknown pointer %d", id)
	}

	delete(g.pointerDownPos, id)
	delete(g.pointerPos, id)
}

// Step advances all frame-driven state by dt seconds: injected events,
// button repeats, the joystick aux trigger, long-tap classification, the
// shootline, and the bar timeouts.
func (g *GUI) Step(dt float64) {
	if !g.initialized {
		return
	}

	g.processInjected()

	g.stepButtons(dt)
	g.joy.applyStatus(g.sink)

	// A look pointer held motionless long enough becomes a long tap
	// before release, so press-and-hold works without lifting the
	// finger.
	if g.hasLookID && !g.lookReallyMoved && g.tapState == TapNone {
		if g.now().Sub(g.lookDownTime) > longTapDuration {
			g.tapState = TapLong
		}
	}

	// The camera moves even when the finger doesn't, so the shootline
	// has to refresh every frame, not just on touch events.
	if !g.useCrosshair && g.hasLookID && g.ray != nil {
		g.shootline = g.ray.ScreenRay(g.pointedPos())
	}

	g.settingsBar.step(dt)
	g.rareBar.step(dt)
}

// MovementDirection returns the joystick angle in radians (0 = forward,
// clockwise). Meaningful only while MovementSpeed is non-zero.
func (g *GUI) MovementDirection() float64 {
	return g.joy.direction
}

// MovementSpeed returns the normalized joystick speed in [0, 1].
func (g *GUI) MovementSpeed() float64 {
	return g.joy.speed
}

// Shootline returns the world-space line describing what the player
// points at. The line starts at the camera and ends on the far plane;
// scale it to the player's reach.
func (g *GUI) Shootline() Line3 {
	return g.shootline
}

// Visible reports whether the whole touch GUI is shown.
func (g *GUI) Visible() bool {
	return g.visible
}

// SetVisible shows or hides the whole GUI. Hiding synthesizes a release
// for every tracked pointer, so no button, joystick, or look state
// survives a visibility toggle.
func (g *GUI) SetVisible(visible bool) {
	if !g.initialized {
		log.Printf("touchgui: SetVisible before Init")
		return
	}

	if !visible {
		for len(g.pointerPos) > 0 {
			for id := range g.pointerPos {
				g.handleRelease(id)
				break
			}
		}
		g.settingsBar.hide()
		g.rareBar.hide()
	}

	g.visible = visible
	for i := range g.buttons {
		if g.buttons[i].widget != nil {
			g.buttons[i].widget.SetVisible(visible)
		}
	}
	g.joy.btnOff.SetVisible(visible)

	if visible {
		g.settingsBar.show()
		g.rareBar.show()
	}
}

// Hide hides the GUI. Calling it twice is the same as calling it once.
func (g *GUI) Hide() {
	if !g.visible {
		return
	}
	g.SetVisible(false)
}

// Show shows the GUI.
func (g *GUI) Show() {
	if g.visible {
		return
	}
	g.SetVisible(true)
}

// Draw renders every widget that knows how to draw itself, in creation
// order. Games with their own GUI toolkit render widgets themselves and
// never call this.
func (g *GUI) Draw(screen *ebiten.Image) {
	for _, w := range g.widgets {
		if d, ok := w.(drawer); ok {
			d.Draw(screen)
		}
	}
}
