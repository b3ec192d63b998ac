package touchgui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BarDir is the axis direction an auto-hide bar grows along, away from
// its starter button.
type BarDir uint8

const (
	BarTopBottom BarDir = iota
	BarBottomTop
	BarLeftRight
	BarRightLeft
)

// barButton is a member (or starter) of an auto-hide bar. Members only
// ever fire instantaneous key pulses, so they keep no pointer list.
type barButton struct {
	id       ButtonID
	key      ebiten.Key
	widget   Widget
	rect     Rect
	toggle   toggleState
	textures [2]string
}

// AutoHideBar is a collapsible toolbar of secondary buttons hidden behind
// a starter button. Tapping the starter reveals the members; they slide
// out from the starter and collapse again after an idle timeout.
type AutoHideBar struct {
	gui  *GUI
	name string

	starter barButton
	buttons []*barButton

	upperLeft, lowerRight Vec2
	dir                   BarDir

	active  bool
	visible bool

	timeout      float64
	timeoutValue float64

	reveal *gween.Tween

	initialized bool
}

func newAutoHideBar(g *GUI, name string) *AutoHideBar {
	return &AutoHideBar{
		gui:          g,
		name:         name,
		visible:      true,
		timeoutValue: 3.0,
	}
}

// init places the starter button and fixes the bar's geometry. Must be
// called before any other method; the others log and no-op otherwise.
func (b *AutoHideBar) init(starterImg string, upperLeft, lowerRight Vec2, dir BarDir, timeout float64) {
	b.upperLeft = upperLeft
	b.lowerRight = lowerRight
	b.dir = dir
	b.timeoutValue = timeout

	b.starter.rect = Rect{
		X:     upperLeft.X,
		Y:     upperLeft.Y,
		Width: lowerRight.X - upperLeft.X, Height: lowerRight.Y - upperLeft.Y,
	}
	b.starter.key = keyUnknown // the starter never emits a key
	b.starter.widget = b.gui.addWidget(b.starter.rect, b.gui.texture(starterImg))

	b.initialized = true
}

// checkInit reports whether the bar is usable, logging the uninitialized
// case.
func (b *AutoHideBar) checkInit(op string) bool {
	if !b.initialized {
		log.Printf("touchgui: %s bar: %s before init", b.name, op)
		return false
	}
	return true
}

// memberRect computes the rectangle of the member at slot index, laid out
// outward from the starter along the bar direction.
func (b *AutoHideBar) memberRect(index int) Rect {
	var size float64
	if b.dir == BarTopBottom || b.dir == BarBottomTop {
		size = b.lowerRight.X - b.upperLeft.X
	} else {
		size = b.lowerRight.Y - b.upperLeft.Y
	}
	offset := size*barSpacingFactor*float64(index) + size*barMarginFactor

	switch b.dir {
	case BarLeftRight:
		x := b.lowerRight.X + offset
		return Rect{X: x, Y: b.upperLeft.Y, Width: size, Height: b.lowerRight.Y - b.upperLeft.Y}
	case BarRightLeft:
		x := b.upperLeft.X - offset - size
		return Rect{X: x, Y: b.upperLeft.Y, Width: size, Height: b.lowerRight.Y - b.upperLeft.Y}
	case BarTopBottom:
		y := b.lowerRight.Y + offset
		return Rect{X: b.upperLeft.X, Y: y, Width: b.lowerRight.X - b.upperLeft.X, Height: size}
	default: // BarBottomTop
		y := b.upperLeft.Y - offset - size
		return Rect{X: b.upperLeft.X, Y: y, Width: b.lowerRight.X - b.upperLeft.X, Height: size}
	}
}

// addButton registers a member button. Members whose action has no
// resolvable key are skipped entirely.
func (b *AutoHideBar) addButton(id ButtonID, image string) {
	if !b.checkInit("addButton") {
		return
	}

	key := resolveButtonKey(b.gui.cfg, id)
	if key == keyUnknown {
		return
	}

	r := b.memberRect(len(b.buttons))
	btn := &barButton{
		id:     id,
		key:    key,
		rect:   r,
		widget: b.gui.addWidget(r, b.gui.texture(image)),
	}
	btn.widget.SetVisible(false)
	btn.widget.SetEnabled(false)

	b.buttons = append(b.buttons, btn)
}

// addToggleButton registers a member that alternates between two textures
// on each tap, for controls that only make sense as toggles.
func (b *AutoHideBar) addToggleButton(id ButtonID, image1, image2 string) {
	if !b.checkInit("addToggleButton") {
		return
	}

	before := len(b.buttons)
	b.addButton(id, image1)
	if len(b.buttons) == before {
		return // key didn't resolve
	}
	btn := b.buttons[len(b.buttons)-1]
	btn.toggle = toggleFirst
	btn.textures = [2]string{image1, image2}
}

// hitTest reports whether a press belongs to this bar, and handles it:
// hitting the starter activates the bar, hitting an active member fires
// its key as an instantaneous press/release pulse.
func (b *AutoHideBar) hitTest(ev PointerEvent) bool {
	if !b.checkInit("hitTest") || !b.visible {
		return false
	}

	if b.active {
		for _, btn := range b.buttons {
			if !btn.rect.ContainsVec(ev.Pos) {
				continue
			}

			b.gui.sink.SendKey(KeyEvent{Key: btn.key, Pressed: true})
			b.gui.sink.SendKey(KeyEvent{Key: btn.key, Pressed: false})
			b.timeout = 0

			switch btn.toggle {
			case toggleFirst:
				btn.toggle = toggleSecond
				btn.widget.SetImage(b.gui.texture(btn.textures[1]))
			case toggleSecond:
				btn.toggle = toggleFirst
				btn.widget.SetImage(b.gui.texture(btn.textures[0]))
			}
			return true
		}
		return false
	}

	if b.starter.rect.ContainsVec(ev.Pos) {
		b.starter.widget.SetVisible(false)
		b.starter.widget.SetEnabled(false)
		b.active = true
		b.timeout = 0
		b.reveal = gween.New(0, 1, barRevealDuration, ease.OutQuad)

		for _, btn := range b.buttons {
			btn.widget.SetVisible(true)
			btn.widget.SetEnabled(true)
		}
		return true
	}
	return false
}

// step accumulates idle time while active, collapses the bar past the
// timeout, and advances the reveal animation.
func (b *AutoHideBar) step(dt float64) {
	if !b.initialized {
		return
	}

	if b.reveal != nil {
		t, finished := b.reveal.Update(float32(dt))
		b.layoutReveal(float64(t))
		if finished {
			b.reveal = nil
		}
	}

	if b.active {
		b.timeout += dt
		if b.timeout > b.timeoutValue {
			b.deactivate()
		}
	}
}

// layoutReveal slides member widgets from the starter position toward
// their final slots. Hit testing always uses the final rects; the slide
// is purely visual.
func (b *AutoHideBar) layoutReveal(t float64) {
	for _, btn := range b.buttons {
		r := btn.rect
		r.X = b.starter.rect.X + (btn.rect.X-b.starter.rect.X)*t
		r.Y = b.starter.rect.Y + (btn.rect.Y-b.starter.rect.Y)*t
		btn.widget.SetRect(r)
	}
}

// Active reports whether the bar is expanded.
func (b *AutoHideBar) Active() bool {
	return b.active
}

// deactivate collapses the bar, restoring the starter if the bar is
// visible at all.
func (b *AutoHideBar) deactivate() {
	if !b.checkInit("deactivate") {
		return
	}

	if b.visible {
		b.starter.widget.SetVisible(true)
		b.starter.widget.SetEnabled(true)
	}
	b.active = false
	b.reveal = nil

	for _, btn := range b.buttons {
		btn.widget.SetVisible(false)
		btn.widget.SetEnabled(false)
		btn.widget.SetRect(btn.rect)
	}
}

// hide makes the whole bar invisible, starter included, independent of
// the active state.
func (b *AutoHideBar) hide() {
	if !b.checkInit("hide") {
		return
	}

	b.visible = false
	b.starter.widget.SetVisible(false)
	b.starter.widget.SetEnabled(false)

	for _, btn := range b.buttons {
		btn.widget.SetVisible(false)
		btn.widget.SetEnabled(false)
	}
}

// show restores the bar to whatever its active state dictates.
func (b *AutoHideBar) show() {
	if !b.checkInit("show") {
		return
	}

	b.visible = true

	if b.active {
		for _, btn := range b.buttons {
			btn.widget.SetVisible(true)
			btn.widget.SetEnabled(true)
		}
	} else {
		b.starter.widget.SetVisible(true)
		b.starter.widget.SetEnabled(true)
	}
}
