package touchgui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// Settings bar fixture positions for the 1920x1080 / size-65 layout: the
// starter sits at x [1838.75, 1903.75], members grow leftward at 1.25
// sizes per slot with a 0.25 size margin.
var (
	flyMemberPos    = Vec2{X: 1800, Y: 750}  // member 0 (fly, key K)
	toggleMemberPos = Vec2{X: 1200, Y: 750}  // member 7 (toggle_chat, key F2)
	rareStarterPos  = Vec2{X: 30, Y: 750}
)

func pressAt(g *GUI, id int, pos Vec2) {
	g.TranslateEvent(PointerEvent{ID: id, Pos: pos, Phase: PhasePressed})
}

func TestBarStarterActivates(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	if g.settingsBar.Active() {
		t.Fatal("bar active before any touch")
	}

	pressAt(g, 1, starterPos)
	if !g.settingsBar.Active() {
		t.Fatal("starter press did not activate the bar")
	}
	if g.settingsBar.starter.widget.Visible() {
		t.Error("starter still visible while active")
	}
	for i, btn := range g.settingsBar.buttons {
		if !btn.widget.Visible() || !btn.widget.Enabled() {
			t.Errorf("member %d not shown/enabled after activation", i)
		}
	}
}

func TestBarMemberFiresPulse(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	sink.reset()

	pressAt(g, 2, flyMemberPos)
	if down, up := sink.keyCount(ebiten.KeyK, true), sink.keyCount(ebiten.KeyK, false); down != 1 || up != 1 {
		t.Fatalf("member press: %d downs / %d ups, want 1 / 1", down, up)
	}
}

func TestBarMemberInactiveDoesNothing(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	// Without activation the member region is just open space; the press
	// becomes the look pointer and fires no key.
	pressAt(g, 1, flyMemberPos)
	if len(sink.keys) != 0 {
		t.Fatalf("inactive member press fired %d key events", len(sink.keys))
	}
	if !g.hasLookID {
		t.Error("press on inactive member region did not fall through to look")
	}
}

func TestBarToggleAlternates(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	toggle := g.settingsBar.buttons[len(g.settingsBar.buttons)-1]
	if toggle.toggle != toggleFirst {
		t.Fatalf("toggle initial state = %v, want toggleFirst", toggle.toggle)
	}
	sink.reset()

	pressAt(g, 2, toggleMemberPos)
	if toggle.toggle != toggleSecond {
		t.Errorf("after first tap: state = %v, want toggleSecond", toggle.toggle)
	}
	pressAt(g, 3, toggleMemberPos)
	if toggle.toggle != toggleFirst {
		t.Errorf("after second tap: state = %v, want toggleFirst", toggle.toggle)
	}

	if down, up := sink.keyCount(ebiten.KeyF2, true), sink.keyCount(ebiten.KeyF2, false); down != 2 || up != 2 {
		t.Errorf("two taps: %d downs / %d ups, want 2 / 2", down, up)
	}
}

func TestBarIdleTimeout(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	g.Step(2.9)
	if !g.settingsBar.Active() {
		t.Fatal("bar collapsed before the timeout")
	}

	// A member tap resets the idle accumulator.
	pressAt(g, 2, flyMemberPos)
	g.Step(2.9)
	if !g.settingsBar.Active() {
		t.Fatal("bar collapsed despite activity resetting the timer")
	}

	g.Step(0.2)
	if g.settingsBar.Active() {
		t.Fatal("bar still active past the timeout")
	}
	if !g.settingsBar.starter.widget.Visible() {
		t.Error("starter not restored after collapse")
	}
}

func TestBarsDeactivateEachOther(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	if !g.settingsBar.Active() {
		t.Fatal("settings bar did not activate")
	}

	pressAt(g, 2, rareStarterPos)
	if !g.rareBar.Active() {
		t.Fatal("rare-controls bar did not activate")
	}
	if g.settingsBar.Active() {
		t.Error("settings bar still active after opening the other bar")
	}
}

func TestPressOutsideClosesBars(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	pressAt(g, 2, lookPos)

	if g.settingsBar.Active() {
		t.Error("bar still open after a press in open space")
	}
	// The closing press is swallowed: it must not become the look
	// pointer.
	if g.hasLookID {
		t.Error("bar-closing press was classified as the look pointer")
	}
}

func TestButtonPressDeactivatesBars(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	pressAt(g, 2, jumpPos)

	if g.settingsBar.Active() {
		t.Error("bar still open after a fixed-button press")
	}
}

func TestBarRevealAnimation(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	first := g.settingsBar.buttons[0]

	g.Step(barRevealDuration / 4)
	if mid := first.widget.Rect(); mid == first.rect {
		t.Error("member jumped straight to its final slot")
	}

	g.Step(barRevealDuration)
	if got := first.widget.Rect(); got != first.rect {
		t.Errorf("member rect after reveal = %v, want %v", got, first.rect)
	}
}

func TestBarUninitializedNoOps(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())
	bar := newAutoHideBar(g, "orphan")

	// Every operation before init must log and do nothing.
	bar.addButton(ButtonFly, "fly_btn.png")
	bar.hide()
	bar.show()
	bar.deactivate()
	if bar.hitTest(PointerEvent{ID: 1, Pos: starterPos, Phase: PhasePressed}) {
		t.Error("uninitialized bar claimed a hit")
	}
	if len(bar.buttons) != 0 {
		t.Error("uninitialized bar accepted a member")
	}
}

func TestBarHideShow(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	pressAt(g, 1, starterPos)
	g.settingsBar.hide()

	if g.settingsBar.starter.widget.Visible() {
		t.Error("starter visible while bar hidden")
	}
	for i, btn := range g.settingsBar.buttons {
		if btn.widget.Visible() {
			t.Errorf("member %d visible while bar hidden", i)
		}
	}

	// show restores the active state's widgets.
	g.settingsBar.show()
	for i, btn := range g.settingsBar.buttons {
		if !btn.widget.Visible() {
			t.Errorf("member %d not restored by show", i)
		}
	}
}
