package touchgui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestButtonPressRelease(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhasePressed})
	if got := sink.keyCount(ebiten.KeySpace, true); got != 1 {
		t.Fatalf("after press: %d key-downs, want 1", got)
	}

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhaseReleased})
	if got := sink.keyCount(ebiten.KeySpace, false); got != 1 {
		t.Fatalf("after release: %d key-ups, want 1", got)
	}
}

func TestButtonMultiPointer(t *testing.T) {
	// A second finger on an already-pressed button must not re-fire the
	// key; the key goes up only when the last finger lifts.
	g, sink, _ := newTestGUI(testConfig())

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhasePressed})
	g.TranslateEvent(PointerEvent{ID: 2, Pos: jumpPos, Phase: PhasePressed})
	if got := sink.keyCount(ebiten.KeySpace, true); got != 1 {
		t.Fatalf("two fingers down: %d key-downs, want 1", got)
	}

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhaseReleased})
	if got := sink.keyCount(ebiten.KeySpace, false); got != 0 {
		t.Fatalf("one finger up: %d key-ups, want 0", got)
	}

	g.TranslateEvent(PointerEvent{ID: 2, Pos: jumpPos, Phase: PhaseReleased})
	if got := sink.keyCount(ebiten.KeySpace, false); got != 1 {
		t.Fatalf("last finger up: %d key-ups, want 1", got)
	}
}

func TestButtonRepeatPulses(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhasePressed})
	sink.reset()

	// Not yet at the repeat delay: nothing.
	g.Step(0.1)
	if len(sink.keys) != 0 {
		t.Fatalf("before delay: %d key events, want 0", len(sink.keys))
	}

	// Crossing the delay emits one up+down pulse and resets the counter.
	g.Step(0.11)
	if up, down := sink.keyCount(ebiten.KeySpace, false), sink.keyCount(ebiten.KeySpace, true); up != 1 || down != 1 {
		t.Fatalf("first pulse: %d ups / %d downs, want 1 / 1", up, down)
	}

	g.Step(0.21)
	if up := sink.keyCount(ebiten.KeySpace, false); up != 2 {
		t.Fatalf("second pulse: %d ups, want 2", up)
	}

	// Released buttons stop repeating.
	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhaseReleased})
	sink.reset()
	g.Step(1.0)
	if len(sink.keys) != 0 {
		t.Fatalf("after release: %d key events, want 0", len(sink.keys))
	}
}

func TestButtonSlideReassignment(t *testing.T) {
	// Sliding a finger from one button onto an adjacent one releases the
	// old key and presses the new.
	g, sink, _ := newTestGUI(testConfig())

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhasePressed})
	g.TranslateEvent(PointerEvent{ID: 1, Pos: sneakPos, Phase: PhaseMoved})

	if got := sink.keyCount(ebiten.KeySpace, false); got != 1 {
		t.Errorf("old button key-ups = %d, want 1", got)
	}
	if got := sink.keyCount(ebiten.KeyShiftLeft, true); got != 1 {
		t.Errorf("new button key-downs = %d, want 1", got)
	}

	g.TranslateEvent(PointerEvent{ID: 1, Pos: sneakPos, Phase: PhaseReleased})
	if got := sink.keyCount(ebiten.KeyShiftLeft, false); got != 1 {
		t.Errorf("new button key-ups = %d, want 1", got)
	}
}

func TestButtonSlideOffReleases(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhasePressed})
	// Slide into empty space between controls.
	g.TranslateEvent(PointerEvent{ID: 1, Pos: Vec2{X: 1500, Y: 700}, Phase: PhaseMoved})

	if got := sink.keyCount(ebiten.KeySpace, false); got != 1 {
		t.Errorf("key-ups after sliding off = %d, want 1", got)
	}
	if g.buttonFor(1) != buttonIDNone {
		t.Error("pointer still attached to a button after sliding off")
	}
}

func TestDuplicatePressPanics(t *testing.T) {
	// Pressing an id/pointer pair twice means the disambiguation is
	// broken. That's an internal consistency failure, not bad input.
	g, _, _ := newTestGUI(testConfig())

	defer func() {
		if recover() == nil {
			t.Error("duplicate press did not panic")
		}
	}()
	g.handleButtonEvent(ButtonJump, 1, true)
	g.handleButtonEvent(ButtonJump, 1, true)
}

func TestUnmatchedReleasePanics(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	defer func() {
		if recover() == nil {
			t.Error("unmatched release did not panic")
		}
	}()
	g.handleButtonEvent(ButtonJump, 1, false)
}

func TestImmediateRelease(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())
	g.buttons[ButtonJump].immediateRelease = true

	g.TranslateEvent(PointerEvent{ID: 1, Pos: jumpPos, Phase: PhasePressed})

	// The pointer is detached on the press path: one full pulse, nothing
	// left attached.
	if down, up := sink.keyCount(ebiten.KeySpace, true), sink.keyCount(ebiten.KeySpace, false); down != 1 || up != 1 {
		t.Fatalf("got %d downs / %d ups, want 1 / 1", down, up)
	}
	if g.buttonFor(1) != buttonIDNone {
		t.Error("pointer still attached after immediate release")
	}
}
