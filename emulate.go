package touchgui

import "time"

// ApplyContextControls converts the current tap classification into
// emulated mouse-button state under the given interaction mode. Call once
// per frame, after the game has read the shootline for this frame.
//
// A short tap latches a timed pulse: pressed now, auto-released
// simulatedClickDuration later. If the target button is already down the
// pulse is deferred one frame by releasing now, because a press and
// release inside the same tick is invisible to the digging logic. A long
// tap holds its target for as long as the classification persists.
func (g *GUI) ApplyContextControls(mode InteractionMode) {
	now := g.now()

	// Swapping the meanings of short and long taps aborts in-flight
	// short taps: half a pulse would act on the wrong target. Long taps
	// simply re-map on their own.
	if mode != g.lastMode {
		g.digPressedUntil = time.Time{}
		g.placePressedUntil = time.Time{}
	}
	g.lastMode = mode

	targetDig := false
	targetPlace := false

	switch g.tapState {
	case TapShort:
		pressed, until := &g.digPressed, &g.digPressedUntil
		if mode != ModeShortDigLongPlace {
			pressed, until = &g.placePressed, &g.placePressedUntil
		}
		if !*pressed {
			*until = now.Add(simulatedClickDuration)
			g.tapState = TapNone
		} else {
			// Already down from an earlier tap. Release now, re-arm on
			// the next frame.
			*until = time.Time{}
		}

	case TapLong:
		if mode == ModeShortDigLongPlace {
			targetPlace = true
		} else {
			targetDig = true
		}

	case TapNone:
	}

	targetDig = targetDig || now.Before(g.digPressedUntil)
	targetPlace = targetPlace || now.Before(g.placePressedUntil)

	if targetDig && !g.digPressed {
		g.emitMouseEvent(MouseButtonLeft, true)
		g.digPressed = true
	} else if !targetDig && g.digPressed {
		g.emitMouseEvent(MouseButtonLeft, false)
		g.digPressed = false
	}

	if targetPlace && !g.placePressed {
		g.emitMouseEvent(MouseButtonRight, true)
		g.placePressed = true
	} else if !targetPlace && g.placePressed {
		g.emitMouseEvent(MouseButtonRight, false)
		g.placePressed = false
	}
}

func (g *GUI) emitMouseEvent(button MouseButton, pressed bool) {
	g.sink.SendMouse(MouseEvent{
		Pos:     g.pointedPos(),
		Button:  button,
		Pressed: pressed,
	})
}
