package touchgui

import "github.com/hajimehoshi/ebiten/v2"

// maxPointers bounds how many simultaneous touches the poller tracks.
const maxPointers = 10

// TouchPoller feeds live ebiten touch state into a GUI as PointerEvents.
// Ebiten reports touches as a per-frame ID set, so the poller keeps a
// slot table to detect presses (new ID), moves (known ID), and releases
// (vanished ID). Call Poll once per Update, before GUI.Step.
//
// Games with their own event pipeline can skip the poller and call
// GUI.TranslateEvent directly.
type TouchPoller struct {
	gui      *GUI
	touchIDs []ebiten.TouchID

	used [maxPointers]bool
	tids [maxPointers]ebiten.TouchID
	pos  [maxPointers]Vec2
}

// NewTouchPoller creates a poller dispatching into g.
func NewTouchPoller(g *GUI) *TouchPoller {
	return &TouchPoller{gui: g}
}

// Poll reads the current touch set and dispatches the resulting pointer
// events.
func (p *TouchPoller) Poll() {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	var active [maxPointers]bool
	for _, tid := range p.touchIDs {
		slot, fresh := p.slot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		x, y := ebiten.TouchPosition(tid)
		pos := Vec2{X: float64(x), Y: float64(y)}

		if fresh {
			p.pos[slot] = pos
			p.gui.TranslateEvent(PointerEvent{ID: slot, Pos: pos, Phase: PhasePressed})
			continue
		}
		// Moves are dispatched even when the position is unchanged; the
		// GUI decides which of those it cares about (the engaged fixed
		// joystick does).
		p.pos[slot] = pos
		p.gui.TranslateEvent(PointerEvent{ID: slot, Pos: pos, Phase: PhaseMoved})
	}

	// Any slot that didn't show up this frame was released.
	for i := 0; i < maxPointers; i++ {
		if p.used[i] && !active[i] {
			p.gui.TranslateEvent(PointerEvent{ID: i, Pos: p.pos[i], Phase: PhaseReleased})
			p.used[i] = false
		}
	}
}

// slot maps an ebiten.TouchID to a stable slot index, allocating one for
// unseen IDs. fresh reports a new allocation. Returns -1 when full.
func (p *TouchPoller) slot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 0; i < maxPointers; i++ {
		if p.used[i] && p.tids[i] == tid {
			return i, false
		}
	}
	for i := 0; i < maxPointers; i++ {
		if !p.used[i] {
			p.used[i] = true
			p.tids[i] = tid
			return i, true
		}
	}
	return -1, false
}
