package touchgui

// Synthetic pointer events for automated interaction testing. Queued
// events are consumed one per Step call, so a queued sequence plays out
// across frames exactly like real input would.

// InjectPress queues a synthetic press for pointer id at pos.
func (g *GUI) InjectPress(id int, pos Vec2) {
	g.inject = append(g.inject, PointerEvent{ID: id, Pos: pos, Phase: PhasePressed})
}

// InjectMove queues a synthetic move for pointer id to pos.
func (g *GUI) InjectMove(id int, pos Vec2) {
	g.inject = append(g.inject, PointerEvent{ID: id, Pos: pos, Phase: PhaseMoved})
}

// InjectRelease queues a synthetic release for pointer id.
func (g *GUI) InjectRelease(id int, pos Vec2) {
	g.inject = append(g.inject, PointerEvent{ID: id, Pos: pos, Phase: PhaseReleased})
}

// InjectTap queues a press followed by a release at the same position.
// Consumes two frames.
func (g *GUI) InjectTap(id int, pos Vec2) {
	g.InjectPress(id, pos)
	g.InjectRelease(id, pos)
}

// processInjected pops one queued event and dispatches it. Called at the
// start of Step.
func (g *GUI) processInjected() {
	if len(g.inject) == 0 {
		return
	}
	ev := g.inject[0]
	copy(g.inject, g.inject[1:])
	g.inject = g.inject[:len(g.inject)-1]

	g.TranslateEvent(ev)
}
