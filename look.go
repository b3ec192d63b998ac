package touchgui

// handleLookMove accumulates camera rotation from the look pointer's
// frame-to-frame delta and tracks whether the gesture has really moved
// away from its press point.
func (g *GUI) handleLookMove(ev PointerEvent, prev, down Vec2) {
	g.lookPos = ev.Pos
	g.pointerPos[ev.ID] = ev.Pos

	// Degrees per pixel, compensated for display density so a physical
	// finger travel rotates the same on any screen.
	d := g.cfg.Sensitivity * 6.0 / g.cfg.DisplayDensity
	delta := ev.Pos.Sub(prev)
	g.yawChange -= delta.X * d
	g.pitchChange += delta.Y * d

	// Once set, the flag stays set for the pointer's lifetime: returning
	// near the press point doesn't turn the gesture back into a tap.
	if !g.lookReallyMoved {
		offset := ev.Pos.Sub(down)
		thr := g.cfg.TouchThreshold
		if offset.LengthSq() > thr*thr {
			g.lookReallyMoved = true
		}
	}
}

// YawChange returns the accumulated camera yaw delta in degrees and
// resets the accumulator.
func (g *GUI) YawChange() float64 {
	res := g.yawChange
	g.yawChange = 0
	return res
}

// PitchChange returns the accumulated camera pitch delta in degrees and
// resets the accumulator.
func (g *GUI) PitchChange() float64 {
	res := g.pitchChange
	g.pitchChange = 0
	return res
}

// pointedPos is the screen position the player points at: the screen
// center under a crosshair, otherwise the look pointer's last position.
// The look position outlives its pointer because the emulation layer can
// emit release events after the pointer is gone.
func (g *GUI) pointedPos() Vec2 {
	if g.useCrosshair {
		return Vec2{X: g.cfg.ScreenW / 2, Y: g.cfg.ScreenH / 2}
	}
	return g.lookPos
}
