package touchgui

// hotbarRegistry maps inventory slot indices to screen rectangles. The
// HUD rebuilds it every frame before pointer dispatch, so it never goes
// stale. A touched slot index is latched until read once.
type hotbarRegistry struct {
	rects map[int]Rect

	selection    int
	hasSelection bool
}

// ResetHotbarRects forgets all registered slot rectangles. Call at the
// start of each HUD frame before re-registering.
func (g *GUI) ResetHotbarRects() {
	clear(g.hotbar.rects)
}

// RegisterHotbarRect maps a hotbar slot index to its current on-screen
// rectangle.
func (g *GUI) RegisterHotbarRect(index int, r Rect) {
	if g.hotbar.rects == nil {
		g.hotbar.rects = make(map[int]Rect)
	}
	g.hotbar.rects[index] = r
}

// HotbarSelection returns the most recently touched slot index, if any.
// The read is destructive: each selection is consumed exactly once.
func (g *GUI) HotbarSelection() (int, bool) {
	index, ok := g.hotbar.selection, g.hotbar.hasSelection
	g.hotbar.selection = 0
	g.hotbar.hasSelection = false
	return index, ok
}

// hotbarAt latches the slot under pos as the pending selection. A slot
// touch can't be expressed as a key event because there may be more slots
// than number keys, so the game reads the selection out of band.
func (g *GUI) hotbarAt(pos Vec2) bool {
	for index, r := range g.hotbar.rects {
		if r.ContainsVec(pos) {
			g.hotbar.selection = index
			g.hotbar.hasSelection = true
			return true
		}
	}
	return false
}
