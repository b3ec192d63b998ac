package touchgui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugOverlay renders a small live summary of the engine's state:
// joystick direction and speed, tap classification, tracked pointers,
// and pending camera deltas. It refreshes its text ~4 times per second.
type DebugOverlay struct {
	gui     *GUI
	img     *ebiten.Image
	elapsed float64
}

// NewDebugOverlay creates an overlay for g.
func NewDebugOverlay(g *GUI) *DebugOverlay {
	return &DebugOverlay{
		gui:     g,
		img:     ebiten.NewImage(280, 48),
		elapsed: 1, // force a refresh on the first update
	}
}

// Update refreshes the overlay text. Call once per frame with the frame
// time in seconds.
func (d *DebugOverlay) Update(dt float64) {
	d.elapsed += dt
	if d.elapsed < 0.25 {
		return
	}
	d.elapsed = 0

	g := d.gui
	d.img.Clear()
	// Semi-transparent background for readability
	d.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(d.img, fmt.Sprintf(
		"joy: dir %.2f speed %.2f  tap: %s\npointers: %d  yaw/pitch: %+.1f/%+.1f",
		g.joy.direction, g.joy.speed, g.tapState,
		len(g.pointerPos), g.yawChange, g.pitchChange))
}

// Draw draws the overlay at the top-left corner.
func (d *DebugOverlay) Draw(screen *ebiten.Image) {
	screen.DrawImage(d.img, nil)
}
