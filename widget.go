package touchgui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextureSource loads a button image by path. Supplied by the game's asset
// system; a nil image is acceptable and leaves the widget textureless.
type TextureSource interface {
	Texture(path string) *ebiten.Image
}

// Widget is the visual handle for a single on-screen control. The engine
// only ever positions, shows, and re-skins widgets; how they are drawn is
// the owner's business.
type Widget interface {
	SetVisible(visible bool)
	Visible() bool
	SetEnabled(enabled bool)
	Enabled() bool
	SetRect(r Rect)
	Rect() Rect
	SetImage(img *ebiten.Image)
}

// WidgetFactory creates a widget for a control occupying r, initially
// showing img (which may be nil).
type WidgetFactory func(r Rect, img *ebiten.Image) Widget

// SpriteWidget is the stock Widget: a flat textured rectangle drawn with
// ebiten. Games with their own GUI toolkit supply a different factory and
// never touch this type.
type SpriteWidget struct {
	rect    Rect
	img     *ebiten.Image
	visible bool
	enabled bool

	// Color tints the placeholder fill drawn when no image is set.
	Color color.RGBA
}

// NewSpriteWidget is a WidgetFactory producing SpriteWidgets.
func NewSpriteWidget(r Rect, img *ebiten.Image) Widget {
	return &SpriteWidget{
		rect:    r,
		img:     img,
		visible: true,
		enabled: true,
		Color:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66},
	}
}

func (w *SpriteWidget) SetVisible(visible bool)    { w.visible = visible }
func (w *SpriteWidget) Visible() bool              { return w.visible }
func (w *SpriteWidget) SetEnabled(enabled bool)    { w.enabled = enabled }
func (w *SpriteWidget) Enabled() bool              { return w.enabled }
func (w *SpriteWidget) SetRect(r Rect)             { w.rect = r }
func (w *SpriteWidget) Rect() Rect                 { return w.rect }
func (w *SpriteWidget) SetImage(img *ebiten.Image) { w.img = img }

// Draw renders the widget: the image scaled to its rectangle, or a
// translucent rounded placeholder when no image is set.
func (w *SpriteWidget) Draw(screen *ebiten.Image) {
	if !w.visible {
		return
	}
	if w.img != nil {
		bounds := w.img.Bounds()
		iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
		if iw == 0 || ih == 0 {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w.rect.Width/iw, w.rect.Height/ih)
		op.GeoM.Translate(w.rect.X, w.rect.Y)
		screen.DrawImage(w.img, op)
		return
	}
	c := w.Color
	if !w.enabled {
		c.A /= 2
	}
	vector.DrawFilledRect(screen,
		float32(w.rect.X), float32(w.rect.Y),
		float32(w.rect.Width), float32(w.rect.Height), c, true)
	vector.StrokeRect(screen,
		float32(w.rect.X), float32(w.rect.Y),
		float32(w.rect.Width), float32(w.rect.Height),
		2, color.RGBA{A: 0x99}, true)
}

// drawer is implemented by widgets that can render themselves; GUI.Draw
// draws every created widget that implements it.
type drawer interface {
	Draw(screen *ebiten.Image)
}
