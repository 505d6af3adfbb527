package platform

import (
	"image/color"
	"slices"

	"github.com/vovakirdan/flapfish/internal/world"
)

// Debug font cell size used for text layout.
const (
	GlyphW = 6
	GlyphH = 16
)

// Palette for pixel hosts.
var (
	SkyColor      = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	PipeColor     = color.RGBA{R: 84, G: 168, B: 60, A: 255}
	PipeEdgeColor = color.RGBA{R: 52, G: 110, B: 36, A: 255}
	FishColor     = color.RGBA{R: 255, G: 153, B: 0, A: 255}
	FishEyeColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// RectOp is a filled rectangle in y-down pixel coordinates.
type RectOp struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// TextOp is a debug-font string anchored at its top-left pixel.
type TextOp struct {
	X, Y int
	Text string
}

// DrawList is one frame's worth of primitives.
type DrawList struct {
	Rects []RectOp
	Texts []TextOp
}

// BuildDrawList flattens the world into primitives for a screenW x screenH
// surface that shows the play field at scale 1. Entities are emitted in z
// order; y is flipped so the play field's floor is the bottom of the surface.
func BuildDrawList(w *world.World, worldH float32, screenW, screenH int) DrawList {
	var ents []*world.Entity
	w.Each(func(_ world.Handle, e *world.Entity) {
		ents = append(ents, e)
	})
	slices.SortStableFunc(ents, func(a, b *world.Entity) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		}
		return 0
	})

	var dl DrawList
	for _, e := range ents {
		if e.Text != nil {
			dl.Texts = append(dl.Texts, layoutText(e.Text, screenW, screenH))
			continue
		}
		b, ok := e.VisualBox()
		if !ok {
			continue
		}
		r := RectOp{
			X: b.Left(),
			Y: worldH - b.Top(),
			W: b.Right() - b.Left(),
			H: b.Top() - b.Bottom(),
		}
		switch e.Sprite {
		case world.SpriteBackground:
			r.Color = SkyColor
			dl.Rects = append(dl.Rects, r)
		case world.SpritePipe:
			r.Color = PipeColor
			edge := r
			edge.W = 4
			edge.Color = PipeEdgeColor
			dl.Rects = append(dl.Rects, r, edge)
		case world.SpriteFish:
			r.Color = FishColor
			eye := RectOp{X: r.X + r.W*0.75, Y: r.Y + r.H*0.25, W: 5, H: 5, Color: FishEyeColor}
			dl.Rects = append(dl.Rects, r, eye)
		}
	}
	return dl
}

// layoutText places the HUD top-left, banners mid-screen and hints below them.
func layoutText(t *world.Text, screenW, screenH int) TextOp {
	s := t.String()
	centered := (screenW - len(s)*GlyphW) / 2
	switch t.Style {
	case world.TextBanner:
		return TextOp{X: centered, Y: screenH/2 - GlyphH*2, Text: s}
	case world.TextHint:
		return TextOp{X: centered, Y: screenH/2 + GlyphH, Text: s}
	default:
		return TextOp{X: 10, Y: 10, Text: s}
	}
}
