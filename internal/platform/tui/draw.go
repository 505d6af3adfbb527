package tui

import (
	"math"
	"slices"

	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

// Visual characters for rendering
const (
	FishChar     = '●'
	FishHeadChar = '▶'
	PipeChar     = '█'
	PipeEdgeChar = '▓'
	GroundChar   = '═'
)

// projection maps the y-up play field onto a y-down character grid.
type projection struct {
	worldH float32
	sx, sy float32
}

func newProjection(worldW, worldH float32, cols, rows int) projection {
	p := projection{worldH: worldH}
	if worldW > 0 {
		p.sx = float32(cols) / worldW
	}
	if worldH > 0 {
		p.sy = float32(rows) / worldH
	}
	return p
}

func (p projection) col(x float32) int {
	return int(math.Floor(float64(x * p.sx)))
}

func (p projection) row(y float32) int {
	return int(math.Floor(float64((p.worldH - y) * p.sy)))
}

// rect returns the cells covered by b, at least one cell in each direction.
func (p projection) rect(b core.Box) core.Rect {
	x0, x1 := p.col(b.Left()), p.col(b.Right())
	y0, y1 := p.row(b.Top()), p.row(b.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// DrawWorld renders every entity in z order into dst, which represents the
// whole worldW x worldH play field.
func DrawWorld(dst *core.Screen, w *world.World, worldW, worldH float32) {
	dst.Clear()
	p := newProjection(worldW, worldH, dst.Width(), dst.Height())

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

	for _, e := range ents {
		switch {
		case e.Text != nil:
			drawText(dst, e)
		case e.Sprite == world.SpriteBackground:
			dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGround)
		case e.Sprite == world.SpritePipe:
			drawPipe(dst, p, e)
		case e.Sprite == world.SpriteFish:
			drawFish(dst, p, e)
		}
	}
}

func drawPipe(dst *core.Screen, p projection, e *world.Entity) {
	b, ok := e.VisualBox()
	if !ok {
		return
	}
	r := p.rect(b)
	dst.DrawRect(r, PipeChar, core.ColorPipe)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.Set(r.X, y, PipeEdgeChar, core.ColorPipeEdge)
	}
}

func drawFish(dst *core.Screen, p projection, e *world.Entity) {
	b, ok := e.VisualBox()
	if !ok {
		return
	}
	r := p.rect(b)
	body := core.ColorFish
	if e.Rotation > 0.2 {
		body = core.ColorFishRise
	}
	dst.DrawRect(r, FishChar, body)
	dst.Set(r.Right()-1, r.Y+r.H/2, FishHeadChar, core.ColorFishHead)
}

// drawText lays out texts by style: the HUD in the top-left corner, banners in
// the middle and hints just below them.
func drawText(dst *core.Screen, e *world.Entity) {
	mid := dst.Height() / 2
	switch e.Text.Style {
	case world.TextHUD:
		dst.DrawText(2, 0, " "+e.Text.String()+" ", core.ColorHUD)
	case world.TextBanner:
		dst.DrawTextCentered(mid-1, e.Text.String(), bannerColor(e.Tag))
	case world.TextHint:
		dst.DrawTextCentered(mid+1, e.Text.String(), core.ColorHint)
	}
}

func bannerColor(tag world.Tag) core.Color {
	switch tag {
	case world.TagGameOverText:
		return core.ColorGameOver
	case world.TagCountdownText:
		return core.ColorCountdown
	default:
		return core.ColorBanner
	}
}
