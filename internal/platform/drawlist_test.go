package platform

import (
	"testing"

	"github.com/vovakirdan/flapfish/internal/world"
)

func TestBuildDrawListFlipsY(t *testing.T) {
	w := world.New()
	w.Spawn(world.Entity{
		Tag:     world.TagWall,
		Pos:     world.V(100, 400),
		Extents: world.V(60, 100),
		Sprite:  world.SpritePipe,
	})

	dl := BuildDrawList(w, 500, 700, 500)
	if len(dl.Rects) != 2 {
		t.Fatalf("rects = %d, expected pipe body and edge", len(dl.Rects))
	}
	body := dl.Rects[0]
	if body.X != 70 || body.Y != 50 || body.W != 60 || body.H != 100 {
		t.Errorf("pipe rect = %+v, expected {70 50 60 100}", body)
	}
	if body.Color != PipeColor {
		t.Errorf("pipe color = %v", body.Color)
	}
}

func TestBuildDrawListZOrder(t *testing.T) {
	w := world.New()
	w.Spawn(world.Entity{Tag: world.TagPlayer, Pos: world.V(80, 250), Size: world.V(60, 50), Sprite: world.SpriteFish, Z: 1})
	w.Spawn(world.Entity{Tag: world.TagBackground, Pos: world.V(350, 250), Size: world.V(700, 500), Sprite: world.SpriteBackground})

	dl := BuildDrawList(w, 500, 700, 500)
	if len(dl.Rects) != 3 {
		t.Fatalf("rects = %d, expected background, fish and eye", len(dl.Rects))
	}
	if dl.Rects[0].Color != SkyColor {
		t.Error("background should be drawn first")
	}
	if bg := dl.Rects[0]; bg.X != 0 || bg.Y != 0 || bg.W != 700 || bg.H != 500 {
		t.Errorf("background rect = %+v", bg)
	}
}

func TestBuildDrawListSkipsShapeless(t *testing.T) {
	w := world.New()
	w.Spawn(world.Entity{Tag: world.TagCamera, Pos: world.V(350, 250)})

	dl := BuildDrawList(w, 500, 700, 500)
	if len(dl.Rects) != 0 || len(dl.Texts) != 0 {
		t.Errorf("camera produced primitives: %+v", dl)
	}
}

func TestLayoutText(t *testing.T) {
	tests := []struct {
		name  string
		text  *world.Text
		wantX int
		wantY int
	}{
		{"hud", world.NewText(world.TextHUD, "Score: ", "4"), 10, 10},
		{"banner", world.NewText(world.TextBanner, "3"), (700 - GlyphW) / 2, 250 - 2*GlyphH},
		{"hint", world.NewText(world.TextHint, "abcd"), (700 - 4*GlyphW) / 2, 250 + GlyphH},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op := layoutText(tc.text, 700, 500)
			if op.X != tc.wantX || op.Y != tc.wantY {
				t.Errorf("layoutText() at (%d, %d), expected (%d, %d)", op.X, op.Y, tc.wantX, tc.wantY)
			}
			if op.Text != tc.text.String() {
				t.Errorf("text = %q", op.Text)
			}
		})
	}
}
