package game

import (
	"testing"

	"github.com/vovakirdan/flapfish/internal/world"
)

// placeWallOnPlayer spawns a wall centered on the player.
func placeWallOnPlayer(t *testing.T, a *App) world.Handle {
	t.Helper()
	ph, ok := a.PlayerHandle()
	if !ok {
		t.Fatal("no player")
	}
	p, _ := a.World().Get(ph)
	return a.World().Spawn(world.Entity{
		Tag:     world.TagWall,
		Pos:     world.V(p.Pos.X, p.Pos.Y),
		Extents: world.V(60, 500),
	})
}

func TestCollisionEndsGameSameFrame(t *testing.T) {
	a := newTestApp(t)
	a.Set(Game)
	placeWallOnPlayer(t, a)

	a.Frame(NewFrame(frame60))
	if a.State() != GameOver {
		t.Errorf("State() = %v, expected GameOver", a.State())
	}
}

func TestDetectCollision(t *testing.T) {
	tests := []struct {
		name  string
		wallX float32
		want  bool
	}{
		{"overlapping", 80, true},
		{"just overlapping", 80 + 22.5 + 29.9, true},
		{"touching edges", 80 + 22.5 + 30, false},
		{"far away", 400, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestApp(t)
			a.Set(Game)
			a.World().Spawn(world.Entity{
				Tag:     world.TagWall,
				Pos:     world.V(tc.wallX, 250),
				Extents: world.V(60, 500),
			})

			if got := detectCollision(a); got != tc.want {
				t.Errorf("detectCollision() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDetectCollisionWithoutPlayer(t *testing.T) {
	a := newTestApp(t)
	a.Set(Game)
	placeWallOnPlayer(t, a)
	removePlayer(t, a)

	if detectCollision(a) {
		t.Error("collision reported without a player")
	}
	a.Frame(NewFrame(frame60))
	if a.State() != Game {
		t.Errorf("State() = %v, expected Game", a.State())
	}
}

func TestGapIsPassable(t *testing.T) {
	a := newTestApp(t)
	a.Set(Game)
	a.spawnWallPair(700, 500, GapPlan{Gap: 200, Top: 150, Bottom: 150})

	// Drag the pair onto the player, whose hitbox sits inside the opening.
	for _, h := range a.World().Tagged(world.TagWall) {
		e, _ := a.World().Get(h)
		e.Pos.X = 80
	}
	if detectCollision(a) {
		t.Error("player inside the gap should not collide")
	}
}
