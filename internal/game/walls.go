package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flapfish/internal/config"
	"github.com/vovakirdan/flapfish/internal/world"
)

// errGapUnplaceable means no vertical placement satisfies both margins.
var errGapUnplaceable = errors.New("game: gap does not fit between margins")

// GapPlan is one spawn's gap: its height, and the heights of the top wall
// (from the ceiling) and bottom wall (from the floor) around it.
type GapPlan struct {
	Gap    float32
	Top    float32
	Bottom float32
}

// GapRange returns the bounds gap sizes are drawn from at the given score:
// [max(floor, base - score), max(floor, H - base - score)]. The lower bound is
// clamped so it never exceeds the upper.
func GapRange(wc config.WallsConfig, windowH float32, score int) (lo, hi float32) {
	s := float32(score)
	lo = max(wc.GapFloor, wc.GapBase-s)
	hi = max(wc.GapFloor, windowH-wc.GapBase-s)
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// planGap draws a gap size and its vertical placement.
func (a *App) planGap(windowH float32, score int) (GapPlan, error) {
	wc := a.cfg.Walls
	lo, hi := GapRange(wc, windowH, score)
	gap := a.uniform(lo, hi)

	topHi := windowH - wc.GapMargin - gap
	if topHi < wc.GapMargin {
		return GapPlan{}, fmt.Errorf("%w: gap %.1f in window height %.1f", errGapUnplaceable, gap, windowH)
	}
	top := a.uniform(wc.GapMargin, topHi)
	return GapPlan{
		Gap:    gap,
		Top:    top,
		Bottom: windowH - gap - top,
	}, nil
}

// spawnWallPair creates the top and bottom walls for plan at the right edge.
// Both walls are as tall as the window; the gap is the space between them.
func (a *App) spawnWallPair(windowW, windowH float32, plan GapPlan) (top, bottom world.Handle) {
	wc := a.cfg.Walls
	left := windowW - wc.SpawnOffset
	top = a.spawnWall(left, windowH-plan.Top, wc.Width, windowH)
	bottom = a.spawnWall(left, plan.Bottom-windowH, wc.Width, windowH)
	return top, bottom
}

// spawnWall creates a wall whose lower-left corner is (x, y).
func (a *App) spawnWall(x, y, w, h float32) world.Handle {
	return a.world.Spawn(world.Entity{
		Tag:     world.TagWall,
		Pos:     world.V(x+w/2, y+h/2),
		Extents: world.V(w, h),
		Sprite:  world.SpritePipe,
		Z:       1,
	})
}

// updateWalls ticks the spawn timer, scrolls and despawns walls, scores at most
// one point per frame, and spawns a new pair when the timer wraps.
func (s *gameSession) updateWalls(a *App, f Frame) {
	s.wallTimer.Tick(f.Delta)

	if scrollWalls(a.world, a.cfg.Walls, f.DT()) > 0 {
		s.score++
	}

	if !s.wallTimer.JustFinished() {
		return
	}
	w, h, ok := a.viewportSize()
	if !ok {
		a.logger.Debug("skipping wall spawn", "error", ErrNoViewport)
		return
	}
	plan, err := a.planGap(h, s.score)
	if err != nil {
		a.logger.Warn("skipping wall spawn", "score", s.score, "error", err)
		return
	}
	a.spawnWallPair(w, h, plan)
}

// scrollWalls moves every wall left and despawns those past the left edge.
// It returns how many walls were removed.
func scrollWalls(w *world.World, wc config.WallsConfig, dt float32) int {
	var gone []world.Handle
	w.Each(func(h world.Handle, e *world.Entity) {
		if e.Tag != world.TagWall || e.Pos == nil {
			return
		}
		e.Pos.X -= wc.Speed * dt
		if e.Pos.X < wc.DespawnX {
			gone = append(gone, h)
		}
	})
	for _, h := range gone {
		w.Despawn(h)
	}
	return len(gone)
}
