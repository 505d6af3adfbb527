package game

import (
	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

// Game-over text.
const (
	GameOverTitle = "Game Over"
	GameOverHint  = "Press Space or click to return to the menu"
)

// gameOver is the GameOver scene. It owns the finished session's entities,
// its own texts and a one-shot input lockout.
type gameOver struct {
	session *gameSession
	texts   []world.Handle
	lockout core.Timer
}

func (g *gameOver) enter(a *App) {
	g.lockout = core.NewTimer(a.cfg.Timers.LockoutDuration(), core.TimerOnce)
	g.texts = []world.Handle{
		a.world.Spawn(world.Entity{
			Tag:  world.TagGameOverText,
			Text: world.NewText(world.TextBanner, GameOverTitle),
			Z:    10,
		}),
		a.world.Spawn(world.Entity{
			Tag:  world.TagGameOverText,
			Text: world.NewText(world.TextHint, GameOverHint),
			Z:    10,
		}),
	}
	score := 0
	if g.session != nil {
		score = g.session.score
	}
	a.logger.Info("game over", "score", score)
}

// update ignores input until the lockout has elapsed, so a flap that was in
// flight when the player crashed does not skip the game-over screen.
func (g *gameOver) update(a *App, f Frame) {
	g.lockout.Tick(f.Delta)
	if g.lockout.Finished() && f.Input.JustPressed(core.ActionJump) {
		a.Request(MainMenu)
	}
}

func (g *gameOver) exit(a *App, _ AppState) {
	cleanup(a, g.session, g.texts)
	g.texts = nil
}

// cleanup destroys every gameplay entity: all walls, all players, and the
// session's camera, background and score display, plus extra handles.
// Missing entities are skipped.
func cleanup(a *App, s *gameSession, extra []world.Handle) {
	for _, h := range a.world.Tagged(world.TagWall) {
		a.world.Despawn(h)
	}
	for _, h := range a.world.Tagged(world.TagPlayer) {
		a.world.Despawn(h)
	}
	if s != nil {
		a.world.Despawn(s.scoreText)
		a.world.Despawn(s.background)
		a.world.Despawn(s.camera)
		a.world.Despawn(s.player)
	}
	for _, h := range extra {
		a.world.Despawn(h)
	}
}
