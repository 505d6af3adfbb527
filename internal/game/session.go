package game

import (
	"strconv"

	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

// ScoreLabel is the fixed first section of the score display.
const ScoreLabel = "Score: "

// gameSession is the Game scene. It owns the score, the wall spawn timer and
// the entities created on entering Game. When the session ends in GameOver,
// ownership of its entities passes to the gameOver scene.
type gameSession struct {
	score      int
	wallTimer  core.Timer
	camera     world.Handle
	background world.Handle
	player     world.Handle
	scoreText  world.Handle
}

func (s *gameSession) enter(a *App) {
	cfg := a.cfg
	s.score = 0
	s.wallTimer = core.NewTimer(cfg.Walls.SpawnPeriod(), core.TimerRepeating)

	if w, h, ok := a.viewportSize(); ok {
		s.camera = a.world.Spawn(world.Entity{
			Tag: world.TagCamera,
			Pos: world.V(w/2, h/2),
			Z:   999.9,
		})
	} else {
		a.logger.Debug("skipping camera setup", "error", ErrNoViewport)
	}

	s.background = a.world.Spawn(world.Entity{
		Tag:    world.TagBackground,
		Pos:    world.V(cfg.Window.Width/2, cfg.Window.Height/2),
		Size:   world.V(cfg.Window.Width, cfg.Window.Height),
		Sprite: world.SpriteBackground,
		Z:      0,
	})

	s.player = a.world.Spawn(world.Entity{
		Tag:     world.TagPlayer,
		Pos:     world.V(cfg.Player.X, cfg.Player.Y),
		Vel:     world.V(0, 0),
		Extents: world.V(cfg.Player.HitboxWidth, cfg.Player.HitboxHeight),
		Size:    world.V(cfg.Player.SpriteWidth, cfg.Player.SpriteHeight),
		Sprite:  world.SpriteFish,
		Z:       1,
	})

	s.scoreText = a.world.Spawn(world.Entity{
		Tag:  world.TagScoreText,
		Text: world.NewText(world.TextHUD, ScoreLabel, ""),
		Z:    10,
	})
}

// update runs the Game systems in their fixed order:
// gravity, movement, flap, walls, collision, score display.
func (s *gameSession) update(a *App, f Frame) {
	dt := f.DT()
	applyGravity(a.world, a.cfg.Physics.Gravity, dt)
	applyMovement(a.world, a.cfg.Physics, dt)
	applyFlap(a.world, f.Input, a.cfg.Physics.FlapImpulse)
	s.updateWalls(a, f)
	detectCollision(a)
	s.updateScoreText(a)
}

// exit keeps the session's entities alive when heading to GameOver, which
// cleans them up on its own exit. Any other destination cleans up now.
func (s *gameSession) exit(a *App, next AppState) {
	if next != GameOver {
		cleanup(a, s, nil)
	}
}

// updateScoreText mirrors the score into the display's second section.
func (s *gameSession) updateScoreText(a *App) {
	e, ok := a.world.Get(s.scoreText)
	if !ok || e.Text == nil {
		return
	}
	e.Text.SetSection(1, strconv.Itoa(s.score))
}

// PlayerHandle returns the current session's player, if any.
func (a *App) PlayerHandle() (world.Handle, bool) {
	s := a.session()
	if s == nil || !a.world.Alive(s.player) {
		return world.Handle{}, false
	}
	return s.player, true
}
