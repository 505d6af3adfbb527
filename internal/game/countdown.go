package game

import (
	"strconv"
	"time"

	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

// countdown is the CountDown scene: a one-shot timer and its numeric display.
type countdown struct {
	timer   core.Timer
	display world.Handle
	total   int // whole seconds shown on the first frame
}

func (c *countdown) enter(a *App) {
	c.timer = core.NewTimer(a.cfg.Timers.CountdownDuration(), core.TimerOnce)
	c.total = int(a.cfg.Timers.Countdown)
	c.display = a.world.Spawn(world.Entity{
		Tag:  world.TagCountdownText,
		Text: world.NewText(world.TextBanner, strconv.Itoa(c.total)),
		Z:    10,
	})
}

// update counts "3", "2", "1" and requests Game on the frame the timer
// completes. That frame leaves the display untouched, so "0" is never shown.
func (c *countdown) update(a *App, f Frame) {
	if c.timer.Tick(f.Delta).JustFinished() {
		a.Request(Game)
		return
	}

	e, ok := a.world.Get(c.display)
	if !ok || e.Text == nil {
		return
	}
	e.Text.SetSection(0, strconv.Itoa(c.total-int(c.timer.Elapsed()/time.Second)))
}

func (c *countdown) exit(a *App, _ AppState) {
	a.world.Despawn(c.display)
}

// CountdownText returns the text currently shown by the countdown, or "" when
// not counting down.
func (a *App) CountdownText() string {
	c, ok := a.scene.(*countdown)
	if !ok {
		return ""
	}
	if e, ok := a.world.Get(c.display); ok {
		return e.Text.String()
	}
	return ""
}
