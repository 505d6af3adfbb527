package game

import (
	"github.com/vovakirdan/flapfish/internal/world"
)

// detectCollision tests every player against every wall and requests GameOver
// on the first overlap. It reports whether a collision was found.
func detectCollision(a *App) bool {
	players := a.world.Tagged(world.TagPlayer)
	if len(players) == 0 {
		return false
	}
	walls := a.world.Tagged(world.TagWall)

	for _, ph := range players {
		p, ok := a.world.Get(ph)
		if !ok {
			continue
		}
		pbox, ok := p.Box()
		if !ok {
			continue
		}
		for _, wh := range walls {
			w, ok := a.world.Get(wh)
			if !ok {
				continue
			}
			wbox, ok := w.Box()
			if !ok {
				continue
			}
			if pbox.Overlaps(wbox) {
				a.Request(GameOver)
				return true
			}
		}
	}
	return false
}
