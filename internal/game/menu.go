package game

import (
	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

// Menu text shown while in MainMenu.
const (
	MenuTitle = "FLAP FISH"
	MenuHint  = "Press Space, Enter or click to play"
)

// mainMenu is the MainMenu scene: a title and a prompt.
type mainMenu struct {
	texts []world.Handle
}

func (m *mainMenu) enter(a *App) {
	m.texts = []world.Handle{
		a.world.Spawn(world.Entity{
			Tag:  world.TagMenuText,
			Text: world.NewText(world.TextBanner, MenuTitle),
			Z:    10,
		}),
		a.world.Spawn(world.Entity{
			Tag:  world.TagMenuText,
			Text: world.NewText(world.TextHint, MenuHint),
			Z:    10,
		}),
	}
}

func (m *mainMenu) update(a *App, f Frame) {
	if f.Input.JustPressed(core.ActionJump) || f.Input.JustPressed(core.ActionConfirm) {
		a.Request(CountDown)
	}
}

func (m *mainMenu) exit(a *App, _ AppState) {
	for _, h := range m.texts {
		a.world.Despawn(h)
	}
	m.texts = nil
}
