// Package gui hosts flapfish in a native window using Ebitengine.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flapfish/internal/config"
	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/game"
	"github.com/vovakirdan/flapfish/internal/platform"
	"github.com/vovakirdan/flapfish/internal/storage"
)

const windowTitle = "flapfish"

// Options configures the window host.
type Options struct {
	Config config.FlapfishConfig
	TPS    int
	Seed   int64
	Player string
	Store  *storage.Store
	Logger *log.Logger
}

// Window adapts a game.App to ebiten.Game.
type Window struct {
	app    *game.App
	width  int
	height int
	tps    int
}

// NewWindow creates the window host with a fresh App in MainMenu.
func NewWindow(opts Options) *Window {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = platform.PlayerName()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	win := opts.Config.Window
	return &Window{
		app: game.New(opts.Config,
			game.WithSeed(opts.Seed),
			game.WithLogger(logger),
			game.WithViewport(game.FixedViewport{W: win.Width, H: win.Height}),
			game.WithTransitionHook(platform.RecordScores(platform.Saver(opts.Store), opts.Player, platform.HostWindow, logger)),
		),
		width:  int(win.Width),
		height: int(win.Height),
		tps:    opts.TPS,
	}
}

// Update implements ebiten.Game. Each update is one fixed-length frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := pollInput()
	if in.JustPressed(core.ActionBack) {
		switch w.app.State() {
		case game.CountDown, game.Game:
			w.app.Set(game.MainMenu)
			return nil
		}
	}

	w.app.Frame(game.Frame{
		Delta: time.Second / time.Duration(w.tps),
		Input: in,
	})
	return nil
}

// pollInput samples this frame's press edges.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionBack)
	}
	return in
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(platform.SkyColor)

	dl := platform.BuildDrawList(w.app.World(), float32(w.height), w.width, w.height)
	for _, r := range dl.Rects {
		vector.FillRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, t := range dl.Texts {
		// Shadow
		ebitenutil.DebugPrintAt(screen, t.Text, t.X+1, t.Y+1)
		ebitenutil.DebugPrintAt(screen, t.Text, t.X, t.Y)
	}
}

// Layout implements ebiten.Game. The play field has a fixed logical size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := NewWindow(opts)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(w.tps)

	return ebiten.RunGame(w)
}
