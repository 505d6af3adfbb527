// Package game implements the flapfish core: a four-state application
// machine and the per-frame gameplay systems that run inside it.
//
// The core is host-independent. A host calls App.Frame once per frame with the
// elapsed time and an edge-triggered input snapshot, reads the entity world to
// draw it, and may observe state transitions. Nothing in this package blocks,
// spawns goroutines or reads the wall clock.
package game

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapfish/internal/config"
	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

// AppState is the single active application state.
type AppState int

const (
	MainMenu AppState = iota
	CountDown
	Game
	GameOver
)

func (s AppState) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case CountDown:
		return "CountDown"
	case Game:
		return "Game"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ErrNoViewport is logged when setup or spawning needs window metrics and the
// host has no display surface.
var ErrNoViewport = errors.New("game: no viewport")

// Frame is the input to one frame of simulation.
type Frame struct {
	Delta time.Duration
	Input core.InputFrame
}

// DT returns the frame delta in seconds.
func (f Frame) DT() float32 {
	return float32(f.Delta.Seconds())
}

// NewFrame builds a frame from a delta and the actions pressed this frame.
func NewFrame(delta time.Duration, actions ...core.Action) Frame {
	return Frame{Delta: delta, Input: core.InputOf(actions...)}
}

// Viewport exposes the host's play-field metrics.
type Viewport interface {
	// Size returns the play-field width and height, or ok=false when the host
	// has no primary display surface.
	Size() (w, h float32, ok bool)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	W, H float32
}

// Size implements Viewport.
func (v FixedViewport) Size() (float32, float32, bool) {
	return v.W, v.H, v.W > 0 && v.H > 0
}

// Transition describes a completed state change.
type Transition struct {
	From  AppState
	To    AppState
	Score int // session score at the time of the change, 0 outside a session
}

// scene is the state-scoped data record of one AppState activation.
// It is constructed on enter and dropped after exit.
type scene interface {
	enter(a *App)
	update(a *App, f Frame)
	exit(a *App, next AppState)
}

// App is the state-machine driver. It owns the entity world and exactly one
// active scene matching the current AppState.
type App struct {
	cfg      config.FlapfishConfig
	world    *world.World
	viewport Viewport
	rng      *rand.Rand
	logger   *log.Logger

	state      AppState
	scene      scene
	pending    AppState
	hasPending bool
	frames     uint64
	hooks      []func(Transition)
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithViewport overrides the play-field metrics source.
// Passing nil simulates a host without a display surface.
func WithViewport(v Viewport) Option {
	return func(a *App) {
		a.viewport = v
	}
}

// WithSeed seeds the wall placement RNG.
func WithSeed(seed int64) Option {
	return func(a *App) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTransitionHook registers fn to run after every state change.
func WithTransitionHook(fn func(Transition)) Option {
	return func(a *App) {
		a.hooks = append(a.hooks, fn)
	}
}

// New creates an App in MainMenu with the menu scene entered.
func New(cfg config.FlapfishConfig, opts ...Option) *App {
	a := &App{
		cfg:      cfg,
		world:    world.New(),
		viewport: FixedViewport{W: cfg.Window.Width, H: cfg.Window.Height},
		rng:      rand.New(rand.NewSource(0)),
		logger:   log.New(io.Discard),
		state:    MainMenu,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.scene = a.build(MainMenu, nil)
	a.scene.enter(a)
	return a
}

// State returns the current application state.
func (a *App) State() AppState {
	return a.state
}

// World returns the entity world for hosts to draw.
func (a *App) World() *world.World {
	return a.world
}

// Config returns the tuning configuration.
func (a *App) Config() config.FlapfishConfig {
	return a.cfg
}

// Frames returns how many frames have run.
func (a *App) Frames() uint64 {
	return a.frames
}

// Score returns the score of the current or just-finished session.
func (a *App) Score() int {
	if s := a.session(); s != nil {
		return s.score
	}
	return 0
}

// Frame runs the current state's systems once, then applies the transition
// requested during the frame, if any.
func (a *App) Frame(f Frame) {
	a.frames++
	a.scene.update(a, f)

	if a.hasPending {
		next := a.pending
		a.hasPending = false
		a.transition(next)
	}
}

// Request queues a transition to next, applied at the end of the current
// frame. The first request in a frame wins. Requesting the current state is a
// no-op.
func (a *App) Request(next AppState) {
	if a.hasPending {
		if next != a.pending {
			a.logger.Debug("transition already queued", "queued", a.pending, "ignored", next)
		}
		return
	}
	if next == a.state {
		return
	}
	a.pending = next
	a.hasPending = true
}

// Set overwrites the current state immediately, running exit and enter hooks.
// Hosts use it outside of Frame; systems use Request.
func (a *App) Set(next AppState) {
	a.hasPending = false
	if next == a.state {
		return
	}
	a.transition(next)
}

// transition exits the current scene completely before entering the next.
func (a *App) transition(next AppState) {
	from := a.state
	score := a.Score()

	old := a.scene
	old.exit(a, next)

	a.state = next
	a.scene = a.build(next, old)
	a.scene.enter(a)

	a.logger.Debug("state transition", "from", from, "to", next, "score", score)

	t := Transition{From: from, To: next, Score: score}
	for _, fn := range a.hooks {
		fn(t)
	}
}

// build constructs the scene for s. GameOver inherits the finished session so
// its entities stay owned until cleanup.
func (a *App) build(s AppState, prev scene) scene {
	switch s {
	case CountDown:
		return &countdown{}
	case Game:
		return &gameSession{}
	case GameOver:
		sess, _ := prev.(*gameSession)
		return &gameOver{session: sess}
	default:
		return &mainMenu{}
	}
}

// session returns the live or just-finished game session, if any.
func (a *App) session() *gameSession {
	switch s := a.scene.(type) {
	case *gameSession:
		return s
	case *gameOver:
		return s.session
	}
	return nil
}

// viewportSize reads the play-field metrics, tolerating a nil viewport.
func (a *App) viewportSize() (float32, float32, bool) {
	if a.viewport == nil {
		return 0, 0, false
	}
	return a.viewport.Size()
}

// uniform samples a float32 in [lo, hi).
func (a *App) uniform(lo, hi float32) float32 {
	return lo + a.rng.Float32()*(hi-lo)
}
