package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/flapfish/internal/config"
	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/world"
)

const frame60 = time.Second / 60

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{WithSeed(12345)}, opts...)
	return New(config.Default(), opts...)
}

func TestNewStartsInMainMenu(t *testing.T) {
	a := newTestApp(t)

	if a.State() != MainMenu {
		t.Fatalf("State() = %v, expected MainMenu", a.State())
	}
	if got := a.World().Count(world.TagMenuText); got != 2 {
		t.Errorf("menu texts = %d, expected 2", got)
	}
	if a.Score() != 0 {
		t.Errorf("Score() = %d outside a session", a.Score())
	}
}

func TestMenuStartsCountdown(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   AppState
	}{
		{"jump", core.ActionJump, CountDown},
		{"confirm", core.ActionConfirm, CountDown},
		{"back does nothing", core.ActionBack, MainMenu},
		{"no input", core.ActionNone, MainMenu},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestApp(t)
			a.Frame(NewFrame(frame60, tc.action))
			if a.State() != tc.want {
				t.Errorf("State() = %v, expected %v", a.State(), tc.want)
			}
		})
	}
}

func TestMenuExitRemovesTexts(t *testing.T) {
	a := newTestApp(t)
	a.Frame(NewFrame(frame60, core.ActionJump))

	if got := a.World().Count(world.TagMenuText); got != 0 {
		t.Errorf("menu texts after exit = %d, expected 0", got)
	}
	if got := a.World().Count(world.TagCountdownText); got != 1 {
		t.Errorf("countdown texts = %d, expected 1", got)
	}
}

func TestRequestFirstWins(t *testing.T) {
	a := newTestApp(t)
	a.Request(CountDown)
	a.Request(Game)
	a.Frame(NewFrame(frame60))

	if a.State() != CountDown {
		t.Errorf("State() = %v, expected first request (CountDown) to win", a.State())
	}
}

func TestRequestCurrentStateIsNoop(t *testing.T) {
	var transitions []Transition
	a := newTestApp(t, WithTransitionHook(func(tr Transition) {
		transitions = append(transitions, tr)
	}))

	a.Request(MainMenu)
	a.Frame(NewFrame(frame60))
	a.Set(MainMenu)

	if len(transitions) != 0 {
		t.Errorf("expected no transitions, got %v", transitions)
	}
}

func TestTransitionHookSeesEveryChange(t *testing.T) {
	var transitions []Transition
	a := newTestApp(t, WithTransitionHook(func(tr Transition) {
		transitions = append(transitions, tr)
	}))

	a.Set(CountDown)
	a.Set(Game)

	want := []Transition{
		{From: MainMenu, To: CountDown},
		{From: CountDown, To: Game},
	}
	if len(transitions) != len(want) {
		t.Fatalf("got %d transitions, expected %d", len(transitions), len(want))
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %+v, expected %+v", i, transitions[i], want[i])
		}
	}
}

func TestSetGameOutsideGameOverCleansSession(t *testing.T) {
	a := newTestApp(t)
	a.Set(Game)
	if a.World().Count(world.TagPlayer) != 1 {
		t.Fatal("entering Game should spawn a player")
	}

	a.Set(MainMenu)
	for _, tag := range []world.Tag{world.TagPlayer, world.TagBackground, world.TagScoreText, world.TagCamera, world.TagWall} {
		if n := a.World().Count(tag); n != 0 {
			t.Errorf("%v entities after leaving Game = %d, expected 0", tag, n)
		}
	}
}

func TestGameSetupEntities(t *testing.T) {
	a := newTestApp(t)
	a.Set(Game)
	w := a.World()

	ph, ok := a.PlayerHandle()
	if !ok {
		t.Fatal("expected a player")
	}
	p, _ := w.Get(ph)
	if p.Pos.X != 80 || p.Pos.Y != 250 {
		t.Errorf("player spawned at %+v, expected (80, 250)", *p.Pos)
	}
	if p.Extents.X != 45 || p.Extents.Y != 35 {
		t.Errorf("player extents = %+v, expected 45x35", *p.Extents)
	}
	if p.Vel.X != 0 || p.Vel.Y != 0 {
		t.Errorf("player velocity = %+v, expected zero", *p.Vel)
	}

	for _, tag := range []world.Tag{world.TagCamera, world.TagBackground, world.TagScoreText} {
		if n := w.Count(tag); n != 1 {
			t.Errorf("%v entities = %d, expected 1", tag, n)
		}
	}
}

func TestGameSetupWithoutViewportSkipsCamera(t *testing.T) {
	a := newTestApp(t, WithViewport(nil))
	a.Set(Game)

	if n := a.World().Count(world.TagCamera); n != 0 {
		t.Errorf("camera entities = %d, expected 0 without a viewport", n)
	}
	if n := a.World().Count(world.TagPlayer); n != 1 {
		t.Errorf("player entities = %d, expected 1", n)
	}
}

func TestScoreDisplayMirrorsScore(t *testing.T) {
	a := newTestApp(t)
	a.Set(Game)
	s := a.session()
	s.score = 7

	a.Frame(NewFrame(frame60))

	h := a.World().Tagged(world.TagScoreText)
	if len(h) != 1 {
		t.Fatalf("score texts = %d, expected 1", len(h))
	}
	e, _ := a.World().Get(h[0])
	if got := e.Text.String(); got != "Score: 7" {
		t.Errorf("score text = %q, expected %q", got, "Score: 7")
	}
	if a.Score() != 7 {
		t.Errorf("Score() = %d, expected 7", a.Score())
	}
}

func TestAppStateString(t *testing.T) {
	names := map[AppState]string{
		MainMenu:     "MainMenu",
		CountDown:    "CountDown",
		Game:         "Game",
		GameOver:     "GameOver",
		AppState(42): "Unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("AppState(%d).String() = %q, expected %q", int(s), s.String(), want)
		}
	}
}

func TestFramesCounter(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 5; i++ {
		a.Frame(NewFrame(frame60))
	}
	if a.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5", a.Frames())
	}
}

func TestFixedViewport(t *testing.T) {
	if _, _, ok := (FixedViewport{}).Size(); ok {
		t.Error("zero viewport should report no surface")
	}
	w, h, ok := FixedViewport{W: 700, H: 500}.Size()
	if !ok || w != 700 || h != 500 {
		t.Errorf("Size() = %v, %v, %v", w, h, ok)
	}
}
