package platform

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flapfish/internal/game"
)

type saved struct {
	player, host string
	score        int
}

type fakeSaver struct {
	runs []saved
	err  error
}

func (f *fakeSaver) SaveScore(player, host string, score int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, saved{player, host, score})
	return int64(len(f.runs)), nil
}

func TestRecordScores(t *testing.T) {
	tests := []struct {
		name string
		tr   game.Transition
		want int
	}{
		{"game over with score", game.Transition{From: game.Game, To: game.GameOver, Score: 3}, 1},
		{"game over with zero", game.Transition{From: game.Game, To: game.GameOver, Score: 0}, 0},
		{"other transition", game.Transition{From: game.GameOver, To: game.MainMenu, Score: 3}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeSaver{}
			RecordScores(f, "alice", HostTUI, nil)(tc.tr)
			if len(f.runs) != tc.want {
				t.Fatalf("saved %d runs, expected %d", len(f.runs), tc.want)
			}
			if tc.want == 1 && f.runs[0] != (saved{"alice", HostTUI, 3}) {
				t.Errorf("saved %+v", f.runs[0])
			}
		})
	}
}

func TestRecordScoresToleratesErrors(t *testing.T) {
	f := &fakeSaver{err: errors.New("disk full")}
	RecordScores(f, "bob", HostSSH, nil)(game.Transition{To: game.GameOver, Score: 1})
}

func TestRecordScoresNilSaver(t *testing.T) {
	RecordScores(nil, "bob", HostSSH, nil)(game.Transition{To: game.GameOver, Score: 1})
}

func TestPlayerNameFromEnv(t *testing.T) {
	t.Setenv("USER", "carol")
	if got := PlayerName(); got != "carol" {
		t.Errorf("PlayerName() = %q, expected carol", got)
	}
}
