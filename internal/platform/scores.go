// Package platform holds pieces shared by the terminal and window hosts.
package platform

import (
	"os"
	"os/user"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapfish/internal/game"
	"github.com/vovakirdan/flapfish/internal/storage"
)

// Host names recorded with each score.
const (
	HostTUI    = "tui"
	HostWindow = "window"
	HostSSH    = "ssh"
)

// ScoreSaver is the subset of storage.Store the hosts need.
type ScoreSaver interface {
	SaveScore(player, host string, score int) (int64, error)
}

var _ ScoreSaver = (*storage.Store)(nil)

// Saver converts a possibly nil store into a ScoreSaver that is nil too.
func Saver(store *storage.Store) ScoreSaver {
	if store == nil {
		return nil
	}
	return store
}

// RecordScores returns a transition hook that saves the session score when
// a run ends. Zero scores are not recorded. A nil saver disables recording.
// Saving is best-effort: failures are logged and the game continues.
func RecordScores(saver ScoreSaver, player, host string, logger *log.Logger) func(game.Transition) {
	return func(t game.Transition) {
		if t.To != game.GameOver || t.Score <= 0 || saver == nil {
			return
		}
		if _, err := saver.SaveScore(player, host, t.Score); err != nil && logger != nil {
			logger.Warn("could not save score", "player", player, "score", t.Score, "error", err)
		}
	}
}

// PlayerName returns the local user's name for the scoreboard.
func PlayerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}
