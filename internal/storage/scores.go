package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// Scores adapts a Store to the game's score collaborators. It implements
// game.ScoreStore and game.Recorder for one player. Failures are logged
// and never reach the game loop.
type Scores struct {
	store  *Store
	player string
	logger *log.Logger
}

// NewScores binds a Store to a player name. A nil logger discards output.
func NewScores(store *Store, player string, logger *log.Logger) *Scores {
	if player == "" {
		player = LocalPlayer
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scores{store: store, player: player, logger: logger}
}

// Load returns the stored high score, or 0 when it cannot be read.
func (s *Scores) Load() int {
	score, err := s.store.HighScore()
	if err != nil {
		s.logger.Warn("cannot load high score", "err", err)
		return 0
	}
	return score
}

// Save raises the stored high score.
func (s *Scores) Save(score int) {
	stored, err := s.store.SetHighScore(score)
	if err != nil {
		s.logger.Warn("cannot save high score", "score", score, "err", err)
		return
	}
	s.logger.Debug("high score saved", "score", score, "stored", stored)
}

// Record appends a finished game to the history.
func (s *Scores) Record(score int) {
	if _, err := s.store.SaveScore(s.player, score); err != nil {
		s.logger.Warn("cannot record score", "player", s.player, "score", score, "err", err)
	}
}

// Player returns the name scores are recorded under.
func (s *Scores) Player() string { return s.player }
