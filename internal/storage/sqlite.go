// Package storage keeps flapper's high score and game history in SQLite,
// through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// LocalPlayer is the name recorded for games played on this machine.
const LocalPlayer = "local"

// DefaultLimit is used when a listing is asked for a non-positive limit.
const DefaultLimit = 10

// migrations are applied in order; PRAGMA user_version counts how many
// already ran. Append only.
var migrations = []string{
	`CREATE TABLE high_score (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		score      INTEGER NOT NULL CHECK (score >= 0),
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		player     TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX scores_by_player ON scores(player, id DESC);
	CREATE INDEX scores_by_score  ON scores(score DESC, id)`,
}

const (
	qHighScore = `SELECT score FROM high_score WHERE id = 1`

	// A lower score never replaces a higher one, whatever order
	// concurrent sessions finish in.
	qRaiseHighScore = `INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			score      = MAX(high_score.score, excluded.score),
			updated_at = excluded.updated_at`

	qInsertScore = `INSERT INTO scores (player, score, created_at) VALUES (?, ?, ?)`

	entryColumns = `SELECT id, player, score, created_at FROM scores`
	qTop         = entryColumns + ` ORDER BY score DESC, id ASC LIMIT ?`
	qByPlayer    = entryColumns + ` WHERE player = ? ORDER BY id DESC LIMIT ?`
	qAll         = entryColumns + ` ORDER BY score DESC, id ASC`

	qStats = `SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		COALESCE(SUM(score), 0), COALESCE(MAX(created_at), 0) FROM scores`
)

// Store is a score database. It is safe for concurrent use; the SSH
// server shares one Store between all sessions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	CreatedAt time.Time
}

// Stats summarizes the history.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time // zero when no game was recorded
}

// Open opens the database at path, creating it and its directory when
// missing, and brings the schema up to date. A leading ~ is the home
// directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	// One connection serializes writers instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: %s: %w", path, err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("cannot read schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		err := s.inTx(func(tx *sql.Tx) error {
			if _, err := tx.Exec(migrations[i]); err != nil {
				return err
			}
			// PRAGMA does not take bind parameters.
			_, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1))
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Store) inTx(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HighScore returns the stored high score, 0 when there is none.
func (s *Store) HighScore() (int, error) {
	var score int
	err := s.db.QueryRow(qHighScore).Scan(&score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}
	return score, nil
}

// SetHighScore raises the high score to score and returns the value stored
// afterwards, which is higher than score when another game beat it.
func (s *Store) SetHighScore(score int) (int, error) {
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score %d", score)
	}
	if _, err := s.db.Exec(qRaiseHighScore, score, s.now().UnixMilli()); err != nil {
		return 0, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return s.HighScore()
}

// SaveScore appends a finished game to the history and returns its ID.
func (s *Store) SaveScore(player string, score int) (int64, error) {
	res, err := s.db.Exec(qInsertScore, player, score, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read new score id: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit games of all players, best first.
// Equal scores keep the order they were played in.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	return s.entries(qTop, orDefault(limit))
}

// PlayerScores returns the newest limit games of player.
func (s *Store) PlayerScores(player string, limit int) ([]ScoreEntry, error) {
	return s.entries(qByPlayer, player, orDefault(limit))
}

// AllScores returns the whole history, best first.
func (s *Store) AllScores() ([]ScoreEntry, error) {
	return s.entries(qAll)
}

func orDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func (s *Store) entries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &ms); err != nil {
			return nil, fmt.Errorf("storage: cannot read score row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(ms)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot list scores: %w", err)
	}
	return out, nil
}

// ClearScores forgets the history and the high score.
func (s *Store) ClearScores() error {
	err := s.inTx(func(tx *sql.Tx) error {
		for _, table := range []string{"scores", "high_score"} {
			if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats summarizes the history. HighScore is the stored high score when
// that is ahead of the history.
func (s *Store) Stats() (*Stats, error) {
	var (
		st   Stats
		last int64
	)
	err := s.db.QueryRow(qStats).Scan(&st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot compute stats: %w", err)
	}
	if last > 0 {
		st.LastPlayed = time.UnixMilli(last)
	}

	high, err := s.HighScore()
	if err != nil {
		return nil, err
	}
	st.HighScore = max(st.HighScore, high)
	return &st, nil
}
