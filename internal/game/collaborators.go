// Package game implements the flapper simulation: player physics, the
// obstacle and enemy streams, scoring, collision detection and the
// start/playing/game-over state machine.
//
// The package has no dependency on any front end. Rendering, audio and
// score persistence are reached through the small interfaces below, so the
// same Machine runs in the terminal, in a window, over SSH or headless in
// tests.
package game

import "github.com/vovakirdan/flapper/internal/core"

// Audio plays sound cues. Calls are fire-and-forget; implementations must
// swallow their own failures.
type Audio interface {
	PlayFlap()
	PlayGameOver()
	PlayEnemySpawn()
	PlayLoopingMusic()
}

// ScoreStore persists the all-time high score.
// Load returns 0 when no score exists or the store is unreadable.
// Save never reports failure to the caller.
type ScoreStore interface {
	Load() int
	Save(score int)
}

// Recorder receives the final score of every finished session.
type Recorder interface {
	Record(score int)
}

// Text is a single line of text to draw. X and Y are world pixels; when
// Centered is set they name the center of the line, otherwise its top-left.
type Text struct {
	Content  string
	Size     int // nominal font size in pixels
	X, Y     int
	Centered bool
}

// Renderer accepts draw commands for one frame, in painter's order.
type Renderer interface {
	DrawBackground(scroll float64)
	DrawGround(scroll float64)
	DrawObstacle(top, bottom core.Rect)
	DrawEnemy(r core.Rect)
	DrawPlayer(r core.Rect)
	DrawText(t Text)
}

// Collaborators bundles the optional dependencies of a Machine.
// Nil fields are replaced by silent implementations.
type Collaborators struct {
	Audio    Audio
	Scores   ScoreStore
	Recorder Recorder
}

// NopAudio is an Audio that plays nothing.
type NopAudio struct{}

func (NopAudio) PlayFlap()         {}
func (NopAudio) PlayGameOver()     {}
func (NopAudio) PlayEnemySpawn()   {}
func (NopAudio) PlayLoopingMusic() {}

// MemoryScores is an in-process ScoreStore.
type MemoryScores struct {
	High  int
	Saves int
}

// Load returns the stored high score. A nil store holds 0.
func (m *MemoryScores) Load() int {
	if m == nil {
		return 0
	}
	return m.High
}

// Save stores the high score. Saving to a nil store does nothing.
func (m *MemoryScores) Save(score int) {
	if m == nil {
		return
	}
	m.High = score
	m.Saves++
}

type nopRecorder struct{}

func (nopRecorder) Record(int) {}
