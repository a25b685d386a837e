package game

import (
	"math/rand"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// State is a top-level screen of the game.
type State int

const (
	StateStart          State = iota // title screen, waiting for input
	StatePlaying                     // simulation running
	StateGameOverInline              // crashed, field frozen under an overlay
	StateGameOverScreen              // summary screen, waiting for restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOverInline:
		return "game-over"
	case StateGameOverScreen:
		return "summary"
	default:
		return "unknown"
	}
}

// StepResult is returned by Machine.Step after each tick.
type StepResult struct {
	State     State
	Score     int
	HighScore int
	Quit      bool // the player asked to exit; the platform should stop now
}

// Machine drives the start, playing and game-over screens and owns the
// current Session. It is not safe for concurrent use; one goroutine owns it.
type Machine struct {
	cfg      config.Config
	rng      *rand.Rand
	audio    Audio
	scores   ScoreStore
	recorder Recorder

	state        State
	session      *Session
	highScore    int
	musicStarted bool
}

// NewMachine creates a machine on the start screen. The high score is
// read once from the score store. cfg must be valid.
func NewMachine(cfg config.Config, seed int64, deps Collaborators) *Machine {
	m := &Machine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		audio:    deps.Audio,
		scores:   deps.Scores,
		recorder: deps.Recorder,
		state:    StateStart,
	}
	if m.audio == nil {
		m.audio = NopAudio{}
	}
	if m.scores == nil {
		m.scores = &MemoryScores{}
	}
	if m.recorder == nil {
		m.recorder = nopRecorder{}
	}
	m.highScore = max(m.scores.Load(), 0)
	return m
}

// Step advances the machine by one tick.
func (m *Machine) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionQuit) {
		return m.result(true)
	}

	switch m.state {
	case StateStart:
		if !m.musicStarted {
			m.audio.PlayLoopingMusic()
			m.musicStarted = true
		}
		if startPressed(in) {
			m.newSession()
		}

	case StatePlaying, StateGameOverInline:
		res := m.session.Step(in)
		switch {
		case res.Ended:
			m.state = StateGameOverInline
			m.finish()
		case res.Continue:
			m.state = StateGameOverScreen
			m.audio.PlayGameOver()
		}

	case StateGameOverScreen:
		if startPressed(in) {
			m.newSession()
		}
	}

	return m.result(false)
}

// startPressed reports whether any start/restart input was given.
func startPressed(in core.InputFrame) bool {
	return in.Any(core.ActionFlap, core.ActionConfirm, core.ActionPointer)
}

func (m *Machine) newSession() {
	m.session = NewSession(m.cfg, m.rng, m.audio)
	m.state = StatePlaying
}

// finish commits the score of the session that just ended.
func (m *Machine) finish() {
	final := m.session.Score()
	if best, changed := BestScore(m.highScore, final); changed {
		m.highScore = best
		m.scores.Save(best)
	}
	if final > 0 {
		m.recorder.Record(final)
	}
}

func (m *Machine) result(quit bool) StepResult {
	return StepResult{
		State:     m.state,
		Score:     m.Score(),
		HighScore: m.highScore,
		Quit:      quit,
	}
}

// State returns the current screen.
func (m *Machine) State() State { return m.state }

// Session returns the current session, or nil before the first game.
func (m *Machine) Session() *Session { return m.session }

// HighScore returns the best score seen so far.
func (m *Machine) HighScore() int { return m.highScore }

// Score returns the current session's score, or 0 before the first game.
func (m *Machine) Score() int {
	if m.session == nil {
		return 0
	}
	return m.session.Score()
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.Config { return m.cfg }
