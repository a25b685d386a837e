package game

import (
	"math/rand"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// recordingAudio counts every cue it is asked to play.
type recordingAudio struct {
	flaps, gameOvers, enemies, music int
}

func (a *recordingAudio) PlayFlap()         { a.flaps++ }
func (a *recordingAudio) PlayGameOver()     { a.gameOvers++ }
func (a *recordingAudio) PlayEnemySpawn()   { a.enemies++ }
func (a *recordingAudio) PlayLoopingMusic() { a.music++ }

type recordingRecorder struct {
	scores []int
}

func (r *recordingRecorder) Record(score int) { r.scores = append(r.scores, score) }

// recordingRenderer keeps the text and sprite commands of a frame.
type recordingRenderer struct {
	texts     []string
	obstacles int
	enemies   int
	players   int
	scrolls   []float64
}

func (r *recordingRenderer) DrawBackground(scroll float64)      { r.scrolls = append(r.scrolls, scroll) }
func (r *recordingRenderer) DrawGround(float64)                 {}
func (r *recordingRenderer) DrawObstacle(top, bottom core.Rect) { r.obstacles++ }
func (r *recordingRenderer) DrawEnemy(core.Rect)                { r.enemies++ }
func (r *recordingRenderer) DrawPlayer(core.Rect)               { r.players++ }
func (r *recordingRenderer) DrawText(t Text)                    { r.texts = append(r.texts, t.Content) }

// openConfig returns a configuration whose obstacles have no walls, so a
// hovering player can never hit them, and whose enemies never spawn.
// The gap is pinned at 0, a single-value range that config.Validate
// would reject; sessions only need hi >= lo.
func openConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Obstacles.MinGapY = 0
	cfg.Obstacles.WallGap = cfg.GroundY()
	cfg.Obstacles.GapMargin = 0
	cfg.Enemies.SpawnInterval = 1 << 30
	return cfg
}

func newTestSession(cfg config.Config, audio Audio) *Session {
	return NewSession(cfg, rand.New(rand.NewSource(1)), audio)
}

// hover pins the player mid-air so gravity never reaches the ground.
func hover(s *Session) {
	s.player.Y = s.player.spawnY
	s.player.Velocity = 0
}

func flap() core.InputFrame {
	return core.InputOf(core.ActionFlap)
}

func none() core.InputFrame {
	return core.NewInputFrame()
}
