package game

import (
	"math/rand"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// FrameResult reports what happened during one Session.Step.
type FrameResult struct {
	Scored   int       // obstacles passed this frame
	Ended    bool      // the session became game over this frame
	Cause    Collision // set when Ended
	Continue bool      // flap pressed while already game over
}

// Session is one play-through: the player, the live obstacles and enemies,
// the score and the frame counter.
type Session struct {
	cfg   config.Config
	rng   *rand.Rand
	audio Audio

	player    *Player
	obstacles []*Obstacle
	enemies   []*Enemy

	score    int
	frame    int
	scroll   float64
	gameOver bool
	cause    Collision
}

// NewSession creates a fresh session. cfg must be valid.
func NewSession(cfg config.Config, rng *rand.Rand, audio Audio) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Session{
		cfg:       cfg,
		rng:       rng,
		audio:     audio,
		player:    NewPlayer(cfg, audio),
		obstacles: make([]*Obstacle, 0, 8),
		enemies:   make([]*Enemy, 0, 4),
	}
}

// Step advances the session by one frame. The frame counter advances even
// after game over; the simulation does not.
func (s *Session) Step(in core.InputFrame) FrameResult {
	s.frame++

	var res FrameResult
	if in.Has(core.ActionFlap) {
		if s.gameOver {
			res.Continue = true
		} else {
			s.player.Flap()
		}
	}

	if s.gameOver {
		return res
	}

	s.player.Update()

	if s.player.Started {
		s.scroll += s.cfg.Obstacles.Speed

		if s.frame%s.cfg.Obstacles.SpawnInterval == 0 {
			s.obstacles = append(s.obstacles, NewObstacle(s.cfg, s.rng))
		}
		if s.frame%s.cfg.Enemies.SpawnInterval == 0 {
			s.enemies = append(s.enemies, NewEnemy(s.cfg, s.rng))
			s.audio.PlayEnemySpawn()
		}
	}

	res.Scored = s.updateObstacles()
	s.score += res.Scored
	s.updateEnemies()

	if hit := DetectCollision(s.player, s.cfg.GroundY(), s.obstacles, s.enemies); hit != CollisionNone {
		s.gameOver = true
		s.cause = hit
		res.Ended = true
		res.Cause = hit
	}

	return res
}

// updateObstacles moves every obstacle, drops the ones that left the
// screen and scores the ones the player just passed. Survivors keep their
// spawn order.
func (s *Session) updateObstacles() int {
	scored := 0
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Update()
		if o.IsOffScreen() {
			continue
		}
		if !o.Scored && o.Passed(s.player.X) {
			o.Scored = true
			scored++
		}
		live = append(live, o)
	}
	clear(s.obstacles[len(live):])
	s.obstacles = live
	return scored
}

func (s *Session) updateEnemies() {
	live := s.enemies[:0]
	for _, e := range s.enemies {
		e.Update()
		if !e.IsOffScreen() {
			live = append(live, e)
		}
	}
	clear(s.enemies[len(live):])
	s.enemies = live
}

// Player returns the session's player.
func (s *Session) Player() *Player { return s.player }

// Obstacles returns the live obstacles in spawn order.
func (s *Session) Obstacles() []*Obstacle { return s.obstacles }

// Enemies returns the live enemies in spawn order.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Score returns the number of obstacles passed.
func (s *Session) Score() int { return s.score }

// Frame returns the number of frames stepped so far.
func (s *Session) Frame() int { return s.frame }

// Scroll returns the cosmetic scroll offset used for parallax.
func (s *Session) Scroll() float64 { return s.scroll }

// GameOver reports whether the player has crashed.
func (s *Session) GameOver() bool { return s.gameOver }

// Cause returns what ended the session, or CollisionNone.
func (s *Session) Cause() Collision { return s.cause }
