package game

import (
	"math/rand"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Enemy drifts from right to left at a fixed height.
type Enemy struct {
	X float64
	Y int

	size  int
	speed float64
}

// NewEnemy spawns an enemy at the right edge at a random height.
func NewEnemy(cfg config.Config, rng *rand.Rand) *Enemy {
	lo, hi := cfg.EnemyRange()
	return newEnemyAt(cfg, float64(cfg.Screen.Width), randInclusive(rng, lo, hi))
}

func newEnemyAt(cfg config.Config, x float64, y int) *Enemy {
	return &Enemy{
		X:     x,
		Y:     y,
		size:  cfg.Enemies.Size,
		speed: cfg.Enemies.Speed,
	}
}

// Update moves the enemy left by one frame.
func (e *Enemy) Update() {
	e.X -= e.speed
}

// IsOffScreen reports whether the enemy has left the play area.
func (e *Enemy) IsOffScreen() bool {
	return e.X+float64(e.size) < 0
}

// Rect returns the enemy's collision box.
func (e *Enemy) Rect() core.Rect {
	return core.RectF(e.X, float64(e.Y), e.size, e.size)
}

// CollidesWith reports whether the player touches the enemy.
func (e *Enemy) CollidesWith(p *Player) bool {
	return p.Rect().Intersects(e.Rect())
}
