package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

func TestNewEnemySpawnsInRange(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		e := NewEnemy(cfg, rng)
		assert.Equal(t, 800.0, e.X)
		assert.GreaterOrEqual(t, e.Y, 100)
		assert.LessOrEqual(t, e.Y, 400)
	}
}

func TestEnemyMovesAndLeaves(t *testing.T) {
	e := newEnemyAt(config.DefaultConfig(), 3, 200)

	e.Update()
	assert.Equal(t, 0.0, e.X)
	assert.Equal(t, core.NewRect(0, 200, 60, 60), e.Rect())

	for !e.IsOffScreen() {
		e.Update()
	}
	assert.Less(t, e.X+60, 0.0)
}

func TestEnemyCollision(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg, nil) // box 200..250 x 250..300
	e := newEnemyAt(cfg, 240, 290)

	assert.True(t, e.CollidesWith(p))

	e.Y = 300
	assert.False(t, e.CollidesWith(p), "touching edges do not collide")

	e.Y = 290
	e.X = 250
	assert.False(t, e.CollidesWith(p))
}
