package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/flapper/internal/config"
)

func TestPlayerSpawn(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), nil)

	assert.Equal(t, 200, p.X)
	assert.Equal(t, 250.0, p.Y)
	assert.Equal(t, 0.0, p.Velocity)
	assert.False(t, p.Started)
}

func TestPlayerUnstartedIsFrozen(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), nil)

	for i := 0; i < 120; i++ {
		p.Update()
		assert.Equal(t, 250.0, p.Y)
		assert.Equal(t, 0.0, p.Velocity)
	}
}

func TestPlayerFlapSetsExactVelocity(t *testing.T) {
	audio := &recordingAudio{}
	p := NewPlayer(config.DefaultConfig(), audio)

	p.Flap()
	assert.Equal(t, -6.5, p.Velocity)
	assert.True(t, p.Started)

	// Falling fast, then flapping again resets to the same impulse
	p.Velocity = 9
	p.Flap()
	assert.Equal(t, -6.5, p.Velocity)
	assert.Equal(t, 2, audio.flaps)
}

func TestPlayerGravity(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), nil)
	p.Flap()
	p.Update()

	assert.InDelta(t, -6.25, p.Velocity, 1e-9)
	assert.InDelta(t, 250-6.25, p.Y, 1e-9)

	for i := 0; i < 100; i++ {
		p.Update()
	}
	assert.Greater(t, p.Velocity, 0.0, "gravity should eventually pull the player down")
}

func TestPlayerCeilingClamp(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), nil)
	p.Y = 1
	p.Flap()
	p.Update()

	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.Velocity, "ceiling stops the player without bouncing")

	for i := 0; i < 30; i++ {
		if i%3 == 0 {
			p.Flap()
		}
		p.Update()
		assert.GreaterOrEqual(t, p.Y, 0.0)
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), nil)
	p.Flap()
	for i := 0; i < 10; i++ {
		p.Update()
	}

	p.Reset()
	assert.Equal(t, 250.0, p.Y)
	assert.Equal(t, 0.0, p.Velocity)
	assert.False(t, p.Started)
}

func TestPlayerRect(t *testing.T) {
	p := NewPlayer(config.DefaultConfig(), nil)
	p.Y = 120.75

	r := p.Rect()
	assert.Equal(t, 200, r.X)
	assert.Equal(t, 120, r.Y)
	assert.Equal(t, 50, r.W)
	assert.Equal(t, 50, r.H)
}
