package game

import (
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Player is the flapping sprite. Physics stay inactive until the first flap.
type Player struct {
	X        int
	Y        float64
	Velocity float64
	Started  bool

	size    int
	spawnY  float64
	gravity float64
	flap    float64
	audio   Audio
}

// NewPlayer creates a player at the configured spawn point.
func NewPlayer(cfg config.Config, audio Audio) *Player {
	x, y := cfg.PlayerSpawn()
	if audio == nil {
		audio = NopAudio{}
	}
	return &Player{
		X:       x,
		Y:       y,
		size:    cfg.Player.Size,
		spawnY:  y,
		gravity: cfg.Physics.Gravity,
		flap:    cfg.Physics.FlapStrength,
		audio:   audio,
	}
}

// Flap sets the velocity to the flap strength and starts physics.
func (p *Player) Flap() {
	p.Velocity = p.flap
	p.Started = true
	p.audio.PlayFlap()
}

// Update applies one frame of gravity. The ceiling stops the player
// without bouncing.
func (p *Player) Update() {
	if !p.Started {
		return
	}
	p.Velocity += p.gravity
	p.Y += p.Velocity

	if p.Y < 0 {
		p.Y = 0
		p.Velocity = 0
	}
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Rect {
	return core.RectF(float64(p.X), p.Y, p.size, p.size)
}

// Size returns the edge length of the player's square box.
func (p *Player) Size() int {
	return p.size
}

// Reset puts the player back at the spawn point, at rest.
func (p *Player) Reset() {
	p.Y = p.spawnY
	p.Velocity = 0
	p.Started = false
}
