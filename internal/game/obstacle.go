package game

import (
	"math/rand"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Obstacle is a pipe pair with a vertical gap between a top and a bottom wall.
type Obstacle struct {
	X      float64
	GapY   int  // top of the gap
	Scored bool // set once by the session when the player passes

	width   int
	wallGap int
	groundY int
	speed   float64
}

// NewObstacle spawns an obstacle at the right edge with a random gap.
// The gap range must have been validated by config.Validate.
func NewObstacle(cfg config.Config, rng *rand.Rand) *Obstacle {
	lo, hi := cfg.GapRange()
	return newObstacleAt(cfg, float64(cfg.Screen.Width), randInclusive(rng, lo, hi))
}

func newObstacleAt(cfg config.Config, x float64, gapY int) *Obstacle {
	return &Obstacle{
		X:       x,
		GapY:    gapY,
		width:   cfg.Obstacles.Width,
		wallGap: cfg.Obstacles.WallGap,
		groundY: cfg.GroundY(),
		speed:   cfg.Obstacles.Speed,
	}
}

// Update moves the obstacle left by one frame.
func (o *Obstacle) Update() {
	o.X -= o.speed
}

// Width returns the obstacle width.
func (o *Obstacle) Width() int {
	return o.width
}

// IsOffScreen reports whether the obstacle has left the play area.
func (o *Obstacle) IsOffScreen() bool {
	return o.X+float64(o.width) < 0
}

// Passed reports whether the obstacle's trailing edge is left of playerX.
func (o *Obstacle) Passed(playerX int) bool {
	return o.X+float64(o.width) < float64(playerX)
}

// TopRect returns the upper wall, from the top of the screen to the gap.
func (o *Obstacle) TopRect() core.Rect {
	return core.RectF(o.X, 0, o.width, o.GapY)
}

// BottomRect returns the lower wall, from the gap to the ground.
func (o *Obstacle) BottomRect() core.Rect {
	bottomY := o.GapY + o.wallGap
	return core.RectF(o.X, float64(bottomY), o.width, o.groundY-bottomY)
}

// CollidesWith reports whether the player touches either wall.
func (o *Obstacle) CollidesWith(p *Player) bool {
	box := p.Rect()
	return box.Intersects(o.TopRect()) || box.Intersects(o.BottomRect())
}

// randInclusive returns a uniform integer in [lo, hi].
func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
