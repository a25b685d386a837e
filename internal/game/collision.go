package game

// Collision identifies what ended a session.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionObstacle
	CollisionEnemy
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionObstacle:
		return "obstacle"
	case CollisionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// HitsGround reports whether the player's bottom edge reached groundY.
func HitsGround(p *Player, groundY int) bool {
	return p.Y+float64(p.size) >= float64(groundY)
}

// DetectCollision checks the ground, then every obstacle, then every
// enemy, and returns the first hit.
func DetectCollision(p *Player, groundY int, obstacles []*Obstacle, enemies []*Enemy) Collision {
	if HitsGround(p, groundY) {
		return CollisionGround
	}
	for _, o := range obstacles {
		if o.CollidesWith(p) {
			return CollisionObstacle
		}
	}
	for _, e := range enemies {
		if e.CollidesWith(p) {
			return CollisionEnemy
		}
	}
	return CollisionNone
}

// BestScore returns the high score after a game that ended with final,
// and whether it changed. Ties keep the previous record.
func BestScore(previous, final int) (int, bool) {
	if final > previous {
		return final, true
	}
	return previous, false
}
