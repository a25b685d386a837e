// Package config provides YAML-based game configuration loading and
// validation for flapper.
package config

import (
	"errors"
	"fmt"
)

// ErrEmptyRange is returned when a random spawn range has no valid values,
// e.g. when the wall gap is too large for the screen height.
var ErrEmptyRange = errors.New("config: empty spawn range")

// Config contains all tunable constants of the game. Values are in world
// pixels and per-frame units at the nominal frame rate.
type Config struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Enemies   EnemyConfig    `yaml:"enemies"`
	Audio     AudioConfig    `yaml:"audio"`
	AssetsDir string         `yaml:"assets_dir"`
}

// ScreenConfig defines the play area.
type ScreenConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundHeight int `yaml:"ground_height"`
	FPS          int `yaml:"fps"`
}

// PhysicsConfig defines player kinematics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	FlapStrength float64 `yaml:"flap_strength"` // negative = up
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Size int `yaml:"size"`
}

// ObstacleConfig defines pipe pairs.
type ObstacleConfig struct {
	Speed         float64 `yaml:"speed"`
	Width         int     `yaml:"width"`
	WallGap       int     `yaml:"wall_gap"`
	SpawnInterval int     `yaml:"spawn_interval"` // frames
	MinGapY       int     `yaml:"min_gap_y"`
	GapMargin     int     `yaml:"gap_margin"` // space kept between gap bottom and ground
}

// EnemyConfig defines the laterally moving enemies.
type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`
	Size          int     `yaml:"size"`
	SpawnInterval int     `yaml:"spawn_interval"` // frames
	MarginTop     int     `yaml:"margin_top"`
	MarginBottom  int     `yaml:"margin_bottom"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MusicVolume   float64 `yaml:"music_volume"`   // 0.0 - 1.0
	EffectsVolume float64 `yaml:"effects_volume"` // 0.0 - 1.0
}

// GroundY returns the y-coordinate of the top of the ground.
func (c Config) GroundY() int {
	return c.Screen.Height - c.Screen.GroundHeight
}

// GapRange returns the inclusive range for an obstacle's gap top.
func (c Config) GapRange() (lo, hi int) {
	return c.Obstacles.MinGapY, c.GroundY() - c.Obstacles.WallGap - c.Obstacles.GapMargin
}

// EnemyRange returns the inclusive range for an enemy's y position.
func (c Config) EnemyRange() (lo, hi int) {
	return c.Enemies.MarginTop, c.GroundY() - c.Enemies.MarginBottom
}

// PlayerSpawn returns the player's fixed x and its spawn y.
func (c Config) PlayerSpawn() (x int, y float64) {
	return c.Screen.Width / 4, float64(c.Screen.Height/2 - 50)
}

// Validate checks that the configuration can drive a game without
// failing mid-session.
func (c Config) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"screen.fps", c.Screen.FPS},
		{"player.size", c.Player.Size},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.wall_gap", c.Obstacles.WallGap},
		{"obstacles.spawn_interval", c.Obstacles.SpawnInterval},
		{"enemies.size", c.Enemies.Size},
		{"enemies.spawn_interval", c.Enemies.SpawnInterval},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %d", p.name, p.val))
		}
	}

	if c.Screen.GroundHeight < 0 || c.Screen.GroundHeight >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("config: screen.ground_height %d out of range", c.Screen.GroundHeight))
	}
	if c.Obstacles.Speed <= 0 {
		errs = append(errs, fmt.Errorf("config: obstacles.speed must be positive, got %v", c.Obstacles.Speed))
	}
	if c.Enemies.Speed <= 0 {
		errs = append(errs, fmt.Errorf("config: enemies.speed must be positive, got %v", c.Enemies.Speed))
	}
	if c.Physics.FlapStrength >= 0 {
		errs = append(errs, fmt.Errorf("config: physics.flap_strength must be negative (upward), got %v", c.Physics.FlapStrength))
	}

	nonNegative := []struct {
		name string
		val  int
	}{
		{"obstacles.min_gap_y", c.Obstacles.MinGapY},
		{"obstacles.gap_margin", c.Obstacles.GapMargin},
		{"enemies.margin_top", c.Enemies.MarginTop},
		{"enemies.margin_bottom", c.Enemies.MarginBottom},
	}
	for _, n := range nonNegative {
		if n.val < 0 {
			errs = append(errs, fmt.Errorf("config: %s must not be negative, got %d", n.name, n.val))
		}
	}

	// An upper bound at or below the lower one leaves nothing to draw from.
	if lo, hi := c.GapRange(); hi <= lo {
		errs = append(errs, fmt.Errorf("%w: obstacle gap [%d, %d]", ErrEmptyRange, lo, hi))
	}
	if lo, hi := c.EnemyRange(); hi <= lo {
		errs = append(errs, fmt.Errorf("%w: enemy y [%d, %d]", ErrEmptyRange, lo, hi))
	}

	return errors.Join(errs...)
}
