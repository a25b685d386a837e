package config

import (
	_ "embed"
)

//go:embed defaults/flapper.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 100,
			FPS:          60,
		},
		Physics: PhysicsConfig{
			Gravity:      0.25,
			FlapStrength: -6.5,
		},
		Player: PlayerConfig{
			Size: 50,
		},
		Obstacles: ObstacleConfig{
			Speed:         4,
			Width:         80,
			WallGap:       170,
			SpawnInterval: 90,
			MinGapY:       150,
			GapMargin:     50,
		},
		Enemies: EnemyConfig{
			Speed:         3,
			Size:          60,
			SpawnInterval: 180,
			MarginTop:     100,
			MarginBottom:  100,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MusicVolume:   0.3,
			EffectsVolume: 1.0,
		},
		AssetsDir: "assets",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
