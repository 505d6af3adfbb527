package config

import (
	_ "embed"
)

//go:embed defaults/flapfish.yaml
var defaultFlapfishYAML []byte

// Default returns the built-in flapfish configuration.
// It matches defaults/flapfish.yaml and is used if the embedded file is unreadable.
func Default() FlapfishConfig {
	return FlapfishConfig{
		Window: WindowConfig{
			Width:  700,
			Height: 500,
		},
		Physics: PhysicsConfig{
			Gravity:     400,
			FlapImpulse: 400,
			MinY:        0,
			MaxY:        500,
			TiltDivisor: 1000,
		},
		Player: PlayerConfig{
			X:            80,
			Y:            250,
			HitboxWidth:  45,
			HitboxHeight: 35,
			SpriteWidth:  60,
			SpriteHeight: 50,
		},
		Walls: WallsConfig{
			Width:         60,
			Speed:         400,
			SpawnOffset:   20,
			DespawnX:      -60,
			GapFloor:      80,
			GapBase:       200,
			GapMargin:     100,
			SpawnInterval: 1.0,
		},
		Timers: TimersConfig{
			Countdown: 3.0,
			Lockout:   0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlapfishYAML
}
