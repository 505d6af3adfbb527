// Package config provides YAML-based tuning configuration and environment
// overrides for flapfish.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlapfishConfig contains all gameplay tuning for flapfish.
type FlapfishConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Walls   WallsConfig   `yaml:"walls"`
	Timers  TimersConfig  `yaml:"timers"`
}

// WindowConfig is the logical play field. Hosts scale it to their surface.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// PhysicsConfig defines the kinematics constants.
type PhysicsConfig struct {
	Gravity     float32 `yaml:"gravity"`      // subtracted from vy per second
	FlapImpulse float32 `yaml:"flap_impulse"` // added to vy on a jump edge
	MinY        float32 `yaml:"min_y"`        // lower clamp of the vertical band
	MaxY        float32 `yaml:"max_y"`        // upper clamp, fixed independent of window height
	TiltDivisor float32 `yaml:"tilt_divisor"` // rotation = vy / tilt_divisor
}

// PlayerConfig defines the player's spawn point and boxes.
type PlayerConfig struct {
	X            float32 `yaml:"x"`
	Y            float32 `yaml:"y"`
	HitboxWidth  float32 `yaml:"hitbox_width"`
	HitboxHeight float32 `yaml:"hitbox_height"`
	SpriteWidth  float32 `yaml:"sprite_width"`
	SpriteHeight float32 `yaml:"sprite_height"`
}

// WallsConfig defines obstacle spawning, scrolling and gap sizing.
type WallsConfig struct {
	Width         float32 `yaml:"width"`
	Speed         float32 `yaml:"speed"`
	SpawnOffset   float32 `yaml:"spawn_offset"`   // left edge spawns at window width minus this
	DespawnX      float32 `yaml:"despawn_x"`      // walls with center x below this are removed
	GapFloor      float32 `yaml:"gap_floor"`      // smallest gap ever produced
	GapBase       float32 `yaml:"gap_base"`       // gap_min = max(floor, base - score)
	GapMargin     float32 `yaml:"gap_margin"`     // minimum wall height at the ceiling
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds
}

// TimersConfig defines the state machine timers in seconds.
type TimersConfig struct {
	Countdown float64 `yaml:"countdown"`
	Lockout   float64 `yaml:"lockout"`
}

// CountdownDuration returns the countdown as a time.Duration.
func (t TimersConfig) CountdownDuration() time.Duration {
	return seconds(t.Countdown)
}

// LockoutDuration returns the game-over input lockout as a time.Duration.
func (t TimersConfig) LockoutDuration() time.Duration {
	return seconds(t.Lockout)
}

// SpawnPeriod returns the wall spawn period as a time.Duration.
func (w WallsConfig) SpawnPeriod() time.Duration {
	return seconds(w.SpawnInterval)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate rejects configurations the game cannot run with.
func (c FlapfishConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Physics.MaxY < c.Physics.MinY {
		errs = append(errs, fmt.Errorf("physics.max_y (%v) below physics.min_y (%v)", c.Physics.MaxY, c.Physics.MinY))
	}
	if c.Physics.TiltDivisor == 0 {
		errs = append(errs, errors.New("physics.tilt_divisor must be non-zero"))
	}
	if c.Walls.SpawnInterval <= 0 {
		errs = append(errs, errors.New("walls.spawn_interval must be positive"))
	}
	if c.Walls.Width <= 0 {
		errs = append(errs, errors.New("walls.width must be positive"))
	}
	if c.Timers.Countdown <= 0 || c.Timers.Lockout < 0 {
		errs = append(errs, errors.New("timers must be non-negative and countdown positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
