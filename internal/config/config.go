// Package config provides YAML-based game configuration loading and
// level-driven difficulty scaling for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunable parameters of the shooter.
type ShooterConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Hazard     HazardConfig     `yaml:"hazard"`
	Pickup     PickupConfig     `yaml:"pickup"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the fixed play area in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per second
	MaxHealth    int     `yaml:"max_health"`
	ShotCooldown float64 `yaml:"shot_cooldown"` // Seconds between shots
	StartOffset  float64 `yaml:"start_offset"`  // Distance of the spawn point from the arena bottom
}

// ProjectileConfig defines player shots.
type ProjectileConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Gap        float64 `yaml:"gap"`         // Spawn distance above the player's top edge
	CullMargin float64 `yaml:"cull_margin"` // Removed once this far above the arena top
}

// HazardConfig defines falling threats.
type HazardConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinSpeedStep float64 `yaml:"min_speed_step"` // Added to MinSpeed per level
	MaxSpeedStep float64 `yaml:"max_speed_step"` // Added to MaxSpeed per level
	Drift        float64 `yaml:"drift"`          // Max lateral speed in either direction
	SpawnMargin  float64 `yaml:"spawn_margin"`   // Horizontal inset and height above the top
	CullMargin   float64 `yaml:"cull_margin"`
}

// PickupConfig defines collectibles.
type PickupConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BaseValue      int     `yaml:"base_value"`
	ValueStep      int     `yaml:"value_step"`
	FallSpeed      float64 `yaml:"fall_speed"`
	FloatAmplitude float64 `yaml:"float_amplitude"`
	FloatRate      float64 `yaml:"float_rate"` // Radians per second
	SpawnMargin    float64 `yaml:"spawn_margin"`
	SpawnHeight    float64 `yaml:"spawn_height"` // Spawn distance above the arena top
	CullMargin     float64 `yaml:"cull_margin"`
}

// SpawnConfig defines the two spawn timers.
type SpawnConfig struct {
	Hazard TimerConfig `yaml:"hazard"`
	Pickup TimerConfig `yaml:"pickup"`
}

// TimerConfig defines a level-accelerated spawn interval.
type TimerConfig struct {
	Base  float64 `yaml:"base"`  // Interval at level 1, seconds
	Floor float64 `yaml:"floor"` // Shortest allowed interval
	Decay float64 `yaml:"decay"` // Seconds removed per level
}

// ScoringConfig defines score and level rules.
type ScoringConfig struct {
	KillBase    int `yaml:"kill_base"`
	KillStep    int `yaml:"kill_step"`
	MissPenalty int `yaml:"miss_penalty"`
	LevelStep   int `yaml:"level_step"` // Score needed per level
	LevelUpHeal int `yaml:"level_up_heal"`
}

// DifficultyConfig controls level progression.
type DifficultyConfig struct {
	Progression bool    `yaml:"progression"` // false keeps the session at level 1
	SpeedScale  float64 `yaml:"speed_scale"` // Multiplier on hazard fall speed
}

// Validate reports the first parameter that would make the simulation ill-formed.
func (c ShooterConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.max_health", float64(c.Player.MaxHealth))
	positive("projectile.speed", c.Projectile.Speed)
	positive("hazard.min_speed", c.Hazard.MinSpeed)
	positive("pickup.fall_speed", c.Pickup.FallSpeed)
	positive("scoring.level_step", float64(c.Scoring.LevelStep))
	positive("difficulty.speed_scale", c.Difficulty.SpeedScale)

	if c.Hazard.MaxSpeed < c.Hazard.MinSpeed {
		errs = append(errs, fmt.Errorf("hazard.max_speed %v below min_speed %v", c.Hazard.MaxSpeed, c.Hazard.MinSpeed))
	}
	for name, t := range map[string]TimerConfig{"spawn.hazard": c.Spawn.Hazard, "spawn.pickup": c.Spawn.Pickup} {
		positive(name+".floor", t.Floor)
		if t.Floor > t.Base {
			errs = append(errs, fmt.Errorf("%s.floor %v exceeds base %v", name, t.Floor, t.Base))
		}
	}
	if 2*c.Hazard.SpawnMargin >= c.Arena.Width || 2*c.Pickup.SpawnMargin >= c.Arena.Width {
		errs = append(errs, errors.New("spawn margins leave no room inside the arena"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid shooter config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 7
	case DifficultyHard:
		cfg.Player.MaxHealth = 3
		cfg.Difficulty.SpeedScale = 1.25
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	}
}
