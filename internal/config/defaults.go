package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hardcoded shooter configuration.
// It mirrors defaults/shooter.yaml and backs it up if the embedded file fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:  960,
			Height: 640,
		},
		Player: PlayerConfig{
			Width:        44,
			Height:       54,
			Speed:        320,
			MaxHealth:    5,
			ShotCooldown: 0.20,
			StartOffset:  120,
		},
		Projectile: ProjectileConfig{
			Width:      8,
			Height:     16,
			Speed:      600,
			Gap:        6,
			CullMargin: 40,
		},
		Hazard: HazardConfig{
			Width:        40,
			Height:       34,
			MinSpeed:     40,
			MaxSpeed:     160,
			MinSpeedStep: 4,
			MaxSpeedStep: 8,
			Drift:        40,
			SpawnMargin:  40,
			CullMargin:   40,
		},
		Pickup: PickupConfig{
			Width:          28,
			Height:         22,
			BaseValue:      10,
			ValueStep:      2,
			FallSpeed:      30, // ~3/4 of the slowest hazard
			FloatAmplitude: 2,
			FloatRate:      3.0,
			SpawnMargin:    30,
			SpawnHeight:    24,
			CullMargin:     40,
		},
		Spawn: SpawnConfig{
			Hazard: TimerConfig{Base: 1.2, Floor: 0.4, Decay: 0.05},
			Pickup: TimerConfig{Base: 2.5, Floor: 0.8, Decay: 0.07},
		},
		Scoring: ScoringConfig{
			KillBase:    8,
			KillStep:    1,
			MissPenalty: 5,
			LevelStep:   200,
			LevelUpHeal: 1,
		},
		Difficulty: DifficultyConfig{
			Progression: true,
			SpeedScale:  1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
