package config

import "math"

// Schedule derives level-dependent simulation parameters from the config.
// Every rule is a pure function of the level (or score), so two sessions at
// the same level behave identically.
type Schedule struct {
	cfg ShooterConfig
}

// NewSchedule creates a schedule over the given config.
func NewSchedule(cfg ShooterConfig) *Schedule {
	return &Schedule{cfg: cfg}
}

// HazardInterval returns the hazard spawn interval at the given level.
func (s *Schedule) HazardInterval(level int) float64 {
	return interval(s.cfg.Spawn.Hazard, level)
}

// PickupInterval returns the pickup spawn interval at the given level.
func (s *Schedule) PickupInterval(level int) float64 {
	return interval(s.cfg.Spawn.Pickup, level)
}

// interval computes max(floor, base - (level-1)*decay).
func interval(t TimerConfig, level int) float64 {
	return math.Max(t.Floor, t.Base-float64(level-1)*t.Decay)
}

// HazardSpeedRange returns the fall speed bounds for hazards spawned at level.
func (s *Schedule) HazardSpeedRange(level int) (lo, hi float64) {
	h := s.cfg.Hazard
	steps := float64(level - 1)
	lo = (h.MinSpeed + steps*h.MinSpeedStep) * s.cfg.Difficulty.SpeedScale
	hi = (h.MaxSpeed + steps*h.MaxSpeedStep) * s.cfg.Difficulty.SpeedScale
	return lo, hi
}

// PickupValue returns the score granted by a pickup spawned at level.
func (s *Schedule) PickupValue(level int) int {
	return s.cfg.Pickup.BaseValue + (level-1)*s.cfg.Pickup.ValueStep
}

// KillReward returns the score granted per hazard shot down at level.
func (s *Schedule) KillReward(level int) int {
	return s.cfg.Scoring.KillBase + (level-1)*s.cfg.Scoring.KillStep
}

// TargetLevel returns the level a score entitles the player to.
func (s *Schedule) TargetLevel(score int) int {
	return score/s.cfg.Scoring.LevelStep + 1
}

// CanAdvance reports whether levels progress at all.
func (s *Schedule) CanAdvance() bool {
	return s.cfg.Difficulty.Progression
}
