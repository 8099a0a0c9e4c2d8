package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	if got, want := embedded(), DefaultShooterConfig(); got != want {
		t.Errorf("embedded YAML drifted from DefaultShooterConfig:\n got %+v\nwant %+v", got, want)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero arena", func(c *ShooterConfig) { c.Arena.Width = 0 }},
		{"no health", func(c *ShooterConfig) { c.Player.MaxHealth = 0 }},
		{"inverted speeds", func(c *ShooterConfig) { c.Hazard.MaxSpeed = 10 }},
		{"floor above base", func(c *ShooterConfig) { c.Spawn.Pickup.Floor = 3 }},
		{"zero level step", func(c *ShooterConfig) { c.Scoring.LevelStep = 0 }},
		{"margins too wide", func(c *ShooterConfig) { c.Hazard.SpawnMargin = 500 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := []byte("player:\n  max_health: 9\nspawn:\n  hazard:\n    base: 2.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.MaxHealth != 9 {
		t.Errorf("MaxHealth = %d, expected 9", cfg.Player.MaxHealth)
	}
	if cfg.Spawn.Hazard.Base != 2.0 {
		t.Errorf("hazard base = %v, expected 2.0", cfg.Spawn.Hazard.Base)
	}
	// Untouched fields keep their defaults
	if cfg.Player.Speed != 320 || cfg.Spawn.Hazard.Floor != 0.4 {
		t.Errorf("defaults lost: speed=%v floor=%v", cfg.Player.Speed, cfg.Spawn.Hazard.Floor)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("arena:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("invalid custom config should be an error")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Player.MaxHealth != 3 || cfg.Difficulty.SpeedScale != 1.25 {
		t.Errorf("hard preset = health %d scale %v", cfg.Player.MaxHealth, cfg.Difficulty.SpeedScale)
	}

	cfg = DefaultShooterConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Progression {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultShooterConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg != DefaultShooterConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestScheduleIntervals(t *testing.T) {
	s := NewSchedule(DefaultShooterConfig())

	tests := []struct {
		level          int
		hazard, pickup float64
	}{
		{1, 1.2, 2.5},
		{2, 1.15, 2.43},
		{5, 1.0, 2.22},
		{17, 0.4, 1.38},
		{30, 0.4, 0.8},
		{100, 0.4, 0.8},
	}

	for _, tc := range tests {
		if got := s.HazardInterval(tc.level); !approx(got, tc.hazard) {
			t.Errorf("HazardInterval(%d) = %v, expected %v", tc.level, got, tc.hazard)
		}
		if got := s.PickupInterval(tc.level); !approx(got, tc.pickup) {
			t.Errorf("PickupInterval(%d) = %v, expected %v", tc.level, got, tc.pickup)
		}
	}
}

func TestScheduleScaling(t *testing.T) {
	s := NewSchedule(DefaultShooterConfig())

	lo, hi := s.HazardSpeedRange(1)
	if lo != 40 || hi != 160 {
		t.Errorf("level 1 speed range = [%v, %v], expected [40, 160]", lo, hi)
	}
	lo, hi = s.HazardSpeedRange(3)
	if lo != 48 || hi != 176 {
		t.Errorf("level 3 speed range = [%v, %v], expected [48, 176]", lo, hi)
	}

	if s.PickupValue(1) != 10 || s.PickupValue(4) != 16 {
		t.Errorf("pickup values = %d, %d", s.PickupValue(1), s.PickupValue(4))
	}
	if s.KillReward(1) != 8 || s.KillReward(3) != 10 {
		t.Errorf("kill rewards = %d, %d", s.KillReward(1), s.KillReward(3))
	}

	levels := map[int]int{0: 1, 199: 1, 200: 2, 399: 2, 400: 3}
	for score, want := range levels {
		if got := s.TargetLevel(score); got != want {
			t.Errorf("TargetLevel(%d) = %d, expected %d", score, got, want)
		}
	}
}

func TestScheduleSpeedScale(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyPreset(&cfg, DifficultyHard)
	lo, hi := NewSchedule(cfg).HazardSpeedRange(1)
	if lo != 50 || hi != 200 {
		t.Errorf("hard speed range = [%v, %v], expected [50, 200]", lo, hi)
	}
}
