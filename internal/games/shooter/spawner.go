package shooter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Spawner drops hazards and pickups in from above the arena on two
// independent countdown timers.
type Spawner struct {
	cfg      config.ShooterConfig
	schedule *config.Schedule
	rng      *rand.Rand

	hazardTimer float64
	pickupTimer float64
}

// NewSpawner creates a spawner with the given RNG seed and base timers.
func NewSpawner(cfg config.ShooterConfig, schedule *config.Schedule, seed int64) *Spawner {
	s := &Spawner{
		cfg:      cfg,
		schedule: schedule,
	}
	s.Reseed(seed)
	s.Reset()
	return s
}

// Reseed restarts the RNG.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Reset puts both timers back to their base intervals.
func (s *Spawner) Reset() {
	s.hazardTimer = s.cfg.Spawn.Hazard.Base
	s.pickupTimer = s.cfg.Spawn.Pickup.Base
}

// Timers returns the remaining hazard and pickup countdowns.
func (s *Spawner) Timers() (hazard, pickup float64) {
	return s.hazardTimer, s.pickupTimer
}

// Update advances both timers by dt and spawns into w when one expires.
// Expired timers restart at the interval for the player's current level.
// Returns the number of hazards and pickups spawned.
func (s *Spawner) Update(dt float64, w *World) (hazards, pickups int) {
	level := w.Player.Level

	s.hazardTimer -= dt
	s.pickupTimer -= dt

	if s.hazardTimer <= 0 {
		w.Hazards = append(w.Hazards, s.newHazard(level, w.Arena))
		s.hazardTimer = s.schedule.HazardInterval(level)
		hazards++
	}
	if s.pickupTimer <= 0 {
		w.Pickups = append(w.Pickups, s.newPickup(level, w.Arena))
		s.pickupTimer = s.schedule.PickupInterval(level)
		pickups++
	}
	return hazards, pickups
}

// uniform returns a value in [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Spawner) newHazard(level int, arena Arena) Hazard {
	h := s.cfg.Hazard
	lo, hi := s.schedule.HazardSpeedRange(level)
	return Hazard{
		X:     s.uniform(h.SpawnMargin, arena.W-h.SpawnMargin),
		Y:     -h.SpawnMargin,
		W:     h.Width,
		H:     h.Height,
		Speed: s.uniform(lo, hi),
		Drift: s.uniform(-h.Drift, h.Drift),
	}
}

func (s *Spawner) newPickup(level int, arena Arena) Pickup {
	p := s.cfg.Pickup
	return Pickup{
		X:         s.uniform(p.SpawnMargin, arena.W-p.SpawnMargin),
		BaseY:     -p.SpawnHeight,
		W:         p.Width,
		H:         p.Height,
		Value:     s.schedule.PickupValue(level),
		FallSpeed: p.FallSpeed,
		Amplitude: p.FloatAmplitude,
		Rate:      p.FloatRate,
		Phase:     s.uniform(0, math.Pi),
	}
}
