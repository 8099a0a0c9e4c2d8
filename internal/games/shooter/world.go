package shooter

import "github.com/vovakirdan/tui-shooter/internal/config"

// World holds every entity of one session. Projectiles, hazards and pickups
// are unordered: only membership matters.
type World struct {
	Arena       Arena
	Player      Player
	Projectiles []Projectile
	Hazards     []Hazard
	Pickups     []Pickup
}

// NewWorld creates a world with a freshly placed player.
func NewWorld(cfg config.ShooterConfig) World {
	w := World{
		Arena:       Arena{W: cfg.Arena.Width, H: cfg.Arena.Height},
		Projectiles: make([]Projectile, 0, 16),
		Hazards:     make([]Hazard, 0, 16),
		Pickups:     make([]Pickup, 0, 8),
	}
	w.Reset(cfg)
	return w
}

// Reset clears transient entities and restores the player to its defaults.
func (w *World) Reset(cfg config.ShooterConfig) {
	w.Projectiles = w.Projectiles[:0]
	w.Hazards = w.Hazards[:0]
	w.Pickups = w.Pickups[:0]

	w.Player = Player{
		X:            cfg.Arena.Width / 2,
		Y:            cfg.Arena.Height - cfg.Player.StartOffset,
		W:            cfg.Player.Width,
		H:            cfg.Player.Height,
		Speed:        cfg.Player.Speed,
		Health:       cfg.Player.MaxHealth,
		MaxHealth:    cfg.Player.MaxHealth,
		Score:        0,
		Level:        1,
		Cooldown:     0,
		ShotCooldown: cfg.Player.ShotCooldown,
	}
}

// compact keeps the items whose index is not marked removed.
// It reuses the backing array, so it must run after all scanning is done.
func compact[T any](items []T, removed []bool) []T {
	kept := items[:0]
	for i := range items {
		if !removed[i] {
			kept = append(kept, items[i])
		}
	}
	return kept
}
