package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Kind tags an entity in a snapshot.
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindHazard
	KindPickup
)

// Entity colors
const (
	PlayerColor     = core.ColorBrightBlue
	ProjectileColor = core.ColorBrightYellow
	HazardColor     = core.ColorRed
	PickupColor     = core.ColorBrightGreen
)

// EntityView is the read-only position, size and color of one entity.
type EntityView struct {
	Kind       Kind
	X, Y, W, H float64 // Center and size in world units
	Color      core.Color
}

// Snapshot is a read-only copy of everything the renderer needs.
// It shares no memory with the game.
type Snapshot struct {
	Tick  uint64
	Phase Phase
	Arena Arena

	Score     int
	Level     int
	Health    int
	MaxHealth int
	HighScore int
	NewRecord bool
	ShowBest  bool // Menu high score panel is open

	Cooldown    float64
	HazardTimer float64
	PickupTimer float64

	Player      EntityView
	Projectiles []EntityView
	Hazards     []EntityView
	Pickups     []EntityView
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	p := &w.Player
	hazardTimer, pickupTimer := g.spawner.Timers()

	snap := Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Arena:       w.Arena,
		Score:       p.Score,
		Level:       p.Level,
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		HighScore:   g.highScore,
		NewRecord:   g.newRecord,
		ShowBest:    g.showHighScore,
		Cooldown:    p.Cooldown,
		HazardTimer: hazardTimer,
		PickupTimer: pickupTimer,
		Player:      view(KindPlayer, p.Box(), PlayerColor),
		Projectiles: make([]EntityView, len(w.Projectiles)),
		Hazards:     make([]EntityView, len(w.Hazards)),
		Pickups:     make([]EntityView, len(w.Pickups)),
	}
	for i := range w.Projectiles {
		snap.Projectiles[i] = view(KindProjectile, w.Projectiles[i].Box(), ProjectileColor)
	}
	for i := range w.Hazards {
		snap.Hazards[i] = view(KindHazard, w.Hazards[i].Box(), HazardColor)
	}
	for i := range w.Pickups {
		snap.Pickups[i] = view(KindPickup, w.Pickups[i].Box(), PickupColor)
	}
	return snap
}

func view(kind Kind, b core.Box, c core.Color) EntityView {
	return EntityView{Kind: kind, X: b.X, Y: b.Y, W: b.W, H: b.H, Color: c}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Cooldown)
	h = h*31 + math.Float64bits(snap.HazardTimer)
	h = h*31 + math.Float64bits(snap.PickupTimer)

	h = hashEntity(h, snap.Player)
	for _, group := range [][]EntityView{snap.Projectiles, snap.Hazards, snap.Pickups} {
		h = h*31 + uint64(len(group))
		for _, e := range group {
			h = hashEntity(h, e)
		}
	}
	return h
}

func hashEntity(h uint64, e EntityView) uint64 {
	h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(e.X)
	h = h*31 + math.Float64bits(e.Y)
	h = h*31 + math.Float64bits(e.W)
	h = h*31 + math.Float64bits(e.H)
	return h
}
