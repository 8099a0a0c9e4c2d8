package shooter

import "github.com/vovakirdan/tui-shooter/internal/config"

// Report counts what happened during one collision or culling pass.
type Report struct {
	Kills     int // Hazards shot down
	Hits      int // Hazards that struck the player
	Collected int // Pickups collected
	Missed    int // Hazards that left through the bottom
	LevelUps  int
}

// Add accumulates another report into r.
func (r *Report) Add(o Report) {
	r.Kills += o.Kills
	r.Hits += o.Hits
	r.Collected += o.Collected
	r.Missed += o.Missed
	r.LevelUps += o.LevelUps
}

// Engine resolves overlaps between entity groups and applies their effects
// on score, health and level.
//
// Every pass scans first and marks removals, then compacts, so an entity is
// removed at most once and never mutated mid-scan.
type Engine struct {
	cfg      config.ShooterConfig
	schedule *config.Schedule
}

// NewEngine creates a collision engine.
func NewEngine(cfg config.ShooterConfig, schedule *config.Schedule) *Engine {
	return &Engine{cfg: cfg, schedule: schedule}
}

// Resolve runs the three collision passes in order: projectiles against
// hazards, the player against hazards, the player against pickups.
// A hazard shot down here cannot also damage the player.
func (e *Engine) Resolve(w *World) Report {
	var r Report
	p := &w.Player

	hazardGone := make([]bool, len(w.Hazards))
	shotGone := make([]bool, len(w.Projectiles))

	// Projectiles vs hazards: a projectile takes out every hazard it overlaps
	reward := e.schedule.KillReward(p.Level)
	for i := range w.Projectiles {
		box := w.Projectiles[i].Box()
		for j := range w.Hazards {
			if hazardGone[j] || !box.Intersects(w.Hazards[j].Box()) {
				continue
			}
			hazardGone[j] = true
			shotGone[i] = true
			p.AddScore(reward)
			r.Kills++
		}
	}

	// Player vs hazards
	playerBox := p.Box()
	for j := range w.Hazards {
		if hazardGone[j] || !playerBox.Intersects(w.Hazards[j].Box()) {
			continue
		}
		hazardGone[j] = true
		p.Damage(1)
		r.Hits++
	}

	w.Projectiles = compact(w.Projectiles, shotGone)
	w.Hazards = compact(w.Hazards, hazardGone)

	// Player vs pickups
	pickupGone := make([]bool, len(w.Pickups))
	for j := range w.Pickups {
		if !playerBox.Intersects(w.Pickups[j].Box()) {
			continue
		}
		pickupGone[j] = true
		p.AddScore(w.Pickups[j].Value)
		r.Collected++
		if e.levelUp(p) {
			r.LevelUps++
		}
	}
	w.Pickups = compact(w.Pickups, pickupGone)

	return r
}

// levelUp advances the player by one level when the score has earned it.
func (e *Engine) levelUp(p *Player) bool {
	if !e.schedule.CanAdvance() || e.schedule.TargetLevel(p.Score) <= p.Level {
		return false
	}
	p.Level++
	p.Heal(e.cfg.Scoring.LevelUpHeal)
	return true
}

// Cull removes entities that have left the arena. Projectiles leave through
// the top; hazards and pickups through the bottom. Each missed hazard costs
// the miss penalty.
func (e *Engine) Cull(w *World) Report {
	var r Report
	arena := w.Arena

	shotGone := make([]bool, len(w.Projectiles))
	for i := range w.Projectiles {
		shotGone[i] = w.Projectiles[i].Y < -e.cfg.Projectile.CullMargin
	}
	w.Projectiles = compact(w.Projectiles, shotGone)

	hazardGone := make([]bool, len(w.Hazards))
	for i := range w.Hazards {
		if w.Hazards[i].Y > arena.H+e.cfg.Hazard.CullMargin {
			hazardGone[i] = true
			w.Player.AddScore(-e.cfg.Scoring.MissPenalty)
			r.Missed++
		}
	}
	w.Hazards = compact(w.Hazards, hazardGone)

	pickupGone := make([]bool, len(w.Pickups))
	for i := range w.Pickups {
		pickupGone[i] = w.Pickups[i].Y() > arena.H+e.cfg.Pickup.CullMargin
	}
	w.Pickups = compact(w.Pickups, pickupGone)

	return r
}
