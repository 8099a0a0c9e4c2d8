package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// DiagonalFactor scales both axes when moving diagonally so diagonal speed
// matches axial speed.
const DiagonalFactor = 0.7071

// Arena is the fixed play area. Coordinates are y-down: the top edge is y=0.
type Arena struct {
	W, H float64
}

// Player is the avatar. It is created once per game and reset between sessions.
type Player struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Health    int
	MaxHealth int
	Score     int
	Level     int

	Cooldown     float64 // Seconds until the next shot is allowed
	ShotCooldown float64 // Cooldown applied after each shot
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Update moves the player along the direction intent and ticks the shot cooldown.
// The position is clamped so the whole avatar stays inside the arena.
func (p *Player) Update(dx, dy, dt float64, arena Arena) {
	p.X += dx * p.Speed * dt
	p.Y += dy * p.Speed * dt

	halfW, halfH := p.W/2, p.H/2
	p.X = core.ClampF(p.X, halfW, arena.W-halfW)
	p.Y = core.ClampF(p.Y, halfH, arena.H-halfH)

	if p.Cooldown > 0 {
		p.Cooldown -= dt
		if p.Cooldown < 0 {
			p.Cooldown = 0
		}
	}
}

// CanShoot reports whether the cooldown has expired.
func (p *Player) CanShoot() bool {
	return p.Cooldown <= 0
}

// Shoot restarts the cooldown.
func (p *Player) Shoot() {
	p.Cooldown = p.ShotCooldown
}

// Damage removes health, never going below zero.
func (p *Player) Damage(n int) {
	p.Health = max(0, p.Health-n)
}

// Heal restores health, never exceeding the maximum.
func (p *Player) Heal(n int) {
	p.Health = min(p.MaxHealth, p.Health+n)
}

// AddScore adjusts the score by delta, never going below zero.
func (p *Player) AddScore(delta int) {
	p.Score = max(0, p.Score+delta)
}

// Intent builds the movement direction from held input.
// Each axis contributes -1, 0 or +1; up is negative y.
func Intent(in core.InputFrame) (dx, dy float64) {
	if in.Holds(core.ActionLeft) {
		dx--
	}
	if in.Holds(core.ActionRight) {
		dx++
	}
	if in.Holds(core.ActionUp) {
		dy--
	}
	if in.Holds(core.ActionDown) {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx *= DiagonalFactor
		dy *= DiagonalFactor
	}
	return dx, dy
}

// Projectile is a player shot travelling straight up.
type Projectile struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Box returns the projectile's collision box.
func (b *Projectile) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Update moves the projectile up.
func (b *Projectile) Update(dt float64) {
	b.Y -= b.Speed * dt
}

// Hazard is a falling threat with lateral drift.
type Hazard struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Fall speed
	Drift float64 // Signed lateral speed
}

// Box returns the hazard's collision box.
func (h *Hazard) Box() core.Box {
	return core.NewBox(h.X, h.Y, h.W, h.H)
}

// Update moves the hazard down and sideways. At a side wall the hazard is
// clamped to the wall and its drift reverses.
func (h *Hazard) Update(dt float64, arena Arena) {
	h.Y += h.Speed * dt
	h.X += h.Drift * dt

	halfW := h.W / 2
	if h.X < halfW {
		h.X = halfW
		h.Drift = -h.Drift
	}
	if h.X > arena.W-halfW {
		h.X = arena.W - halfW
		h.Drift = -h.Drift
	}
}

// Pickup is a falling collectible that bobs around its baseline.
type Pickup struct {
	X         float64
	BaseY     float64 // Baseline without the bobbing offset
	W, H      float64
	Value     int
	FallSpeed float64
	Amplitude float64
	Rate      float64 // Phase advance in radians per second
	Phase     float64
}

// Y returns the displayed vertical position.
func (p *Pickup) Y() float64 {
	return p.BaseY + p.Amplitude*math.Sin(p.Phase)
}

// Box returns the pickup's collision box at its displayed position.
func (p *Pickup) Box() core.Box {
	return core.NewBox(p.X, p.Y(), p.W, p.H)
}

// Update lets the pickup drift down and advances its bobbing phase.
func (p *Pickup) Update(dt float64) {
	p.BaseY += p.FallSpeed * dt
	p.Phase += p.Rate * dt
}
