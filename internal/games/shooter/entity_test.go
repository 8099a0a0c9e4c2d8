package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

const dt = 1.0 / 60.0

func newTestWorld() World {
	return NewWorld(config.DefaultShooterConfig())
}

func TestIntent(t *testing.T) {
	tests := []struct {
		name   string
		held   []core.Action
		dx, dy float64
	}{
		{"none", nil, 0, 0},
		{"left", []core.Action{core.ActionLeft}, -1, 0},
		{"right", []core.Action{core.ActionRight}, 1, 0},
		{"up is negative y", []core.Action{core.ActionUp}, 0, -1},
		{"down", []core.Action{core.ActionDown}, 0, 1},
		{"opposite cancels", []core.Action{core.ActionLeft, core.ActionRight}, 0, 0},
		{"diagonal", []core.Action{core.ActionUp, core.ActionRight}, DiagonalFactor, -DiagonalFactor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, a := range tc.held {
				in.Hold(a)
			}
			dx, dy := Intent(in)
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Intent() = (%v, %v), want (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestIntentIgnoresPressedOnly(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	if dx, dy := Intent(in); dx != 0 || dy != 0 {
		t.Errorf("Intent() from a press without hold = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	w := newTestWorld()
	p := &w.Player

	for iter := 0; iter < 600; iter++ {
		p.Update(-DiagonalFactor, -DiagonalFactor, dt, w.Arena)
	}
	if p.X != p.W/2 || p.Y != p.H/2 {
		t.Errorf("top-left clamp = (%v, %v), want (%v, %v)", p.X, p.Y, p.W/2, p.H/2)
	}

	for iter := 0; iter < 600; iter++ {
		p.Update(1, 1, dt, w.Arena)
	}
	if p.X != w.Arena.W-p.W/2 || p.Y != w.Arena.H-p.H/2 {
		t.Errorf("bottom-right clamp = (%v, %v), want (%v, %v)", p.X, p.Y, w.Arena.W-p.W/2, w.Arena.H-p.H/2)
	}
}

func TestPlayerCooldown(t *testing.T) {
	w := newTestWorld()
	p := &w.Player

	if !p.CanShoot() {
		t.Fatal("fresh player should be able to shoot")
	}
	p.Shoot()
	if p.CanShoot() {
		t.Error("player should not shoot right after shooting")
	}

	p.Update(0, 0, 0.1, w.Arena)
	if p.CanShoot() {
		t.Error("player should not shoot halfway through the cooldown")
	}

	p.Update(0, 0, 0.5, w.Arena)
	if p.Cooldown != 0 {
		t.Errorf("cooldown should floor at 0, got %v", p.Cooldown)
	}
	if !p.CanShoot() {
		t.Error("player should shoot once the cooldown expired")
	}
}

func TestPlayerHealthAndScoreFloors(t *testing.T) {
	w := newTestWorld()
	p := &w.Player

	p.Damage(p.MaxHealth + 3)
	if p.Health != 0 {
		t.Errorf("Health = %d, want 0", p.Health)
	}
	p.Heal(p.MaxHealth + 3)
	if p.Health != p.MaxHealth {
		t.Errorf("Health = %d, want %d", p.Health, p.MaxHealth)
	}

	p.AddScore(3)
	p.AddScore(-5)
	if p.Score != 0 {
		t.Errorf("Score = %d, want 0", p.Score)
	}
}

func TestHazardReflectsAtWalls(t *testing.T) {
	arena := Arena{W: 960, H: 640}
	h := Hazard{X: 25, Y: 100, W: 40, H: 34, Speed: 60, Drift: -40}

	h.Update(0.5, arena)
	if h.X != 20 {
		t.Errorf("X = %v, want clamped to 20", h.X)
	}
	if h.Drift != 40 {
		t.Errorf("Drift = %v, want reversed to 40", h.Drift)
	}
	if h.Y != 130 {
		t.Errorf("Y = %v, want 130", h.Y)
	}

	h = Hazard{X: 935, Y: 0, W: 40, H: 34, Drift: 40}
	h.Update(0.5, arena)
	if h.X != 940 || h.Drift != -40 {
		t.Errorf("right wall: X = %v, Drift = %v, want 940, -40", h.X, h.Drift)
	}
}

func TestProjectileMovesUp(t *testing.T) {
	b := Projectile{X: 100, Y: 300, W: 8, H: 16, Speed: 600}
	b.Update(0.5)
	if b.Y != 0 || b.X != 100 {
		t.Errorf("projectile at (%v, %v), want (100, 0)", b.X, b.Y)
	}
}

func TestPickupFallsAndBobs(t *testing.T) {
	p := Pickup{X: 100, BaseY: 0, W: 28, H: 22, FallSpeed: 30, Amplitude: 2, Rate: 3}
	if p.Y() != 0 {
		t.Fatalf("Y() at phase 0 = %v, want 0", p.Y())
	}

	p.Update(1)
	if p.BaseY != 30 {
		t.Errorf("BaseY = %v, want 30", p.BaseY)
	}
	want := 30 + 2*math.Sin(3)
	if math.Abs(p.Y()-want) > 1e-9 {
		t.Errorf("Y() = %v, want %v", p.Y(), want)
	}
	if math.Abs(p.Y()-p.BaseY) > p.Amplitude {
		t.Errorf("bob offset %v exceeds amplitude", p.Y()-p.BaseY)
	}
}

func TestWorldReset(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w := NewWorld(cfg)

	w.Projectiles = append(w.Projectiles, Projectile{})
	w.Hazards = append(w.Hazards, Hazard{})
	w.Pickups = append(w.Pickups, Pickup{})
	w.Player.Score = 99
	w.Player.Level = 4
	w.Player.Health = 1
	w.Player.Cooldown = 0.1
	w.Player.X = 10

	w.Reset(cfg)

	if len(w.Projectiles)+len(w.Hazards)+len(w.Pickups) != 0 {
		t.Error("Reset should clear all entities")
	}
	p := w.Player
	if p.Score != 0 || p.Level != 1 || p.Health != cfg.Player.MaxHealth || p.Cooldown != 0 {
		t.Errorf("Reset player = %+v", p)
	}
	if p.X != cfg.Arena.Width/2 || p.Y != cfg.Arena.Height-cfg.Player.StartOffset {
		t.Errorf("Reset position = (%v, %v)", p.X, p.Y)
	}
}

func TestCompact(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got := compact(items, []bool{true, false, true, false, false})
	want := []int{2, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("compact() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("compact() = %v, want %v", got, want)
		}
	}
}
