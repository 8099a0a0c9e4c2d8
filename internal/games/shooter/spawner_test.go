package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func newTestSpawner(seed int64) (*Spawner, config.ShooterConfig) {
	cfg := config.DefaultShooterConfig()
	return NewSpawner(cfg, config.NewSchedule(cfg), seed), cfg
}

func TestSpawnerStartsAtBase(t *testing.T) {
	s, cfg := newTestSpawner(1)
	hazard, pickup := s.Timers()
	if hazard != cfg.Spawn.Hazard.Base || pickup != cfg.Spawn.Pickup.Base {
		t.Errorf("Timers() = (%v, %v), want (%v, %v)", hazard, pickup, cfg.Spawn.Hazard.Base, cfg.Spawn.Pickup.Base)
	}
}

func TestSpawnerHazard(t *testing.T) {
	s, cfg := newTestSpawner(42)
	w := NewWorld(cfg)

	hazards, pickups := s.Update(1.2, &w)
	if hazards != 1 || pickups != 0 {
		t.Fatalf("Update() spawned (%d, %d), want (1, 0)", hazards, pickups)
	}

	h := w.Hazards[0]
	if h.X < cfg.Hazard.SpawnMargin || h.X > w.Arena.W-cfg.Hazard.SpawnMargin {
		t.Errorf("hazard X = %v outside spawn margins", h.X)
	}
	if h.Y != -cfg.Hazard.SpawnMargin {
		t.Errorf("hazard Y = %v, want %v", h.Y, -cfg.Hazard.SpawnMargin)
	}
	if h.Speed < 40 || h.Speed > 160 {
		t.Errorf("hazard speed = %v, want within [40, 160]", h.Speed)
	}
	if h.Drift < -cfg.Hazard.Drift || h.Drift > cfg.Hazard.Drift {
		t.Errorf("hazard drift = %v out of range", h.Drift)
	}

	hazard, pickup := s.Timers()
	if hazard != 1.2 {
		t.Errorf("hazard timer = %v, want reset to 1.2", hazard)
	}
	if pickup < 1.29 || pickup > 1.31 {
		t.Errorf("pickup timer = %v, want about 1.3", pickup)
	}
}

func TestSpawnerPickup(t *testing.T) {
	s, cfg := newTestSpawner(7)
	w := NewWorld(cfg)
	w.Player.Level = 3

	_, pickups := s.Update(2.5, &w)
	if pickups != 1 {
		t.Fatalf("Update() spawned %d pickups, want 1", pickups)
	}

	p := w.Pickups[0]
	if p.Value != 14 {
		t.Errorf("pickup value at level 3 = %d, want 14", p.Value)
	}
	if p.BaseY != -cfg.Pickup.SpawnHeight {
		t.Errorf("pickup BaseY = %v, want %v", p.BaseY, -cfg.Pickup.SpawnHeight)
	}
	if p.X < cfg.Pickup.SpawnMargin || p.X > w.Arena.W-cfg.Pickup.SpawnMargin {
		t.Errorf("pickup X = %v outside spawn margins", p.X)
	}

	_, pickup := s.Timers()
	want := 2.5 - 2*0.07
	if pickup < want-1e-9 || pickup > want+1e-9 {
		t.Errorf("pickup timer = %v, want %v", pickup, want)
	}
}

func TestSpawnerIntervalsAccelerate(t *testing.T) {
	s, cfg := newTestSpawner(3)
	w := NewWorld(cfg)
	w.Player.Level = 50

	s.Update(1.2, &w)
	hazard, _ := s.Timers()
	if hazard != cfg.Spawn.Hazard.Floor {
		t.Errorf("hazard timer at level 50 = %v, want floor %v", hazard, cfg.Spawn.Hazard.Floor)
	}

	lo, hi := 40.0+49*4, 160.0+49*8
	if sp := w.Hazards[0].Speed; sp < lo || sp > hi {
		t.Errorf("hazard speed at level 50 = %v, want within [%v, %v]", sp, lo, hi)
	}
}

func TestSpawnerNoSpawnBeforeTimer(t *testing.T) {
	s, cfg := newTestSpawner(1)
	w := NewWorld(cfg)

	for iter := 0; iter < 60; iter++ {
		s.Update(dt, &w)
	}
	if len(w.Hazards) != 0 || len(w.Pickups) != 0 {
		t.Errorf("spawned %d hazards and %d pickups in the first second", len(w.Hazards), len(w.Pickups))
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	run := func() World {
		s, cfg := newTestSpawner(12345)
		w := NewWorld(cfg)
		for iter := 0; iter < 600; iter++ {
			s.Update(dt, &w)
		}
		return w
	}

	w1, w2 := run(), run()
	if len(w1.Hazards) != len(w2.Hazards) || len(w1.Pickups) != len(w2.Pickups) {
		t.Fatalf("spawn counts differ: %d/%d vs %d/%d", len(w1.Hazards), len(w1.Pickups), len(w2.Hazards), len(w2.Pickups))
	}
	for i := range w1.Hazards {
		if w1.Hazards[i] != w2.Hazards[i] {
			t.Errorf("hazard %d differs: %+v vs %+v", i, w1.Hazards[i], w2.Hazards[i])
		}
	}
	for i := range w1.Pickups {
		if w1.Pickups[i] != w2.Pickups[i] {
			t.Errorf("pickup %d differs: %+v vs %+v", i, w1.Pickups[i], w2.Pickups[i])
		}
	}
}

func TestSpawnerReset(t *testing.T) {
	s, cfg := newTestSpawner(1)
	w := NewWorld(cfg)
	s.Update(0.7, &w)
	s.Reset()

	hazard, pickup := s.Timers()
	if hazard != cfg.Spawn.Hazard.Base || pickup != cfg.Spawn.Pickup.Base {
		t.Errorf("Timers() after Reset = (%v, %v)", hazard, pickup)
	}
}
