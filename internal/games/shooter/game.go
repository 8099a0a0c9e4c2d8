package shooter

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/highscore"
)

// GameID identifies the shooter in logs and in the scores database.
const GameID = "shooter"

// Game is the simulation driver. It owns the world, the spawner, the
// collision engine and the phase for the lifetime of the process.
type Game struct {
	cfg      config.ShooterConfig
	schedule *config.Schedule
	runtime  core.RuntimeConfig

	world   World
	spawner *Spawner
	engine  *Engine

	phase         Phase
	showHighScore bool // Menu high score panel toggled with 2
	quit          bool
	tick          uint64

	store     highscore.Store
	highScore int
	newRecord bool // Last session beat the stored high score

	session string
	logger  *log.Logger
}

// New creates a game over cfg. The high score is loaded from store once;
// a missing or unreadable store counts as zero. A nil store keeps the high
// score in memory only and a nil logger discards output.
func New(cfg config.ShooterConfig, store highscore.Store, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store == nil {
		store = &highscore.Memory{}
	}

	schedule := config.NewSchedule(cfg)
	g := &Game{
		cfg:      cfg,
		schedule: schedule,
		runtime:  core.DefaultConfig(),
		world:    NewWorld(cfg),
		spawner:  NewSpawner(cfg, schedule, 0),
		engine:   NewEngine(cfg, schedule),
		phase:    PhaseMenu,
		store:    store,
		logger:   logger,
	}

	best, err := store.Load()
	if err != nil {
		logger.Warn("could not load high score", "error", err)
		best = 0
	}
	g.highScore = best
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shooter"
}

// Reset returns to the menu with a fresh world and reseeds the spawner.
// The loaded high score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.spawner.Reseed(runtime.Seed)
	g.world.Reset(g.cfg)
	g.spawner.Reset()
	g.phase = PhaseMenu
	g.showHighScore = false
	g.quit = false
	g.newRecord = false
	g.tick = 0
	g.session = ""
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Update(g.runtime.Delta(), in)
	return core.StepResult{State: g.State()}
}

// Update advances the game by dt seconds. Discrete events are turned into a
// phase command first; the world only advances on frames spent playing
// without a command.
func (g *Game) Update(dt float64, in core.InputFrame) {
	g.tick++

	if in.Has(core.ActionQuit) {
		g.quit = true
		return
	}

	cmd := commandFor(g.phase, in)
	if cmd != CmdNone {
		g.Apply(cmd)
		return
	}

	if g.phase == PhasePlaying {
		g.simulate(dt, in)
	}
}

// Apply runs one command through the state machine and performs its effect.
func (g *Game) Apply(cmd Command) {
	from := g.phase
	to, effect := Transition(from, cmd)
	g.phase = to

	switch effect {
	case EffectReset:
		g.startSession()
	case EffectQuit:
		g.quit = true
	case EffectToggleHighScore:
		g.showHighScore = !g.showHighScore
	}

	if from != to {
		g.logger.Debug("phase change", "session", g.session, "from", from, "to", to, "command", cmd)
	}
	if from == PhasePlaying && to == PhaseMenu {
		g.logger.Info("session abandoned", "session", g.session, "score", g.world.Player.Score)
	}
}

// startSession clears the world and restarts the spawn timers.
func (g *Game) startSession() {
	g.world.Reset(g.cfg)
	g.spawner.Reset()
	g.newRecord = false
	g.showHighScore = false
	g.session = uuid.New().String()
	g.logger.Info("session started", "session", g.session, "seed", g.runtime.Seed)
}

// simulate runs one playing frame in a fixed order: fire, move, cull,
// spawn, collide, then check for the end of the session.
func (g *Game) simulate(dt float64, in core.InputFrame) {
	w := &g.world
	p := &w.Player

	if in.Has(core.ActionFire) && p.CanShoot() {
		g.fire()
	}

	dx, dy := Intent(in)
	p.Update(dx, dy, dt, w.Arena)

	for i := range w.Projectiles {
		w.Projectiles[i].Update(dt)
	}
	for i := range w.Hazards {
		w.Hazards[i].Update(dt, w.Arena)
	}
	for i := range w.Pickups {
		w.Pickups[i].Update(dt)
	}

	report := g.engine.Cull(w)
	g.spawner.Update(dt, w)
	report.Add(g.engine.Resolve(w))

	if report.LevelUps > 0 {
		g.logger.Info("level up", "session", g.session, "level", p.Level, "score", p.Score)
	}
	if report.Hits > 0 {
		g.logger.Debug("player hit", "session", g.session, "hits", report.Hits, "health", p.Health)
	}

	if p.Health <= 0 {
		g.finish()
	}
}

// fire launches a projectile just above the player and restarts the cooldown.
func (g *Game) fire() {
	p := &g.world.Player
	pc := g.cfg.Projectile
	g.world.Projectiles = append(g.world.Projectiles, Projectile{
		X:     p.X,
		Y:     p.Y - p.H/2 - pc.Gap,
		W:     pc.Width,
		H:     pc.Height,
		Speed: pc.Speed,
	})
	p.Shoot()
}

// finish ends the session and persists a beaten high score. A failed save
// is logged and otherwise ignored.
func (g *Game) finish() {
	g.phase = PhaseGameOver
	score := g.world.Player.Score

	g.logger.Info("session over", "session", g.session, "score", score, "level", g.world.Player.Level)

	if score <= g.highScore {
		return
	}
	g.highScore = score
	g.newRecord = true
	if err := g.store.Save(score); err != nil {
		g.logger.Warn("could not save high score", "score", score, "error", err)
	}
}

// State returns the summary the platform needs after each tick.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Player.Score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		Quit:     g.quit,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// HighScore returns the best score known to this process.
func (g *Game) HighScore() int {
	return g.highScore
}
