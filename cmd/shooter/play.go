package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the title menu.

Controls:
  1          - Start (menu, game over)
  2          - Show high score (menu)
  3          - Quit (menu)
  WASD/Arrows- Move
  Space/Click- Fire
  P          - Pause/resume
  Esc        - Back to menu (playing, paused) / quit (menu, game over)
  Q/Ctrl+C   - Quit immediately

Difficulty options:
  easy   - 7 health
  normal - Defaults from the config
  hard   - 3 health, hazards fall 25% faster
  fixed  - Level never advances

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml
  shooter play --store sqlite --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		// The game still runs; the high score just isn't persisted.
		logger.Warn("high score store unavailable", "store", flagStore, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		store, closeStore = nil, func() {}
	}
	defer closeStore()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := shooter.New(cfg, store, logger)
	logger.Info("starting", "fps", runtime.TickRate, "seed", runtime.Seed, "difficulty", flagDifficulty, "store", flagStore)

	if err := tui.Run(game, runtime, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("exited", "highscore", game.HighScore())
	return nil
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.ShooterConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
