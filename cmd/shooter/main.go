// shooter is a real-time arcade shooter for the terminal.
//
// Usage:
//
//	shooter                  - Play (same as "shooter play")
//	shooter play             - Play
//	shooter highscore        - Show the stored high score
//	shooter highscore reset  - Clear the stored high score
//	shooter config           - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for reproducible gameplay
//	--config <path>           - Custom game config YAML
//	--difficulty <preset>     - easy, normal, hard or fixed
//	--store <json|sqlite>     - High score backend (default: json)
//	--highscore-file <path>   - JSON high score file (default: ~/.arcade/shooter_highscore.json)
//	--db <path>               - SQLite database (default: ~/.arcade/scores.db)
//	--log-file <path>         - Write logs to a file (the terminal belongs to the game)
//	--log-level <level>       - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagConfig        string
	flagDifficulty    string
	flagStore         string
	flagHighScoreFile string
	flagDBPath        string
	flagLogFile       string
	flagLogLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Terminal Shooter - shoot falling hazards, collect pickups",
	Long: `Terminal Shooter is a real-time arcade game for your terminal.
Move, shoot down falling hazards before they reach the bottom and
collect pickups to score and level up.

Available commands:
  play       - Play the game (default)
  highscore  - Show or reset the stored high score
  config     - Print the effective game config

Examples:
  shooter
  shooter play --difficulty hard
  shooter play --seed 42 --fps 30
  shooter --store sqlite highscore
  shooter highscore reset`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagStore, "store", storeJSON, "High score backend: json or sqlite")
	pf.StringVar(&flagHighScoreFile, "highscore-file", "~/.arcade/shooter_highscore.json", "Path to the JSON high score file")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}
