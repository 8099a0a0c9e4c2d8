package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show the stored high score",
	Long: `Display the high score kept by the selected store.

Examples:
  shooter highscore
  shooter highscore --store sqlite
  shooter highscore reset`,
	Args: cobra.NoArgs,
	RunE: runHighScore,
}

var highscoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored high score",
	Args:  cobra.NoArgs,
	RunE:  runHighScoreReset,
}

func init() {
	highscoreCmd.AddCommand(highscoreResetCmd)
}

func runHighScore(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	score, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if score == 0 {
		fmt.Fprintln(out, "No high score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'shooter play' to set the first one!")
		return nil
	}
	fmt.Fprintf(out, "High score: %d\n", score)
	return nil
}

func runHighScoreReset(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "High score cleared.")
	return nil
}
