package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuipong/tuipong/internal/config"
	"github.com/tuipong/tuipong/internal/core"
	"github.com/tuipong/tuipong/internal/platform/tui"
	"github.com/tuipong/tuipong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the computer",
	Long: `Start a match against the computer. First to 11 points wins.

Controls:
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  P/Space    - Pause
  R          - Restart (after the match ends)
  Q/Esc      - Quit

Difficulty options:
  easy   - Slow, inaccurate opponent
  normal - Balanced opponent (default)
  hard   - Fast opponent with near-perfect prediction

Examples:
  tuipong play
  tuipong play --difficulty easy
  tuipong play --config ./my-pong.yaml
  tuipong play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game config and apply the difficulty preset
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(gameCfg, store, rt, flagDifficulty)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
