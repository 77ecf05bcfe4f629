// tuipong is a terminal Pong game played against a computer opponent.
//
// Usage:
//
//	tuipong play              - Play a match against the computer
//	tuipong serve             - Start SSH server for remote play
//	tuipong matches           - Show match history and statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tuipong/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuipong",
	Short: "Pong in your terminal, against a computer opponent",
	Long: `tuipong is a terminal rendition of Pong. You control the left paddle,
the computer controls the right one; first to 11 points wins.

Available commands:
  play     - Play a match against the computer
  serve    - Start SSH server for remote play
  matches  - View match history and statistics

Examples:
  tuipong play
  tuipong play --difficulty hard
  tuipong serve --ssh :2222
  tuipong matches`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tuipong/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(matchesCmd)
}
