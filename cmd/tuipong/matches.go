package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuipong/tuipong/internal/platform/tui"
	"github.com/tuipong/tuipong/internal/storage"
)

var (
	flagMatchLimit  int
	flagInteractive bool
	flagClear       bool
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show match history and statistics",
	Long: `Display recent matches and aggregate win/loss statistics.

Examples:
  tuipong matches
  tuipong matches --limit 50
  tuipong matches --interactive
  tuipong matches --clear`,
	Run: runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&flagMatchLimit, "limit", 10, "Number of recent matches to show")
	matchesCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse history in a full-screen table")
	matchesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the entire match history")
}

func runMatches(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	records, err := store.RecentMatches(flagMatchLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tuipong play' to record your first match!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-7s  %-10s  %-8s  %s\n", "Result", "Score", "Difficulty", "Duration", "Date")
	fmt.Printf("  %-6s  %-7s  %-10s  %-8s  %s\n", "------", "-----", "----------", "--------", "----")

	for _, rec := range records {
		result := "LOSS"
		if rec.PlayerWon() {
			result = "WIN"
		}
		fmt.Printf("  %-6s  %-7s  %-10s  %-8s  %s\n",
			result,
			fmt.Sprintf("%d-%d", rec.ScoreLeft, rec.ScoreRight),
			rec.Difficulty,
			fmt.Sprintf("%d:%02d", rec.Duration/60, rec.Duration%60),
			rec.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Aggregate stats
	stats, err := store.GetStats()
	if err == nil && stats.MatchesCount > 0 {
		fmt.Println()
		fmt.Printf("Total: %d matches, %d wins, %d losses (%.0f%% win rate)\n",
			stats.MatchesCount, stats.PlayerWins, stats.ComputerWins, stats.WinRate()*100)
	}
}
