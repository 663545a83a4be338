package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var (
	flagStatsBrowse bool
	flagStatsClear  bool
	flagStatsLimit  int
)

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show recorded results",
	Long: `Display win counts, aggregate statistics and recent games.

Without a variant, results of every variant are included.

Examples:
  ladders stats
  ladders stats ladders_open
  ladders stats --browse
  ladders stats open --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsBrowse, "browse", false, "Open the interactive results browser")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete recorded results")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent games to show")
}

func runStats(_ *cobra.Command, args []string) error {
	variant := ""
	if len(args) == 1 {
		id, err := resolveVariant(args[0])
		if err != nil {
			return err
		}
		variant = id
	}

	if flagDBPath == "" {
		return errors.New("results database disabled (--db \"\")")
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagStatsClear:
		n, err := store.ClearMatches(variant)
		if err != nil {
			return err
		}
		logger.Info("results cleared", "variant", variantLabel(variant), "deleted", n)
		return nil

	case flagStatsBrowse:
		cfg := runtimeConfig()
		_, err := tui.RunResults(store, variant, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	return printStats(store, variant)
}

func variantLabel(variant string) string {
	if variant == "" {
		return "all variants"
	}
	return variant
}

func printStats(store *storage.Store, variant string) error {
	wins, err := store.WinCounts(variant)
	if err != nil {
		return err
	}

	fmt.Printf("Results - %s\n", variantLabel(variant))
	fmt.Println()

	if wins.Total() == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ladders play' to record the first game!")
		return nil
	}

	fmt.Printf("  Player 1 wins: %d\n", wins.Player1)
	fmt.Printf("  Player 2 wins: %d\n", wins.Player2)

	stats, err := store.Stats(variant)
	if err != nil {
		return err
	}
	fmt.Printf("  Turns: avg %.1f, min %d, max %d\n", stats.AvgTurns, stats.MinTurns, stats.MaxTurns)
	fmt.Printf("  Snake bites: %d, ladders climbed: %d\n", stats.SnakeBites, stats.Ladders)
	fmt.Printf("  Average duration: %s\n", stats.AvgDuration.Round(time.Second))
	fmt.Printf("  Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	fmt.Println()

	records, err := store.RecentMatches(variant, flagStatsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("  %-16s  %-12s  %-6s  %5s  %9s\n", "Date", "Variant", "Winner", "Turns", "Final")
	fmt.Printf("  %-16s  %-12s  %-6s  %5s  %9s\n", "----", "-------", "------", "-----", "-----")
	for _, r := range records {
		fmt.Printf("  %-16s  %-12s  %-6s  %5d  %4d/%-4d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Variant,
			fmt.Sprintf("P%d", r.Winner),
			r.Turns,
			r.Final[0], r.Final[1],
		)
	}
	return nil
}
