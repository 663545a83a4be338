// ladders is a two-player hot-seat snakes and ladders game for the terminal.
//
// Usage:
//
//	ladders play [variant]   - Play a variant (menu when omitted)
//	ladders board            - Print the configured board
//	ladders simulate         - Play headless games with a seeded or scripted die
//	ladders stats [variant]  - Show recorded results
//	ladders list             - List available variants
//	ladders serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set results database path ("" disables it)
//	--config <path>      - Use a custom board/rules YAML
//	--log-level <level>  - debug, info, warn or error
//
// Unset flags fall back to the LADDERS_FPS, LADDERS_SEED, LADDERS_DB,
// LADDERS_CONFIG and LADDERS_LOG_LEVEL environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/games/ladders"
	"github.com/vovakirdan/tui-ladders/internal/registry"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

const defaultDBPath = "~/.ladders/results.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ladders"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes & Ladders - a hot-seat board game in your terminal",
	Long: `Snakes & Ladders for two players sharing one keyboard.

Available commands:
  play      - Play a variant (or pick one from a menu)
  board     - Print the configured board and its shortcuts
  simulate  - Play headless games and print a summary
  stats     - View recorded results
  list      - Show all variants
  serve     - Start SSH server for remote play

Examples:
  ladders play
  ladders play ladders_open
  ladders board --config ./my-board.yaml
  ladders simulate --games 100 --seed 42
  ladders serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, `Path to results database ("" disables it)`)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board/rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies environment overrides and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	ladders.SetConfigPath(flagConfig)
	return nil
}

// applyEnv fills flags that were not set on the command line from LADDERS_* variables.
func applyEnv(cmd *cobra.Command) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if e.DBPath != "" && !flags.Changed("db") {
		flagDBPath = e.DBPath
	}
	if e.ConfigPath != "" && !flags.Changed("config") {
		flagConfig = e.ConfigPath
	}
	if e.Seed != 0 && !flags.Changed("seed") {
		flagSeed = e.Seed
	}
	if e.TickRate > 0 && !flags.Changed("fps") {
		flagFPS = e.TickRate
	}
	if e.LogLevel != "" && !flags.Changed("log-level") {
		flagLogLevel = e.LogLevel
	}
	return nil
}

// openStore opens the results ledger. Returns nil when it is disabled or
// cannot be opened; games still work without it.
func openStore() *storage.Store {
	if flagDBPath == "" {
		logger.Debug("results ledger disabled")
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// resolveVariant accepts a variant ID or a preset name.
func resolveVariant(name string) (string, error) {
	if registry.Exists(name) {
		return name, nil
	}
	if preset, ok := config.ParsePreset(name); ok {
		return ladders.VariantOf(preset), nil
	}
	return "", fmt.Errorf("unknown variant %q (run 'ladders list' to see variants)", name)
}
