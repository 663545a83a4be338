package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/registry"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a hot-seat game",
	Long: `Start a two-player game on one keyboard.

Without a variant a menu lets you pick one or browse past results.
After a game ends, you return to the menu to play again.

Variants:
  ladders       - Finish rule from the config (exact roll by default)
  ladders_open  - Overshooting rolls stop on the last square
  (the preset names classic and open are accepted too)

Controls:
  Space/Enter  - Roll (skips the animation while moving)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Back to menu (paused or game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Examples:
  ladders play
  ladders play open
  ladders play ladders --seed 42
  ladders play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	if len(args) == 1 {
		gameID, err := resolveVariant(args[0])
		if err != nil {
			return err
		}
		_, err = playOnce(gameID, store, cfg)
		return err
	}

	return menuLoop(store, cfg)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playOnce runs one game and logs what happened to the ledger.
func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig) (tui.RunResult, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.RunResult{Config: cfg}, err
	}

	logger.Debug("starting game", "variant", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	result, err := tui.Run(game, store, cfg)
	if err != nil {
		return result, fmt.Errorf("running game: %w", err)
	}

	if result.SaveErr != nil {
		logger.Warn("result not saved", "variant", gameID, "error", result.SaveErr)
	} else if result.MatchID != "" {
		logger.Info("result saved", "variant", gameID, "match", result.MatchID)
	}
	return result, nil
}

// menuLoop alternates between the menu, games and the results browser until
// the user quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsResults:
			goBack, err := tui.RunResults(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case menuResult.GameID != "":
			// Fresh seed per game unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			result, err := playOnce(menuResult.GameID, store, cfg)
			if err != nil {
				return err
			}
			cfg = result.Config
			if !result.BackToMenu {
				return nil
			}
		}
	}
}
