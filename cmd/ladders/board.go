package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/games/ladders"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

var (
	flagBoardVariant  string
	flagBoardDefaults bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the configured board",
	Long: `Print the board layout, its snakes and ladders, and the finish rule.

The board comes from --config, ~/.ladders/configs/ladders.yaml,
./configs/ladders.yaml or the built-in classic layout, in that order.

Examples:
  ladders board
  ladders board --variant open
  ladders board --config ./my-board.yaml
  ladders board --defaults > ~/.ladders/configs/ladders.yaml`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagBoardVariant, "variant", "", "Variant or preset whose finish rule to show (default: as configured)")
	boardCmd.Flags().BoolVar(&flagBoardDefaults, "defaults", false, "Print the built-in YAML config and exit")
}

// loadGameConfig loads the board config and applies the rules of a variant.
// An empty variant keeps the configured rules.
func loadGameConfig(variant string) (config.LadderConfig, error) {
	cfg, err := config.LoadLadders(flagConfig)
	if err != nil {
		return config.LadderConfig{}, err
	}
	if variant == "" {
		return cfg, nil
	}

	id, err := resolveVariant(variant)
	if err != nil {
		return config.LadderConfig{}, err
	}
	preset, _ := ladders.PresetOf(id)
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

func runBoard(_ *cobra.Command, _ []string) error {
	if flagBoardDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig(flagBoardVariant)
	if err != nil {
		return err
	}
	board, err := cfg.NewBoard()
	if err != nil {
		return err
	}

	screen := core.NewScreen(ladders.BoardWidth, ladders.Rows(board.Size())+2)
	ladders.DrawBoard(screen, board, 0, 0, [2]int{})
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}
	fmt.Println()

	shortcuts := board.Shortcuts()
	if len(shortcuts) == 0 {
		fmt.Println("No snakes or ladders on this board.")
	} else {
		fmt.Printf("  %-6s  %4s  %4s\n", "Kind", "From", "To")
		fmt.Printf("  %-6s  %4s  %4s\n", "----", "----", "--")
		for _, s := range shortcuts {
			glyph := ladders.LadderGlyph
			if s.Kind == rules.Snake {
				glyph = ladders.SnakeGlyph
			}
			fmt.Printf("  %c %-4s  %4d  %4d\n", glyph, s.Kind, s.From, s.To)
		}
	}

	fmt.Println()
	if cfg.Rules.RequireExactFinish {
		fmt.Printf("Finish: an exact roll is needed to reach square %d.\n", board.Size())
	} else {
		fmt.Printf("Finish: any roll reaching square %d wins.\n", board.Size())
	}
	return nil
}
