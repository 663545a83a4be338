package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/games/ladders"
	"github.com/vovakirdan/tui-ladders/internal/rules"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var (
	flagSimGames    int
	flagSimRolls    string
	flagSimVariant  string
	flagSimMaxTurns int
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless games and print a summary",
	Long: `Play games without a terminal UI, rolling for both players.

Rolls come from a die seeded with --seed, or from a scripted list given
with --rolls (repeated when it runs out). Each turn is logged at debug
level. With --record, finished games are written to the results ledger.

Examples:
  ladders simulate --games 1000
  ladders simulate --seed 42 --log-level debug
  ladders simulate --rolls 3,4,6,6,2 --variant open
  ladders simulate --games 20 --record`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of games to play")
	simulateCmd.Flags().StringVar(&flagSimRolls, "rolls", "", "Comma-separated scripted rolls, e.g. 3,4,6")
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", ladders.IDClassic, "Variant or preset to play")
	simulateCmd.Flags().IntVar(&flagSimMaxTurns, "max-turns", 1000, "Give up on a game after this many turns (0 = no limit)")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Write finished games to the results ledger")
}

// parseRolls parses a comma-separated roll list.
func parseRolls(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	rolls := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		r, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid roll %q: %w", f, err)
		}
		if r < rules.MinRoll || r > rules.MaxRoll {
			return nil, fmt.Errorf("invalid roll %d: %w", r, rules.ErrInvalidRoll)
		}
		rolls = append(rolls, r)
	}
	if len(rolls) == 0 {
		return nil, errors.New("no rolls given")
	}
	return rolls, nil
}

// simSummary aggregates simulated games.
type simSummary struct {
	games    int
	wins     [2]int
	stalled  int
	turns    int
	minTurns int
	maxTurns int
}

func (s *simSummary) add(state rules.GameState) {
	s.games++
	s.wins[int(state.Winner)-1]++
	s.turns += state.Turns
	if s.minTurns == 0 || state.Turns < s.minTurns {
		s.minTurns = state.Turns
	}
	s.maxTurns = max(s.maxTurns, state.Turns)
}

func (s *simSummary) print(variant string) {
	fmt.Printf("Simulated %d game(s) of %s\n", s.games+s.stalled, variant)
	fmt.Println()
	if s.games > 0 {
		fmt.Printf("  Player 1 wins: %d (%.1f%%)\n", s.wins[0], 100*float64(s.wins[0])/float64(s.games))
		fmt.Printf("  Player 2 wins: %d (%.1f%%)\n", s.wins[1], 100*float64(s.wins[1])/float64(s.games))
		fmt.Printf("  Turns: avg %.1f, min %d, max %d\n", float64(s.turns)/float64(s.games), s.minTurns, s.maxTurns)
	}
	if s.stalled > 0 {
		fmt.Printf("  Unfinished (turn limit): %d\n", s.stalled)
	}
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimGames < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", flagSimGames)
	}

	variant, err := resolveVariant(flagSimVariant)
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(variant)
	if err != nil {
		return err
	}

	var die dice.Die
	if flagSimRolls != "" {
		rolls, err := parseRolls(flagSimRolls)
		if err != nil {
			return err
		}
		die = dice.NewSequence(rolls...)
	} else {
		die = dice.NewSeeded(flagSeed)
	}

	var store *storage.Store
	if flagSimRecord {
		if store = openStore(); store == nil {
			return errors.New("--record needs a results database (see --db)")
		}
		defer store.Close()
	}

	var summary simSummary
	for i := range flagSimGames {
		engine, err := cfg.NewEngine()
		if err != nil {
			return err
		}

		gameLog := logger.With("game", i+1)
		start := time.Now()
		tally, err := ladders.Autoplay(engine, die, flagSimMaxTurns, func(out rules.TurnOutcome) {
			gameLog.Debug("turn",
				"player", out.Player,
				"roll", out.Roll,
				"from", out.From,
				"to", out.FinalPosition,
				"message", ladders.Conclusion(out),
			)
		})
		if errors.Is(err, ladders.ErrTurnLimit) {
			gameLog.Warn("game did not finish", "error", err)
			summary.stalled++
			continue
		}
		if err != nil {
			return err
		}

		state := engine.State()
		summary.add(state)
		gameLog.Debug("game over", "winner", state.Winner, "turns", state.Turns)

		if store != nil {
			id, err := store.SaveMatch(ladders.NewReport(variant, state, tally), time.Since(start))
			if err != nil {
				return err
			}
			gameLog.Debug("result saved", "match", id)
		}
	}

	summary.print(variant)
	return nil
}
