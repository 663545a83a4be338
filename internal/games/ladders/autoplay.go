package ladders

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

// ErrTurnLimit is returned by Autoplay when nobody wins within the turn limit.
var ErrTurnLimit = errors.New("ladders: turn limit reached")

// Tally counts per-player events for the results ledger.
type Tally struct {
	SnakeBites [2]int
	Ladders    [2]int
	Overshoots [2]int
}

// Add records one turn.
func (t *Tally) Add(out rules.TurnOutcome) {
	if !out.Player.Valid() {
		return
	}
	i := int(out.Player) - 1
	if out.RejectedOvershoot {
		t.Overshoots[i]++
	}
	if out.Shortcut != nil {
		switch out.Shortcut.Kind {
		case rules.Snake:
			t.SnakeBites[i]++
		case rules.Ladder:
			t.Ladders[i]++
		}
	}
}

// NewReport summarizes a game for the results ledger.
func NewReport(variant string, state rules.GameState, t Tally) core.MatchReport {
	return core.MatchReport{
		Variant:        variant,
		Winner:         int(state.Winner),
		Turns:          state.Turns,
		Positions:      [2]int{state.Position(rules.Player1), state.Position(rules.Player2)},
		SnakeBites:     t.SnakeBites,
		LaddersClimbed: t.Ladders,
		Overshoots:     t.Overshoots,
	}
}

// PresetOf returns the rule preset of a variant ID.
func PresetOf(id string) (config.Preset, bool) {
	switch id {
	case IDClassic:
		return config.PresetClassic, true
	case IDOpen:
		return config.PresetOpen, true
	}
	return "", false
}

// VariantOf returns the variant ID of a rule preset.
func VariantOf(preset config.Preset) string {
	if preset == config.PresetOpen {
		return IDOpen
	}
	return IDClassic
}

// Autoplay rolls for both players until someone wins. onTurn, if set, sees
// every outcome. maxTurns <= 0 means no limit.
func Autoplay(e *rules.Engine, d dice.Die, maxTurns int, onTurn func(rules.TurnOutcome)) (Tally, error) {
	var t Tally
	for e.State().Status() == rules.InProgress {
		if maxTurns > 0 && e.State().Turns >= maxTurns {
			return t, fmt.Errorf("%w after %d turns", ErrTurnLimit, maxTurns)
		}
		out, err := e.ApplyRoll(d.Roll())
		if err != nil {
			return t, err
		}
		t.Add(out)
		if onTurn != nil {
			onTurn(out)
		}
	}
	return t, nil
}
