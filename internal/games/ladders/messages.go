package ladders

import (
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/rules"
)

// Prompt asks the given player to roll.
func Prompt(p rules.PlayerID) string {
	return fmt.Sprintf("%s, roll!", p)
}

// Rolled announces a roll while the token walks.
func Rolled(out rules.TurnOutcome) string {
	return fmt.Sprintf("%s rolled %d.", out.Player, out.Roll)
}

// ShortcutMessage announces a snake or ladder.
func ShortcutMessage(s rules.Shortcut) string {
	if s.Kind == rules.Snake {
		return "Oops, snake! Slide down."
	}
	return "Nice! Ladder up."
}

// OvershootMessage explains a rejected move.
func OvershootMessage(out rules.TurnOutcome) string {
	return fmt.Sprintf("Need exact roll. %s stays at %d.", out.Player, out.From)
}

// WinMessage announces the winner.
func WinMessage(p rules.PlayerID) string {
	return fmt.Sprintf("%s wins!", p)
}

// Conclusion is the message left on screen once a turn has played out.
func Conclusion(out rules.TurnOutcome) string {
	if out.Won() {
		return WinMessage(out.Winner)
	}
	return Prompt(out.NextTurn)
}
