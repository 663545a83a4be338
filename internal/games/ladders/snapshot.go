package ladders

import "github.com/vovakirdan/tui-ladders/internal/rules"

// Snapshot is a read-only view of a game, used by tests.
type Snapshot struct {
	Tick        uint64
	CurrentTurn rules.PlayerID
	Positions   [2]int // engine positions
	Shown       [2]int // positions on display
	Winner      rules.PlayerID
	Turns       int
	Animating   bool
	Paused      bool
	LastRoll    int
	Message     string
	Warning     string
}

// Snapshot returns the current view of the game.
func (g *Game) Snapshot() Snapshot {
	state := g.engine.State()
	return Snapshot{
		Tick:        g.tick,
		CurrentTurn: state.CurrentTurn,
		Positions:   [2]int{state.Position(rules.Player1), state.Position(rules.Player2)},
		Shown:       g.shown,
		Winner:      state.Winner,
		Turns:       state.Turns,
		Animating:   g.playback != nil,
		Paused:      g.paused,
		LastRoll:    g.lastRoll,
		Message:     g.message,
		Warning:     g.warning,
	}
}
