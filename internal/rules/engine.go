package rules

import (
	"errors"
	"fmt"
)

// Die faces accepted by ApplyRoll.
const (
	MinRoll = 1
	MaxRoll = 6
)

// Contract violations. Each leaves the game state untouched.
var (
	ErrInvalidRoll     = errors.New("invalid roll")
	ErrGameAlreadyOver = errors.New("game already over")
	ErrOutOfTurn       = errors.New("not this player's turn")
)

// Engine owns a GameState and applies rolls to it.
// It does no locking; callers serialize ApplyRoll per engine.
type Engine struct {
	board       Board
	exactFinish bool
	state       GameState
}

// Option configures an Engine.
type Option func(*Engine)

// WithExactFinish sets whether the goal must be reached with an exact roll.
func WithExactFinish(exact bool) Option {
	return func(e *Engine) {
		e.exactFinish = exact
	}
}

// NewEngine starts a new game on the given board with both players on
// the start square and Player1 to move.
func NewEngine(board Board, opts ...Option) *Engine {
	e := &Engine{
		board:       board,
		exactFinish: true,
		state:       newGameState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Board returns the engine's board.
func (e *Engine) Board() Board {
	return e.board
}

// ExactFinish reports whether overshooting rolls are rejected.
func (e *Engine) ExactFinish() bool {
	return e.exactFinish
}

// State returns a copy of the current game state.
func (e *Engine) State() GameState {
	return e.state
}

// Reset discards the current game and starts a fresh one on the same board.
func (e *Engine) Reset() {
	e.state = newGameState()
}

// ApplyRollFor is ApplyRoll with an assertion that player is the one to move.
func (e *Engine) ApplyRollFor(player PlayerID, roll int) (TurnOutcome, error) {
	if e.state.Winner.Valid() {
		return TurnOutcome{}, fmt.Errorf("%w: %s already won", ErrGameAlreadyOver, e.state.Winner)
	}
	if player != e.state.CurrentTurn {
		return TurnOutcome{}, fmt.Errorf("%w: %s rolled but it is %s's turn", ErrOutOfTurn, player, e.state.CurrentTurn)
	}
	return e.ApplyRoll(roll)
}

// ApplyRoll moves the current player by roll squares and resolves the turn.
func (e *Engine) ApplyRoll(roll int) (TurnOutcome, error) {
	if e.state.Winner.Valid() {
		return TurnOutcome{}, fmt.Errorf("%w: %s already won", ErrGameAlreadyOver, e.state.Winner)
	}
	if roll < MinRoll || roll > MaxRoll {
		return TurnOutcome{}, fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidRoll, roll, MinRoll, MaxRoll)
	}

	player := e.state.CurrentTurn
	from := e.state.Position(player)
	size := e.board.Size()
	target := from + roll

	out := TurnOutcome{
		Player: player,
		Roll:   roll,
		From:   from,
	}

	if target > size {
		if e.exactFinish {
			out.RejectedOvershoot = true
			out.FinalPosition = from
			e.endTurn(&out)
			return out, nil
		}
		target = size
	}

	out.Path = make([]int, 0, target-from)
	for sq := from + 1; sq <= target; sq++ {
		out.Path = append(out.Path, sq)
	}

	final := target
	if to, ok := e.board.Snake(target); ok {
		out.Shortcut = &Shortcut{Kind: Snake, From: target, To: to}
		final = to
	} else if to, ok := e.board.Ladder(target); ok {
		out.Shortcut = &Shortcut{Kind: Ladder, From: target, To: to}
		final = to
	}

	e.state.Players[player-1].Position = final
	out.FinalPosition = final

	if final == size {
		e.state.Winner = player
		out.Winner = player
	}

	e.endTurn(&out)
	return out, nil
}

// endTurn counts the turn and hands it to the opponent unless the game is over.
func (e *Engine) endTurn(out *TurnOutcome) {
	e.state.Turns++
	if e.state.Winner.Valid() {
		e.state.CurrentTurn = NoPlayer
		out.NextTurn = NoPlayer
		return
	}
	e.state.CurrentTurn = e.state.CurrentTurn.Other()
	out.NextTurn = e.state.CurrentTurn
}
