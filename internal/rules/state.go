package rules

import (
	"fmt"
	"iter"
	"slices"
)

// PlayerID identifies one of the two players.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// Other returns the opponent of p.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Valid reports whether p names an actual player.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

func (p PlayerID) String() string {
	if !p.Valid() {
		return "none"
	}
	return fmt.Sprintf("Player %d", int(p))
}

// Status is the lifecycle state of a game.
type Status int

const (
	InProgress Status = iota
	Won
)

func (s Status) String() string {
	if s == Won {
		return "won"
	}
	return "in progress"
}

// PlayerState holds a single player's position.
type PlayerState struct {
	Position int
}

// GameState is the complete mutable state of one game.
// Only the Engine changes it; State() hands out copies.
type GameState struct {
	Players     [2]PlayerState
	CurrentTurn PlayerID
	Winner      PlayerID
	Turns       int // completed ApplyRoll calls
}

func newGameState() GameState {
	return GameState{
		Players:     [2]PlayerState{{Position: StartSquare}, {Position: StartSquare}},
		CurrentTurn: Player1,
	}
}

// Position returns the square the given player is on, or 0 for NoPlayer.
func (s GameState) Position(p PlayerID) int {
	if !p.Valid() {
		return 0
	}
	return s.Players[p-1].Position
}

// Status reports whether the game is still running.
func (s GameState) Status() Status {
	if s.Winner.Valid() {
		return Won
	}
	return InProgress
}

// TurnOutcome describes one resolved roll.
// Outcomes are values: the engine never touches Path or Shortcut after returning.
type TurnOutcome struct {
	Player            PlayerID
	Roll              int
	From              int
	RejectedOvershoot bool

	// Path is every square walked, in order, ending on the landing square.
	// Empty when the move was rejected.
	Path []int

	// Shortcut is the snake or ladder taken after landing, if any.
	Shortcut *Shortcut

	FinalPosition int
	Winner        PlayerID // NoPlayer unless this turn won the game
	NextTurn      PlayerID // NoPlayer once the game is won
}

// Landed returns the square reached by walking, before any shortcut.
func (o TurnOutcome) Landed() int {
	if len(o.Path) == 0 {
		return o.From
	}
	return o.Path[len(o.Path)-1]
}

// Won reports whether this turn ended the game.
func (o TurnOutcome) Won() bool {
	return o.Winner.Valid()
}

// Steps yields the walked squares in order. The sequence can be replayed.
func (o TurnOutcome) Steps() iter.Seq[int] {
	return slices.Values(o.Path)
}
