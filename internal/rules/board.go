// Package rules implements the snakes and ladders rules engine.
// It is pure game logic: no I/O, no randomness, no timing. The caller
// supplies each die roll and receives a TurnOutcome describing everything
// that happened during the turn.
package rules

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

const (
	// DefaultBoardSize is the number of squares on a standard board.
	DefaultBoardSize = 100

	// StartSquare is where both players begin.
	StartSquare = 1
)

// ErrInvalidBoard is returned when a board layout breaks a topology invariant.
var ErrInvalidBoard = errors.New("invalid board")

// ShortcutKind distinguishes snakes from ladders.
type ShortcutKind int

const (
	Snake ShortcutKind = iota + 1
	Ladder
)

// String returns a human-readable name for the kind.
func (k ShortcutKind) String() string {
	switch k {
	case Snake:
		return "snake"
	case Ladder:
		return "ladder"
	default:
		return "unknown"
	}
}

// Shortcut is a fixed relocation from one square to another.
type Shortcut struct {
	Kind ShortcutKind
	From int
	To   int
}

// Board is the immutable board topology.
// The zero value is not usable; build boards with NewBoard or ClassicBoard.
type Board struct {
	size    int
	snakes  map[int]int
	ladders map[int]int
}

// NewBoard validates and builds a board.
// The maps are copied, so the caller may reuse them afterwards.
func NewBoard(size int, snakes, ladders map[int]int) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("%w: size %d is smaller than 2", ErrInvalidBoard, size)
	}

	inRange := func(sq int) bool { return sq > StartSquare && sq <= size }

	for _, from := range slices.Sorted(maps.Keys(snakes)) {
		to := snakes[from]
		if !inRange(from) || !inRange(to) {
			return Board{}, fmt.Errorf("%w: snake %d->%d outside squares 2..%d", ErrInvalidBoard, from, to, size)
		}
		if to >= from {
			return Board{}, fmt.Errorf("%w: snake %d->%d does not go down", ErrInvalidBoard, from, to)
		}
		if from == size {
			return Board{}, fmt.Errorf("%w: snake on the final square %d", ErrInvalidBoard, size)
		}
		if _, dup := ladders[from]; dup {
			return Board{}, fmt.Errorf("%w: square %d has both a snake and a ladder", ErrInvalidBoard, from)
		}
	}

	for _, from := range slices.Sorted(maps.Keys(ladders)) {
		to := ladders[from]
		if !inRange(from) || !inRange(to) {
			return Board{}, fmt.Errorf("%w: ladder %d->%d outside squares 2..%d", ErrInvalidBoard, from, to, size)
		}
		if to <= from {
			return Board{}, fmt.Errorf("%w: ladder %d->%d does not go up", ErrInvalidBoard, from, to)
		}
	}

	return Board{
		size:    size,
		snakes:  maps.Clone(snakes),
		ladders: maps.Clone(ladders),
	}, nil
}

// ClassicBoard returns the standard 100-square layout.
func ClassicBoard() Board {
	b, err := NewBoard(DefaultBoardSize, ClassicSnakes(), ClassicLadders())
	if err != nil {
		panic(fmt.Sprintf("rules: classic board: %v", err))
	}
	return b
}

// ClassicSnakes returns the snake mapping of the classic board.
func ClassicSnakes() map[int]int {
	return map[int]int{
		98: 78, 95: 75, 92: 88, 87: 24, 64: 60, 62: 19, 54: 34, 47: 26, 17: 7,
	}
}

// ClassicLadders returns the ladder mapping of the classic board.
func ClassicLadders() map[int]int {
	return map[int]int{
		3: 22, 5: 8, 11: 26, 20: 29, 27: 56, 36: 44, 51: 67, 71: 91, 80: 99,
	}
}

// Size returns the number of squares; the last square is the goal.
func (b Board) Size() int {
	return b.size
}

// Snake returns the destination of the snake starting at sq, if any.
func (b Board) Snake(sq int) (int, bool) {
	to, ok := b.snakes[sq]
	return to, ok
}

// Ladder returns the destination of the ladder starting at sq, if any.
func (b Board) Ladder(sq int) (int, bool) {
	to, ok := b.ladders[sq]
	return to, ok
}

// Shortcut returns the shortcut whose source is sq.
// Snakes are checked before ladders.
func (b Board) Shortcut(sq int) (Shortcut, bool) {
	if to, ok := b.Snake(sq); ok {
		return Shortcut{Kind: Snake, From: sq, To: to}, true
	}
	if to, ok := b.Ladder(sq); ok {
		return Shortcut{Kind: Ladder, From: sq, To: to}, true
	}
	return Shortcut{}, false
}

// Shortcuts lists every snake and ladder ordered by source square.
func (b Board) Shortcuts() []Shortcut {
	result := make([]Shortcut, 0, len(b.snakes)+len(b.ladders))
	for from, to := range b.snakes {
		result = append(result, Shortcut{Kind: Snake, From: from, To: to})
	}
	for from, to := range b.ladders {
		result = append(result, Shortcut{Kind: Ladder, From: from, To: to})
	}
	slices.SortFunc(result, func(a, b Shortcut) int { return a.From - b.From })
	return result
}

// Snakes returns a copy of the snake mapping.
func (b Board) Snakes() map[int]int {
	return maps.Clone(b.snakes)
}

// Ladders returns a copy of the ladder mapping.
func (b Board) Ladders() map[int]int {
	return maps.Clone(b.ladders)
}
