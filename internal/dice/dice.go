// Package dice provides die implementations that feed rolls to the rules engine.
package dice

import (
	"math/rand"
	"time"
)

// Faces is the number of faces on a standard die.
const Faces = 6

// Die produces rolls in [1, Faces].
type Die interface {
	Roll() int
}

// Seeded is a uniform die backed by a seeded RNG.
// Two Seeded dice with the same seed produce the same rolls.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a seeded die. Seed 0 uses the current time.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns the next roll.
func (d *Seeded) Roll() int {
	return 1 + d.rng.Intn(Faces)
}

// Sequence replays a fixed list of rolls, wrapping around at the end.
type Sequence struct {
	rolls []int
	next  int
}

// NewSequence creates a scripted die. An empty list always rolls 1.
func NewSequence(rolls ...int) *Sequence {
	return &Sequence{rolls: append([]int(nil), rolls...)}
}

// Roll returns the next scripted value.
func (s *Sequence) Roll() int {
	if len(s.rolls) == 0 {
		return 1
	}
	r := s.rolls[s.next]
	s.next = (s.next + 1) % len(s.rolls)
	return r
}

// Face returns the die-face glyph for a roll, or '?' outside 1..6.
func Face(roll int) rune {
	faces := []rune{'⚀', '⚁', '⚂', '⚃', '⚄', '⚅'}
	if roll < 1 || roll > len(faces) {
		return '?'
	}
	return faces[roll-1]
}
