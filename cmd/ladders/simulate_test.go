package main

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/games/ladders"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

func TestParseRolls(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"3,4,6", []int{3, 4, 6}, false},
		{" 1 , 2 ,", []int{1, 2}, false},
		{"7", nil, true},
		{"0", nil, true},
		{"x", nil, true},
		{",", nil, true},
	}

	for _, tt := range tests {
		got, err := parseRolls(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRolls(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("parseRolls(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseRolls("9"); !errors.Is(err, rules.ErrInvalidRoll) {
		t.Errorf("Out-of-range roll should wrap ErrInvalidRoll, got %v", err)
	}
}

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{ladders.IDClassic, ladders.IDClassic, false},
		{ladders.IDOpen, ladders.IDOpen, false},
		{"classic", ladders.IDClassic, false},
		{"open", ladders.IDOpen, false},
		{"chess", "", true},
	}

	for _, tt := range tests {
		got, err := resolveVariant(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("resolveVariant(%q) = %q, %v; want %q, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestSimSummary(t *testing.T) {
	var s simSummary
	s.add(rules.GameState{Winner: rules.Player1, Turns: 30})
	s.add(rules.GameState{Winner: rules.Player2, Turns: 10})
	s.add(rules.GameState{Winner: rules.Player1, Turns: 20})

	if s.games != 3 || s.wins != [2]int{2, 1} {
		t.Errorf("games = %d, wins = %v", s.games, s.wins)
	}
	if s.minTurns != 10 || s.maxTurns != 30 || s.turns != 60 {
		t.Errorf("turns min/max/total = %d/%d/%d, want 10/30/60", s.minTurns, s.maxTurns, s.turns)
	}
}
