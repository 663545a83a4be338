package ladders

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

func mustBoard(t *testing.T, snakes, ladders map[int]int) rules.Board {
	t.Helper()
	b, err := rules.NewBoard(rules.DefaultBoardSize, snakes, ladders)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestAutoplayWin(t *testing.T) {
	e := rules.NewEngine(mustBoard(t, nil, map[int]int{2: 100}))

	var turns []rules.TurnOutcome
	tally, err := Autoplay(e, dice.NewSequence(1), 10, func(out rules.TurnOutcome) {
		turns = append(turns, out)
	})
	if err != nil {
		t.Fatalf("Autoplay: %v", err)
	}
	if len(turns) != 1 || !turns[0].Won() {
		t.Fatalf("Expected one winning turn, got %+v", turns)
	}
	if tally.Ladders != [2]int{1, 0} {
		t.Errorf("Ladders = %v, want [1 0]", tally.Ladders)
	}

	report := NewReport(IDClassic, e.State(), tally)
	if report.Winner != 1 || report.Turns != 1 || report.Positions != [2]int{100, 1} {
		t.Errorf("Report = %+v", report)
	}
}

func TestAutoplayTurnLimit(t *testing.T) {
	// Both players stall on 97 rolling sixes
	e := rules.NewEngine(mustBoard(t, nil, nil))

	tally, err := Autoplay(e, dice.NewSequence(6), 50, nil)
	if !errors.Is(err, ErrTurnLimit) {
		t.Fatalf("Autoplay error = %v, want ErrTurnLimit", err)
	}
	if e.State().Turns != 50 {
		t.Errorf("Turns = %d, want 50", e.State().Turns)
	}
	if tally.Overshoots != [2]int{9, 9} {
		t.Errorf("Overshoots = %v, want [9 9]", tally.Overshoots)
	}
}

func TestAutoplaySeededFinishes(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e := rules.NewEngine(rules.ClassicBoard(), rules.WithExactFinish(false))
		tally, err := Autoplay(e, dice.NewSeeded(seed), 10000, nil)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		report := NewReport(IDOpen, e.State(), tally)
		if report.Winner != 1 && report.Winner != 2 {
			t.Fatalf("seed %d: no winner in %+v", seed, report)
		}
		if report.Positions[report.Winner-1] != rules.DefaultBoardSize {
			t.Errorf("seed %d: winner not on the last square: %+v", seed, report)
		}
	}
}

func TestTallyIgnoresInvalidPlayer(t *testing.T) {
	var tally Tally
	tally.Add(rules.TurnOutcome{RejectedOvershoot: true})
	if tally != (Tally{}) {
		t.Errorf("Tally = %+v, want zero", tally)
	}
}

func TestPresetMapping(t *testing.T) {
	for _, preset := range config.Presets() {
		id := VariantOf(preset)
		got, ok := PresetOf(id)
		if !ok || got != preset {
			t.Errorf("PresetOf(VariantOf(%s)) = %s, %v", preset, got, ok)
		}
	}
	if _, ok := PresetOf("chess"); ok {
		t.Error("Unknown variant should not map to a preset")
	}
}
