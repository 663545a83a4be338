package ladders

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

func TestNewTiming(t *testing.T) {
	tests := []struct {
		name string
		anim config.AnimationConfig
		rate int
		want Timing
	}{
		{"defaults", config.DefaultLadderConfig().Animation, 60, Timing{13, 25, 21}},
		{"zero delays", config.AnimationConfig{}, 60, Timing{1, 1, 1}},
		{"zero rate", config.AnimationConfig{StepMs: 500}, 0, Timing{30, 1, 1}},
		{"negative delays", config.AnimationConfig{StepMs: -5}, 30, Timing{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewTiming(tt.anim, tt.rate); got != tt.want {
				t.Errorf("NewTiming() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

var unitTiming = Timing{StepTicks: 1, ShortcutTicks: 3, OvershootTicks: 2}

func TestPlaybackSnake(t *testing.T) {
	snake := rules.Shortcut{Kind: rules.Snake, From: 17, To: 7}
	out := rules.TurnOutcome{
		Player:        rules.Player2,
		Roll:          3,
		From:          14,
		Path:          []int{15, 16, 17},
		Shortcut:      &snake,
		FinalPosition: 7,
		NextTurn:      rules.Player1,
	}

	p := NewPlayback(out, unitTiming)
	if want := []int{15, 16, 17, 7}; !slices.Equal(p.Squares(), want) {
		t.Errorf("Squares = %v, want %v", p.Squares(), want)
	}
	if p.Ticks() != 1+1+(1+3)+1 {
		t.Errorf("Ticks = %d, want 7", p.Ticks())
	}

	// The shortcut source holds for the extra pause
	for range 2 {
		p.Advance()
	}
	if f := p.Current(); f.Square != 17 || f.Message != ShortcutMessage(snake) {
		t.Errorf("Frame = %+v, want square 17 with the snake message", f)
	}
	for range 3 {
		p.Advance()
	}
	if p.Current().Square != 17 {
		t.Errorf("Left the shortcut source early: %+v", p.Current())
	}
	p.Advance()
	if p.Current().Square != 7 {
		t.Errorf("Expected the jump to 7, got %+v", p.Current())
	}
	p.Advance()
	if !p.Done() {
		t.Error("Expected playback to finish")
	}
}

func TestPlaybackOvershoot(t *testing.T) {
	out := rules.TurnOutcome{
		Player:            rules.Player1,
		Roll:              5,
		From:              97,
		RejectedOvershoot: true,
		FinalPosition:     97,
		NextTurn:          rules.Player2,
	}

	p := NewPlayback(out, unitTiming)
	if want := []int{97}; !slices.Equal(p.Squares(), want) {
		t.Errorf("Squares = %v, want %v", p.Squares(), want)
	}
	if msg := p.Current().Message; msg != "Need exact roll. Player 1 stays at 97." {
		t.Errorf("Message = %q", msg)
	}
	if p.Ticks() != unitTiming.OvershootTicks {
		t.Errorf("Ticks = %d, want %d", p.Ticks(), unitTiming.OvershootTicks)
	}
}

func TestPlaybackSkip(t *testing.T) {
	out := rules.TurnOutcome{Player: rules.Player1, Roll: 2, From: 1, Path: []int{2, 3}, FinalPosition: 3}
	p := NewPlayback(out, unitTiming)
	p.Skip()
	if !p.Done() {
		t.Error("Skip should finish playback")
	}
	p.Advance() // no-op once done
	if !p.Done() {
		t.Error("Advance after Skip should stay done")
	}
}

func TestMessages(t *testing.T) {
	win := rules.TurnOutcome{Player: rules.Player2, Winner: rules.Player2}
	if got := Conclusion(win); got != "Player 2 wins!" {
		t.Errorf("Conclusion(win) = %q", got)
	}
	next := rules.TurnOutcome{Player: rules.Player1, NextTurn: rules.Player2}
	if got := Conclusion(next); got != "Player 2, roll!" {
		t.Errorf("Conclusion(next) = %q", got)
	}
	if got := ShortcutMessage(rules.Shortcut{Kind: rules.Ladder}); got != "Nice! Ladder up." {
		t.Errorf("ShortcutMessage(ladder) = %q", got)
	}
}
