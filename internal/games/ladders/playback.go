package ladders

import (
	"time"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

// Timing holds animation pacing in simulation ticks.
type Timing struct {
	StepTicks      int
	ShortcutTicks  int
	OvershootTicks int
}

// NewTiming converts configured millisecond delays into ticks at tickRate.
// Every frame is shown for at least one tick.
func NewTiming(anim config.AnimationConfig, tickRate int) Timing {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Timing{
		StepTicks:      ticksFor(anim.StepDuration(), tickRate),
		ShortcutTicks:  ticksFor(anim.ShortcutDuration(), tickRate),
		OvershootTicks: ticksFor(anim.OvershootDuration(), tickRate),
	}
}

func ticksFor(d time.Duration, tickRate int) int {
	ticks := int(d * time.Duration(tickRate) / time.Second)
	return max(ticks, 1)
}

// Frame is one displayed moment of a turn.
type Frame struct {
	Player  rules.PlayerID
	Square  int
	Message string
	Hold    int // ticks to show this frame
}

// Playback replays a resolved turn for display. It never changes game
// state: the outcome is already final when playback starts.
type Playback struct {
	frames    []Frame
	idx       int
	remaining int
}

// NewPlayback builds the frames for an outcome: one per walked square,
// a pause on a shortcut source, then the jump to its destination.
func NewPlayback(out rules.TurnOutcome, timing Timing) *Playback {
	var frames []Frame

	if out.RejectedOvershoot {
		frames = append(frames, Frame{
			Player:  out.Player,
			Square:  out.From,
			Message: OvershootMessage(out),
			Hold:    timing.OvershootTicks,
		})
	}

	for sq := range out.Steps() {
		frames = append(frames, Frame{
			Player:  out.Player,
			Square:  sq,
			Message: Rolled(out),
			Hold:    timing.StepTicks,
		})
	}

	if out.Shortcut != nil && len(frames) > 0 {
		last := &frames[len(frames)-1]
		last.Message = ShortcutMessage(*out.Shortcut)
		last.Hold += timing.ShortcutTicks

		frames = append(frames, Frame{
			Player:  out.Player,
			Square:  out.Shortcut.To,
			Message: last.Message,
			Hold:    timing.StepTicks,
		})
	}

	p := &Playback{frames: frames}
	if len(frames) > 0 {
		p.remaining = frames[0].Hold
	}
	return p
}

// Done reports whether every frame has been shown.
func (p *Playback) Done() bool {
	return p.idx >= len(p.frames)
}

// Current returns the frame on display. Only valid while !Done().
func (p *Playback) Current() Frame {
	return p.frames[p.idx]
}

// Advance moves playback forward by one tick.
func (p *Playback) Advance() {
	if p.Done() {
		return
	}
	p.remaining--
	for p.remaining <= 0 && !p.Done() {
		p.idx++
		if !p.Done() {
			p.remaining = p.frames[p.idx].Hold
		}
	}
}

// Skip jumps to the end.
func (p *Playback) Skip() {
	p.idx = len(p.frames)
	p.remaining = 0
}

// Squares lists the squares shown, in order.
func (p *Playback) Squares() []int {
	squares := make([]int, len(p.frames))
	for i, f := range p.frames {
		squares[i] = f.Square
	}
	return squares
}

// Ticks returns the total length of the playback in ticks.
func (p *Playback) Ticks() int {
	total := 0
	for _, f := range p.frames {
		total += f.Hold
	}
	return total
}
