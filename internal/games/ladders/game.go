// Package ladders implements two-player hot-seat snakes and ladders on top
// of the rules engine. It turns engine outcomes into paced playback and
// draws the board; the engine itself decides every move.
package ladders

import (
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/registry"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

// Game IDs of the registered variants.
const (
	IDClassic = "ladders"
	IDOpen    = "ladders_open"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the rules engine to the platform.
type Game struct {
	preset   config.Preset
	cfg      *config.LadderConfig // fixed config; nil means load on Reset
	fixedDie dice.Die             // fixed die; nil means seeded on Reset

	engine   *rules.Engine
	die      dice.Die
	timing   Timing
	playback *Playback
	last     *rules.TurnOutcome
	tick     uint64

	shown    [2]int // token squares on display, may lag the engine during playback
	lastRoll int
	message  string
	warning  string // config problem shown in the HUD

	tally Tally

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration on Reset.
func WithConfig(cfg config.LadderConfig) Option {
	return func(g *Game) {
		g.cfg = &cfg
	}
}

// WithDie uses d instead of a seeded die.
func WithDie(d dice.Die) Option {
	return func(g *Game) {
		g.fixedDie = d
	}
}

// New creates a game for the given preset. It starts on the built-in
// board; Reset applies the configuration and screen size.
func New(preset config.Preset, opts ...Option) *Game {
	g := &Game{preset: preset}
	for _, opt := range opts {
		opt(g)
	}

	cfg := config.DefaultLadderConfig()
	config.ApplyPreset(&cfg, preset)
	g.engine = rules.NewEngine(rules.ClassicBoard(), rules.WithExactFinish(cfg.Rules.RequireExactFinish))
	g.die = g.fixedDie
	if g.die == nil {
		g.die = dice.NewSeeded(0)
	}
	g.timing = NewTiming(cfg.Animation, 0)
	g.shown = [2]int{rules.StartSquare, rules.StartSquare}
	g.message = Prompt(rules.Player1)
	return g
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(config.PresetClassic)
	})
	registry.Register(IDOpen, func() registry.Game {
		return New(config.PresetOpen)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return VariantOf(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == config.PresetOpen {
		return "Snakes & Ladders (Open Finish)"
	}
	return "Snakes & Ladders"
}

// Reset starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.warning = ""

	var cfg config.LadderConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, err := config.LoadLadders(configPath)
		if err != nil {
			g.warning = "config unreadable, using defaults"
			loaded = config.DefaultLadderConfig()
		}
		cfg = loaded
	}
	config.ApplyPreset(&cfg, g.preset)

	engine, err := cfg.NewEngine()
	if err != nil {
		g.warning = "invalid board in config, using classic board"
		engine = rules.NewEngine(rules.ClassicBoard(), rules.WithExactFinish(cfg.Rules.RequireExactFinish))
	}
	g.engine = engine

	if g.fixedDie != nil {
		g.die = g.fixedDie
	} else {
		g.die = dice.NewSeeded(runtime.Seed)
	}

	g.timing = NewTiming(cfg.Animation, runtime.TickRate)
	g.playback = nil
	g.last = nil
	g.tick = 0
	g.shown = [2]int{rules.StartSquare, rules.StartSquare}
	g.lastRoll = 0
	g.message = Prompt(rules.Player1)
	g.tally = Tally{}
	g.paused = false

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts to a new screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinWidth || h < MinHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A roll during playback only fast-forwards the animation.
	if g.playback != nil {
		if in.Has(core.ActionRoll) {
			g.playback.Skip()
		} else {
			g.playback.Advance()
		}
		g.syncPlayback()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRoll) && !g.over() {
		g.roll()
	}

	return core.StepResult{State: g.State()}
}

// roll asks the die for a value and hands it to the engine.
func (g *Game) roll() {
	value := g.die.Roll()
	out, err := g.engine.ApplyRoll(value)
	if err != nil {
		g.message = fmt.Sprintf("Roll rejected: %v", err)
		return
	}

	g.lastRoll = value
	g.last = &out
	g.tally.Add(out)
	g.playback = NewPlayback(out, g.timing)
	g.syncPlayback()
}

// syncPlayback copies the current frame to the display, or settles the
// display on the engine state once playback has finished.
func (g *Game) syncPlayback() {
	if g.playback == nil {
		return
	}
	if g.playback.Done() {
		state := g.engine.State()
		g.shown = [2]int{state.Position(rules.Player1), state.Position(rules.Player2)}
		g.message = Conclusion(*g.last)
		g.playback = nil
		return
	}
	frame := g.playback.Current()
	g.shown[frame.Player-1] = frame.Square
	g.message = frame.Message
}

// over reports whether the game has been won and fully played out.
func (g *Game) over() bool {
	return g.engine.State().Status() == rules.Won && g.playback == nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := g.engine.State()
	return core.GameState{
		Turns:    state.Turns,
		Winner:   int(state.Winner),
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall,
		Busy:     g.playback != nil,
	}
}

// Report summarizes the game for the results ledger.
func (g *Game) Report() core.MatchReport {
	return NewReport(g.ID(), g.engine.State(), g.tally)
}

// Engine exposes the underlying rules engine, read-only by convention.
func (g *Game) Engine() *rules.Engine {
	return g.engine
}
