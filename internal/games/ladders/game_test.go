package ladders

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/registry"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// fastConfig is the default board with one-tick frames.
func fastConfig() config.LadderConfig {
	cfg := config.DefaultLadderConfig()
	cfg.Animation = config.AnimationConfig{}
	return cfg
}

func newTestGame(preset config.Preset, opts ...Option) *Game {
	g := New(preset, append([]Option{WithConfig(fastConfig())}, opts...)...)
	g.Reset(testRuntime)
	return g
}

func rollInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionRoll)
	return in
}

// settle steps without input until playback finishes.
func settle(t *testing.T, g *Game) {
	t.Helper()
	idle := core.NewInputFrame()
	for range 1000 {
		if !g.Snapshot().Animating {
			return
		}
		g.Step(idle)
	}
	t.Fatal("playback never finished")
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New(config.PresetClassic, WithConfig(fastConfig()))
	g1.Reset(testRuntime)
	g2 := New(config.PresetClassic, WithConfig(fastConfig()))
	g2.Reset(testRuntime)

	input := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		input.Clear()
		if i%7 == 0 {
			input.Set(core.ActionRoll)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestRollPlaysOutPath(t *testing.T) {
	// 1 + 4 walks 2..5 and climbs the ladder at 5
	g := newTestGame(config.PresetClassic, WithDie(dice.NewSequence(4)))

	g.Step(rollInput())
	snap := g.Snapshot()
	if !snap.Animating {
		t.Fatal("Expected playback after a roll")
	}
	if snap.Positions[0] != 8 {
		t.Errorf("Engine position = %d, want 8", snap.Positions[0])
	}
	if snap.Shown[0] != 2 {
		t.Errorf("Shown position = %d, want 2 on the first frame", snap.Shown[0])
	}
	if !g.State().Busy {
		t.Error("Expected Busy during playback")
	}

	var seen []int
	record := func() {
		if s := g.Snapshot().Shown[0]; len(seen) == 0 || seen[len(seen)-1] != s {
			seen = append(seen, s)
		}
	}
	idle := core.NewInputFrame()
	for g.Snapshot().Animating {
		record()
		g.Step(idle)
	}
	record()

	if want := []int{2, 3, 4, 5, 8}; !slices.Equal(seen, want) {
		t.Errorf("Shown squares = %v, want %v", seen, want)
	}

	snap = g.Snapshot()
	if snap.Shown != snap.Positions {
		t.Errorf("Shown %v should settle on engine positions %v", snap.Shown, snap.Positions)
	}
	if snap.CurrentTurn != rules.Player2 {
		t.Errorf("CurrentTurn = %v, want Player 2", snap.CurrentTurn)
	}
	if snap.Message != Prompt(rules.Player2) {
		t.Errorf("Message = %q, want %q", snap.Message, Prompt(rules.Player2))
	}
	if snap.LastRoll != 4 {
		t.Errorf("LastRoll = %d, want 4", snap.LastRoll)
	}
}

func TestRollDuringPlaybackSkips(t *testing.T) {
	cfg := config.DefaultLadderConfig() // slow animation
	g := New(config.PresetClassic, WithConfig(cfg), WithDie(dice.NewSequence(6)))
	g.Reset(testRuntime)

	g.Step(rollInput())
	if !g.Snapshot().Animating {
		t.Fatal("Expected playback after a roll")
	}

	g.Step(rollInput())
	snap := g.Snapshot()
	if snap.Animating {
		t.Error("Second roll should skip the playback")
	}
	if snap.Turns != 1 {
		t.Errorf("Turns = %d, want 1: a skip must not roll again", snap.Turns)
	}
	if snap.Shown[0] != 7 {
		t.Errorf("Shown = %d, want 7", snap.Shown[0])
	}
	if snap.Positions[1] != rules.StartSquare {
		t.Errorf("Player 2 moved to %d during a skip", snap.Positions[1])
	}
}

func TestPauseBlocksRolls(t *testing.T) {
	g := newTestGame(config.PresetClassic)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	g.Step(rollInput())
	if g.Snapshot().Turns != 0 {
		t.Error("Roll should be ignored while paused")
	}

	g.Step(pause)
	g.Step(rollInput())
	if g.Snapshot().Turns != 1 {
		t.Error("Roll should apply after unpausing")
	}
}

func winningConfig() config.LadderConfig {
	cfg := fastConfig()
	cfg.Board.Snakes = map[int]int{}
	cfg.Board.Ladders = map[int]int{2: 100}
	return cfg
}

func TestGameOverAfterPlayback(t *testing.T) {
	g := New(config.PresetClassic, WithConfig(winningConfig()), WithDie(dice.NewSequence(1)))
	g.Reset(testRuntime)

	g.Step(rollInput())
	if g.State().GameOver {
		t.Error("GameOver should wait for playback")
	}

	settle(t, g)
	state := g.State()
	if !state.GameOver {
		t.Fatal("Expected GameOver after the winning turn")
	}
	if state.Winner != int(rules.Player1) {
		t.Errorf("Winner = %d, want 1", state.Winner)
	}
	if msg := g.Snapshot().Message; msg != WinMessage(rules.Player1) {
		t.Errorf("Message = %q, want %q", msg, WinMessage(rules.Player1))
	}

	// No further moves once won
	g.Step(rollInput())
	if g.Snapshot().Turns != 1 {
		t.Error("Roll after the win should be ignored")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.State().Paused {
		t.Error("A finished game should not pause")
	}
}

func TestReport(t *testing.T) {
	g := New(config.PresetClassic, WithConfig(winningConfig()), WithDie(dice.NewSequence(1)))
	g.Reset(testRuntime)
	g.Step(rollInput())
	settle(t, g)

	var r registry.Reporter = g
	report := r.Report()
	want := core.MatchReport{
		Variant:        IDClassic,
		Winner:         1,
		Turns:          1,
		Positions:      [2]int{100, 1},
		LaddersClimbed: [2]int{1, 0},
	}
	if report != want {
		t.Errorf("Report = %+v, want %+v", report, want)
	}
}

func TestTallies(t *testing.T) {
	// P1: 1+6=7; P2: 1+3=4; P1: 7+1=8; P2: 4+1=5, ladder to 8
	g := newTestGame(config.PresetClassic, WithDie(dice.NewSequence(6, 3, 1, 1)))
	for range 4 {
		g.Step(rollInput())
		settle(t, g)
	}
	report := g.Report()
	if report.LaddersClimbed != [2]int{0, 1} {
		t.Errorf("LaddersClimbed = %v, want [0 1]", report.LaddersClimbed)
	}
	if report.Positions != [2]int{8, 8} {
		t.Errorf("Positions = %v, want [8 8]", report.Positions)
	}
	if report.Winner != 0 {
		t.Errorf("Winner = %d, want 0", report.Winner)
	}
}

func TestOpenPreset(t *testing.T) {
	g := newTestGame(config.PresetOpen)
	if g.Engine().ExactFinish() {
		t.Error("Open preset should not require an exact finish")
	}
	if g.ID() != IDOpen {
		t.Errorf("ID = %q, want %q", g.ID(), IDOpen)
	}

	g = newTestGame(config.PresetClassic)
	if !g.Engine().ExactFinish() {
		t.Error("Classic preset should require an exact finish by default")
	}
}

func TestClassicHonorsConfiguredFinish(t *testing.T) {
	cfg := fastConfig()
	cfg.Rules.RequireExactFinish = false

	g := New(config.PresetClassic, WithConfig(cfg))
	g.Reset(testRuntime)
	if g.Engine().ExactFinish() {
		t.Error("require_exact_finish: false should reach the classic engine")
	}
}

func TestStateBeforeReset(t *testing.T) {
	g := New(config.PresetClassic)

	state := g.State()
	if state.GameOver || state.Busy || state.Turns != 0 {
		t.Errorf("State() before Reset = %+v, want a fresh game", state)
	}
	if snap := g.Snapshot(); snap.Shown != [2]int{rules.StartSquare, rules.StartSquare} {
		t.Errorf("Shown before Reset = %v", snap.Shown)
	}
	if r := g.Report(); r.Winner != 0 || r.Variant != IDClassic {
		t.Errorf("Report() before Reset = %+v", r)
	}

	dst := core.NewScreen(MinWidth, MinHeight)
	g.Render(dst)
	if !strings.Contains(dst.String(), "100") {
		t.Error("Render before Reset should draw the board")
	}
}

func TestInvalidBoardFallsBack(t *testing.T) {
	cfg := fastConfig()
	cfg.Board.Snakes = map[int]int{10: 20} // a snake going up
	g := New(config.PresetClassic, WithConfig(cfg))
	g.Reset(testRuntime)

	if g.Snapshot().Warning == "" {
		t.Error("Expected a warning for an invalid board")
	}
	if got := g.Engine().Board().Snakes(); len(got) != len(rules.ClassicSnakes()) {
		t.Errorf("Expected the classic board, got snakes %v", got)
	}
}

func TestUnreadableConfigFallsBack(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New(config.PresetClassic)
	g.Reset(testRuntime)
	if g.Snapshot().Warning == "" {
		t.Error("Expected a warning for a missing config")
	}
	g.Step(rollInput())
	if g.Snapshot().Turns != 1 {
		t.Error("Game should stay playable on defaults")
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(config.PresetClassic)
	g.Resize(40, 10)

	if !g.State().Paused {
		t.Error("Expected paused state on a small terminal")
	}
	g.Step(rollInput())
	if g.Snapshot().Turns != 0 {
		t.Error("Roll should be ignored on a small terminal")
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("Expected the too-small notice")
	}

	g.Resize(80, 24)
	g.Step(rollInput())
	if g.Snapshot().Turns != 1 {
		t.Error("Roll should apply after growing the terminal")
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(config.PresetClassic)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	left := (testRuntime.ScreenW - BoardWidth) / 2
	cellX := func(sq int) (int, int) {
		col, row := CellOf(sq, rules.DefaultBoardSize)
		return left + 1 + col*CellWidth, 2 + row
	}

	x, y := cellX(100)
	if got := string([]rune(screen.Row(y))[x : x+3]); got != "100" {
		t.Errorf("Square 100 label = %q", got)
	}

	x, y = cellX(1)
	if screen.Get(x+4, y) != Token1 || screen.Get(x+5, y) != Token2 {
		t.Error("Both tokens should start on square 1")
	}

	x, y = cellX(98)
	if cell := screen.GetCell(x+3, y); cell.Rune != SnakeGlyph || cell.Color != core.ColorRed {
		t.Errorf("Square 98 glyph = %+v, want red snake", cell)
	}
	x, y = cellX(80)
	if cell := screen.GetCell(x+3, y); cell.Rune != LadderGlyph || cell.Color != core.ColorGreen {
		t.Errorf("Square 80 glyph = %+v, want green ladder", cell)
	}

	if !strings.Contains(screen.String(), Prompt(rules.Player1)) {
		t.Error("Expected the roll prompt in the HUD")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDOpen} {
		if !registry.Exists(id) {
			t.Fatalf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%s).ID() = %s", id, g.ID())
		}
	}
}
