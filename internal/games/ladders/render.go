package ladders

import (
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/rules"
)

// Layout constants for the standard board.
const (
	CellWidth  = 7                         // number, shortcut glyph, two token slots, gap
	BoardWidth = Columns*CellWidth + 2     // plus the frame
	hudLines   = 4                         // positions, die, message, warning
	MinWidth   = BoardWidth                // narrowest usable screen
	MinHeight  = 1 + 10 + 2 + 1 + hudLines // title, rows, frame, gap, HUD
)

// Visual characters
const (
	SnakeGlyph  = '▼'
	LadderGlyph = '▲'
	Token1      = '1'
	Token2      = '2'
)

// playerColors are the token colors for Player1 and Player2.
var playerColors = [2]core.Color{core.ColorBrightCyan, core.ColorBrightMagenta}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.engine.Board()
	left := core.Clamp((dst.Width()-BoardWidth)/2, 0, dst.Width())

	title := g.Title()
	if g.paused {
		title += " - PAUSED (p to resume)"
	}
	dst.DrawTextCentered(0, title, core.ColorBrightYellow)

	top := 1
	rows := Rows(board.Size())
	DrawBoard(dst, board, left, top, g.shown)

	hud := top + rows + 3
	g.renderHUD(dst, left, hud)
}

// DrawBoard draws the framed board with its top-left corner at (left, top)
// and tokens on the squares in positions (0 hides a token).
func DrawBoard(dst *core.Screen, board rules.Board, left, top int, positions [2]int) {
	size := board.Size()
	rows := Rows(size)
	dst.DrawBox(core.NewRect(left, top, BoardWidth, rows+2), core.ColorGray)

	for row := 0; row < rows; row++ {
		for col := 0; col < Columns; col++ {
			sq := SquareAt(col, row, size)
			if sq == 0 {
				continue
			}
			x := left + 1 + col*CellWidth
			y := top + 1 + row
			drawSquare(dst, board, sq, x, y, positions)
		}
	}
}

func drawSquare(dst *core.Screen, board rules.Board, sq, x, y int, positions [2]int) {
	numColor := core.ColorGray
	if sq == board.Size() {
		numColor = core.ColorBrightYellow
	}
	dst.DrawTextColor(x, y, fmt.Sprintf("%3d", sq), numColor)

	if s, ok := board.Shortcut(sq); ok {
		if s.Kind == rules.Snake {
			dst.SetColor(x+3, y, SnakeGlyph, core.ColorRed)
		} else {
			dst.SetColor(x+3, y, LadderGlyph, core.ColorGreen)
		}
	}

	if positions[0] == sq {
		dst.SetColor(x+4, y, Token1, playerColors[0])
	}
	if positions[1] == sq {
		dst.SetColor(x+5, y, Token2, playerColors[1])
	}
}

func (g *Game) renderHUD(dst *core.Screen, left, y int) {
	state := g.engine.State()

	// Player line, with a marker on whoever rolls next
	for i, p := range []rules.PlayerID{rules.Player1, rules.Player2} {
		marker := "  "
		if state.CurrentTurn == p && g.playback == nil {
			marker = "> "
		}
		text := fmt.Sprintf("%s%s: %-3d", marker, p, g.shown[i])
		dst.DrawTextColor(left+i*24, y, text, playerColors[i])
	}
	dst.DrawTextColor(left+48, y, fmt.Sprintf("Turn %d", state.Turns), core.ColorGray)

	// Die
	if g.lastRoll > 0 {
		dst.DrawText(left, y+1, fmt.Sprintf("Die: %c %d", dice.Face(g.lastRoll), g.lastRoll))
	} else {
		dst.DrawTextColor(left, y+1, "Die: -", core.ColorGray)
	}

	msgColor := core.ColorWhite
	if state.Status() == rules.Won && g.playback == nil {
		msgColor = core.ColorBrightYellow
	}
	dst.DrawTextColor(left, y+2, g.message, msgColor)

	if g.warning != "" {
		dst.DrawTextColor(left, y+3, g.warning, core.ColorYellow)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", MinWidth, MinHeight, g.screenW, g.screenH), core.ColorGray)
}
