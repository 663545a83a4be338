package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("NewScreen(12, 4) = %dx%d", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 12)
	for y := range 4 {
		if row := s.Row(y); row != want {
			t.Errorf("Row(%d) = %q, want blanks", y, row)
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Writes outside the buffer are dropped
	for _, p := range []struct{ X, Y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColor(p.X, p.Y, '#', ColorRed)
		if c := s.GetCell(p.X, p.Y); c != (Cell{Rune: ' '}) {
			t.Errorf("GetCell(%d, %d) = %+v, want plain space", p.X, p.Y, c)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("Out-of-bounds writes leaked into the buffer")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColor(0, 0, "snake!", ColorRed)
	s.DrawTextColor(0, 1, "ladder", ColorGreen)

	s.Clear()

	for y := range 2 {
		for x := range 6 {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		text string
		want string // row y afterwards
	}{
		{"inside", 1, 0, "P1", " P1     "},
		{"clipped right", 6, 0, "100", "      10"},
		{"clipped left", -1, 0, "▲42", "42      "},
		{"multibyte", 0, 0, "▼▲", "▼▲      "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawText(tt.x, tt.y, tt.text)
			if got := s.Row(tt.y); got != tt.want {
				t.Errorf("Row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "win", ColorBrightYellow)

	if got := s.Row(0); got != "    win    " {
		t.Errorf("Row = %q", got)
	}
	if c := s.GetCell(4, 0); c.Color != ColorBrightYellow {
		t.Errorf("Centered text color = %v", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox =\n%s\nwant\n%s", got, want)
	}
	if c := s.GetCell(0, 0); c.Color != ColorGray {
		t.Errorf("Frame color = %v, want gray", c.Color)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Player")
	s.DrawText(0, 5, "bottom")

	s.Resize(4, 3)
	if s.String() != "Play\n    \n    " {
		t.Errorf("Shrunk screen = %q", s.String())
	}

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("Resize(8, 4) = %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Play    " {
		t.Errorf("Grown row 0 = %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(7); got != "   " {
		t.Errorf("Row(7) = %q, want blanks", got)
	}
}
