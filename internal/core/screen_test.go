package core

import (
	"strings"
	"testing"
)

// rowOf returns row y of s.
func rowOf(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "        \n        \n        "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenClipsDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		row  int
		want string
	}{
		{"text", func(s *Screen) { s.DrawText(1, 0, "L=01") }, 0, " L=01 "},
		{"text past right edge", func(s *Screen) { s.DrawText(4, 1, "BONUS") }, 1, "    BO"},
		{"text before left edge", func(s *Screen) { s.DrawText(-2, 0, "0300") }, 0, "00    "},
		{"centered", func(s *Screen) { s.DrawTextCentered(1, "UP") }, 1, "  UP  "},
		{"set left of the screen", func(s *Screen) { s.Set(-1, 0, 'x') }, 0, "      "},
		{"set right of the screen", func(s *Screen) { s.Set(6, 0, 'x') }, 0, "      "},
		{"rect", func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 1), '=') }, 1, " ===  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(6, 2)
			tc.draw(s)
			if got := rowOf(s, tc.row); got != tc.want {
				t.Errorf("row %d = %q, expected %q", tc.row, got, tc.want)
			}
		})
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(1, 0, "HI", ColorRed)
	s.SetColored(5, 1, 'o', ColorOrange)
	s.Set(0, 1, 'x')

	tests := []struct {
		x, y  int
		want  Cell
		label string
	}{
		{1, 0, Cell{Rune: 'H', Color: ColorRed}, "colored text"},
		{2, 0, Cell{Rune: 'I', Color: ColorRed}, "colored text"},
		{5, 1, Cell{Rune: 'o', Color: ColorOrange}, "colored rune"},
		{0, 1, Cell{Rune: 'x', Color: ColorDefault}, "plain rune"},
		{-1, 0, Cell{Rune: ' '}, "out of bounds"},
	}
	for _, tc := range tests {
		if got := s.GetCell(tc.x, tc.y); got != tc.want {
			t.Errorf("%s: GetCell(%d, %d) = %+v, expected %+v", tc.label, tc.x, tc.y, got, tc.want)
		}
	}
	if s.Get(1, 0) != 'H' {
		t.Errorf("Get(1, 0) = %q, expected 'H'", s.Get(1, 0))
	}

	s.Clear()
	if c := s.GetCell(1, 0); c != (Cell{Rune: ' '}) {
		t.Errorf("after Clear cell = %+v, expected a default space", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	want := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, want)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(0, 0, "KONG", ColorRed)
	s.DrawText(0, 3, "gone")

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if got := rowOf(s, 0); got != "KONG  " {
		t.Errorf("row 0 after shrink = %q", got)
	}

	s.Resize(8, 5)
	if got := rowOf(s, 0); got != "KONG    " {
		t.Errorf("row 0 after grow = %q", got)
	}
	if got := rowOf(s, 3); got != "        " {
		t.Errorf("row 3 after grow = %q, expected the dropped text to stay gone", got)
	}
	if c := s.GetCell(0, 0); c.Color != ColorRed {
		t.Errorf("color after resize = %v, expected red", c.Color)
	}
}
