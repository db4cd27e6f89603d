package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 22)

	if s.Width() != 80 || s.Height() != 22 {
		t.Errorf("NewScreen() size = %dx%d, expected 80x22", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 80) {
			t.Fatalf("Row(%d) = %q, expected blank", y, row)
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetColored(3, 2, '█', ColorPipe)

	if got := s.GetCell(3, 2); got.Rune != '█' || got.Color != ColorPipe {
		t.Errorf("GetCell(3, 2) = %+v, expected pipe block", got)
	}

	// Out of bounds writes are dropped, reads are blank
	s.SetColored(-1, 0, 'X', ColorBird)
	s.SetColored(10, 0, 'X', ColorBird)
	s.SetColored(0, 4, 'X', ColorBird)
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if got := s.GetCell(0, 9); got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell colour = %v, expected default", got.Color)
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.Fill('~', ColorSky)

	if got := s.GetCell(5, 2); got.Rune != '~' || got.Color != ColorSky {
		t.Errorf("after Fill GetCell(5, 2) = %+v, expected sky", got)
	}

	s.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if got := s.GetCell(x, y); got.Rune != ' ' || got.Color != ColorDefault {
				t.Fatalf("after Clear GetCell(%d, %d) = %+v, expected blank", x, y, got)
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 2, "GAME", "  GAME    "},
		{"clipped right", 8, "OVER", "        OV"},
		{"clipped left", -2, "SHOUT", "OUT       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawTextColored(tc.x, 0, tc.text, ColorSplash)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "SHOUT!", ColorSplash)

	if got := s.Row(1); got != "       SHOUT!       " {
		t.Errorf("Row(1) = %q, expected centered text", got)
	}
	if got := s.GetCell(7, 1).Color; got != ColorSplash {
		t.Errorf("centered text colour = %v, expected splash", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(8, 6)
	s.FillRect(NewRect(2, 1, 3, 4), '█', ColorPipe)

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 5
			if got := s.Get(x, y) == '█'; got != inside {
				t.Errorf("cell (%d, %d) filled = %v, expected %v", x, y, got, inside)
			}
		}
	}

	// A rect hanging off the screen is clipped
	s.FillRect(NewRect(6, 4, 10, 10), '▀', ColorGround)
	if s.Get(7, 5) != '▀' {
		t.Error("FillRect should draw the visible part of a clipped rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorScore)

	want := []string{
		"        ",
		" ┌───┐  ",
		" │   │  ",
		" └───┘  ",
		"        ",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, expected %q", y, got, line)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawHLine(3, 1, 4, '▀', ColorGrass)

	if got := s.Row(1); got != "   ▀▀▀▀   " {
		t.Errorf("Row(1) = %q, expected grass line", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "▄▄▄", ColorPipeCap)
	s.DrawTextColored(0, 1, "abc", ColorDefault)

	if got := s.String(); got != "▄▄▄\nabc" {
		t.Errorf("String() = %q, expected %q", got, "▄▄▄\nabc")
	}
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, expected blank", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "score", ColorScore)
	s.DrawTextColored(0, 5, "ground", ColorGround)

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("after Resize size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "scor" {
		t.Errorf("Row(0) = %q, expected top-left content kept", got)
	}

	s.Resize(12, 8)
	if got := s.GetCell(0, 0); got.Rune != 's' || got.Color != ColorScore {
		t.Errorf("GetCell(0, 0) after growing = %+v, expected kept", got)
	}
	if got := s.Row(5); got != strings.Repeat(" ", 12) {
		t.Errorf("Row(5) = %q, expected rows cut by shrinking to stay blank", got)
	}
}
