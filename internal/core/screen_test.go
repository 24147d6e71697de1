package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorHome)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorHome {
		t.Errorf("GetCell(5, 5) = %+v, expected X/home", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default colour")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorAlert)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColoredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "90'·", ColorHighlight)

	// Columns advance per rune, not per byte
	if s.Get(3, 0) != '·' {
		t.Errorf("expected '·' at column 3, got %q", s.Get(3, 0))
	}
	if s.GetCell(0, 0).Color != ColorHighlight {
		t.Error("text should carry the requested colour")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(20, 10)
	s.DrawBox(NewRect(1, 1, 12, 4), "Pitch", ColorLine)

	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(12, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.Get(12, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.Get(1, 4))
	}
	if s.Get(12, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(12, 4))
	}
	if !strings.Contains(s.Row(1), " Pitch ") {
		t.Errorf("title missing from top edge: %q", s.Row(1))
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(12, y) != '│' {
			t.Errorf("vertical edges missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(30, 10)
	panel := NewRect(0, 0, 20, 8)
	s.DrawTextCentered(panel, "FULL TIME", ColorHighlight)

	if got := s.Row(4); got[:20] != "      FULL TIME     " {
		t.Errorf("row 4 = %q, expected the text centred in the panel", got)
	}
	if s.GetCell(6, 4).Color != ColorHighlight {
		t.Error("centred text should carry the requested colour")
	}

	// Wider than the panel: starts at its left edge and clips at the screen
	s.DrawTextCentered(NewRect(2, 0, 4, 2), "OVERTIME", ColorDefault)
	if s.Get(2, 1) != 'O' {
		t.Errorf("wide text should start at the panel edge, got %q", s.Get(2, 1))
	}
	if s.Row(-1) != strings.Repeat(" ", 30) {
		t.Error("out of bounds row should be spaces")
	}
}
