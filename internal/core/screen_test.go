package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '#', ColorRed)
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q; want '#'", got)
	}
	if got := s.GetCell(3, 2).Color; got != ColorRed {
		t.Errorf("GetCell(3,2).Color = %d; want ColorRed", got)
	}

	// Out-of-bounds writes are ignored, reads return blanks
	s.Set(-1, 0, '!')
	s.Set(10, 0, '!')
	s.Set(0, 5, '!')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q; want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, 'x', ColorBlue)
	s.Clear()

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("after Clear Get(1,1) = %q; want space", got)
	}
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("after Clear color = %d; want ColorDefault", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	want := "abc\ndef"
	if got := s.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 1, "hello")

	if got := s.Row(1); got != "hello" {
		t.Errorf("Row(1) = %q; want %q", got, "hello")
	}
	if got := s.Row(7); got != strings.Repeat(" ", 5) {
		t.Errorf("out-of-bounds Row = %q; want blanks", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 0, "keep")

	s.Resize(10, 8)
	if got := s.Row(0)[:4]; got != "keep" {
		t.Errorf("after grow Row(0) = %q; want prefix %q", got, "keep")
	}

	s.Resize(2, 1)
	if got := s.Row(0); got != "ke" {
		t.Errorf("after shrink Row(0) = %q; want %q", got, "ke")
	}
}

func TestDrawRectAndLines(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGreen)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if got := s.Get(x, y); got != '#' {
				t.Errorf("rect cell (%d,%d) = %q; want '#'", x, y, got)
			}
		}
	}
	if got := s.Get(4, 1); got != ' ' {
		t.Errorf("cell outside rect = %q; want space", got)
	}

	s.Clear()
	s.DrawHLine(0, 0, 6, '-', ColorDefault)
	s.DrawVLine(2, 0, 4, '|', ColorDefault)
	if got := s.Row(0); got != "--|---" {
		t.Errorf("Row(0) = %q; want %q", got, "--|---")
	}
	if got := s.Get(2, 3); got != '|' {
		t.Errorf("vline end = %q; want '|'", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q", got)
	}
}
