package game

import (
	"strings"
	"testing"
)

func TestRenderLotDimensions(t *testing.T) {
	b := NewBoardFromSpecs(testSpecs())
	s := RenderLot(b)

	if s.Width() != LotWidth || s.Height() != LotHeight {
		t.Fatalf("lot is %dx%d, want %dx%d", s.Width(), s.Height(), LotWidth, LotHeight)
	}
}

func TestRenderLotWallsAndExit(t *testing.T) {
	b := NewBoardFromSpecs(testSpecs())
	s := RenderLot(b)

	// Corners of the border bands are shaded.
	for _, p := range [][2]int{{0, 0}, {LotWidth - 1, 0}, {0, LotHeight - 1}, {LotWidth - 1, LotHeight - 1}} {
		if got := s.Get(p[0], p[1]); got != glyphShade {
			t.Errorf("wall at (%d,%d) = %q, want shade", p[0], p[1], got)
		}
	}

	// The exit gap is carved out of the right wall at rows 9-11.
	for y := 9; y <= 11; y++ {
		for x := LotWidth - 5; x < LotWidth; x++ {
			if got := s.Get(x, y); got != ' ' {
				t.Errorf("exit gap at (%d,%d) = %q, want space", x, y, got)
			}
		}
	}
}

func TestRenderLotCarLetters(t *testing.T) {
	b := NewBoardFromSpecs(testSpecs())
	dump := RenderLot(b).String()

	// Every car shows its name at both ends of the outline.
	for _, car := range b.Cars() {
		upper := string(rune(car.Name))
		lower := strings.ToLower(upper)
		if !strings.Contains(dump, upper) {
			t.Errorf("lot dump is missing %s", upper)
		}
		if !strings.Contains(dump, lower) {
			t.Errorf("lot dump is missing %s", lower)
		}
	}
}
