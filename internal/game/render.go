package game

import (
	"github.com/obhlivoj/parking-panic/internal/core"
)

// Lot picture dimensions in screen cells. Each board column is five characters
// wide and each row three characters tall, with a shaded wall around the lot.
const (
	LotWidth  = 8 * 5
	LotHeight = 8 * 3
)

// Box-drawing glyphs for car outlines and the lot walls.
const (
	glyphH     = '─'
	glyphV     = '│'
	glyphSE    = '┌'
	glyphSW    = '┐'
	glyphNE    = '└'
	glyphNW    = '┘'
	glyphShade = '▒'
)

// RenderLot draws the parking lot into a fresh screen buffer: shaded walls,
// the exit gap on the right of row 3, and every car as a box outline with its
// name letter at both ends. The layout reproduces the classic textual dump.
func RenderLot(b *Board) *core.Screen {
	s := core.NewScreen(LotWidth, LotHeight)
	drawWalls(s)
	for i, car := range b.Cars() {
		if !car.InParking {
			continue
		}
		drawCar(s, car, core.CarColor(i))
	}
	return s
}

// drawWalls shades the border bands and cuts the exit gap out of the right
// wall at screen rows 9-11 (board row 3).
func drawWalls(s *core.Screen) {
	s.DrawRect(core.NewRect(0, 0, LotWidth, 3), glyphShade, core.ColorGray)
	s.DrawRect(core.NewRect(0, LotHeight-3, LotWidth, 3), glyphShade, core.ColorGray)
	s.DrawRect(core.NewRect(0, 0, 5, LotHeight), glyphShade, core.ColorGray)
	s.DrawRect(core.NewRect(LotWidth-5, 0, 5, LotHeight), glyphShade, core.ColorGray)
	s.DrawRect(core.NewRect(LotWidth-5, 9, 5, 3), ' ', core.ColorDefault)
}

// drawCar draws one car as a box outline. The anchor math works from the
// forward lead cell (Cells[0]) and the rear cell (Cells[last]): p1 is derived
// from the lead, p2 from the rear, and the outline spans between them.
func drawCar(s *core.Screen, c *Car, color core.Color) {
	front := c.Cells[0]
	rear := c.Cells[c.Length-1]
	p1x, p1y := 5+front.X*5, front.Y*3
	p2x, p2y := rear.X*5, rear.Y*3
	upper := rune(toUpper(c.Name))
	lower := rune(toLower(c.Name))

	if c.Orientation == Horizontal {
		span := 4 + 5*(c.Length-1)

		s.SetCell(p1x-1, p1y, glyphSW, color)
		s.SetCell(p1x-1, p1y+1, glyphV, color)
		s.SetCell(p1x-1, p1y+2, glyphNW, color)

		s.SetCell(p2x, p2y, glyphSE, color)
		s.SetCell(p2x, p2y+1, glyphV, color)
		s.SetCell(p2x, p2y+2, glyphNE, color)

		left := core.Min(p1x-1, p2x)
		s.DrawHLine(left+1, p1y, span-1, glyphH, color)
		s.DrawHLine(left+1, p1y+2, span-1, glyphH, color)

		s.SetCell(p2x+2, p2y+1, upper, color)
		s.SetCell(p1x-3, p1y+1, lower, color)
	} else {
		span := 2 + 3*(c.Length-1)

		s.SetCell(p1x-1, p1y+2, glyphNW, color)
		s.DrawHLine(p1x-4, p1y+2, 3, glyphH, color)
		s.SetCell(p1x-5, p1y+2, glyphNE, color)

		s.SetCell(p2x, p2y, glyphSE, color)
		s.DrawHLine(p2x+1, p2y, 3, glyphH, color)
		s.SetCell(p2x+4, p2y, glyphSW, color)

		top := core.Min(p1y+2, p2y)
		s.DrawVLine(p1x-1, top+1, span-1, glyphV, color)
		s.DrawVLine(p1x-5, top+1, span-1, glyphV, color)

		s.SetCell(p2x+2, p2y+1, upper, color)
		s.SetCell(p1x-3, p1y+1, lower, color)
	}
}
