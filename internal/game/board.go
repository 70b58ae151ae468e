package game

import "strings"

// Grid markers. The asymmetric car marking (lowercase at the forward lead,
// 'x' inside, uppercase at the rear) matches the original textual dumps and
// carries no logic weight beyond "occupied vs empty".
const (
	EmptyMarker    byte = '_'
	InteriorMarker byte = 'x'
)

// UndoCommand reverts the most recent recorded command.
const UndoCommand byte = '*'

// Board owns the set of cars, the derived occupancy grid and the victory flag.
// All mutations go through MoveCar; the grid can be rebuilt from the cars at
// any time.
type Board struct {
	grid    [GridSize][GridSize]byte // grid[y-1][x-1]
	cars    []*Car
	victory bool
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	b := &Board{}
	b.clearGrid()
	return b
}

// NewBoardFromSpecs creates a board populated with one car per spec.
// Names are assigned in order: A, B, C, ... with the target car always 'A'.
func NewBoardFromSpecs(specs []CarSpec) *Board {
	b := NewBoard()
	for i, spec := range specs {
		b.AddCar(NewCar(byte('A'+i), spec))
	}
	b.Rebuild()
	return b
}

// AddCar places a car on the board. The caller is expected to Rebuild after
// the last car is added.
func (b *Board) AddCar(c *Car) {
	b.cars = append(b.cars, c)
}

// Cars returns the cars in their load order. Index 0 is the target car.
func (b *Board) Cars() []*Car {
	return b.cars
}

// Car looks up a car by its uppercase name.
func (b *Board) Car(name byte) (*Car, bool) {
	for _, c := range b.cars {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Victory reports whether the target car has reached the exit.
func (b *Board) Victory() bool {
	return b.victory
}

// At returns the grid marker at the given 1-indexed coordinates.
func (b *Board) At(x, y int) byte {
	return b.grid[y-1][x-1]
}

// Grid returns a copy of the occupancy grid, row-major, grid[row][col] with
// 0-indexed rows and columns.
func (b *Board) Grid() [GridSize][GridSize]byte {
	return b.grid
}

func (b *Board) clearGrid() {
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = EmptyMarker
		}
	}
}

// Rebuild regenerates the occupancy grid from the cars: lowercase name at the
// forward lead cell, 'x' on interior cells, uppercase name at the rear cell.
func (b *Board) Rebuild() {
	b.clearGrid()
	for _, car := range b.cars {
		front := car.Cells[0]
		b.grid[front.Y-1][front.X-1] = toLower(car.Name)
		for i := 1; i < car.Length; i++ {
			cell := car.Cells[i]
			b.grid[cell.Y-1][cell.X-1] = InteriorMarker
		}
		rear := car.Cells[car.Length-1]
		b.grid[rear.Y-1][rear.X-1] = car.Name
	}
}

// GridString renders the occupancy grid as six newline-separated rows.
func (b *Board) GridString() string {
	var sb strings.Builder
	sb.Grow(GridSize*GridSize + GridSize)
	for y := 0; y < GridSize; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < GridSize; x++ {
			sb.WriteByte(b.grid[y][x])
		}
	}
	return sb.String()
}

// MoveCar applies one command to the board. A lowercase letter moves that car
// forward, an uppercase letter moves it backward, and UndoCommand replays the
// most recent recorded command with its case inverted and pops it.
//
// The command is validated on a clone of the car, so a rejected move leaves
// the live car, the grid and the history exactly as they were. Only the cell
// entered by the move is collision-checked: cars travel one cell per command.
// When the clone drives out the exit the victory flag is set without touching
// the grid; the game is over and nothing is drawn from it again.
func (b *Board) MoveCar(cmd byte, h *History) error {
	pushed := false
	wasUndo := cmd == UndoCommand
	var undone byte
	if wasUndo {
		last, ok := h.Pop()
		if !ok {
			return ErrNoHistory
		}
		undone = last
		if isLowerLetter(last) {
			cmd = toUpper(last)
		} else {
			cmd = toLower(last)
		}
	} else {
		h.Push(cmd)
		pushed = true
	}

	// Keep the history transactional: every failure below restores it.
	rollback := func() {
		if pushed {
			h.Pop()
		}
		if wasUndo {
			h.Push(undone)
		}
	}

	dir := Backward
	if isLowerLetter(cmd) {
		dir = Forward
	}

	car, ok := b.Car(toUpper(cmd))
	if !ok {
		rollback()
		return ErrUnknownCar
	}

	probe := car.Clone()
	moved := probe.ApplyMove(dir)

	if !probe.InParking {
		b.victory = true
		return nil
	}
	if !moved {
		rollback()
		return ErrIllegalMove
	}

	entered := probe.Cells[leadIndex(dir, probe.Length)]
	if b.At(entered.X, entered.Y) != EmptyMarker {
		rollback()
		return ErrBlocked
	}

	car.ApplyMove(dir)
	b.Rebuild()
	return nil
}
