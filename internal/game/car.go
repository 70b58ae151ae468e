// Package game implements the Parking Panic puzzle core: cars, the board,
// validated moves with undo, win detection and the board renderer.
// It contains no I/O and no external dependencies so the logic stays pure and
// testable; levels, records and the terminal platform live in sibling packages.
package game

// Orientation fixes the axis a car can slide along.
type Orientation byte

const (
	Horizontal Orientation = 'H'
	Vertical   Orientation = 'V'
)

// String returns the descriptor letter for the orientation.
func (o Orientation) String() string {
	return string(rune(o))
}

// Direction of motion along a car's axis. Forward advances the lead cell
// toward higher coordinates; Backward retreats it.
type Direction int

const (
	Backward Direction = 0
	Forward  Direction = 1
)

// Board geometry. Coordinates are 1-indexed. The exit sits one cell past the
// right edge on row 3 and is only reachable by the target car moving forward.
const (
	GridSize = 6
	ExitX    = 7
	ExitY    = 3
)

// Cell is a 1-indexed board coordinate.
type Cell struct {
	X, Y int
}

// inBounds reports whether the cell lies on the 6x6 lot.
func (c Cell) inBounds() bool {
	return c.X >= 1 && c.X <= GridSize && c.Y >= 1 && c.Y <= GridSize
}

// CarSpec describes a car's initial placement: orientation, the 1-indexed
// rear-most cell, and the length in cells (2 or 3).
type CarSpec struct {
	Orientation Orientation
	X, Y        int
	Length      int
}

// Car is a single movable vehicle on the lot.
type Car struct {
	// Name identifies the car for the whole session, a single uppercase letter.
	Name        byte
	Orientation Orientation
	Length      int

	// Cells lists the occupied coordinates ordered so that index 0 is the cell
	// nearest travel-direction forward. NewCar builds the list rear to front
	// and then reverses it; the movement math relies on this ordering.
	Cells []Cell

	// InParking turns false once the car has driven out the exit.
	InParking bool
}

// NewCar builds a car from its placement spec. The cell list grows from the
// start cell toward higher coordinates and is then reversed, so Cells[0] ends
// up being the forward lead cell.
func NewCar(name byte, spec CarSpec) *Car {
	c := &Car{
		Name:        name,
		Orientation: spec.Orientation,
		Length:      spec.Length,
		InParking:   true,
	}

	cells := make([]Cell, 0, spec.Length)
	for i := 0; i < spec.Length; i++ {
		if spec.Orientation == Horizontal {
			cells = append(cells, Cell{X: spec.X + i, Y: spec.Y})
		} else {
			cells = append(cells, Cell{X: spec.X, Y: spec.Y + i})
		}
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	c.Cells = cells
	return c
}

// Spec returns the placement spec for the car's current position.
// The rear-most cell is Cells[len-1] by construction.
func (c *Car) Spec() CarSpec {
	rear := c.Cells[c.Length-1]
	return CarSpec{
		Orientation: c.Orientation,
		X:           rear.X,
		Y:           rear.Y,
		Length:      c.Length,
	}
}

// ComputeMove returns the candidate cell list shifted one step in the given
// direction along the car's axis. It never mutates the receiver.
func (c *Car) ComputeMove(dir Direction) []Cell {
	delta := 1
	if dir == Backward {
		delta = -1
	}

	moves := make([]Cell, c.Length)
	for i, cell := range c.Cells {
		if c.Orientation == Horizontal {
			moves[i] = Cell{X: cell.X + delta, Y: cell.Y}
		} else {
			moves[i] = Cell{X: cell.X, Y: cell.Y + delta}
		}
	}
	return moves
}

// ApplyMove shifts the car one step in the given direction. When the candidate
// lead cell is the exit the car leaves the lot: InParking flips to false and
// the move is accepted unconditionally. Otherwise the move is all-or-nothing:
// if any candidate cell falls outside the lot the car stays where it is.
// Reports whether the cell list was replaced.
func (c *Car) ApplyMove(dir Direction) bool {
	moves := c.ComputeMove(dir)

	if moves[0] == (Cell{X: ExitX, Y: ExitY}) {
		c.InParking = false
	} else {
		for _, cell := range moves {
			if !cell.inBounds() {
				return false
			}
		}
	}

	c.Cells = moves
	return true
}

// Clone returns an independent deep copy of the car, used to validate moves
// speculatively so a rejected move never leaves observable side effects.
func (c *Car) Clone() *Car {
	clone := *c
	clone.Cells = make([]Cell, len(c.Cells))
	copy(clone.Cells, c.Cells)
	return &clone
}

// leadIndex returns the index of the cell a car enters when moving in the
// given direction: the front for forward, the rear for backward.
func leadIndex(dir Direction, length int) int {
	if dir == Forward {
		return 0
	}
	return length - 1
}

func isLowerLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func toUpper(b byte) byte {
	if isLowerLetter(b) {
		return b - 'a' + 'A'
	}
	return b
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
