package game

// MoveResult reports the outcome of a single command.
type MoveResult struct {
	Applied bool  // the board changed (or the winning move was accepted)
	Victory bool  // the target car reached the exit
	Err     error // nil on success; one of the package sentinel errors otherwise
}

// StepResult reports the outcome of processing one response string.
type StepResult struct {
	Moved bool   // whether the last processed command moved something
	Won   bool   // whether victory was reached
	Moves int    // updated move counter
	Lot   string // rendered lot picture; empty when the response was empty
}

// CarState is the read-only view of a car exposed to the presentation layer.
type CarState struct {
	Orientation Orientation
	Cells       []Cell
	Exited      bool
}

// Engine drives one level attempt: it owns the board, the move history and
// the move counter, and translates symbolic commands into board mutations.
// All state lives on the Engine value; there are no package-level globals.
type Engine struct {
	level   int
	specs   []CarSpec
	board   *Board
	history History
	moves   int
}

// NewEngine creates an engine for the given level number and car placements.
// The first spec is the target car and must be horizontal.
func NewEngine(level int, specs []CarSpec) *Engine {
	e := &Engine{
		level: level,
		specs: append([]CarSpec(nil), specs...),
	}
	e.Reset()
	return e
}

// Reset restores the level's initial position and clears the history and the
// move counter. Called when the level is (re)started or replayed after a win.
func (e *Engine) Reset() {
	e.board = NewBoardFromSpecs(e.specs)
	e.history.Reset()
	e.moves = 0
}

// Level returns the level number this engine was built for.
func (e *Engine) Level() int {
	return e.level
}

// Board exposes the underlying board. The presentation layer only reads it;
// all writes go through Step, Apply and Undo.
func (e *Engine) Board() *Board {
	return e.board
}

// Moves returns the current move counter.
func (e *Engine) Moves() int {
	return e.moves
}

// Victory reports whether the target car has reached the exit.
func (e *Engine) Victory() bool {
	return e.board.Victory()
}

// Grid returns a copy of the occupancy grid.
func (e *Engine) Grid() [GridSize][GridSize]byte {
	return e.board.Grid()
}

// CarState returns the read-only view of the named car.
func (e *Engine) CarState(name byte) (CarState, bool) {
	car, ok := e.board.Car(name)
	if !ok {
		return CarState{}, false
	}
	cells := make([]Cell, len(car.Cells))
	copy(cells, car.Cells)
	return CarState{
		Orientation: car.Orientation,
		Cells:       cells,
		Exited:      !car.InParking,
	}, true
}

// History returns a copy of the commands applied so far.
func (e *Engine) History() []byte {
	return e.history.Commands()
}

// Apply moves the named car one cell in the given direction.
func (e *Engine) Apply(name byte, dir Direction) MoveResult {
	cmd := toUpper(name)
	if dir == Forward {
		cmd = toLower(name)
	}
	return e.command(cmd)
}

// Undo reverts the most recent successful move. It is the exact inverse: the
// board returns to the prior position and the move counter decrements by one.
func (e *Engine) Undo() MoveResult {
	return e.command(UndoCommand)
}

// command routes one command byte through the board and keeps the counter in
// step: +1 for an applied move, -1 for an applied undo, +1 for the winning
// move. After a win further commands are accepted as no-ops.
func (e *Engine) command(cmd byte) MoveResult {
	if e.board.Victory() {
		return MoveResult{Victory: true}
	}

	err := e.board.MoveCar(cmd, &e.history)
	if e.board.Victory() {
		e.moves++
		return MoveResult{Applied: true, Victory: true}
	}
	if err != nil {
		return MoveResult{Err: err}
	}

	if cmd == UndoCommand {
		if e.moves > 0 {
			e.moves--
		}
	} else {
		e.moves++
	}
	return MoveResult{Applied: true}
}

// Step processes a response string one command character at a time. Each
// character is validated against the board as it stands after the previous
// one; a failed character is skipped silently and processing continues, so a
// multi-cell drag encoded as repeated letters can partially succeed. Victory
// stops processing immediately, counting the winning move.
func (e *Engine) Step(response string) StepResult {
	res := StepResult{Moves: e.moves}
	if response == "" {
		return res
	}
	if e.board.Victory() {
		res.Won = true
		res.Lot = RenderLot(e.board).String()
		return res
	}

	for i := 0; i < len(response); i++ {
		cmd := response[i]
		result := e.command(cmd)
		res.Moved = result.Applied
		if result.Victory {
			res.Won = true
			break
		}
	}

	res.Moves = e.moves
	res.Lot = RenderLot(e.board).String()
	return res
}
