package game

// Snapshot captures the complete engine state for determinism tests and the
// platform's debug views.
type Snapshot struct {
	Level   int
	Moves   int
	Victory bool
	Cars    int
	Grid    string // six newline-separated marker rows
	History string // recorded command sequence, oldest first
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Level:   e.level,
		Moves:   e.moves,
		Victory: e.board.Victory(),
		Cars:    len(e.board.Cars()),
		Grid:    e.board.GridString(),
		History: string(e.history.Commands()),
	}
}
