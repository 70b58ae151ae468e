package game

import "errors"

// Command errors. None of them are fatal: the board is left untouched, the
// move history is restored, and the offending command is simply rejected.
var (
	// ErrUnknownCar means the command referenced a car that is not on the board.
	ErrUnknownCar = errors.New("game: no such car")

	// ErrIllegalMove means the move would push the car out of the lot.
	ErrIllegalMove = errors.New("game: move out of bounds")

	// ErrBlocked means another car occupies the cell the move would enter.
	ErrBlocked = errors.New("game: move blocked by another car")

	// ErrNoHistory means undo was requested with no moves recorded.
	ErrNoHistory = errors.New("game: no moves to undo")
)
