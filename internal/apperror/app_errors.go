package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoLegalMove  = errors.New("no legal move available")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")

	// both are recovered by asking the human for another move.
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidInput)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidInput)
)
