package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// MakeTurn validates the move, places the side's mark and updates the game status.
func MakeTurn(gameInstance *entity.Game, turn entity.Turn, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, turn, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Place(move.Row, move.Col, turn.Mark())
	updateGameStatus(gameInstance, turn)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, turn entity.Turn, move entity.Move) error {
	if !entity.InBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if gameInstance.Turn != turn {
		return apperror.ErrNotYourTurn
	}

	if !gameInstance.Board.IsEmpty(move.Row, move.Col) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, turn entity.Turn) {
	switch outcome := Evaluate(gameInstance.Board); outcome {
	case entity.AiWins, entity.HumanWins, entity.Draw:
		gameInstance.Outcome = outcome
		gameInstance.Status = entity.StatusFinished
	default:
		gameInstance.Turn = turn.Next()
	}
}
