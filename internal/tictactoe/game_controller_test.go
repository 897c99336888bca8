package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game where the human moves first
		game := entity.NewGame(entity.TurnHuman)

		// When: the human marks the center
		err := MakeTurn(game, entity.TurnHuman, entity.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the mark is placed and the turn passes to the AI
		assert.Equal(t, entity.Human, game.Board[1][1])
		assert.Equal(t, entity.TurnAI, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, entity.Ongoing, game.Outcome)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where the AI took the corner
		game := entity.NewGame(entity.TurnAI)
		err := MakeTurn(game, entity.TurnAI, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		expectedBoard := game.Board

		// When: the human tries the same cell
		err = MakeTurn(game, entity.TurnHuman, entity.Move{Row: 0, Col: 0})

		// Then: ErrCellOccupied is returned and it counts as invalid input
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidInput)

		// Then: the game state remains unchanged
		assert.Equal(t, expectedBoard, game.Board)
		assert.Equal(t, entity.TurnHuman, game.Turn)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where the AI moves first
		game := entity.NewGame(entity.TurnAI)

		// When: the human tries to move
		err := MakeTurn(game, entity.TurnHuman, entity.Move{Row: 0, Col: 1})

		// Then: ErrNotYourTurn is returned and the board is still empty
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
		assert.Equal(t, entity.TurnAI, game.Turn)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame(entity.TurnHuman)

		// When: an index outside the board is passed
		err := MakeTurn(game, entity.TurnHuman, entity.Move{Row: 3, Col: 0})

		// Then: ErrInvalidCell is returned
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		game := entity.NewGame(entity.TurnHuman)

		err := MakeTurn(game, entity.TurnHuman, entity.Move{Row: 0, Col: -1})

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: the AI has two in the first column
		game := entity.NewGame(entity.TurnAI)
		game.Board = mustBoard(t, "XO-", "XO-", "---")

		// When: the AI completes the column
		err := MakeTurn(game, entity.TurnAI, entity.Move{Row: 2, Col: 0})
		require.NoError(t, err)

		// Then: the game is finished with the AI as the winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.AiWins, game.Outcome)
		assert.Equal(t, "AI", game.Winner())
	})

	t.Run("Last cell without a line is a draw", func(t *testing.T) {
		// Given: one empty cell left and no line can be completed
		game := entity.NewGame(entity.TurnHuman)
		game.Board = mustBoard(t, "XOX", "XOO", "OX-")

		// When: the human fills it
		err := MakeTurn(game, entity.TurnHuman, entity.Move{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the game ends in a draw
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.Draw, game.Outcome)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game the AI has already won
		game := &entity.Game{
			Board:   mustBoard(t, "XXX", "-O-", "-O-"),
			Status:  entity.StatusFinished,
			Outcome: entity.AiWins,
			Turn:    entity.TurnHuman,
		}

		// When: the human tries to move after the game is over
		err := MakeTurn(game, entity.TurnHuman, entity.Move{Row: 1, Col: 0})

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
