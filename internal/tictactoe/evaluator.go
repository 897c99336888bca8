package tictactoe

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// Evaluate classifies the board. Lines are checked rows first, then columns, then diagonals.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range entity.Lines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]

		if a != entity.Empty && a == b && b == c {
			return outcomeFor(a)
		}
	}

	// the game will continue until all the squares are full
	if board.MarkCount(entity.Empty) > 0 {
		return entity.Ongoing
	}

	return entity.Draw
}

func outcomeFor(mark entity.Cell) entity.Outcome {
	if mark == entity.AI {
		return entity.AiWins
	}
	return entity.HumanWins
}
