package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// SearchStats describes the most recent SelectAIMove call.
type SearchStats struct {
	Score int
	Nodes int
}

// SelectAIMove returns the AI's optimal move. Each empty cell is tried in row-major order and
// the first one reaching the lowest score wins ties. The board is passed by value and
// the caller's copy is never touched.
func (that *Searcher) SelectAIMove(board entity.Board) (entity.Move, error) {
	that.nodes = 0
	that.score = 0

	var (
		chosen entity.Move
		found  bool
	)

	bestScore := maxScore
	alpha, beta := minScore, maxScore

	for _, cell := range board.EmptyCells() {
		board.Place(cell.Row, cell.Col, entity.AI)
		score := that.Minimax(&board, SearchDepth, true, alpha, beta)
		board.Clear(cell.Row, cell.Col)

		if score < bestScore {
			bestScore = score
			chosen = cell
			found = true
		}

		beta = min(beta, bestScore)
	}

	if !found {
		return entity.Move{}, apperror.ErrNoLegalMove
	}

	that.score = bestScore

	return chosen, nil
}

func (that *Searcher) Stats() SearchStats {
	return SearchStats{
		Score: that.score,
		Nodes: that.nodes,
	}
}
