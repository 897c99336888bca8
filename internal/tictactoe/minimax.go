package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	// SearchDepth is larger than the nine plies a game can last, so recursion always ends on a terminal board.
	SearchDepth = 10

	minScore = -1000
	maxScore = 1000
)

// Pruning selects how far an alpha-beta cutoff abandons the scan of a node's children.
type Pruning uint8

const (
	// PruningPartial stops scanning the current row only; later rows are still visited.
	PruningPartial Pruning = iota
	// PruningFull stops scanning the node entirely.
	PruningFull
)

var ErrUnknownPruning = errors.New("unknown pruning mode")

func ParsePruning(mode string) (Pruning, error) {
	switch mode {
	case "partial", "":
		return PruningPartial, nil
	case "full":
		return PruningFull, nil
	default:
		return PruningPartial, fmt.Errorf("%w: %q", ErrUnknownPruning, mode)
	}
}

func (that Pruning) String() string {
	if that == PruningFull {
		return "full"
	}
	return "partial"
}

// Searcher runs minimax with alpha-beta pruning. It keeps counters of the last search
// and must not be shared between goroutines.
type Searcher struct {
	pruning Pruning

	nodes int
	score int
}

func NewSearcher(pruning Pruning) *Searcher {
	return &Searcher{pruning: pruning}
}

func (that *Searcher) Pruning() Pruning {
	return that.pruning
}

// TerminalScore weights a finished board by the remaining depth: the AI minimizes, the human maximizes,
// and outcomes reached sooner carry a larger magnitude.
func TerminalScore(outcome entity.Outcome, depth int) int {
	switch outcome {
	case entity.AiWins:
		return -depth
	case entity.HumanWins:
		return depth
	default:
		return 0
	}
}

// Minimax scores the board for the side to move: maximizing means the human moves next.
// The board is mutated while searching and restored before returning.
func (that *Searcher) Minimax(board *entity.Board, depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	if outcome := Evaluate(*board); outcome != entity.Ongoing {
		return TerminalScore(outcome, depth)
	}

	if depth <= 0 {
		return 0
	}

	best, mark := maxScore, entity.AI
	if maximizing {
		best, mark = minScore, entity.Human
	}

rows:
	for row := range entity.Size {
		for col := range entity.Size {
			if !board.IsEmpty(row, col) {
				continue
			}

			board.Place(row, col, mark)
			score := that.Minimax(board, depth-1, !maximizing, alpha, beta)
			board.Clear(row, col)

			if maximizing {
				best = max(best, score)
				alpha = max(alpha, best)
			} else {
				best = min(best, score)
				beta = min(beta, best)
			}

			if beta <= alpha {
				if that.pruning == PruningFull {
					break rows
				}
				break
			}
		}
	}

	return best
}
