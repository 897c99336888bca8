package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// ParseMove reads "<row> <col>" from a line of human input. Tokens after the first two are ignored.
func ParseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return entity.Move{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrInvalidInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	if !entity.InBounds(row, col) {
		return entity.Move{}, fmt.Errorf("%w: %d %d", apperror.ErrInvalidCell, row, col)
	}

	return entity.Move{Row: row, Col: col}, nil
}
