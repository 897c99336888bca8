package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the side length of the board.
const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	AI
	Human
)

var ErrInvalidBoard = errors.New("invalid board notation")

// Symbol returns the character the renderer draws for the cell.
func (that Cell) Symbol() rune {
	switch that {
	case AI:
		return 'X'
	case Human:
		return 'O'
	default:
		return ' '
	}
}

// key returns the character used in Board.Key, where an empty cell must stay visible.
func (that Cell) key() byte {
	switch that {
	case AI:
		return 'X'
	case Human:
		return 'O'
	default:
		return '-'
	}
}

func (that Cell) String() string {
	switch that {
	case AI:
		return "AI"
	case Human:
		return "Human"
	default:
		return "Empty"
	}
}

// Move identifies a cell by 0-based row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d %d", that.Row, that.Col)
}

// InBounds reports whether (row, col) addresses a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Lines lists every winning line: rows, then columns, then the two diagonals.
var Lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid addressed as Board[row][col]. It is a value type: assignment copies every cell.
type Board [Size][Size]Cell

// Place sets the cell to mark. The cell must be empty and in bounds; callers check with IsEmpty first.
func (that *Board) Place(row, col int, mark Cell) {
	that[row][col] = mark
}

// Clear undoes a speculative Place.
func (that *Board) Clear(row, col int) {
	that[row][col] = Empty
}

func (that *Board) IsEmpty(row, col int) bool {
	return that[row][col] == Empty
}

// EmptyCells returns the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) MarkCount(mark Cell) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that[row][col] == mark {
				count++
			}
		}
	}

	return count
}

// Snapshot returns the symbols of the board for read-only display.
func (that *Board) Snapshot() [Size][Size]rune {
	var snapshot [Size][Size]rune
	for row := range Size {
		for col := range Size {
			snapshot[row][col] = that[row][col].Symbol()
		}
	}

	return snapshot
}

// Key encodes the board as nine characters in row-major order, '-' for an empty cell.
func (that *Board) Key() string {
	key := make([]byte, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			key = append(key, that[row][col].key())
		}
	}

	return string(key)
}

func (that *Board) String() string {
	key := that.Key()

	rows := make([]string, 0, Size)
	for row := range Size {
		rows = append(rows, key[row*Size:(row+1)*Size])
	}

	return strings.Join(rows, "/")
}

// ParseBoard reads a board written as rows of 'X', 'O' and '-' (or '_' / ' ' for empty).
// The rows may be passed as separate arguments or joined with '/', e.g. "OO-/-X-/--X".
func ParseBoard(rows ...string) (Board, error) {
	var board Board

	if len(rows) == 1 {
		rows = strings.Split(rows[0], "/")
	}

	if len(rows) != Size {
		return board, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	for row, line := range rows {
		if len(line) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(line))
		}

		for col := range Size {
			switch line[col] {
			case 'X', 'x':
				board[row][col] = AI
			case 'O', 'o':
				board[row][col] = Human
			case '-', '_', ' ':
				board[row][col] = Empty
			default:
				return board, fmt.Errorf("%w: unexpected %q at %d %d", ErrInvalidBoard, line[col], row, col)
			}
		}
	}

	return board, nil
}
