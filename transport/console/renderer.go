package console

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	cellSeparator = " | "
	rowSeparator  = "---+---+---"

	aiColor    = "1" // red
	humanColor = "4" // blue
)

// Renderer draws the board as three rows of cells with a rule between them.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

// NewRenderer writes to w. With noColor set the board is plain ASCII, otherwise the
// color profile is detected from w and the environment.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{w: w, out: termenv.NewOutput(w, opts...)}
}

func (that *Renderer) Render(board entity.Board) {
	snapshot := board.Snapshot()

	var sb strings.Builder
	for row := range entity.Size {
		if row > 0 {
			sb.WriteString(rowSeparator)
			sb.WriteByte('\n')
		}

		for col := range entity.Size {
			if col > 0 {
				sb.WriteString(cellSeparator)
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.cell(snapshot[row][col]))
		}
		sb.WriteString(" \n")
	}
	sb.WriteByte('\n')

	_, _ = io.WriteString(that.w, sb.String())
}

func (that *Renderer) cell(symbol rune) string {
	style := that.out.String(string(symbol))

	switch symbol {
	case entity.AI.Symbol():
		style = style.Foreground(that.out.Color(aiColor)).Bold()
	case entity.Human.Symbol():
		style = style.Foreground(that.out.Color(humanColor)).Bold()
	default:
		return string(symbol)
	}

	return style.String()
}
