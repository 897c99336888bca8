package console

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

func TestRenderer_Render(t *testing.T) {
	t.Run("Plain board", func(t *testing.T) {
		// Given: a renderer without colors
		var buf bytes.Buffer
		renderer := NewRenderer(&buf, true)

		board, err := entity.ParseBoard("XO-/-X-/--O")
		require.NoError(t, err)

		// When: the board is rendered
		renderer.Render(board)

		// Then: the rows are separated by a rule and followed by a blank line
		want := " X | O |   \n" +
			"---+---+---\n" +
			"   | X |   \n" +
			"---+---+---\n" +
			"   |   | O \n" +
			"\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("Empty board", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, true).Render(entity.Board{})

		assert.Equal(t, "   |   |   \n---+---+---\n   |   |   \n---+---+---\n   |   |   \n\n", buf.String())
	})

	t.Run("Colored marks", func(t *testing.T) {
		// Given: a renderer forced to an ANSI profile
		var buf bytes.Buffer
		renderer := &Renderer{w: &buf, out: termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))}

		var board entity.Board
		board.Place(0, 0, entity.AI)

		// When: the board is rendered
		renderer.Render(board)

		// Then: marks carry escape sequences while the grid stays plain
		assert.Contains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), "X")
		assert.Contains(t, buf.String(), "---+---+---\n")
	})
}
