package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/transport/console"
)

func testConfig(firstPlayer string) *config.Config {
	return &config.Config{
		LogLevel:    "info",
		FirstPlayer: firstPlayer,
		Pruning:     config.PruningPartial,
		NoColor:     true,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Solve(t *testing.T) {
	ctx := context.Background()

	t.Run("Prints the blocking move", func(t *testing.T) {
		var out bytes.Buffer

		err := run(ctx, discardLogger(), testConfig(config.FirstPlayerRandom), "OO-/-X-/--X", nil, &out)

		require.NoError(t, err)
		assert.Equal(t, "0 2\n", out.String())
	})

	t.Run("Full pruning gives the same answer", func(t *testing.T) {
		var out bytes.Buffer
		conf := testConfig(config.FirstPlayerRandom)
		conf.Pruning = config.PruningFull

		err := run(ctx, discardLogger(), conf, "---/---/---", nil, &out)

		require.NoError(t, err)
		assert.Equal(t, "0 0\n", out.String())
	})

	t.Run("Rejects a decided board", func(t *testing.T) {
		var out bytes.Buffer

		err := run(ctx, discardLogger(), testConfig(config.FirstPlayerRandom), "XXX/OO-/---", nil, &out)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Empty(t, out.String())
	})

	t.Run("Rejects boards where the AI is not to move", func(t *testing.T) {
		for _, rows := range []string{"XX-/XX-/---", "OO-/OO-/---", "X--/---/---"} {
			var out bytes.Buffer

			err := run(ctx, discardLogger(), testConfig(config.FirstPlayerRandom), rows, nil, &out)

			require.ErrorIs(t, err, entity.ErrInvalidBoard, rows)
			assert.Empty(t, out.String(), rows)
		}
	})

	t.Run("Rejects a malformed board", func(t *testing.T) {
		err := run(ctx, discardLogger(), testConfig(config.FirstPlayerRandom), "OO-/-X-", nil, io.Discard)

		require.ErrorIs(t, err, entity.ErrInvalidBoard)
	})

	t.Run("Rejects an unknown pruning mode", func(t *testing.T) {
		conf := testConfig(config.FirstPlayerRandom)
		conf.Pruning = "aggressive"

		err := run(ctx, discardLogger(), conf, "---/---/---", nil, io.Discard)

		require.ErrorIs(t, err, tictactoe.ErrUnknownPruning)
	})
}

func TestRun_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a full game on the console", func(t *testing.T) {
		var out bytes.Buffer
		input := strings.NewReader("1 1\n0 1\n1 0\n2 0\n2 2\n")

		err := run(ctx, discardLogger(), testConfig(config.FirstPlayerHuman), "", input, &out)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "It is a tie\n"))
	})

	t.Run("Reports closed input", func(t *testing.T) {
		err := run(ctx, discardLogger(), testConfig(config.FirstPlayerHuman), "", strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, console.ErrInputClosed)
	})

	t.Run("Cancellation is a clean shutdown", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := run(cancelled, discardLogger(), testConfig(config.FirstPlayerAI), "", strings.NewReader(""), io.Discard)

		require.NoError(t, err)
	})
}

func TestFirstTurn(t *testing.T) {
	turn, err := firstTurn(config.FirstPlayerAI)
	require.NoError(t, err)
	assert.Equal(t, entity.TurnAI, turn)

	turn, err = firstTurn(config.FirstPlayerHuman)
	require.NoError(t, err)
	assert.Equal(t, entity.TurnHuman, turn)

	turn, err = firstTurn(config.FirstPlayerRandom)
	require.NoError(t, err)
	assert.Contains(t, []entity.Turn{entity.TurnAI, entity.TurnHuman}, turn)

	_, err = firstTurn("computer")
	require.ErrorIs(t, err, config.ErrInvalidFirstPlayer)
}
