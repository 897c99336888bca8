package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application. With a non-empty solveBoard it prints the AI move for that
// position and returns, otherwise it plays one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config, solveBoard string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, solveBoard, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, solveBoard string, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	pruning, err := tictactoe.ParsePruning(conf.Pruning)
	if err != nil {
		return fmt.Errorf("invalid pruning mode: %w", err)
	}

	var cache repository.MoveRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		cache = repository.NewMoveRepository(redisStorage.Connection, conf.Redis.TTL)
		log.Info("move cache enabled", "addr", redisAddrString, "ttl", conf.Redis.TTL)
	}

	bot := service.NewBotService(logger, tictactoe.NewSearcher(pruning), cache)
	gameManager := usecase.NewGameManager(logger, bot)

	if solveBoard != "" {
		return solve(ctx, gameManager, solveBoard, out)
	}

	first, err := firstTurn(conf.FirstPlayer)
	if err != nil {
		return err
	}

	session := console.NewSession(logger, gameManager, console.NewRenderer(out, conf.NoColor), in, out)

	game, err := session.Run(ctx, first)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("game over", "game_id", game.ID, "outcome", game.Outcome.String())

	return nil
}

func solve(ctx context.Context, gameManager *usecase.GameManager, rows string, out io.Writer) error {
	board, err := entity.ParseBoard(rows)
	if err != nil {
		return fmt.Errorf("failed to parse board %q: %w", rows, err)
	}

	move, err := gameManager.Solve(ctx, board)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}

	if _, err = fmt.Fprintln(out, move.String()); err != nil {
		return fmt.Errorf("failed to write move: %w", err)
	}

	return nil
}

func firstTurn(firstPlayer string) (entity.Turn, error) {
	switch firstPlayer {
	case config.FirstPlayerAI:
		return entity.TurnAI, nil
	case config.FirstPlayerHuman:
		return entity.TurnHuman, nil
	case config.FirstPlayerRandom, "":
		return entity.RandomTurn(), nil
	default:
		return 0, fmt.Errorf("%w: got %q", config.ErrInvalidFirstPlayer, firstPlayer)
	}
}
