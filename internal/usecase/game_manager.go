package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
	BestMove(ctx context.Context, board entity.Board) (entity.Move, error)
}

type GameManager struct {
	logger *slog.Logger
	bot    botService
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// NewGame starts an empty game where first moves first.
func (that *GameManager) NewGame(first entity.Turn) *entity.Game {
	game := entity.NewGame(first)

	that.logger.Info("game started", "game_id", game.ID, "first", first.String())

	return game
}

func (that *GameManager) MakeHumanTurn(_ context.Context, game *entity.Game, move entity.Move) error {
	if err := tictactoe.MakeTurn(game, entity.TurnHuman, move); err != nil {
		return fmt.Errorf("failed make human turn: %w", err)
	}

	that.logTurn(game, entity.TurnHuman, move)

	return nil
}

func (that *GameManager) MakeAITurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	move, err := that.bot.MakeTurn(ctx, game)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed make ai turn: %w", err)
	}

	that.logTurn(game, entity.TurnAI, move)

	return move, nil
}

// Solve returns the AI move for an arbitrary position without playing it.
func (that *GameManager) Solve(ctx context.Context, board entity.Board) (entity.Move, error) {
	if outcome := tictactoe.Evaluate(board); outcome != entity.Ongoing {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome)
	}

	if err := confirmAIToMove(board); err != nil {
		return entity.Move{}, err
	}

	move, err := that.bot.BestMove(ctx, board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to solve board %s: %w", board.String(), err)
	}

	return move, nil
}

// confirmAIToMove accepts only boards reachable with the AI to move: either side may have
// started, so the human is level with the AI or one mark ahead.
func confirmAIToMove(board entity.Board) error {
	ai, human := board.MarkCount(entity.AI), board.MarkCount(entity.Human)
	if ai > human || human-ai > 1 {
		return fmt.Errorf("%w: board %s has %d AI and %d human marks, not the AI's turn",
			entity.ErrInvalidBoard, board.String(), ai, human)
	}

	return nil
}

func (that *GameManager) logTurn(game *entity.Game, turn entity.Turn, move entity.Move) {
	log := that.logger.With("game_id", game.ID)

	log.Debug("turn made", "side", turn.String(), "move", move.String(), "board", game.Board.String())

	if game.IsFinished() {
		log.Info("game finished", "outcome", game.Outcome.String())
	}
}
