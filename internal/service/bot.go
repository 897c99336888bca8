package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
	BestMove(ctx context.Context, board entity.Board) (entity.Move, error)
}

type moveCache interface {
	Get(ctx context.Context, board entity.Board) (entity.Move, error)
	Save(ctx context.Context, board entity.Board, move entity.Move) error
}

type botService struct {
	logger *slog.Logger

	searcher  *tictactoe.Searcher
	moveCache moveCache
}

// NewBotService builds the AI player. moveCache may be nil, in which case every move is searched.
func NewBotService(logger *slog.Logger, searcher *tictactoe.Searcher, moveCache moveCache) BotService {
	return &botService{
		logger:    logger.With("component", "bot"),
		searcher:  searcher,
		moveCache: moveCache,
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, fmt.Errorf("bot can't move: %w", err)
	}

	if game.Turn != entity.TurnAI {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, err := that.BestMove(ctx, game.Board)
	if err != nil {
		return entity.Move{}, err
	}

	if err = tictactoe.MakeTurn(game, entity.TurnAI, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

// BestMove returns the AI move for the board, from the cache when possible.
func (that *botService) BestMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "BestMove", "board", board.String())

	if move, ok := that.cachedMove(ctx, log, board); ok {
		return move, nil
	}

	started := time.Now()

	move, err := that.searcher.SelectAIMove(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	stats := that.searcher.Stats()
	log.Debug("move searched",
		"move", move.String(),
		"score", stats.Score,
		"nodes", stats.Nodes,
		"pruning", that.searcher.Pruning().String(),
		"elapsed", time.Since(started),
	)

	if that.moveCache != nil {
		if err = that.moveCache.Save(ctx, board, move); err != nil {
			log.Warn("failed to cache move", "error", err)
		}
	}

	return move, nil
}

// cachedMove only trusts entries that still point at an empty cell of the board.
func (that *botService) cachedMove(ctx context.Context, log *slog.Logger, board entity.Board) (entity.Move, bool) {
	if that.moveCache == nil {
		return entity.Move{}, false
	}

	move, err := that.moveCache.Get(ctx, board)
	switch {
	case errors.Is(err, repository.ErrMoveNotFound):
		return entity.Move{}, false
	case err != nil:
		log.Warn("failed to read cached move", "error", err)
		return entity.Move{}, false
	}

	if !entity.InBounds(move.Row, move.Col) || !board.IsEmpty(move.Row, move.Col) {
		log.Warn("ignoring unusable cached move", "move", move.String())
		return entity.Move{}, false
	}

	log.Debug("move served from cache", "move", move.String())

	return move, true
}
