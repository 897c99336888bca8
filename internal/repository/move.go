package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository caches the move chosen for a board so the search runs once per position.
type MoveRepository interface {
	Get(ctx context.Context, board entity.Board) (entity.Move, error)
	Save(ctx context.Context, board entity.Board, move entity.Move) error
	Delete(ctx context.Context, board entity.Board) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository stores entries for ttl; zero keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func moveKey(board entity.Board) string {
	return "move:" + board.Key()
}

func (that *dbMove) Get(ctx context.Context, board entity.Board) (entity.Move, error) {
	response, err := that.client.Get(ctx, moveKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Move{}, ErrMoveNotFound
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get move by board: %w", err)
	}

	var move entity.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

func (that *dbMove) Save(ctx context.Context, board entity.Board, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKey(board), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) Delete(ctx context.Context, board entity.Board) error {
	deleted, err := that.client.Del(ctx, moveKey(board)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move: %w", err)
	}

	if deleted == 0 {
		return ErrMoveNotFound
	}

	return nil
}
