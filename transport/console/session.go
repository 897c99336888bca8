package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	humanPrompt     = "Human move: "
	invalidMoveText = "Invalid coordinates, try again."
	tieText         = "It is a tie"
)

var ErrInputClosed = errors.New("input closed")

type gameManager interface {
	NewGame(first entity.Turn) *entity.Game
	MakeHumanTurn(ctx context.Context, game *entity.Game, move entity.Move) error
	MakeAITurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// Session plays one game between the human on the terminal and the AI.
type Session struct {
	logger *slog.Logger

	manager  gameManager
	renderer *Renderer

	in  io.Reader
	out io.Writer

	lines   chan string
	readErr error
}

func NewSession(logger *slog.Logger, manager gameManager, renderer *Renderer, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: renderer,
		in:       in,
		out:      out,
	}
}

// Run plays until the game is decided, the input ends or ctx is cancelled. The finished game is
// returned together with a nil error.
func (that *Session) Run(ctx context.Context, first entity.Turn) (*entity.Game, error) {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.startReader(ctx)

	game := that.manager.NewGame(first)
	log = log.With("game_id", game.ID)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("session interrupted: %w", err)
		}

		var err error
		if game.Turn == entity.TurnHuman {
			err = that.humanTurn(ctx, game)
		} else {
			err = that.aiTurn(ctx, game)
		}

		if err != nil {
			log.Error("turn failed", "turn", game.Turn.String(), "error", err)
			return game, err
		}

		that.renderer.Render(game.Board)
	}

	that.announce(game)

	return game, nil
}

func (that *Session) humanTurn(ctx context.Context, game *entity.Game) error {
	for {
		that.print(humanPrompt)

		line, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		move, err := ParseMove(line)
		if err == nil {
			err = that.manager.MakeHumanTurn(ctx, game, move)
		}

		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrInvalidInput):
			that.logger.Debug("rejected human move", "input", line, "error", err)
			that.println(invalidMoveText)
		default:
			return fmt.Errorf("failed human turn: %w", err)
		}
	}
}

func (that *Session) aiTurn(ctx context.Context, game *entity.Game) error {
	move, err := that.manager.MakeAITurn(ctx, game)
	if err != nil {
		return fmt.Errorf("failed ai turn: %w", err)
	}

	that.println("AI move: " + move.String())

	return nil
}

func (that *Session) announce(game *entity.Game) {
	if game.Outcome == entity.Draw {
		that.println(tieText)
		return
	}

	that.println("Winner is " + game.Winner())
}

// startReader feeds input lines to the session so a blocked read never outlives ctx.
func (that *Session) startReader(ctx context.Context) {
	that.lines = make(chan string)

	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case that.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		that.readErr = scanner.Err()
	}()
}

func (that *Session) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for human move: %w", ctx.Err())
	case line, ok := <-that.lines:
		if ok {
			return line, nil
		}

		if that.readErr != nil {
			return "", fmt.Errorf("failed to read human move: %w", that.readErr)
		}

		return "", ErrInputClosed
	}
}

func (that *Session) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Session) println(text string) {
	_, _ = io.WriteString(that.out, text+"\n")
}
