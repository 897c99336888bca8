package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Outcome uint8

const (
	Ongoing Outcome = iota
	AiWins
	HumanWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case AiWins:
		return "ai_wins"
	case HumanWins:
		return "human_wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Turn says which side moves next.
type Turn uint8

const (
	TurnAI Turn = iota + 1
	TurnHuman
)

// Mark is the cell value the side places.
func (that Turn) Mark() Cell {
	if that == TurnAI {
		return AI
	}
	return Human
}

func (that Turn) Next() Turn {
	if that == TurnAI {
		return TurnHuman
	}
	return TurnAI
}

func (that Turn) String() string {
	switch that {
	case TurnAI:
		return "AI"
	case TurnHuman:
		return "Human"
	default:
		return "none"
	}
}

// RandomTurn picks the starting side uniformly.
func RandomTurn() Turn {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return TurnAI
	}
	return TurnHuman
}

type Game struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Turn    `json:"turn"`
	Status  string  `json:"status"`
	Outcome Outcome `json:"outcome"`
}

func NewGame(first Turn) *Game {
	return &Game{
		ID:      uuid.NewString(),
		Turn:    first,
		Status:  StatusOngoing,
		Outcome: Ongoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Winner describes the result the way the console announces it.
func (that *Game) Winner() string {
	switch that.Outcome {
	case AiWins:
		return TurnAI.String()
	case HumanWins:
		return TurnHuman.String()
	default:
		return ""
	}
}
