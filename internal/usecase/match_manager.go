package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/kuba-engine/internal/apperror"
	"github.com/rocketscienceinc/kuba-engine/internal/entity"
	"github.com/rocketscienceinc/kuba-engine/internal/kuba"
)

const (
	NoMovesYet  = "no moves yet"
	NoWinnerYet = "no winner yet"
)

// MatchManager - the query/command surface of a single match. Every move outcome is logged.
type MatchManager struct {
	logger *slog.Logger
	id     string
	match  *kuba.Match
}

func NewMatchManager(logger *slog.Logger, nameA string, colorA entity.Marble, nameB string, colorB entity.Marble) (*MatchManager, error) {
	match, err := kuba.NewMatch(nameA, colorA, nameB, colorB)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	id := uuid.New().String()
	manager := &MatchManager{
		logger: logger.With("component", "match", "match_id", id),
		id:     id,
		match:  match,
	}

	manager.logger.Info("match created",
		"player_a", nameA, "color_a", colorA.String(),
		"player_b", nameB, "color_b", colorB.String(),
	)

	return manager, nil
}

func (that *MatchManager) ID() string {
	return that.id
}

// MakeMove - pushes the marble at pos in dir for name. The returned error tells why a move was rejected.
func (that *MatchManager) MakeMove(name string, pos entity.Position, dir entity.Direction) error {
	log := that.logger.With("method", "MakeMove", "player", name, "position", pos.String(), "direction", dir.String())

	if err := that.match.MakeMove(name, pos, dir); err != nil {
		if errors.Is(err, apperror.ErrKoViolation) {
			log.Info("move rolled back by ko rule")
		} else {
			log.Debug("move rejected", "error", err)
		}

		return fmt.Errorf("failed make move: %w", err)
	}

	captured, _ := that.match.CapturedCount(name)
	log.Info("move accepted", "captured", captured)

	if winner, ok := that.match.WinnerName(); ok {
		log.Info("match finished", "winner", winner)
	}

	return nil
}

// CurrentTurn - returns the name of the player to move, or NoMovesYet.
func (that *MatchManager) CurrentTurn() string {
	if name, ok := that.match.CurrentTurnName(); ok {
		return name
	}
	return NoMovesYet
}

// Winner - returns the winner's name, or NoWinnerYet.
func (that *MatchManager) Winner() string {
	if name, ok := that.match.WinnerName(); ok {
		return name
	}
	return NoWinnerYet
}

func (that *MatchManager) Captured(name string) (int, error) {
	captured, ok := that.match.CapturedCount(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, name)
	}
	return captured, nil
}

func (that *MatchManager) MarbleAt(pos entity.Position) entity.Marble {
	return that.match.MarbleAt(pos)
}

// MarbleCounts - returns the number of (white, black, red) marbles on the board.
func (that *MatchManager) MarbleCounts() (int, int, int) {
	return that.match.MarbleCounts()
}

func (that *MatchManager) Board() kuba.Snapshot {
	return that.match.Board()
}

func (that *MatchManager) HasPlayer(name string) bool {
	return that.match.HasPlayer(name)
}

func (that *MatchManager) IsFinished() bool {
	return that.match.IsFinished()
}

func (that *MatchManager) Status() string {
	return that.match.Status()
}
