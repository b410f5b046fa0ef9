package kuba

import (
	"fmt"

	"github.com/rocketscienceinc/kuba-engine/internal/apperror"
	"github.com/rocketscienceinc/kuba-engine/internal/entity"
)

// WinningCaptures - is the number of neutral marbles a player has to push off to win.
const WinningCaptures = 7

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Turn - tells whose move is expected. Player A always owns slot 0 and player B slot 1,
// whichever of them moves first.
type Turn uint8

const (
	TurnNotStarted Turn = iota
	TurnA
	TurnB
)

func turnOf(slot int) Turn {
	if slot == 0 {
		return TurnA
	}
	return TurnB
}

func (that Turn) slot() (int, bool) {
	switch that {
	case TurnA:
		return 0, true
	case TurnB:
		return 1, true
	case TurnNotStarted:
	}
	return 0, false
}

func (that Turn) next() Turn {
	switch that {
	case TurnA:
		return TurnB
	case TurnB:
		return TurnA
	case TurnNotStarted:
	}
	return TurnNotStarted
}

// endOfTurn - the board and capture count left by a player's last accepted move.
type endOfTurn struct {
	board    Snapshot
	captured int
	recorded bool
}

// Match - owns both players, the board, the turn, Ko history and the winner.
type Match struct {
	board   *Board
	players [2]*entity.Player
	turn    Turn
	winner  *entity.Player
	history [2]endOfTurn
}

// NewMatch - creates a match between two players with distinct names and distinct non-neutral colors.
func NewMatch(nameA string, colorA entity.Marble, nameB string, colorB entity.Marble) (*Match, error) {
	if !colorA.IsPlayerColor() || !colorB.IsPlayerColor() || colorA == colorB {
		return nil, fmt.Errorf("%w: got %s and %s", apperror.ErrInvalidColors, colorA, colorB)
	}

	if nameA == nameB {
		return nil, fmt.Errorf("%w: both are %q", apperror.ErrDuplicateName, nameA)
	}

	return &Match{
		board: NewBoard(),
		players: [2]*entity.Player{
			entity.NewPlayer(nameA, colorA),
			entity.NewPlayer(nameB, colorB),
		},
	}, nil
}

// RequestMove - tries to push the marble at pos in dir on behalf of name. Returns false when the move is illegal.
func (that *Match) RequestMove(name string, pos entity.Position, dir entity.Direction) bool {
	return that.MakeMove(name, pos, dir) == nil
}

// MakeMove - same as RequestMove, but tells why a move was rejected.
// A rejected move leaves the match exactly as it was before the call.
func (that *Match) MakeMove(name string, pos entity.Position, dir entity.Direction) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if current, ok := that.currentPlayer(); ok && current.Name != name {
		return fmt.Errorf("%w: %s is expected to move", apperror.ErrNotYourTurn, current.Name)
	}

	slot, ok := that.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, name)
	}
	mover := that.players[slot]

	if err := that.board.CheckMove(pos, dir, mover.Color); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	before := that.board.Snapshot()
	that.board.ApplyMove(pos, dir, mover)

	if own := that.history[slot]; own.recorded && own.board == that.board.Snapshot() {
		that.rollback(slot, before)
		return fmt.Errorf("invalid move: %w", apperror.ErrKoViolation)
	}

	that.history[slot] = endOfTurn{
		board:    that.board.Snapshot(),
		captured: mover.Captured(),
		recorded: true,
	}

	if that.turn == TurnNotStarted {
		that.turn = turnOf(slot)
	}
	that.turn = that.turn.next()

	that.updateWinner(mover)

	return nil
}

// rollback - puts the board back to the opponent's end of turn and undoes the mover's captures.
func (that *Match) rollback(slot int, before Snapshot) {
	if opponent := that.history[1-slot]; opponent.recorded {
		that.board.Restore(opponent.board)
	} else {
		that.board.Restore(before)
	}

	that.players[slot].SetCaptureCount(that.history[slot].captured)
}

// updateWinner - the mover wins on enough captures or when the next player cannot push anything.
func (that *Match) updateWinner(mover *entity.Player) {
	if mover.Captured() >= WinningCaptures {
		that.winner = mover
		return
	}

	next, ok := that.currentPlayer()
	if ok && !that.board.HasLegalMove(next.Color) {
		that.winner = mover
	}
}

// CurrentTurnName - returns the name of the player expected to move, false before the first move.
func (that *Match) CurrentTurnName() (string, bool) {
	player, ok := that.currentPlayer()
	if !ok {
		return "", false
	}
	return player.Name, true
}

// WinnerName - returns the winner's name, false while nobody has won.
func (that *Match) WinnerName() (string, bool) {
	if that.winner == nil {
		return "", false
	}
	return that.winner.Name, true
}

// CapturedCount - returns how many neutral marbles name has captured, false for names outside the match.
func (that *Match) CapturedCount(name string) (int, bool) {
	slot, ok := that.lookup(name)
	if !ok {
		return 0, false
	}
	return that.players[slot].Captured(), true
}

// MarbleAt - returns the marble at pos. Off-board positions read as MarbleNone.
func (that *Match) MarbleAt(pos entity.Position) entity.Marble {
	marble, err := that.board.CellAt(pos)
	if err != nil {
		return entity.MarbleNone
	}
	return marble
}

// MarbleCounts - returns the number of (white, black, red) marbles on the board.
func (that *Match) MarbleCounts() (int, int, int) {
	return that.board.CountMarbles()
}

// Board - returns a copy of the current cells.
func (that *Match) Board() Snapshot {
	return that.board.Snapshot()
}

func (that *Match) HasPlayer(name string) bool {
	_, ok := that.lookup(name)
	return ok
}

// ColorOf - returns the color assigned to name.
func (that *Match) ColorOf(name string) (entity.Marble, bool) {
	slot, ok := that.lookup(name)
	if !ok {
		return entity.MarbleNone, false
	}
	return that.players[slot].Color, true
}

func (that *Match) Turn() Turn {
	return that.turn
}

func (that *Match) Status() string {
	switch {
	case that.winner != nil:
		return StatusFinished
	case that.turn == TurnNotStarted:
		return StatusWaiting
	default:
		return StatusOngoing
	}
}

func (that *Match) IsFinished() bool {
	return that.winner != nil
}

func (that *Match) currentPlayer() (*entity.Player, bool) {
	slot, ok := that.turn.slot()
	if !ok {
		return nil, false
	}
	return that.players[slot], true
}

// lookup - resolves a name to a player slot. Unknown names resolve to nothing.
func (that *Match) lookup(name string) (int, bool) {
	for slot, player := range that.players {
		if player.Name == name {
			return slot, true
		}
	}
	return 0, false
}
