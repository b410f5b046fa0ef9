package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrUnknownPlayer = errors.New("player is not part of this match")

	ErrOutOfBounds   = errors.New("position is off the board")
	ErrEmptyCell     = errors.New("cell is empty")
	ErrNotYourMarble = errors.New("marble does not belong to the player")
	ErrBlockedPush   = errors.New("cannot push against a marble")
	ErrSelfEjection  = errors.New("cannot push own marble off the board")
	ErrKoViolation   = errors.New("move undoes the opponent's last move")

	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidColors    = errors.New("players need two distinct non-neutral colors")
	ErrDuplicateName    = errors.New("players need distinct names")
)
