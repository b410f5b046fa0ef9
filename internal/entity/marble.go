package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownMarble = errors.New("unknown marble token")

// Marble - is the content of a board cell. MarbleNone marks an empty or off-board cell.
type Marble uint8

const (
	MarbleNone Marble = iota
	MarbleWhite
	MarbleBlack
	MarbleRed
)

// MarbleNeutral is the shared color that counts toward captures.
const MarbleNeutral = MarbleRed

func (that Marble) String() string {
	switch that {
	case MarbleWhite:
		return "W"
	case MarbleBlack:
		return "B"
	case MarbleRed:
		return "R"
	default:
		return "X"
	}
}

// IsPlayerColor - reports whether a player may own marbles of this color.
func (that Marble) IsPlayerColor() bool {
	return that == MarbleWhite || that == MarbleBlack
}

func ParseMarble(token string) (Marble, error) {
	switch token {
	case "W", "w":
		return MarbleWhite, nil
	case "B", "b":
		return MarbleBlack, nil
	case "R", "r":
		return MarbleRed, nil
	case "X", "x", "":
		return MarbleNone, nil
	default:
		return MarbleNone, fmt.Errorf("%w: %q", ErrUnknownMarble, token)
	}
}
