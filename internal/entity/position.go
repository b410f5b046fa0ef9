package entity

import (
	"fmt"

	"github.com/rocketscienceinc/kuba-engine/internal/apperror"
)

// Position - is a (row, column) pair. Row 0 is the far edge, row 6 the near edge.
type Position struct {
	Row int
	Col int
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Step - returns the position n steps away along direction dir.
func (that Position) Step(dir Direction, n int) Position {
	dRow, dCol := dir.Vector()
	return Position{Row: that.Row + dRow*n, Col: that.Col + dCol*n}
}

type Direction uint8

const (
	Left Direction = iota
	Right
	Forward
	Backward
)

// Directions lists every push direction.
var Directions = [...]Direction{Left, Right, Forward, Backward}

// Vector - returns the (row, column) delta of a single step. Unknown directions have a zero vector.
func (that Direction) Vector() (int, int) {
	switch that {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Forward:
		return -1, 0
	case Backward:
		return 1, 0
	default:
		return 0, 0
	}
}

func (that Direction) IsValid() bool {
	return that <= Backward
}

func (that Direction) String() string {
	switch that {
	case Left:
		return "L"
	case Right:
		return "R"
	case Forward:
		return "F"
	case Backward:
		return "B"
	default:
		return "?"
	}
}

func ParseDirection(token string) (Direction, error) {
	switch token {
	case "L", "l":
		return Left, nil
	case "R", "r":
		return Right, nil
	case "F", "f":
		return Forward, nil
	case "B", "b":
		return Backward, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, token)
	}
}
