package kuba

import (
	"fmt"

	"github.com/rocketscienceinc/kuba-engine/internal/apperror"
	"github.com/rocketscienceinc/kuba-engine/internal/entity"
)

// Size - is the edge length of the square board.
const Size = 7

// Snapshot - is a full copy of the board cells. Being an array, it is copied by value.
type Snapshot [Size][Size]entity.Marble

var startingMarbles = map[entity.Marble][]entity.Position{
	entity.MarbleWhite: {
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 5, Col: 5}, {Row: 5, Col: 6}, {Row: 6, Col: 5}, {Row: 6, Col: 6},
	},
	entity.MarbleBlack: {
		{Row: 0, Col: 5}, {Row: 0, Col: 6}, {Row: 1, Col: 5}, {Row: 1, Col: 6},
		{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 6, Col: 0}, {Row: 6, Col: 1},
	},
	entity.MarbleRed: {
		{Row: 1, Col: 3}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4}, {Row: 3, Col: 1},
		{Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2},
		{Row: 4, Col: 3}, {Row: 4, Col: 4}, {Row: 5, Col: 3},
	},
}

// Board owns marble geometry only. It knows nothing about turns or winners.
type Board struct {
	cells Snapshot
}

// NewBoard - returns a board with the starting layout.
func NewBoard() *Board {
	board := &Board{}
	for marble, positions := range startingMarbles {
		for _, pos := range positions {
			board.set(pos, marble)
		}
	}

	return board
}

// NewBoardFromSnapshot - returns a board holding an arbitrary layout.
func NewBoardFromSnapshot(cells Snapshot) *Board {
	return &Board{cells: cells}
}

func (that *Board) IsOnBoard(pos entity.Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

// CellAt - returns the marble at pos, or MarbleNone with ErrOutOfBounds when pos is off the board.
func (that *Board) CellAt(pos entity.Position) (entity.Marble, error) {
	if !that.IsOnBoard(pos) {
		return entity.MarbleNone, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	return that.at(pos), nil
}

// ValidateMove - reports whether the marble at pos may be pushed in dir by the owner of color.
func (that *Board) ValidateMove(pos entity.Position, dir entity.Direction, color entity.Marble) bool {
	return that.CheckMove(pos, dir, color) == nil
}

// CheckMove - same as ValidateMove, but tells why the push is illegal.
func (that *Board) CheckMove(pos entity.Position, dir entity.Direction, color entity.Marble) error {
	if !dir.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidDirection, dir)
	}

	marble, err := that.CellAt(pos)
	if err != nil {
		return err
	}

	if marble == entity.MarbleNone {
		return fmt.Errorf("%w: %s", apperror.ErrEmptyCell, pos)
	}

	if marble != color {
		return fmt.Errorf("%w: %s holds %s", apperror.ErrNotYourMarble, pos, marble)
	}

	// the push has to come from the edge or from an empty cell
	origin := pos.Step(dir, -1)
	if that.IsOnBoard(origin) && that.at(origin) != entity.MarbleNone {
		return fmt.Errorf("%w: %s pushing %s", apperror.ErrBlockedPush, pos, dir)
	}

	end := that.lineEnd(pos, dir)
	if !that.IsOnBoard(end) && that.at(end.Step(dir, -1)) == color {
		return fmt.Errorf("%w: %s pushing %s", apperror.ErrSelfEjection, pos, dir)
	}

	return nil
}

// ApplyMove - pushes the line starting at pos one step in dir. The move must be validated first.
// An ejected neutral marble is credited to player. Returns the ejected marble or MarbleNone.
func (that *Board) ApplyMove(pos entity.Position, dir entity.Direction, player *entity.Player) entity.Marble {
	if !dir.IsValid() || !that.IsOnBoard(pos) {
		return entity.MarbleNone
	}

	ejected := entity.MarbleNone

	end := that.lineEnd(pos, dir)
	if !that.IsOnBoard(end) {
		end = end.Step(dir, -1)
		ejected = that.at(end)
		if player != nil {
			player.AddCapture(ejected)
		}
	}

	// shift from the far end back to the source so no cell is overwritten before it moves
	for end != pos {
		prev := end.Step(dir, -1)
		that.set(end, that.at(prev))
		end = prev
	}
	that.set(pos, entity.MarbleNone)

	return ejected
}

// HasLegalMove - reports whether any marble of color can be pushed anywhere.
func (that *Board) HasLegalMove(color entity.Marble) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := entity.Position{Row: row, Col: col}
			if that.at(pos) != color {
				continue
			}

			for _, dir := range entity.Directions {
				if that.ValidateMove(pos, dir, color) {
					return true
				}
			}
		}
	}

	return false
}

// CountMarbles - returns the number of (white, black, red) marbles on the board.
func (that *Board) CountMarbles() (int, int, int) {
	var white, black, red int

	for _, row := range that.cells {
		for _, marble := range row {
			switch marble {
			case entity.MarbleWhite:
				white++
			case entity.MarbleBlack:
				black++
			case entity.MarbleRed:
				red++
			case entity.MarbleNone:
			}
		}
	}

	return white, black, red
}

func (that *Board) Snapshot() Snapshot {
	return that.cells
}

func (that *Board) Restore(cells Snapshot) {
	that.cells = cells
}

// lineEnd - walks from pos along dir over contiguous marbles and returns the first empty or off-board position.
func (that *Board) lineEnd(pos entity.Position, dir entity.Direction) entity.Position {
	end := pos.Step(dir, 1)
	for that.IsOnBoard(end) && that.at(end) != entity.MarbleNone {
		end = end.Step(dir, 1)
	}

	return end
}

func (that *Board) at(pos entity.Position) entity.Marble {
	return that.cells[pos.Row][pos.Col]
}

func (that *Board) set(pos entity.Position, marble entity.Marble) {
	that.cells[pos.Row][pos.Col] = marble
}
