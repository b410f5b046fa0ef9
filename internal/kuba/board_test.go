package kuba

import (
	"testing"

	"github.com/rocketscienceinc/kuba-engine/internal/apperror"
	"github.com/rocketscienceinc/kuba-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initialRows = []string{
	"WW...BB",
	"WW.R.BB",
	"..RRR..",
	".RRRRR.",
	"..RRR..",
	"BB.R.WW",
	"BB...WW",
}

// parseBoard - builds cells from one string per row. '.' is an empty cell.
func parseBoard(t *testing.T, rows ...string) Snapshot {
	t.Helper()
	require.Len(t, rows, Size)

	var cells Snapshot
	for r, row := range rows {
		require.Len(t, row, Size)
		for c, token := range row {
			if token == '.' {
				continue
			}

			marble, err := entity.ParseMarble(string(token))
			require.NoError(t, err)
			cells[r][c] = marble
		}
	}

	return cells
}

func pos(row, col int) entity.Position {
	return entity.Position{Row: row, Col: col}
}

func TestNewBoard(t *testing.T) {
	// Given: a new board
	board := NewBoard()

	// Then: the layout is the starting one
	require.Equal(t, parseBoard(t, initialRows...), board.Snapshot())

	// Then: there are 8 white, 8 black and 13 red marbles
	white, black, red := board.CountMarbles()
	assert.Equal(t, 8, white)
	assert.Equal(t, 8, black)
	assert.Equal(t, 13, red)
}

func TestBoard_CellAt(t *testing.T) {
	board := NewBoard()

	t.Run("Occupied cell", func(t *testing.T) {
		marble, err := board.CellAt(pos(0, 0))
		require.NoError(t, err)
		assert.Equal(t, entity.MarbleWhite, marble)
	})

	t.Run("Empty cell", func(t *testing.T) {
		marble, err := board.CellAt(pos(3, 0))
		require.NoError(t, err)
		assert.Equal(t, entity.MarbleNone, marble)
	})

	t.Run("Off the board", func(t *testing.T) {
		for _, p := range []entity.Position{pos(-1, 0), pos(0, 7), pos(7, 7), pos(10, 10)} {
			marble, err := board.CellAt(p)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.Equal(t, entity.MarbleNone, marble)
			assert.False(t, board.IsOnBoard(p))
		}
	})
}

func TestBoard_CheckMove(t *testing.T) {
	tests := []struct {
		name  string
		pos   entity.Position
		dir   entity.Direction
		color entity.Marble
		want  error
	}{
		{name: "push from the edge", pos: pos(6, 5), dir: entity.Forward, color: entity.MarbleWhite},
		{name: "push along the top edge", pos: pos(0, 5), dir: entity.Backward, color: entity.MarbleBlack},
		{name: "blocked from behind", pos: pos(5, 5), dir: entity.Forward, color: entity.MarbleWhite, want: apperror.ErrBlockedPush},
		{name: "own marble off the edge", pos: pos(6, 5), dir: entity.Right, color: entity.MarbleWhite, want: apperror.ErrSelfEjection},
		{name: "opponent marble", pos: pos(0, 5), dir: entity.Backward, color: entity.MarbleWhite, want: apperror.ErrNotYourMarble},
		{name: "neutral marble", pos: pos(3, 1), dir: entity.Right, color: entity.MarbleWhite, want: apperror.ErrNotYourMarble},
		{name: "empty cell", pos: pos(3, 0), dir: entity.Right, color: entity.MarbleWhite, want: apperror.ErrEmptyCell},
		{name: "off the board", pos: pos(10, 10), dir: entity.Forward, color: entity.MarbleWhite, want: apperror.ErrOutOfBounds},
		{name: "unknown direction", pos: pos(6, 5), dir: entity.Direction(9), color: entity.MarbleWhite, want: apperror.ErrInvalidDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a new board
			board := NewBoard()

			// When: the move is checked
			err := board.CheckMove(tt.pos, tt.dir, tt.color)

			// Then: the expected verdict is returned and the board is untouched
			if tt.want == nil {
				require.NoError(t, err)
				assert.True(t, board.ValidateMove(tt.pos, tt.dir, tt.color))
			} else {
				require.ErrorIs(t, err, tt.want)
				assert.False(t, board.ValidateMove(tt.pos, tt.dir, tt.color))
			}
			assert.Equal(t, parseBoard(t, initialRows...), board.Snapshot())
		})
	}

	t.Run("Own marble at the far end of a packed line", func(t *testing.T) {
		// Given: a white line ending in a white marble at the edge
		board := NewBoardFromSnapshot(parseBoard(t,
			"....WRW", ".......", ".......", ".......", ".......", ".......", ".......",
		))

		// When: the line is pushed off the right edge
		err := board.CheckMove(pos(0, 4), entity.Right, entity.MarbleWhite)

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrSelfEjection)
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Shifts the line into the first empty cell", func(t *testing.T) {
		// Given: a new board and a white player
		board := NewBoard()
		player := entity.NewPlayer("PlayerA", entity.MarbleWhite)

		// When: the marble at (6,5) is pushed forward
		ejected := board.ApplyMove(pos(6, 5), entity.Forward, player)

		// Then: the column moved one row up and (6,5) is empty
		assert.Equal(t, entity.MarbleNone, ejected)
		assert.Equal(t, parseBoard(t,
			"WW...BB",
			"WW.R.BB",
			"..RRR..",
			".RRRRR.",
			"..RRRW.",
			"BB.R.WW",
			"BB....W",
		), board.Snapshot())
		assert.Equal(t, 0, player.Captured())
	})

	t.Run("Ejecting a neutral marble credits the player", func(t *testing.T) {
		// Given: a packed line ending in a red marble
		board := NewBoardFromSnapshot(parseBoard(t,
			"....WRR", ".......", ".......", ".......", ".......", ".......", "B......",
		))
		player := entity.NewPlayer("PlayerA", entity.MarbleWhite)

		// When: the line is pushed to the right
		ejected := board.ApplyMove(pos(0, 4), entity.Right, player)

		// Then: one red marble left the board and was captured
		assert.Equal(t, entity.MarbleRed, ejected)
		assert.Equal(t, 1, player.Captured())
		assert.Equal(t, parseBoard(t,
			".....WR", ".......", ".......", ".......", ".......", ".......", "B......",
		), board.Snapshot())

		white, black, red := board.CountMarbles()
		assert.Equal(t, []int{1, 1, 1}, []int{white, black, red})
	})

	t.Run("Ejecting an opponent marble is not a capture", func(t *testing.T) {
		// Given: a packed line ending in a black marble
		board := NewBoardFromSnapshot(parseBoard(t,
			"....WRB", ".......", ".......", ".......", ".......", ".......", ".......",
		))
		player := entity.NewPlayer("PlayerA", entity.MarbleWhite)

		// When: the line is pushed to the right
		ejected := board.ApplyMove(pos(0, 4), entity.Right, player)

		// Then: the black marble is gone but nothing is captured
		assert.Equal(t, entity.MarbleBlack, ejected)
		assert.Equal(t, 0, player.Captured())

		_, black, _ := board.CountMarbles()
		assert.Equal(t, 0, black)
	})

	t.Run("Total marble count never grows", func(t *testing.T) {
		board := NewBoard()
		player := entity.NewPlayer("PlayerA", entity.MarbleWhite)

		for _, dir := range entity.Directions {
			for row := 0; row < Size; row++ {
				for col := 0; col < Size; col++ {
					p := pos(row, col)
					if !board.ValidateMove(p, dir, entity.MarbleWhite) {
						continue
					}

					w0, b0, r0 := board.CountMarbles()
					ejected := board.ApplyMove(p, dir, player)
					w1, b1, r1 := board.CountMarbles()

					removed := (w0 + b0 + r0) - (w1 + b1 + r1)
					if ejected == entity.MarbleNone {
						assert.Equal(t, 0, removed)
					} else {
						assert.Equal(t, 1, removed)
					}
				}
			}
		}
	})

	t.Run("Unvalidated input does not loop or panic", func(t *testing.T) {
		board := NewBoard()

		assert.Equal(t, entity.MarbleNone, board.ApplyMove(pos(9, 9), entity.Left, nil))
		assert.Equal(t, entity.MarbleNone, board.ApplyMove(pos(0, 0), entity.Direction(7), nil))
		assert.Equal(t, parseBoard(t, initialRows...), board.Snapshot())
	})
}

func TestBoard_SnapshotRestore(t *testing.T) {
	// Given: a snapshot of a new board
	board := NewBoard()
	saved := board.Snapshot()

	// When: the board changes
	board.ApplyMove(pos(6, 5), entity.Forward, nil)

	// Then: the snapshot still holds the old layout
	assert.Equal(t, parseBoard(t, initialRows...), saved)
	assert.NotEqual(t, saved, board.Snapshot())

	// When: the snapshot is restored and the board changes again
	board.Restore(saved)
	require.Equal(t, saved, board.Snapshot())
	board.ApplyMove(pos(0, 5), entity.Backward, nil)

	// Then: the stored snapshot is unaffected
	assert.Equal(t, parseBoard(t, initialRows...), saved)
}

func TestBoard_HasLegalMove(t *testing.T) {
	t.Run("Starting position", func(t *testing.T) {
		board := NewBoard()

		assert.True(t, board.HasLegalMove(entity.MarbleWhite))
		assert.True(t, board.HasLegalMove(entity.MarbleBlack))
	})

	t.Run("Surrounded marble cannot move", func(t *testing.T) {
		board := NewBoardFromSnapshot(parseBoard(t,
			".......",
			".......",
			"...R...",
			"..RBR..",
			"...R...",
			".......",
			"......W",
		))

		assert.False(t, board.HasLegalMove(entity.MarbleBlack))
		assert.True(t, board.HasLegalMove(entity.MarbleWhite))
	})

	t.Run("No marbles left", func(t *testing.T) {
		board := NewBoardFromSnapshot(Snapshot{})

		assert.False(t, board.HasLegalMove(entity.MarbleWhite))
	})
}
