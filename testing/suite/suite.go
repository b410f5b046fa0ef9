package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/kuba-engine/internal/entity"
	"github.com/rocketscienceinc/kuba-engine/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

const (
	PlayerA = "PlayerA"
	PlayerB = "PlayerB"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Logs   *bytes.Buffer

	Manager *usecase.MatchManager
}

// Move - one push request, as a test scenario line.
type Move struct {
	Player string
	Row    int
	Col    int
	Dir    entity.Direction
}

// New - returns a fresh White (PlayerA) vs Black (PlayerB) match with debug logs captured in memory.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	manager, err := usecase.NewMatchManager(logger, PlayerA, entity.MarbleWhite, PlayerB, entity.MarbleBlack)
	require.NoError(t, err)

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Manager: manager,
	}
}

// Play - applies moves in order and fails the test on the first rejected one.
func (that *Suite) Play(moves ...Move) {
	that.Helper()

	for i, move := range moves {
		pos := entity.Position{Row: move.Row, Col: move.Col}
		err := that.Manager.MakeMove(move.Player, pos, move.Dir)
		require.NoError(that.T, err, "move %d: %s %s %s", i, move.Player, pos, move.Dir)
	}
}
