package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/kuba-engine/internal/entity"
	"github.com/rocketscienceinc/kuba-engine/internal/kuba"
)

var errQuit = errors.New("quit")

const commandPrompt = "Next command: "

const helpText = `Commands:
	move <playername> <row> <column> <L|R|F|B>
	turn
	winner
	captured <playername>
	marble <row> <column>
	count
	board
	help
	q
`

type uMatch interface {
	MakeMove(name string, pos entity.Position, dir entity.Direction) error
	CurrentTurn() string
	Winner() string
	Captured(name string) (int, error)
	MarbleAt(pos entity.Position) entity.Marble
	MarbleCounts() (int, int, int)
	Board() kuba.Snapshot
	HasPlayer(name string) bool
	IsFinished() bool
}

// Shell - a line oriented front end for one match.
type Shell struct {
	logger *slog.Logger
	uMatch uMatch
	out    io.Writer

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, uMatch uMatch, out io.Writer) *Shell {
	shell := &Shell{
		logger: logger.With("component", "shell"),
		uMatch: uMatch,
		out:    out,

		handlers: make(map[string]func(args []string) error),
	}

	shell.handlers["move"] = shell.handleMove
	shell.handlers["turn"] = shell.handleTurn
	shell.handlers["winner"] = shell.handleWinner
	shell.handlers["captured"] = shell.handleCaptured
	shell.handlers["marble"] = shell.handleMarble
	shell.handlers["count"] = shell.handleCount
	shell.handlers["board"] = shell.handleBoard
	shell.handlers["help"] = shell.handleHelp
	shell.handlers["q"] = shell.handleQuit
	shell.handlers["quit"] = shell.handleQuit

	return shell
}

// Run - executes commands until quit, end of input, cancellation or a winner.
func (that *Shell) Run(ctx context.Context, input *Input) error {
	log := that.logger.With("method", "Run")

	for !that.uMatch.IsFinished() {
		if err := that.print(commandPrompt); err != nil {
			return err
		}

		line, ok := input.Next(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("shell stopped: %w", err)
			}
			log.Debug("input closed")
			break
		}

		err := that.dispatch(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	if that.uMatch.IsFinished() {
		return that.println(that.uMatch.Winner() + " has won!")
	}

	return nil
}

// Welcome - prints the introduction shown before names are asked for.
func Welcome(out io.Writer) error {
	intro := "Welcome to Kuba! Two players take turns trying to knock marbles off the game board.\n" +
		"Push seven red marbles off, or leave your opponent without a legal push, to win.\n" +
		"Type 'q' at any time to quit.\n"

	if _, err := io.WriteString(out, intro+helpText); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (that *Shell) dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	handler, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		return that.println("Invalid command.")
	}

	return handler(fields[1:])
}

func (that *Shell) handleMove(args []string) error {
	if len(args) != 4 {
		return that.println("Usage: move <playername> <row> <column> <L|R|F|B>")
	}

	name := args[0]
	if !that.uMatch.HasPlayer(name) {
		return that.println("Invalid name.")
	}

	pos, err := parsePosition(args[1], args[2])
	if err != nil {
		return that.println("Invalid move.")
	}

	dir, err := entity.ParseDirection(args[3])
	if err != nil {
		return that.println("Invalid move.")
	}

	if err = that.uMatch.MakeMove(name, pos, dir); err != nil {
		return that.println("Invalid move.")
	}

	return that.println("Move recorded.")
}

func (that *Shell) handleTurn(_ []string) error {
	return that.println(that.uMatch.CurrentTurn())
}

func (that *Shell) handleWinner(_ []string) error {
	return that.println(that.uMatch.Winner())
}

func (that *Shell) handleCaptured(args []string) error {
	if len(args) != 1 {
		return that.println("Usage: captured <playername>")
	}

	captured, err := that.uMatch.Captured(args[0])
	if err != nil {
		return that.println("unknown player")
	}

	return that.println(strconv.Itoa(captured))
}

func (that *Shell) handleMarble(args []string) error {
	if len(args) != 2 {
		return that.println("Usage: marble <row> <column>")
	}

	pos, err := parsePosition(args[0], args[1])
	if err != nil {
		return that.println("Invalid coordinates.")
	}

	return that.println(that.uMatch.MarbleAt(pos).String())
}

func (that *Shell) handleCount(_ []string) error {
	white, black, red := that.uMatch.MarbleCounts()
	return that.println(fmt.Sprintf("(%d, %d, %d)", white, black, red))
}

func (that *Shell) handleBoard(_ []string) error {
	return RenderBoard(that.out, that.uMatch.Board())
}

func (that *Shell) handleHelp(_ []string) error {
	return that.print(helpText)
}

func (that *Shell) handleQuit(_ []string) error {
	if err := that.println("Goodbye!"); err != nil {
		return err
	}
	return errQuit
}

func (that *Shell) print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (that *Shell) println(text string) error {
	return that.print(text + "\n")
}

func parsePosition(row, col string) (entity.Position, error) {
	r, err := strconv.Atoi(row)
	if err != nil {
		return entity.Position{}, fmt.Errorf("invalid row %q: %w", row, err)
	}

	c, err := strconv.Atoi(col)
	if err != nil {
		return entity.Position{}, fmt.Errorf("invalid column %q: %w", col, err)
	}

	return entity.Position{Row: r, Col: c}, nil
}
