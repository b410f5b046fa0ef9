package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/kuba-engine/internal/config"
	"github.com/rocketscienceinc/kuba-engine/internal/usecase"
	"github.com/rocketscienceinc/kuba-engine/transport/cli"
)

// RunApp - runs the application on the process standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one match over the given streams until it is won, quit or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	colorA, err := conf.PlayerA.Marble()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	colorB, err := conf.PlayerB.Marble()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	input := cli.NewInput(ctx, in)

	nameA, nameB := conf.PlayerA.Name, conf.PlayerB.Name
	if !conf.SkipNamePrompt {
		if err = cli.Welcome(out); err != nil {
			return err
		}

		nameA, nameB, err = cli.AskNames(ctx, input, out, nameA, nameB)
		if err != nil {
			return err
		}
	}

	manager, err := usecase.NewMatchManager(logger, nameA, colorA, nameB, colorB)
	if err != nil {
		return fmt.Errorf("could not start match: %w", err)
	}

	shell := cli.New(logger, manager, out)
	if err = shell.Run(ctx, input); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	log.Info("Application finished", "match_id", manager.ID(), "status", manager.Status())

	return nil
}
