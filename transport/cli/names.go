package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// AskNames - asks for both player names. Blank answers keep the given defaults.
func AskNames(ctx context.Context, input *Input, out io.Writer, nameA, nameB string) (string, string, error) {
	first, err := askName(ctx, input, out, "first", nameA)
	if err != nil {
		return "", "", err
	}

	second, err := askName(ctx, input, out, "second", nameB)
	if err != nil {
		return "", "", err
	}

	return first, second, nil
}

func askName(ctx context.Context, input *Input, out io.Writer, ordinal, fallback string) (string, error) {
	if _, err := fmt.Fprintf(out, "Please provide the %s player's name [%s]: ", ordinal, fallback); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}

	line, ok := input.Next(ctx)
	if !ok {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("name prompt stopped: %w", err)
		}
		return fallback, nil
	}

	if name := strings.TrimSpace(line); name != "" {
		return name, nil
	}

	return fallback, nil
}
