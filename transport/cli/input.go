package cli

import (
	"bufio"
	"context"
	"io"
)

// Input - delivers lines from a reader so that waiting for a line can be cancelled.
type Input struct {
	lines chan string
}

// NewInput - starts the reader goroutine. Cancelling ctx stops delivery, but a goroutine blocked
// reading lives until the reader returns, e.g. for stdin until the process exits.
func NewInput(ctx context.Context, reader io.Reader) *Input {
	input := &Input{lines: make(chan string)}

	go func() {
		defer close(input.lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case input.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return input
}

// Next - returns the next line. False means the reader is exhausted or ctx is done.
func (that *Input) Next(ctx context.Context) (string, bool) {
	select {
	case line, ok := <-that.lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}
