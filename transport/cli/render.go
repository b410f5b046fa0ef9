package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/kuba-engine/internal/kuba"
)

const boardWidth = 33

// RenderBoard - writes the board as a tab separated grid, X marking empty cells.
func RenderBoard(w io.Writer, board kuba.Snapshot) error {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("_", boardWidth))
	sb.WriteString("\n")
	for _, row := range board {
		sb.WriteString("|\t")
		for _, marble := range row {
			sb.WriteString(marble.String())
			sb.WriteString("\t")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.Repeat("-", boardWidth))
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}
