package canvas

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Render draws c at the target size and returns its rows top first, ready
// to print. A zero target on either axis means the intrinsic size.
func Render(c Canvas, width, height int) ([]string, error) {
	rows, err := c.Rows(width, height)
	if err != nil {
		return nil, err
	}
	slices.Reverse(rows)
	return rows, nil
}

// String renders c and joins the rows with newlines. There is no trailing
// newline.
func String(c Canvas, width, height int) (string, error) {
	rows, err := Render(c, width, height)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}

// Plain removes every escape sequence from rendered output.
func Plain(s string) string {
	return ansi.Strip(s)
}

// FitTerminal converts a terminal size in cells to the largest target in
// dots, never smaller than the canvas's intrinsic size.
func FitTerminal(c Canvas, columns, lines int) (width, height int) {
	return max(columns*CellWidth, c.Width()), max(lines*CellHeight, c.Height())
}
