package canvas

import (
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/termplot/pkg/style"
)

// Text is a surface holding literal text rows. Each character occupies one
// cell, so the intrinsic size is 2 dots per column and 4 dots per line.
type Text struct {
	base
	lines   []string
	columns int // widest line in cells
	fg, bg  string
}

// NewText splits text on newlines. Empty text still occupies one blank cell.
func NewText(text string, opts ...Option) (*Text, error) {
	r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return newText(text, r), nil
}

func newText(text string, r resolved) *Text {
	lines := strings.Split(text, "\n")
	columns := 1
	for _, l := range lines {
		columns = max(columns, runewidth.StringWidth(l))
	}
	return &Text{
		base:    r.newBase(columns*CellWidth, len(lines)*CellHeight),
		lines:   lines,
		columns: columns,
		fg:      r.fg,
		bg:      r.bg,
	}
}

// Lines returns a copy of the text rows, top first.
func (t *Text) Lines() []string {
	return slices.Clone(t.lines)
}

// Rows pads the text with blank lines and spaces according to the
// alignment. Every row is right-padded to the full target width.
func (t *Text) Rows(width, height int) ([]string, error) {
	w, h, err := t.reconcile(width, height)
	if err != nil {
		return nil, err
	}
	return t.render(t.padding(w, h), w, h), nil
}

func (t *Text) render(pad Padding, w, h int) []string {
	cw, ch := cells(w, h)
	above := min(ceilDiv(pad.Top, CellHeight), max(ch-len(t.lines), 0))
	before := min(pad.Before/CellWidth, max(cw-t.columns, 0))
	indent := strings.Repeat(" ", before)

	// Collected top first, returned bottom first.
	out := make([]string, 0, ch)
	for range above {
		out = append(out, t.color(strings.Repeat(" ", cw)))
	}
	for _, l := range t.lines {
		out = append(out, t.color(runewidth.FillRight(indent+l, cw)))
	}
	for len(out) < ch {
		out = append(out, t.color(strings.Repeat(" ", cw)))
	}
	slices.Reverse(out)
	return out
}

func (t *Text) color(s string) string {
	return t.fg + t.bg + s + style.Reset
}
