package canvas

import (
	"slices"
	"strings"

	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/style"
)

var (
	horizontalGlyphs = [...]rune{Solid: '─', Bold: '━', Double: '═', Dashed: '╌'}
	verticalGlyphs   = [...]rune{Solid: '│', Bold: '┃', Double: '║', Dashed: '╎'}
)

const (
	arrowLeft  = '◂'
	arrowRight = '▸'
	arrowUp    = '▴'
	arrowDown  = '▾'
)

// Line is a one-cell-thick horizontal or vertical rule. Arrow lines replace
// the glyph at one or both ends with an arrowhead.
type Line struct {
	base
	vertical  bool
	arrow     bool
	direction Direction
	glyph     rune
	fg, bg    string
}

// NewHorizontalLine creates a rule width dots long and one cell tall.
func NewHorizontalLine(width int, opts ...Option) (*Line, error) {
	return newLine(width, CellHeight, false, false, opts)
}

// NewVerticalLine creates a rule height dots long and one cell wide.
func NewVerticalLine(height int, opts ...Option) (*Line, error) {
	return newLine(CellWidth, height, true, false, opts)
}

// NewHorizontalArrow is a horizontal line with heads chosen by WithDirection
// (Left, Right or Both).
func NewHorizontalArrow(width int, opts ...Option) (*Line, error) {
	return newLine(width, CellHeight, false, true, opts)
}

// NewVerticalArrow is a vertical line with heads chosen by WithDirection
// (Up, Down or Both).
func NewVerticalArrow(height int, opts ...Option) (*Line, error) {
	return newLine(CellWidth, height, true, true, opts)
}

func newLine(width, height int, vertical, arrow bool, opts []Option) (*Line, error) {
	if err := errors.ValidateSize(width, height); err != nil {
		return nil, err
	}
	r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if arrow {
		switch d := r.direction; {
		case !d.Valid():
			return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid arrow direction %d", int(d))
		case vertical && (d == Left || d == Right):
			return nil, errors.New(errors.ErrCodeInvalidStyle, "vertical arrow cannot point %s", d)
		case !vertical && (d == Up || d == Down):
			return nil, errors.New(errors.ErrCodeInvalidStyle, "horizontal arrow cannot point %s", d)
		}
	}
	glyph := horizontalGlyphs[r.lineStyle]
	if vertical {
		glyph = verticalGlyphs[r.lineStyle]
	}
	return &Line{
		base:      r.newBase(width, height),
		vertical:  vertical,
		arrow:     arrow,
		direction: r.direction,
		glyph:     glyph,
		fg:        r.fg,
		bg:        r.bg,
	}, nil
}

// Rows draws the rule centered across the thin axis.
func (l *Line) Rows(width, height int) ([]string, error) {
	w, h, err := l.reconcile(width, height)
	if err != nil {
		return nil, err
	}
	cw, ch := cells(w, h)
	if l.vertical {
		return l.verticalRows(cw, ch), nil
	}
	return l.horizontalRows(cw, ch), nil
}

func (l *Line) horizontalRows(cw, ch int) []string {
	above, _ := split(ch-1, 0.5)
	blankRow := l.color(strings.Repeat(" ", cw))

	var b strings.Builder
	for i := range cw {
		b.WriteRune(l.glyphAt(i, cw))
	}

	// Collected top first, returned bottom first.
	out := make([]string, 0, ch)
	for range above {
		out = append(out, blankRow)
	}
	out = append(out, l.color(b.String()))
	for len(out) < ch {
		out = append(out, blankRow)
	}
	slices.Reverse(out)
	return out
}

func (l *Line) verticalRows(cw, ch int) []string {
	before, after := split(cw-1, 0.5)
	pre, post := strings.Repeat(" ", before), strings.Repeat(" ", after)

	out := make([]string, 0, ch)
	for i := range ch {
		out = append(out, l.color(pre+string(l.glyphAt(i, ch))+post))
	}
	slices.Reverse(out)
	return out
}

// glyphAt picks the glyph at position i of n along the line. Position 0 is
// the left end of a horizontal line and the top end of a vertical one.
func (l *Line) glyphAt(i, n int) rune {
	if !l.arrow {
		return l.glyph
	}
	first, last := i == 0, i == n-1
	switch {
	case l.vertical && first && (l.direction == Up || l.direction == Both):
		return arrowUp
	case l.vertical && last && (l.direction == Down || l.direction == Both):
		return arrowDown
	case !l.vertical && first && (l.direction == Left || l.direction == Both):
		return arrowLeft
	case !l.vertical && last && (l.direction == Right || l.direction == Both):
		return arrowRight
	}
	return l.glyph
}

func (l *Line) color(s string) string {
	return l.fg + l.bg + s + style.Reset
}
