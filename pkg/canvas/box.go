package canvas

import (
	"strings"

	"github.com/matzehuels/termplot/pkg/style"
)

// borderGlyphs holds one glyph family per LineStyle.
type borderGlyphs struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var borders = [...]borderGlyphs{
	Solid:  {'┌', '┐', '└', '┘', '─', '│'},
	Bold:   {'┏', '┓', '┗', '┛', '━', '┃'},
	Double: {'╔', '╗', '╚', '╝', '═', '║'},
	Dashed: {'┌', '┐', '└', '┘', '╌', '╎'},
}

// TextBox is a [Text] framed by a one-cell border.
type TextBox struct {
	base
	text   *Text
	border string
	glyphs borderGlyphs
}

// NewTextBox frames text with a border. WithBorder picks the border color
// and glyph style; WithColor and WithBackground style the text.
func NewTextBox(text string, opts ...Option) (*TextBox, error) {
	r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	inner := newText(text, r)
	return &TextBox{
		base:   r.newBase(inner.width+2*CellWidth, inner.height+2*CellHeight),
		text:   inner,
		border: r.border,
		glyphs: borders[r.lineStyle],
	}, nil
}

// Lines returns a copy of the framed text rows, top first.
func (b *TextBox) Lines() []string {
	return b.text.Lines()
}

// Rows draws the border on the outermost cells of the target area and the
// text inset by one cell on every side.
func (b *TextBox) Rows(width, height int) ([]string, error) {
	w, h, err := b.reconcile(width, height)
	if err != nil {
		return nil, err
	}
	cw, ch := cells(w, h)
	innerW, innerH := max(cw-2, 0), max(ch-2, 0)

	pad := b.padding(w, h)
	inner := b.text.render(pad, innerW*CellWidth, innerH*CellHeight)

	g := b.glyphs
	edge := b.text.bg + b.border
	rule := strings.Repeat(string(g.horizontal), innerW)

	out := make([]string, 0, ch)
	out = append(out, edge+string(g.bottomLeft)+rule+string(g.bottomRight)+style.Reset)
	side := string(g.vertical)
	for _, row := range inner {
		out = append(out, edge+side+row+edge+side+style.Reset)
	}
	out = append(out, edge+string(g.topLeft)+rule+string(g.topRight)+style.Reset)
	return out, nil
}
