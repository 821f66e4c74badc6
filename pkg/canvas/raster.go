package canvas

import (
	"strings"

	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/style"
)

const (
	brailleBase = 0x2800
	blank       = ' '
)

// cellBits maps a dot's position inside a cell to its braille bit, indexed
// [dy][dx] with dy = 0 at the bottom of the cell.
var cellBits = [CellHeight][CellWidth]rune{
	{0x40, 0x80},
	{0x04, 0x20},
	{0x02, 0x10},
	{0x01, 0x08},
}

// Raster is a dot-addressable surface rendered as braille characters.
// Dots and their colors live in flat arrays indexed y*width+x.
type Raster struct {
	base
	dots   []bool
	colors []string // foreground escape per dot, "" for none
	fg     string   // default dot color
	bg     string
}

// NewRaster creates an empty raster of the given size in dots. WithColor
// sets the color used by Set calls that pass an empty token.
func NewRaster(width, height int, opts ...Option) (*Raster, error) {
	if err := errors.ValidateSize(width, height); err != nil {
		return nil, err
	}
	r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return &Raster{
		base:   r.newBase(width, height),
		dots:   make([]bool, width*height),
		colors: make([]string, width*height),
		fg:     r.fg,
		bg:     r.bg,
	}, nil
}

// NewRasterFromPattern creates a raster sized to pattern, indexed
// pattern[y][x] with y = 0 at the bottom. Rows may differ in length; the
// raster is as wide as the longest row.
func NewRasterFromPattern(pattern [][]bool, opts ...Option) (*Raster, error) {
	w := 0
	for _, row := range pattern {
		w = max(w, len(row))
	}
	r, err := NewRaster(w, len(pattern), opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range pattern {
		for x, on := range row {
			if on {
				r.dots[y*r.width+x] = true
				r.colors[y*r.width+x] = r.fg
			}
		}
	}
	return r, nil
}

// Set marks dot (x, y) with the given color token. An empty token uses the
// raster's default color. Setting a dot twice keeps the last color.
func (r *Raster) Set(x, y int, color string) error {
	esc, err := r.colorEscape(color)
	if err != nil {
		return err
	}
	return r.set(x, y, esc)
}

// SetMany marks every (xs[i], ys[i]) with one color. The sequences must
// have equal length. No dot is changed if any coordinate is out of bounds.
func (r *Raster) SetMany(xs, ys []int, color string) error {
	if err := errors.ValidateCoordinates(xs, ys); err != nil {
		return err
	}
	esc, err := r.colorEscape(color)
	if err != nil {
		return err
	}
	for i := range xs {
		if err := r.check(xs[i], ys[i]); err != nil {
			return err
		}
	}
	for i := range xs {
		_ = r.set(xs[i], ys[i], esc)
	}
	return nil
}

// Get reports whether dot (x, y) is set. Coordinates outside the raster
// report false.
func (r *Raster) Get(x, y int) bool {
	if r.check(x, y) != nil {
		return false
	}
	return r.dots[y*r.width+x]
}

// Reset clears every dot and color.
func (r *Raster) Reset() {
	clear(r.dots)
	clear(r.colors)
}

// Stretch grows the raster in place to the new size, placing the existing
// dots according to a.
func (r *Raster) Stretch(width, height int, a Alignment) error {
	if !a.Valid() {
		return errors.New(errors.ErrCodeInvalidAlignment, "invalid alignment %d", int(a))
	}
	if width < r.width || height < r.height {
		return errors.New(errors.ErrCodeInvalidTarget,
			"cannot stretch %dx%d raster to smaller size %dx%d", r.width, r.height, width, height)
	}
	if err := errors.ValidateSize(width, height); err != nil {
		return err
	}
	pad := ComputePadding(r.width, r.height, width, height, a)
	r.dots, r.colors = r.padded(width, height, pad)
	r.width, r.height = width, height
	return nil
}

// Rows packs each 2x4 block of dots into one braille character.
func (r *Raster) Rows(width, height int) ([]string, error) {
	w, h, err := r.reconcile(width, height)
	if err != nil {
		return nil, err
	}
	if err := errors.ValidateSize(w, h); err != nil {
		return nil, err
	}
	dots, colors := r.padded(w, h, r.padding(w, h))
	cw, ch := cells(w, h)

	rows := make([]string, ch)
	var b strings.Builder
	for cy := range ch {
		b.Reset()
		b.WriteString(r.bg)
		open := ""
		for cx := range cw {
			glyph, color := packCell(dots, colors, w, h, cx, cy)
			switch {
			case color != "" && color != open:
				b.WriteString(color)
				open = color
			case color == "" && open != "" && glyph != blank:
				b.WriteString(style.ResetForeground)
				open = ""
			}
			b.WriteRune(glyph)
		}
		b.WriteString(style.Reset)
		rows[cy] = b.String()
	}
	return rows, nil
}

// packCell returns the character for cell (cx, cy) and its dominant color.
// The color is the most frequent among set dots; ties go to the color met
// first scanning the cell top to bottom, left to right.
func packCell(dots []bool, colors []string, w, h, cx, cy int) (rune, string) {
	var (
		code   rune
		order  [CellWidth * CellHeight]string
		counts [CellWidth * CellHeight]int
		n      int
	)
	for dy := CellHeight - 1; dy >= 0; dy-- {
		y := cy*CellHeight + dy
		if y >= h {
			continue
		}
		for dx := range CellWidth {
			x := cx*CellWidth + dx
			if x >= w || !dots[y*w+x] {
				continue
			}
			code |= cellBits[dy][dx]
			c := colors[y*w+x]
			if c == "" {
				continue
			}
			i := 0
			for i < n && order[i] != c {
				i++
			}
			if i == n {
				order[n] = c
				n++
			}
			counts[i]++
		}
	}
	if code == 0 {
		return blank, ""
	}
	best := -1
	for i := range n {
		if best < 0 || counts[i] > counts[best] {
			best = i
		}
	}
	if best < 0 {
		return brailleBase | code, ""
	}
	return brailleBase | code, order[best]
}

// padded returns copies of the dot and color arrays resized to w x h with
// the existing content offset by pad.
func (r *Raster) padded(w, h int, pad Padding) ([]bool, []string) {
	dots := make([]bool, w*h)
	colors := make([]string, w*h)
	for y := range r.height {
		ny := y + pad.Bottom
		if ny >= h {
			break
		}
		for x := range r.width {
			nx := x + pad.Before
			if nx >= w {
				break
			}
			dots[ny*w+nx] = r.dots[y*r.width+x]
			colors[ny*w+nx] = r.colors[y*r.width+x]
		}
	}
	return dots, colors
}

func (r *Raster) check(x, y int) error {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return errors.New(errors.ErrCodeOutOfBounds, "dot (%d, %d) outside %dx%d raster", x, y, r.width, r.height)
	}
	return nil
}

func (r *Raster) set(x, y int, esc string) error {
	if err := r.check(x, y); err != nil {
		return err
	}
	r.dots[y*r.width+x] = true
	r.colors[y*r.width+x] = esc
	return nil
}

func (r *Raster) colorEscape(token string) (string, error) {
	if token == "" {
		return r.fg, nil
	}
	return style.Foreground(token)
}
