package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/termplot/pkg/errors"
)

// Dots per character cell.
const (
	CellWidth  = 2
	CellHeight = 4
)

// Canvas is the capability shared by every drawable surface.
type Canvas interface {
	// Width and Height are the intrinsic size in dots.
	Width() int
	Height() int
	// Stretchable reports whether the canvas pads itself out to a larger
	// target. A fixed canvas always renders at its intrinsic size.
	Stretchable() bool
	// Alignment places the content when extra space is available.
	Alignment() Alignment
	// Rows renders the canvas at the target size in dots, bottom row first.
	// A target of zero or less on either axis means the intrinsic size.
	Rows(width, height int) ([]string, error)
}

// Padding is the space added around content on each side.
type Padding struct {
	Top, Bottom, Before, After int
}

// ComputePadding splits the difference between the intrinsic size and the
// new size according to a. The before/top share is rounded up and the
// after/bottom share takes the rest, so each pair sums to its delta.
// Negative deltas yield zero padding.
func ComputePadding(width, height, newWidth, newHeight int, a Alignment) Padding {
	s := a.Split()
	top, bottom := split(newHeight-height, s.Top)
	before, after := split(newWidth-width, s.Before)
	return Padding{Top: top, Bottom: bottom, Before: before, After: after}
}

func split(delta int, frac float64) (before, after int) {
	if delta <= 0 {
		return 0, 0
	}
	before = int(math.Ceil(frac * float64(delta)))
	before = min(max(before, 0), delta)
	return before, delta - before
}

// base carries the state every surface shares.
type base struct {
	width, height int
	stretchable   bool
	alignment     Alignment
}

func (b *base) Width() int           { return b.width }
func (b *base) Height() int          { return b.height }
func (b *base) Stretchable() bool    { return b.stretchable }
func (b *base) Alignment() Alignment { return b.alignment }

// reconcile resolves a requested size against the intrinsic size.
func (b *base) reconcile(width, height int) (int, int, error) {
	if !b.stretchable {
		return b.width, b.height, nil
	}
	if width <= 0 {
		width = b.width
	}
	if height <= 0 {
		height = b.height
	}
	if width < b.width || height < b.height {
		return 0, 0, errors.New(errors.ErrCodeInvalidTarget,
			"target %dx%d is smaller than intrinsic size %dx%d", width, height, b.width, b.height)
	}
	return width, height, nil
}

// padding is zero for fixed canvases.
func (b *base) padding(width, height int) Padding {
	if !b.stretchable {
		return Padding{}
	}
	return ComputePadding(b.width, b.height, width, height, b.alignment)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// cells converts a size in dots to whole character cells.
func cells(width, height int) (int, int) {
	return ceilDiv(width, CellWidth), ceilDiv(height, CellHeight)
}

// fit pads rendered rows out to cw x ch cells using alignment a. Layouts use
// it to place children that rendered smaller than the area they were given.
func fit(rows []string, cw, ch int, a Alignment) []string {
	gotW := 0
	for _, r := range rows {
		gotW = max(gotW, ansi.StringWidth(r))
	}
	if len(rows) >= ch && gotW >= cw {
		return rows
	}

	s := a.Split()
	top, bottom := split(ch-len(rows), s.Top)
	before, _ := split(cw-gotW, s.Before)
	blank := strings.Repeat(" ", cw)
	pre := strings.Repeat(" ", before)

	out := make([]string, 0, len(rows)+top+bottom)
	for range bottom {
		out = append(out, blank)
	}
	for _, r := range rows {
		after := max(cw-before-ansi.StringWidth(r), 0)
		out = append(out, pre+r+strings.Repeat(" ", after))
	}
	for range top {
		out = append(out, blank)
	}
	return out
}
