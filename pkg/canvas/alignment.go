package canvas

import (
	"strings"

	"github.com/matzehuels/termplot/pkg/errors"
)

// Alignment names where a canvas sits inside a larger area. The extra space
// goes to the opposite side: BottomLeft content gets all extra rows on top
// and all extra columns on the right.
type Alignment int

// Supported alignments. The zero value is Center.
const (
	Center Alignment = iota
	BottomLeft
	TopLeft
	BottomRight
	TopRight
	CenterLeft
	CenterRight
	BottomCenter
	TopCenter
)

// Split is the fraction of extra space placed before the content on each
// axis. Top+Bottom == 1 and Before+After == 1.
type Split struct {
	Top, Bottom   float64
	Before, After float64
}

var alignments = [...]struct {
	name  string
	split Split
}{
	Center:       {"center", Split{Top: 0.5, Bottom: 0.5, Before: 0.5, After: 0.5}},
	BottomLeft:   {"bottomleft", Split{Top: 1, Bottom: 0, Before: 0, After: 1}},
	TopLeft:      {"topleft", Split{Top: 0, Bottom: 1, Before: 0, After: 1}},
	BottomRight:  {"bottomright", Split{Top: 1, Bottom: 0, Before: 1, After: 0}},
	TopRight:     {"topright", Split{Top: 0, Bottom: 1, Before: 1, After: 0}},
	CenterLeft:   {"centerleft", Split{Top: 0.5, Bottom: 0.5, Before: 0, After: 1}},
	CenterRight:  {"centerright", Split{Top: 0.5, Bottom: 0.5, Before: 1, After: 0}},
	BottomCenter: {"bottomcenter", Split{Top: 1, Bottom: 0, Before: 0.5, After: 0.5}},
	TopCenter:    {"topcenter", Split{Top: 0, Bottom: 1, Before: 0.5, After: 0.5}},
}

// Valid reports whether a is one of the named alignments.
func (a Alignment) Valid() bool {
	return a >= 0 && int(a) < len(alignments)
}

// Split returns the fractional space split for a. Invalid alignments split
// like Center.
func (a Alignment) Split() Split {
	if !a.Valid() {
		return alignments[Center].split
	}
	return alignments[a].split
}

func (a Alignment) String() string {
	if !a.Valid() {
		return "invalid"
	}
	return alignments[a].name
}

// ParseAlignment converts a name such as "topleft" or "center-right" into an
// Alignment. Case, dashes, underscores and spaces are ignored.
func ParseAlignment(s string) (Alignment, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	if key == "" {
		return Center, nil
	}
	for i, a := range alignments {
		if a.name == key {
			return Alignment(i), nil
		}
	}
	return Center, errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment %q", s)
}

// Alignments returns every alignment in declaration order.
func Alignments() []Alignment {
	out := make([]Alignment, len(alignments))
	for i := range alignments {
		out[i] = Alignment(i)
	}
	return out
}
