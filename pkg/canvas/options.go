package canvas

import (
	"strings"

	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/style"
)

// LineStyle selects the glyph family for rules and borders.
type LineStyle int

// Supported line styles. The zero value is Solid.
const (
	Solid LineStyle = iota
	Bold
	Double
	Dashed
)

var lineStyleNames = [...]string{Solid: "solid", Bold: "bold", Double: "double", Dashed: "dashed"}

func (s LineStyle) Valid() bool { return s >= 0 && int(s) < len(lineStyleNames) }

func (s LineStyle) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return lineStyleNames[s]
}

// ParseLineStyle converts "solid", "bold", "double" or "dashed" into a
// LineStyle. The empty string is Solid.
func ParseLineStyle(s string) (LineStyle, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Solid, nil
	}
	for i, n := range lineStyleNames {
		if n == key {
			return LineStyle(i), nil
		}
	}
	return Solid, errors.New(errors.ErrCodeInvalidStyle, "unknown line style %q", s)
}

// Direction selects which ends of an arrow carry a head.
type Direction int

// Supported directions. Both is the zero value; Left and Right apply to
// horizontal arrows, Up and Down to vertical ones.
const (
	Both Direction = iota
	Left
	Right
	Up
	Down
)

var directionNames = [...]string{Both: "both", Left: "left", Right: "right", Up: "up", Down: "down"}

func (d Direction) Valid() bool { return d >= 0 && int(d) < len(directionNames) }

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// ParseDirection converts "left", "right", "up", "down" or "both" into a
// Direction. The empty string is Both.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Both, nil
	}
	for i, n := range directionNames {
		if n == key {
			return Direction(i), nil
		}
	}
	return Both, errors.New(errors.ErrCodeInvalidStyle, "unknown arrow direction %q", s)
}

// Option configures a canvas at construction.
type Option func(*settings)

type settings struct {
	fixed       bool
	alignment   Alignment
	color       string
	background  string
	lineStyle   LineStyle
	borderColor string
	direction   Direction
}

// Fixed makes the canvas non-stretchable: it always renders at its
// intrinsic size and leaves padding to its parent.
func Fixed() Option { return func(s *settings) { s.fixed = true } }

// WithStretch sets whether the canvas may be rendered larger than its
// intrinsic size. Canvases are stretchable by default.
func WithStretch(stretchable bool) Option { return func(s *settings) { s.fixed = !stretchable } }

func WithAlignment(a Alignment) Option   { return func(s *settings) { s.alignment = a } }
func WithColor(token string) Option      { return func(s *settings) { s.color = token } }
func WithBackground(token string) Option { return func(s *settings) { s.background = token } }
func WithLineStyle(ls LineStyle) Option  { return func(s *settings) { s.lineStyle = ls } }
func WithDirection(d Direction) Option   { return func(s *settings) { s.direction = d } }

// WithBorder sets the border color token and glyph style of a [TextBox].
func WithBorder(color string, ls LineStyle) Option {
	return func(s *settings) {
		s.borderColor = color
		s.lineStyle = ls
	}
}

// resolved holds validated settings with color tokens turned into escapes.
type resolved struct {
	settings
	fg, bg, border string
}

func resolve(opts []Option) (resolved, error) {
	var r resolved
	for _, opt := range opts {
		opt(&r.settings)
	}
	if !r.alignment.Valid() {
		return r, errors.New(errors.ErrCodeInvalidAlignment, "invalid alignment %d", int(r.alignment))
	}
	if !r.lineStyle.Valid() {
		return r, errors.New(errors.ErrCodeInvalidStyle, "invalid line style %d", int(r.lineStyle))
	}
	var err error
	if r.fg, err = style.Foreground(r.color); err != nil {
		return r, err
	}
	if r.bg, err = style.Background(r.background); err != nil {
		return r, err
	}
	if r.border, err = style.Foreground(r.borderColor); err != nil {
		return r, err
	}
	return r, nil
}

func (r resolved) newBase(width, height int) base {
	return base{width: width, height: height, stretchable: !r.fixed, alignment: r.alignment}
}
