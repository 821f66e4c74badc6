// Package style maps color and attribute names to ANSI SGR escape sequences.
//
// Tokens accepted by [Foreground] and [Background]:
//
//   - the eight basic names (black, red, ..., white) and their light_ variants
//   - xterm-256 palette names (orange, navy, grey50, ...), see [Names]
//   - a palette index as a decimal string ("208")
//   - a hex triple ("#ff8800")
//   - an rgb triple ("rgb(255,136,0)")
//
// Names are case-insensitive; dashes and spaces are treated as underscores.
// The empty token means "no color" and yields an empty escape.
//
// All tables are built at package initialization and never mutated.
package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/termplot/pkg/errors"
)

// CSI is the control sequence introducer.
const CSI = "\x1b["

// Reset clears every attribute and color.
const Reset = CSI + "0m"

// ResetForeground restores the terminal's default foreground color only.
const ResetForeground = CSI + "39m"

// ResetBackground restores the terminal's default background color only.
const ResetBackground = CSI + "49m"

// layer selects between the foreground and background SGR code families.
type layer struct {
	name     string
	basic    int // code for black; red is basic+1 and so on
	light    int // code for light_black
	reset    int
	extended int // 38 or 48
}

var (
	fgLayer = layer{name: "foreground", basic: 30, light: 90, reset: 39, extended: 38}
	bgLayer = layer{name: "background", basic: 40, light: 100, reset: 49, extended: 48}
)

var basicNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var attributes = map[string]int{
	"reset_all": 0,
	"bright":    1,
	"bold":      1,
	"dim":       2,
	"italic":    3,
	"underline": 4,
	"inverse":   7,
	"normal":    22,
}

// Foreground returns the escape that sets the foreground color named by token.
func Foreground(token string) (string, error) {
	return fgLayer.escape(token)
}

// Background returns the escape that sets the background color named by token.
func Background(token string) (string, error) {
	return bgLayer.escape(token)
}

// Attribute returns the escape for a text attribute such as bold or underline.
func Attribute(name string) (string, error) {
	code, ok := attributes[normalize(name)]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidStyle, "no style named %q", name)
	}
	return sgr(code), nil
}

// RGB returns the 24-bit foreground escape for the given channels.
func RGB(r, g, b int) (string, error) {
	return fgLayer.rgb(r, g, b)
}

// BackgroundRGB returns the 24-bit background escape for the given channels.
func BackgroundRGB(r, g, b int) (string, error) {
	return bgLayer.rgb(r, g, b)
}

// Styled wraps s in the given foreground, background and attributes and
// terminates it with [Reset]. Empty color tokens are skipped.
func Styled(s, fg, bg string, attrs ...string) (string, error) {
	var b strings.Builder
	f, err := Foreground(fg)
	if err != nil {
		return "", err
	}
	k, err := Background(bg)
	if err != nil {
		return "", err
	}
	b.WriteString(f)
	b.WriteString(k)
	for _, a := range attrs {
		esc, err := Attribute(a)
		if err != nil {
			return "", err
		}
		b.WriteString(esc)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String(), nil
}

// Validate reports whether token names a known color.
func Validate(token string) error {
	_, err := Foreground(token)
	return err
}

// Names returns every named color token, sorted.
func Names() []string {
	names := make([]string, 0, len(xtermNames)+2*len(basicNames)+1)
	for _, n := range basicNames {
		names = append(names, n, "light_"+n)
	}
	for n := range xtermNames {
		names = append(names, n)
	}
	names = append(names, "reset")
	sort.Strings(names)
	return names
}

func (l layer) escape(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	raw := strings.ToLower(strings.TrimSpace(token))
	name := normalize(token)

	switch {
	case strings.HasPrefix(raw, "#"):
		c, err := colorful.Hex(raw)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "malformed hex color %q", token)
		}
		r, g, b := c.RGB255()
		return l.rgb(int(r), int(g), int(b))
	case strings.HasPrefix(raw, "rgb(") && strings.HasSuffix(raw, ")"):
		r, g, b, err := parseTriple(raw[len("rgb(") : len(raw)-1])
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "malformed rgb color %q", token)
		}
		return l.rgb(r, g, b)
	case name == "reset":
		return sgr(l.reset), nil
	}

	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return "", errors.New(errors.ErrCodeInvalidColor, "palette index %d out of range [0, 255]", n)
		}
		return sgr(l.extended, 5, n), nil
	}
	for i, n := range basicNames {
		if name == n {
			return sgr(l.basic + i), nil
		}
		if name == "light_"+n {
			return sgr(l.light + i), nil
		}
	}
	if idx, ok := xtermNames[strings.ReplaceAll(name, "_", "")]; ok {
		return sgr(l.extended, 5, idx), nil
	}
	return "", errors.New(errors.ErrCodeInvalidColor, "no %s color named %q", l.name, token)
}

func (l layer) rgb(r, g, b int) (string, error) {
	if err := errors.ValidateRGB(r, g, b); err != nil {
		return "", err
	}
	return sgr(l.extended, 2, r, g, b), nil
}

func parseTriple(s string) (r, g, b int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 channels, got %d", len(parts))
	}
	var vals [3]int
	for i, p := range parts {
		if vals[i], err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
			return 0, 0, 0, err
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func sgr(params ...int) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.Itoa(p)
	}
	return CSI + strings.Join(parts, ";") + "m"
}
