package scene

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/termplot/pkg/errors"
)

// Format identifies a scene file encoding.
type Format string

// Supported scene encodings.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Node types.
const (
	TypeRaster    = "raster"
	TypeText      = "text"
	TypeTextBox   = "textbox"
	TypeLettering = "lettering"
	TypeHLine     = "hline"
	TypeVLine     = "vline"
	TypeHArrow    = "harrow"
	TypeVArrow    = "varrow"
	TypeRow       = "row"
	TypeColumn    = "column"
)

// Scene is a decoded scene file.
type Scene struct {
	Title string `toml:"title" json:"title,omitempty"`
	// Width and Height are the preferred render size in dots. Zero means
	// the root's intrinsic size.
	Width  int  `toml:"width" json:"width,omitempty"`
	Height int  `toml:"height" json:"height,omitempty"`
	Root   Node `toml:"root" json:"root"`
}

// Node describes one canvas. Which fields apply depends on Type.
type Node struct {
	Type string `toml:"type" json:"type"`

	// Content
	Text    string   `toml:"text" json:"text,omitempty"`
	Width   int      `toml:"width" json:"width,omitempty"`
	Height  int      `toml:"height" json:"height,omitempty"`
	Length  int      `toml:"length" json:"length,omitempty"`
	Points  [][]int  `toml:"points" json:"points,omitempty"`
	Series  []Series `toml:"series" json:"series,omitempty"`
	Pattern []string `toml:"pattern" json:"pattern,omitempty"` // top row first, '#' marks a dot

	// Style
	Color      string `toml:"color" json:"color,omitempty"`
	Background string `toml:"background" json:"background,omitempty"`
	Border     string `toml:"border" json:"border,omitempty"`
	Line       string `toml:"line" json:"line,omitempty"`
	Direction  string `toml:"direction" json:"direction,omitempty"`
	Align      string `toml:"align" json:"align,omitempty"`
	Fixed      bool   `toml:"fixed" json:"fixed,omitempty"`

	Children []Node `toml:"children" json:"children,omitempty"`
}

// Series is a group of raster points drawn in one color.
type Series struct {
	Color  string  `toml:"color" json:"color,omitempty"`
	Points [][]int `toml:"points" json:"points"`
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported scene file %q (want .toml or .json)", path)
}

// ParseFormat validates a format name such as "toml" or "json".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTOML, FormatJSON:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q (want toml or json)", s)
}

// Decode parses data in the given format. Unknown keys are rejected so
// typos in a scene file surface as errors instead of silently vanishing.
func Decode(data []byte, f Format) (*Scene, error) {
	var s Scene
	switch f {
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", string(f))
	}
	if s.Root.Type == "" {
		return nil, errors.New(errors.ErrCodeInvalidScene, "scene has no root node")
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "negative scene size %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

// Load reads and decodes the scene file at path, picking the format from
// its extension.
func Load(path string) (*Scene, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	s, err := Decode(data, f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", path)
	}
	return s, nil
}

// Marshal encodes s as JSON. The output is stable for equal scenes, so its
// hash can key a render cache.
func Marshal(s *Scene) ([]byte, error) {
	return json.Marshal(s)
}
