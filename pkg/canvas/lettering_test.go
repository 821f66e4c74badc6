package canvas

import (
	"strings"
	"testing"

	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/glyph"
)

func TestNewLettering(t *testing.T) {
	r, err := NewLettering("Ab")
	if err != nil {
		t.Fatalf("NewLettering() error: %v", err)
	}
	if r.Width() != 2*glyph.Width || r.Height() != glyph.Height {
		t.Errorf("size = %dx%d, want %dx%d", r.Width(), r.Height(), 2*glyph.Width, glyph.Height)
	}

	a, _ := glyph.Lookup('A')
	b, _ := glyph.Lookup('B')
	for y := range glyph.Height {
		for x := range glyph.Width {
			if r.Get(x, y) != a.Set(x, y) {
				t.Errorf("dot (%d, %d) = %v, want %v from A", x, y, r.Get(x, y), a.Set(x, y))
			}
			if r.Get(glyph.Width+x, y) != b.Set(x, y) {
				t.Errorf("dot (%d, %d) = %v, want %v from B", glyph.Width+x, y, r.Get(glyph.Width+x, y), b.Set(x, y))
			}
		}
	}
}

func TestNewLetteringColor(t *testing.T) {
	r, err := NewLettering("I", WithColor("red"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := String(r, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "\x1b[31m") {
		t.Errorf("lettering output %q lacks color escape", s)
	}
}

func TestNewLetteringUnknownGlyph(t *testing.T) {
	if _, err := NewLettering("a@b"); !errors.Is(err, errors.ErrCodeUnknownGlyph) {
		t.Errorf("NewLettering() error = %v, want %s", err, errors.ErrCodeUnknownGlyph)
	}
}
