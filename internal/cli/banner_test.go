package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/termplot/pkg/canvas"
	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/glyph"
)

func TestBuildBanner(t *testing.T) {
	tree, err := buildBanner("OK", bannerOpts{align: "center"})
	if err != nil {
		t.Fatalf("buildBanner() error: %v", err)
	}
	if _, ok := tree.(*canvas.Raster); !ok {
		t.Fatalf("buildBanner() = %T, want *canvas.Raster without an underline", tree)
	}
	if tree.Width() != 2*glyph.Width || tree.Height() != glyph.Height {
		t.Errorf("size = %dx%d", tree.Width(), tree.Height())
	}

	tree, err = buildBanner("OK", bannerOpts{align: "center", underline: "double", color: "orange"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tree.(*canvas.Column); !ok {
		t.Fatalf("buildBanner() = %T, want *canvas.Column with an underline", tree)
	}
	if tree.Height() != glyph.Height+canvas.CellHeight {
		t.Errorf("height = %d, want letters plus one cell", tree.Height())
	}
	out, err := canvas.String(tree, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(canvas.Plain(out), "\n")
	if rule := rows[len(rows)-1]; rule != strings.Repeat("═", 2*glyph.Width/canvas.CellWidth) {
		t.Errorf("rule = %q", rule)
	}
}

func TestBuildBannerErrors(t *testing.T) {
	tests := []struct {
		name string
		opts bannerOpts
		code errors.Code
	}{
		{"alignment", bannerOpts{align: "sideways"}, errors.ErrCodeInvalidAlignment},
		{"line style", bannerOpts{align: "center", underline: "wavy"}, errors.ErrCodeInvalidStyle},
		{"color", bannerOpts{align: "center", color: "nocolor"}, errors.ErrCodeInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildBanner("OK", tt.opts); !errors.Is(err, tt.code) {
				t.Errorf("buildBanner() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBannerCommand(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "", "banner", "--no-color", "HI")
	if err != nil {
		t.Fatalf("banner error: %v", err)
	}
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	want := (glyph.Height + canvas.CellHeight - 1) / canvas.CellHeight
	if len(rows) != want {
		t.Errorf("banner has %d rows, want %d", len(rows), want)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("--no-color output %q has escapes", out)
	}
}
