package canvas

import (
	"strings"
	"testing"

	"github.com/matzehuels/termplot/pkg/errors"
)

func mustRaster(t *testing.T, w, h int, opts ...Option) *Raster {
	t.Helper()
	r, err := NewRaster(w, h, opts...)
	if err != nil {
		t.Fatalf("NewRaster(%d, %d) error: %v", w, h, err)
	}
	return r
}

func renderPlain(t *testing.T, c Canvas, w, h int) []string {
	t.Helper()
	rows, err := Render(c, w, h)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for i, r := range rows {
		rows[i] = Plain(r)
	}
	return rows
}

func equalRows(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows %q, want %d rows %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRasterSingleDot(t *testing.T) {
	r := mustRaster(t, 4, 4)
	if err := r.Set(0, 0, ""); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	s, err := String(r, 0, 0)
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	if got := Plain(s); got != "⡀ " {
		t.Errorf("rendered %q, want %q", got, "⡀ ")
	}
}

func TestRasterPackingRoundTrip(t *testing.T) {
	for bits := rune(0); bits < 256; bits++ {
		r := mustRaster(t, CellWidth, CellHeight)
		for dy := range CellHeight {
			for dx := range CellWidth {
				if bits&cellBits[dy][dx] != 0 {
					if err := r.Set(dx, dy, ""); err != nil {
						t.Fatalf("Set(%d, %d) error: %v", dx, dy, err)
					}
				}
			}
		}

		rows := renderPlain(t, r, 0, 0)
		want := string(rune(brailleBase) | bits)
		if bits == 0 {
			want = " "
		}
		if len(rows) != 1 || rows[0] != want {
			t.Fatalf("bits %08b rendered %q, want %q", bits, rows, want)
		}
		if bits == 0 {
			continue
		}

		// Decode the character back into dots.
		code := []rune(rows[0])[0] - brailleBase
		for dy := range CellHeight {
			for dx := range CellWidth {
				on := code&cellBits[dy][dx] != 0
				if on != r.Get(dx, dy) {
					t.Errorf("bits %08b: dot (%d, %d) decoded %v, raster has %v", bits, dx, dy, on, r.Get(dx, dy))
				}
			}
		}
	}
}

func TestRasterColorRuns(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		dots [][3]any
		want string
	}{
		{
			name: "one run for repeated color",
			dots: [][3]any{{0, 0, "red"}, {2, 0, "red"}},
			want: "\x1b[31m⡀⡀\x1b[0m",
		},
		{
			name: "blank cell keeps run open",
			dots: [][3]any{{0, 0, "red"}},
			want: "\x1b[31m⡀ \x1b[0m",
		},
		{
			name: "uncolored dot resets foreground",
			dots: [][3]any{{0, 0, "red"}, {2, 0, ""}},
			want: "\x1b[31m⡀\x1b[39m⡀\x1b[0m",
		},
		{
			name: "color change",
			dots: [][3]any{{0, 0, "red"}, {2, 0, "blue"}},
			want: "\x1b[31m⡀\x1b[34m⡀\x1b[0m",
		},
		{
			name: "background prefix",
			opts: []Option{WithBackground("black")},
			dots: [][3]any{{0, 0, "red"}},
			want: "\x1b[40m\x1b[31m⡀ \x1b[0m",
		},
		{
			name: "default color",
			opts: []Option{WithColor("green")},
			dots: [][3]any{{0, 0, ""}},
			want: "\x1b[32m⡀ \x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRaster(t, 4, 4, tt.opts...)
			for _, d := range tt.dots {
				if err := r.Set(d[0].(int), d[1].(int), d[2].(string)); err != nil {
					t.Fatalf("Set() error: %v", err)
				}
			}
			rows, err := r.Rows(0, 0)
			if err != nil {
				t.Fatalf("Rows() error: %v", err)
			}
			if len(rows) != 1 || rows[0] != tt.want {
				t.Errorf("Rows() = %q, want %q", rows, tt.want)
			}
		})
	}
}

func TestRasterDominantColor(t *testing.T) {
	tests := []struct {
		name string
		dots [][3]any
		want string
	}{
		{"tie goes to topmost", [][3]any{{1, 0, "blue"}, {0, 3, "red"}}, "\x1b[31m"},
		{"tie goes to leftmost in row", [][3]any{{1, 2, "blue"}, {0, 2, "red"}}, "\x1b[31m"},
		{"majority wins", [][3]any{{0, 0, "blue"}, {1, 0, "blue"}, {0, 3, "red"}}, "\x1b[34m"},
		{"last set wins per dot", [][3]any{{0, 0, "red"}, {0, 0, "blue"}}, "\x1b[34m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRaster(t, 2, 4)
			for _, d := range tt.dots {
				if err := r.Set(d[0].(int), d[1].(int), d[2].(string)); err != nil {
					t.Fatalf("Set() error: %v", err)
				}
			}
			rows, err := r.Rows(0, 0)
			if err != nil {
				t.Fatalf("Rows() error: %v", err)
			}
			if !strings.HasPrefix(rows[0], tt.want) {
				t.Errorf("Rows() = %q, want color %q", rows[0], tt.want)
			}
		})
	}
}

func TestRasterOutOfBounds(t *testing.T) {
	r := mustRaster(t, 4, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if err := r.Set(p[0], p[1], ""); !errors.Is(err, errors.ErrCodeOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, want %s", p[0], p[1], err, errors.ErrCodeOutOfBounds)
		}
		if r.Get(p[0], p[1]) {
			t.Errorf("Get(%d, %d) = true outside raster", p[0], p[1])
		}
	}
}

func TestRasterSetMany(t *testing.T) {
	r := mustRaster(t, 4, 4)
	if err := r.SetMany([]int{0, 1, 9}, []int{0, 0, 0}, ""); !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Fatalf("SetMany() error = %v, want %s", err, errors.ErrCodeOutOfBounds)
	}
	if r.Get(0, 0) || r.Get(1, 0) {
		t.Error("SetMany() changed dots despite an out-of-bounds coordinate")
	}

	if err := r.SetMany([]int{0, 1}, []int{0}, ""); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("SetMany() with mismatched lengths error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	if err := r.SetMany([]int{0, 3}, []int{0, 3}, "red"); err != nil {
		t.Fatalf("SetMany() error: %v", err)
	}
	if !r.Get(0, 0) || !r.Get(3, 3) {
		t.Error("SetMany() did not set every dot")
	}
}

func TestNewRasterInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 4}, {4, 0}, {-1, -1}, {1 << 32, 1 << 32}, {errors.MaxDimension + 1, 4}} {
		if _, err := NewRaster(sz[0], sz[1]); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("NewRaster(%d, %d) error = %v, want %s", sz[0], sz[1], err, errors.ErrCodeInvalidInput)
		}
	}
}

func TestNewRasterFromPattern(t *testing.T) {
	r, err := NewRasterFromPattern([][]bool{
		{true, false},
		{false, true},
	})
	if err != nil {
		t.Fatalf("NewRasterFromPattern() error: %v", err)
	}
	if r.Width() != 2 || r.Height() != 2 {
		t.Errorf("size = %dx%d, want 2x2", r.Width(), r.Height())
	}
	if !r.Get(0, 0) || !r.Get(1, 1) || r.Get(1, 0) {
		t.Error("pattern dots not copied")
	}
	want := string(rune(brailleBase | 0x40 | 0x20))
	equalRows(t, renderPlain(t, r, 0, 0), []string{want})
}

func TestRasterReset(t *testing.T) {
	r := mustRaster(t, 4, 4)
	_ = r.Set(1, 1, "red")
	r.Reset()
	if r.Get(1, 1) {
		t.Error("Reset() left dot set")
	}
	equalRows(t, renderPlain(t, r, 0, 0), []string{"  "})
}

func TestRasterStretch(t *testing.T) {
	r := mustRaster(t, 2, 4)
	_ = r.Set(0, 0, "")

	if err := r.Stretch(4, 8, TopRight); err != nil {
		t.Fatalf("Stretch() error: %v", err)
	}
	if r.Width() != 4 || r.Height() != 8 {
		t.Errorf("size = %dx%d, want 4x8", r.Width(), r.Height())
	}
	if !r.Get(2, 4) || r.Get(0, 0) {
		t.Error("Stretch(TopRight) did not move dot to (2, 4)")
	}

	if err := r.Stretch(2, 8, Center); !errors.Is(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("Stretch() to smaller size error = %v, want %s", err, errors.ErrCodeInvalidTarget)
	}
	if err := r.Stretch(1<<32, 1<<32, Center); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Stretch() to oversized target error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if r.Width() != 4 || r.Height() != 8 {
		t.Errorf("size after rejected Stretch = %dx%d, want 4x8", r.Width(), r.Height())
	}
}

func TestRasterRenderPadding(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		want  []string
	}{
		{"bottomleft", BottomLeft, []string{"  ", "⡀ "}},
		{"topleft", TopLeft, []string{"⡀ ", "  "}},
		{"topright", TopRight, []string{" ⡀", "  "}},
		{"bottomright", BottomRight, []string{"  ", " ⡀"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRaster(t, 2, 4, WithAlignment(tt.align))
			_ = r.Set(0, 0, "")
			equalRows(t, renderPlain(t, r, 4, 8), tt.want)
		})
	}
}

func TestRasterFixedIgnoresTarget(t *testing.T) {
	r := mustRaster(t, 2, 4, Fixed())
	_ = r.Set(0, 0, "")
	equalRows(t, renderPlain(t, r, 20, 20), []string{"⡀"})
	if _, err := r.Rows(1, 1); err != nil {
		t.Errorf("Rows() on fixed raster with small target error: %v", err)
	}
}

func TestRasterTooSmallTarget(t *testing.T) {
	r := mustRaster(t, 4, 8)
	if _, err := r.Rows(2, 8); !errors.Is(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("Rows() error = %v, want %s", err, errors.ErrCodeInvalidTarget)
	}
}

func TestRasterOversizedTarget(t *testing.T) {
	r := mustRaster(t, 2, 4)
	if _, err := r.Rows(errors.MaxDimension, errors.MaxDimension); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Rows() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestRasterRenderIsDeterministic(t *testing.T) {
	r := mustRaster(t, 10, 10)
	for i := range 10 {
		_ = r.Set(i, i, []string{"red", "blue", ""}[i%3])
	}
	a, err := String(r, 20, 16)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := String(r, 20, 16)
	if a != b {
		t.Error("rendering twice produced different output")
	}
	if !r.Get(3, 3) || r.Width() != 10 {
		t.Error("rendering mutated the raster")
	}
}
