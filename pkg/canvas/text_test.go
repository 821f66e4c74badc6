package canvas

import (
	"testing"
)

func mustText(t *testing.T, s string, opts ...Option) *Text {
	t.Helper()
	c, err := NewText(s, opts...)
	if err != nil {
		t.Fatalf("NewText(%q) error: %v", s, err)
	}
	return c
}

func TestTextSize(t *testing.T) {
	tests := []struct {
		text         string
		wantW, wantH int
	}{
		{"", 2, 4},
		{"x", 2, 4},
		{"ab\nc", 4, 8},
		{"日本", 8, 4},
		{"a\n\n\n", 2, 16},
	}
	for _, tt := range tests {
		c := mustText(t, tt.text)
		if c.Width() != tt.wantW || c.Height() != tt.wantH {
			t.Errorf("NewText(%q) size = %dx%d, want %dx%d", tt.text, c.Width(), c.Height(), tt.wantW, tt.wantH)
		}
	}
}

func TestTextRender(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		align Alignment
		w, h  int
		want  []string
	}{
		{"intrinsic", "ab\nc", Center, 0, 0, []string{"ab", "c "}},
		{"center", "ab\nc", Center, 8, 12, []string{"    ", " ab ", " c  "}},
		{"topleft", "ab\nc", TopLeft, 8, 12, []string{"ab  ", "c   ", "    "}},
		{"bottomright", "ab\nc", BottomRight, 8, 12, []string{"    ", "  ab", "  c "}},
		{"center odd cell", "ab", Center, 6, 4, []string{"ab "}},
		{"center right odd cell", "ab", CenterRight, 6, 4, []string{" ab"}},
		{"wide runes", "日本", Center, 0, 0, []string{"日本"}},
		{"empty", "", Center, 0, 0, []string{" "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustText(t, tt.text, WithAlignment(tt.align))
			equalRows(t, renderPlain(t, c, tt.w, tt.h), tt.want)
		})
	}
}

func TestTextColors(t *testing.T) {
	c := mustText(t, "x", WithColor("red"), WithBackground("blue"))
	rows, err := c.Rows(0, 0)
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	want := "\x1b[31m\x1b[44mx\x1b[0m"
	if len(rows) != 1 || rows[0] != want {
		t.Errorf("Rows() = %q, want %q", rows, want)
	}
}

func TestTextLinesIsCopy(t *testing.T) {
	c := mustText(t, "a\nb")
	lines := c.Lines()
	lines[0] = "changed"
	if got := c.Lines()[0]; got != "a" {
		t.Errorf("Lines()[0] = %q after mutating copy, want %q", got, "a")
	}
}

func TestTextBox(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []Option
		w, h int
		want []string
	}{
		{
			name: "intrinsic",
			text: "HI",
			want: []string{"┌──┐", "│HI│", "└──┘"},
		},
		{
			name: "stretched centered",
			text: "HI",
			w:    12,
			h:    20,
			want: []string{"┌────┐", "│    │", "│ HI │", "│    │", "└────┘"},
		},
		{
			name: "double",
			text: "HI",
			opts: []Option{WithBorder("", Double)},
			want: []string{"╔══╗", "║HI║", "╚══╝"},
		},
		{
			name: "bold multiline",
			text: "a\nbc",
			opts: []Option{WithBorder("red", Bold)},
			want: []string{"┏━━┓", "┃a ┃", "┃bc┃", "┗━━┛"},
		},
		{
			name: "fixed ignores target",
			text: "HI",
			opts: []Option{Fixed()},
			w:    40,
			h:    40,
			want: []string{"┌──┐", "│HI│", "└──┘"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewTextBox(tt.text, tt.opts...)
			if err != nil {
				t.Fatalf("NewTextBox() error: %v", err)
			}
			equalRows(t, renderPlain(t, b, tt.w, tt.h), tt.want)
		})
	}
}

func TestTextBoxSize(t *testing.T) {
	b, err := NewTextBox("HI")
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 8 || b.Height() != 12 {
		t.Errorf("size = %dx%d, want 8x12", b.Width(), b.Height())
	}
	if got := b.Lines(); len(got) != 1 || got[0] != "HI" {
		t.Errorf("Lines() = %q", got)
	}
}

func TestTextBoxBorderColor(t *testing.T) {
	b, err := NewTextBox("HI", WithBorder("red", Solid))
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Render(b, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x1b[31m┌──┐\x1b[0m"; rows[0] != want {
		t.Errorf("top border = %q, want %q", rows[0], want)
	}
}
