// Package glyph provides the fixed 5x4 dot bitmaps used for bitmap lettering.
//
// Each glyph is three dots wide with an empty fourth column that separates
// neighbouring letters. Bitmaps are indexed [y][x] with y = 0 at the bottom,
// matching the raster canvas coordinate system.
package glyph

import (
	"slices"
	"unicode"

	"github.com/matzehuels/termplot/pkg/errors"
)

// Glyph dimensions in dots.
const (
	Width  = 4
	Height = 5
)

// Bitmap is a glyph's dot pattern, bottom row first.
type Bitmap [Height][Width]bool

// Set reports whether the dot at (x, y) is part of the glyph.
func (b Bitmap) Set(x, y int) bool {
	return b[y][x]
}

// Lookup returns the bitmap for r. Lowercase letters share the uppercase
// bitmaps. Characters outside the table fail with UNKNOWN_GLYPH.
func Lookup(r rune) (Bitmap, error) {
	b, ok := table[unicode.ToUpper(r)]
	if !ok {
		return Bitmap{}, errors.New(errors.ErrCodeUnknownGlyph, "no glyph for %q", r)
	}
	return b, nil
}

// Supported reports whether every rune of s has a glyph.
func Supported(s string) bool {
	for _, r := range s {
		if _, ok := table[unicode.ToUpper(r)]; !ok {
			return false
		}
	}
	return true
}

// Runes returns the characters with a glyph, in table order.
func Runes() []rune {
	return slices.Clone(order)
}

// patterns lists glyphs top row first; '#' marks a set dot.
var patterns = []struct {
	r    rune
	rows [Height]string
}{
	{'A', [Height]string{".#..", "#.#.", "###.", "#.#.", "#.#."}},
	{'B', [Height]string{"##..", "#.#.", "##..", "#.#.", "##.."}},
	{'C', [Height]string{".##.", "#...", "#...", "#...", ".##."}},
	{'D', [Height]string{"##..", "#.#.", "#.#.", "#.#.", "##.."}},
	{'E', [Height]string{"###.", "#...", "##..", "#...", "###."}},
	{'F', [Height]string{"###.", "#...", "##..", "#...", "#..."}},
	{'G', [Height]string{".##.", "#...", "#.#.", "#.#.", ".##."}},
	{'H', [Height]string{"#.#.", "#.#.", "###.", "#.#.", "#.#."}},
	{'I', [Height]string{"###.", ".#..", ".#..", ".#..", "###."}},
	{'J', [Height]string{"..#.", "..#.", "..#.", "#.#.", ".#.."}},
	{'K', [Height]string{"#.#.", "#.#.", "##..", "#.#.", "#.#."}},
	{'L', [Height]string{"#...", "#...", "#...", "#...", "###."}},
	{'M', [Height]string{"#.#.", "###.", "###.", "#.#.", "#.#."}},
	{'N', [Height]string{"##..", "#.#.", "#.#.", "#.#.", "#.#."}},
	{'O', [Height]string{".#..", "#.#.", "#.#.", "#.#.", ".#.."}},
	{'P', [Height]string{"##..", "#.#.", "##..", "#...", "#..."}},
	{'Q', [Height]string{".#..", "#.#.", "#.#.", "##..", ".##."}},
	{'R', [Height]string{"##..", "#.#.", "##..", "#.#.", "#.#."}},
	{'S', [Height]string{".##.", "#...", ".#..", "..#.", "##.."}},
	{'T', [Height]string{"###.", ".#..", ".#..", ".#..", ".#.."}},
	{'U', [Height]string{"#.#.", "#.#.", "#.#.", "#.#.", "###."}},
	{'V', [Height]string{"#.#.", "#.#.", "#.#.", "#.#.", ".#.."}},
	{'W', [Height]string{"#.#.", "#.#.", "###.", "###.", "#.#."}},
	{'X', [Height]string{"#.#.", "#.#.", ".#..", "#.#.", "#.#."}},
	{'Y', [Height]string{"#.#.", "#.#.", ".#..", ".#..", ".#.."}},
	{'Z', [Height]string{"###.", "..#.", ".#..", "#...", "###."}},
	{'0', [Height]string{"###.", "#.#.", "#.#.", "#.#.", "###."}},
	{'1', [Height]string{".#..", "##..", ".#..", ".#..", "###."}},
	{'2', [Height]string{"##..", "..#.", ".#..", "#...", "###."}},
	{'3', [Height]string{"##..", "..#.", ".#..", "..#.", "##.."}},
	{'4', [Height]string{"#.#.", "#.#.", "###.", "..#.", "..#."}},
	{'5', [Height]string{"###.", "#...", "##..", "..#.", "##.."}},
	{'6', [Height]string{".##.", "#...", "###.", "#.#.", "###."}},
	{'7', [Height]string{"###.", "..#.", ".#..", ".#..", ".#.."}},
	{'8', [Height]string{"###.", "#.#.", "###.", "#.#.", "###."}},
	{'9', [Height]string{"###.", "#.#.", "###.", "..#.", "##.."}},
	{' ', [Height]string{"....", "....", "....", "....", "...."}},
	{'.', [Height]string{"....", "....", "....", "....", ".#.."}},
	{',', [Height]string{"....", "....", "....", ".#..", "#..."}},
	{'!', [Height]string{".#..", ".#..", ".#..", "....", ".#.."}},
	{'?', [Height]string{"##..", "..#.", ".#..", "....", ".#.."}},
	{':', [Height]string{"....", ".#..", "....", ".#..", "...."}},
	{'-', [Height]string{"....", "....", "###.", "....", "...."}},
	{'+', [Height]string{"....", ".#..", "###.", ".#..", "...."}},
	{'/', [Height]string{"..#.", "..#.", ".#..", "#...", "#..."}},
}

var (
	table = make(map[rune]Bitmap, len(patterns))
	order = make([]rune, 0, len(patterns))
)

func init() {
	for _, p := range patterns {
		var b Bitmap
		for row, line := range p.rows {
			y := Height - 1 - row
			for x := 0; x < Width; x++ {
				b[y][x] = line[x] == '#'
			}
		}
		table[p.r] = b
		order = append(order, p.r)
	}
}
