package canvas

import (
	"github.com/matzehuels/termplot/pkg/glyph"
)

// NewLettering draws text as a raster of glyph bitmaps placed side by side.
// Each character takes glyph.Width x glyph.Height dots. WithColor colors the
// letters. Characters without a glyph fail with UNKNOWN_GLYPH.
func NewLettering(text string, opts ...Option) (*Raster, error) {
	runes := []rune(text)
	bitmaps := make([]glyph.Bitmap, len(runes))
	for i, r := range runes {
		b, err := glyph.Lookup(r)
		if err != nil {
			return nil, err
		}
		bitmaps[i] = b
	}

	r, err := NewRaster(max(len(runes), 1)*glyph.Width, glyph.Height, opts...)
	if err != nil {
		return nil, err
	}
	for i, b := range bitmaps {
		for y := range glyph.Height {
			for x := range glyph.Width {
				if b.Set(x, y) {
					_ = r.set(i*glyph.Width+x, y, r.fg)
				}
			}
		}
	}
	return r, nil
}
