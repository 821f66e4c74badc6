package errors

const (
	// MaxDimension bounds a canvas side in dots.
	MaxDimension = 8192

	// MaxDots bounds the dot count of a single canvas.
	MaxDots = 1 << 24
)

// ValidateSize checks canvas dimensions in dots. Both must be at least one
// dot and at most MaxDimension, and their product at most MaxDots.
func ValidateSize(width, height int) error {
	if width < 1 || height < 1 {
		return New(ErrCodeInvalidInput, "canvas size must be at least 1x1 dots, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidInput, "canvas size %dx%d exceeds %d dots per side", width, height, MaxDimension)
	}
	if width*height > MaxDots {
		return New(ErrCodeInvalidInput, "canvas size %dx%d exceeds %d dots", width, height, MaxDots)
	}
	return nil
}

// ValidateChannel checks a single RGB channel value.
func ValidateChannel(name string, v int) error {
	if v < 0 || v > 255 {
		return New(ErrCodeInvalidColor, "%s channel %d out of range [0, 255]", name, v)
	}
	return nil
}

// ValidateRGB checks all three channels of an RGB triple.
func ValidateRGB(r, g, b int) error {
	if err := ValidateChannel("red", r); err != nil {
		return err
	}
	if err := ValidateChannel("green", g); err != nil {
		return err
	}
	return ValidateChannel("blue", b)
}

// ValidateCoordinates checks that bulk dot coordinates come in equal-length pairs.
func ValidateCoordinates(xs, ys []int) error {
	if len(xs) != len(ys) {
		return New(ErrCodeInvalidInput, "coordinate sequences differ in length: %d x values, %d y values", len(xs), len(ys))
	}
	return nil
}
