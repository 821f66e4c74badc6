package canvas_test

import (
	"fmt"

	"github.com/matzehuels/termplot/pkg/canvas"
)

func ExampleRaster() {
	// A diagonal through a 4x4 dot raster fits in two braille cells
	r, _ := canvas.NewRaster(4, 4)
	for i := range 4 {
		_ = r.Set(i, i, "")
	}
	s, _ := canvas.String(r, 0, 0)
	fmt.Println(canvas.Plain(s))
	// Output:
	// ⡠⠊
}

func ExampleNewTextBox() {
	box, _ := canvas.NewTextBox("HI", canvas.WithBorder("orange", canvas.Double))
	s, _ := canvas.String(box, 0, 0)
	fmt.Println(canvas.Plain(s))
	// Output:
	// ╔══╗
	// ║HI║
	// ╚══╝
}

func ExampleRow() {
	// Only the stretchable line takes the extra width
	long, _ := canvas.NewHorizontalLine(4)
	short, _ := canvas.NewHorizontalLine(4, canvas.Fixed(), canvas.WithLineStyle(canvas.Bold))
	s, _ := canvas.String(canvas.NewRow(long, short), 12, 0)
	fmt.Println(canvas.Plain(s))
	// Output:
	// ────━━
}

func ExampleNewVerticalArrow() {
	a, _ := canvas.NewVerticalArrow(12, canvas.WithDirection(canvas.Down))
	s, _ := canvas.String(a, 0, 0)
	fmt.Println(canvas.Plain(s))
	// Output:
	// │
	// │
	// ▾
}
