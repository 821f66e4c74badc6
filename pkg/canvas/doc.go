// Package canvas renders 2-D drawings as styled Unicode text for terminals.
//
// # Overview
//
// A drawing is a tree of [Canvas] values. Leaves are surfaces that own
// content:
//
//   - [Raster]: a dot bitmap packed into braille characters, 2x4 dots per cell
//   - [Text] and [TextBox]: literal text rows, optionally framed by a border
//   - [Line]: horizontal or vertical rules, optionally capped with arrowheads
//
// Internal nodes are [Row] and [Column], which place their children side by
// side or stacked and share out any extra space among stretchable children.
//
// # Coordinates
//
// Sizes are measured in dots. The origin is the bottom-left corner, x grows
// to the right and y grows upwards. One character cell covers 2x4 dots, so a
// canvas of width w and height h renders as ceil(w/2) columns by ceil(h/4)
// rows.
//
// # Rendering
//
// [Canvas.Rows] returns rows bottom first. [Render] and [String] flip them to
// the top-first order a terminal expects:
//
//	plot, _ := canvas.NewRaster(60, 40, canvas.WithColor("blue"))
//	for x := 0; x < 60; x++ {
//	    _ = plot.Set(x, x*2/3, "")
//	}
//	title, _ := canvas.NewTextBox("sine", canvas.WithBorder("orange", canvas.Double))
//	out, err := canvas.String(canvas.NewColumn(title, plot), 0, 0)
//
// A target size of zero means "intrinsic size". Rendering never mutates a
// canvas; the same canvas rendered twice at the same size yields identical
// bytes. Mutators ([Raster.Set], [Raster.Stretch], [Row.Add], [Column.Add])
// must not run concurrently with a render of the canvas or any ancestor.
package canvas
