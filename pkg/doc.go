// Package pkg holds the termplot libraries.
//
// # Overview
//
// termplot draws plots, boxed text, rules and arrows as styled Unicode text
// for terminals. The libraries are layered, leaves first:
//
//  1. [style] and [glyph] - color escapes and the bitmap letter font
//  2. [canvas] - braille rasters, text boxes, lines and row/column layouts
//  3. [scene] - TOML or JSON scene files decoded into canvas trees
//  4. [cache] and [pipeline] - cached load, build and render
//
// # Quick Start
//
// Build a tree by hand and print it:
//
//	box, _ := canvas.NewTextBox("build ok", canvas.WithBorder("green", canvas.Bold))
//	arrow, _ := canvas.NewHorizontalArrow(8, canvas.WithDirection(canvas.Right))
//	out, _ := canvas.String(canvas.NewRow(box, arrow), 0, 0)
//	fmt.Println(out)
//
// Or render a scene file through the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, "status.toml", pipeline.Options{Width: 120})
//
// # Coordinates
//
// Sizes are in dots. A terminal cell is 2 dots wide and 4 dots tall, with
// y = 0 at the bottom. A target size of 0 means the intrinsic size.
//
// [style]: https://pkg.go.dev/github.com/matzehuels/termplot/pkg/style
// [glyph]: https://pkg.go.dev/github.com/matzehuels/termplot/pkg/glyph
// [canvas]: https://pkg.go.dev/github.com/matzehuels/termplot/pkg/canvas
// [scene]: https://pkg.go.dev/github.com/matzehuels/termplot/pkg/scene
// [cache]: https://pkg.go.dev/github.com/matzehuels/termplot/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/termplot/pkg/pipeline
package pkg
