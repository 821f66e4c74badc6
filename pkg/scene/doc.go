// Package scene decodes declarative drawing descriptions into canvas trees.
//
// # Overview
//
// A scene is a TOML or JSON document describing one root node and an
// optional render size. Nodes map one-to-one onto the constructors in
// package canvas, so a scene file is the same tree a Go program would build
// by hand:
//
//	title = "status"
//
//	[root]
//	type = "column"
//
//	[[root.children]]
//	type = "textbox"
//	text = "build"
//	border = "green"
//	line = "double"
//
//	[[root.children]]
//	type = "raster"
//	width = 20
//	height = 8
//	color = "orange"
//	points = [[0, 0], [1, 1], [2, 2]]
//
// # Node Types
//
//   - raster: width, height, points, series, pattern
//   - text, textbox: text
//   - lettering: text drawn with the 5x4 glyph bitmaps
//   - hline, vline, harrow, varrow: length, line, direction
//   - row, column: children
//
// Every leaf accepts color, background, align and fixed. Text boxes also take
// border (a color) and line (solid, bold, double or dashed).
//
// # Errors
//
// Decoding and building fail with INVALID_SCENE. The error message names the
// offending node by its path, e.g. "root.children[1]", and wraps the
// underlying canvas error, so [errors.Is] still reports codes such as
// INVALID_COLOR or OUT_OF_BOUNDS.
package scene
