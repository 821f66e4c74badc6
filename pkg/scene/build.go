package scene

import (
	"fmt"

	"github.com/matzehuels/termplot/pkg/canvas"
	"github.com/matzehuels/termplot/pkg/errors"
)

// Build turns the scene's root node into a canvas tree.
func (s *Scene) Build() (canvas.Canvas, error) {
	return BuildNode(s.Root, "root")
}

// BuildNode turns n into a canvas tree. path names n in error messages.
func BuildNode(n Node, path string) (canvas.Canvas, error) {
	switch n.Type {
	case TypeRow, TypeColumn:
		return buildLayout(n, path)
	}
	c, err := buildLeaf(n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s (%s)", path, n.Type)
	}
	return c, nil
}

func buildLeaf(n Node) (canvas.Canvas, error) {
	if len(n.Children) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "only row and column nodes have children")
	}
	if err := checkDimensions(n); err != nil {
		return nil, err
	}
	opts, err := options(n)
	if err != nil {
		return nil, err
	}
	switch n.Type {
	case TypeRaster:
		return buildRaster(n, opts)
	case TypeText:
		return canvas.NewText(n.Text, opts...)
	case TypeTextBox:
		return canvas.NewTextBox(n.Text, opts...)
	case TypeLettering:
		return canvas.NewLettering(n.Text, opts...)
	case TypeHLine:
		return canvas.NewHorizontalLine(n.Length, opts...)
	case TypeVLine:
		return canvas.NewVerticalLine(n.Length, opts...)
	case TypeHArrow:
		return canvas.NewHorizontalArrow(n.Length, opts...)
	case TypeVArrow:
		return canvas.NewVerticalArrow(n.Length, opts...)
	case "":
		return nil, errors.New(errors.ErrCodeInvalidScene, "missing node type")
	}
	return nil, errors.New(errors.ErrCodeInvalidScene, "unknown node type %q", n.Type)
}

// checkDimensions bounds the sizes a node asks for before anything is
// allocated for them.
func checkDimensions(n Node) error {
	for _, d := range []struct {
		name string
		v    int
	}{{"width", n.Width}, {"height", n.Height}, {"length", n.Length}} {
		if d.v > errors.MaxDimension {
			return errors.New(errors.ErrCodeInvalidInput, "%s %d exceeds %d dots", d.name, d.v, errors.MaxDimension)
		}
	}
	return nil
}

func buildLayout(n Node, path string) (canvas.Canvas, error) {
	children := make([]canvas.Canvas, 0, len(n.Children))
	for i, child := range n.Children {
		c, err := BuildNode(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	if len(children) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "%s (%s): no children", path, n.Type)
	}
	if n.Type == TypeRow {
		return canvas.NewRow(children...), nil
	}
	return canvas.NewColumn(children...), nil
}

// options converts the node's style fields into canvas options.
func options(n Node) ([]canvas.Option, error) {
	var opts []canvas.Option
	if n.Fixed {
		opts = append(opts, canvas.Fixed())
	}
	if n.Align != "" {
		a, err := canvas.ParseAlignment(n.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, canvas.WithAlignment(a))
	}
	ls, err := canvas.ParseLineStyle(n.Line)
	if err != nil {
		return nil, err
	}
	if n.Direction != "" {
		d, err := canvas.ParseDirection(n.Direction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, canvas.WithDirection(d))
	}
	opts = append(opts,
		canvas.WithColor(n.Color),
		canvas.WithBackground(n.Background),
		canvas.WithBorder(n.Border, ls),
	)
	return opts, nil
}

func buildRaster(n Node, opts []canvas.Option) (*canvas.Raster, error) {
	var (
		r   *canvas.Raster
		err error
	)
	if len(n.Pattern) > 0 {
		r, err = canvas.NewRasterFromPattern(parsePattern(n.Pattern), opts...)
		if err == nil && (n.Width > 0 || n.Height > 0) {
			err = r.Stretch(max(n.Width, r.Width()), max(n.Height, r.Height()), r.Alignment())
		}
	} else {
		r, err = canvas.NewRaster(n.Width, n.Height, opts...)
	}
	if err != nil {
		return nil, err
	}

	if err := plot(r, n.Points, ""); err != nil {
		return nil, err
	}
	for i, s := range n.Series {
		if err := plot(r, s.Points, s.Color); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "series[%d]", i)
		}
	}
	return r, nil
}

func plot(r *canvas.Raster, points [][]int, color string) error {
	if len(points) == 0 {
		return nil
	}
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return errors.New(errors.ErrCodeInvalidInput, "point %d has %d coordinates, want 2", i, len(p))
		}
		xs[i], ys[i] = p[0], p[1]
	}
	return r.SetMany(xs, ys, color)
}

// parsePattern flips top-first "#." rows into a bottom-first dot grid.
func parsePattern(rows []string) [][]bool {
	out := make([][]bool, len(rows))
	for i, row := range rows {
		line := make([]bool, 0, len(row))
		for _, ch := range row {
			line = append(line, ch == '#')
		}
		out[len(rows)-1-i] = line
	}
	return out
}
