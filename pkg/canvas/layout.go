package canvas

// Row places its children left to right. Its height is the tallest child's
// and its width is the sum of the children's widths. A Row owns its
// children; a canvas must not be shared between two layouts.
type Row struct {
	base
	children []Canvas
}

// NewRow creates a row holding children in order.
func NewRow(children ...Canvas) *Row {
	r := &Row{base: base{stretchable: true}}
	for _, c := range children {
		r.Add(c)
	}
	return r
}

// Add appends a child and grows the row's intrinsic size.
func (r *Row) Add(c Canvas) {
	r.height = max(r.height, c.Height())
	r.width += c.Width()
	r.children = append(r.children, c)
}

// Children returns the row's children in order.
func (r *Row) Children() []Canvas {
	return append([]Canvas(nil), r.children...)
}

// Rows renders every child at the full target height and joins them side
// by side. Extra width is split evenly among stretchable children; the
// remainder of that division is dropped, so the result can be narrower than
// the target. Children that render smaller than their share are padded
// according to their own alignment.
func (r *Row) Rows(width, height int) ([]string, error) {
	w, h, err := r.reconcile(width, height)
	if err != nil {
		return nil, err
	}
	share := stretchShare(r.children, w-r.width)
	_, ch := cells(w, h)

	out := make([]string, ch)
	for _, c := range r.children {
		cw := c.Width()
		if c.Stretchable() {
			cw += share
		}
		rows, err := c.Rows(cw, h)
		if err != nil {
			return nil, err
		}
		cellW, _ := cells(cw, h)
		rows = fit(rows, cellW, ch, c.Alignment())
		for i := range out {
			out[i] += rows[i]
		}
	}
	return out, nil
}

// Column stacks its children top to bottom, in order. Its width is the
// widest child's and its height is the sum of the children's heights. Extra
// height is shared among stretchable children the same way a [Row] shares
// extra width.
type Column struct {
	base
	children []Canvas
}

// NewColumn creates a column holding children in order, first on top.
func NewColumn(children ...Canvas) *Column {
	c := &Column{base: base{stretchable: true}}
	for _, child := range children {
		c.Add(child)
	}
	return c
}

// Add appends a child below the existing ones and grows the column's
// intrinsic size.
func (c *Column) Add(child Canvas) {
	c.width = max(c.width, child.Width())
	c.height += child.Height()
	c.children = append(c.children, child)
}

// Children returns the column's children in order.
func (c *Column) Children() []Canvas {
	return append([]Canvas(nil), c.children...)
}

// Rows renders every child at the full target width and stacks them.
func (c *Column) Rows(width, height int) ([]string, error) {
	w, h, err := c.reconcile(width, height)
	if err != nil {
		return nil, err
	}
	share := stretchShare(c.children, h-c.height)
	cw, _ := cells(w, h)

	// Rows are bottom first, so the last child comes first.
	var out []string
	for i := len(c.children) - 1; i >= 0; i-- {
		child := c.children[i]
		chh := child.Height()
		if child.Stretchable() {
			chh += share
		}
		rows, err := child.Rows(w, chh)
		if err != nil {
			return nil, err
		}
		_, cellH := cells(w, chh)
		out = append(out, fit(rows, cw, cellH, child.Alignment())...)
	}
	return out, nil
}

// stretchShare is the extra space each stretchable child receives.
func stretchShare(children []Canvas, extra int) int {
	n := 0
	for _, c := range children {
		if c.Stretchable() {
			n++
		}
	}
	if n == 0 || extra <= 0 {
		return 0
	}
	return extra / n
}
