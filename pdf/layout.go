package pdf

// cursor tracks the vertical write position on a fixed-height page and owns
// the page-break decision: content is reserved through ensure before it is
// drawn, so no block is ever clipped across a page boundary.
type cursor struct {
	top    float64 // first usable Y on a fresh page
	bottom float64 // last usable Y
	y      float64
	breaks int
}

func newCursor(top, bottom float64) *cursor {
	return &cursor{top: top, bottom: bottom, y: top}
}

// ensure reserves h of vertical space. If it does not fit on the current
// page the cursor resets to the top of a new page and reports true; the
// caller must then emit the actual page break (AddPage + repeated headers)
// before drawing.
func (c *cursor) ensure(h float64) bool {
	if c.y+h <= c.bottom {
		return false
	}
	c.y = c.top
	c.breaks++
	return true
}

func (c *cursor) advance(h float64) {
	c.y += h
}

func (c *cursor) pos() float64 {
	return c.y
}

// moveTo places the cursor at an absolute Y. Used after the page-one header
// whose height depends on the metadata block.
func (c *cursor) moveTo(y float64) {
	c.y = y
}
