package bitmap

import "math"

// arc walks the first octant of a circle of radius r with the midpoint
// algorithm, calling plot for every step. The other seven octants follow by
// symmetry from each (x, y).
func arc(r int, plot func(x, y int)) {
	x, y, d := r, 0, 1-r
	for x >= y {
		plot(x, y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// rounded draws, one visible row at a time, the box whose corners are
// quarter circles of radius r centred on (l, t), (rt, t), (l, b) and (rt, b).
// A circle is the box with l == rt and t == b. Only rows on the canvas are
// visited.
func (c *Canvas) rounded(l, t, rt, b, r int, fill bool) {
	// half is the half-width of the arc dy rows from its centre, taking
	// in every pixel whose centre lies within r+0.5.
	half := func(dy int) int {
		if dy > r {
			return -1
		}
		return int(math.Sqrt(float64(r-dy)*float64(r+dy) + float64(r)))
	}

	for y := max(0, t-r); y <= min(c.Height()-1, b+r); y++ {
		dy := 0
		switch {
		case y < t:
			dy = t - y
		case y > b:
			dy = y - b
		}
		out := half(dy)

		if fill || (dy == r && (y <= t || y >= b)) {
			c.hline(l-out, rt+out, y)
			continue
		}
		in := min(half(dy+1)+1, out)
		c.hline(l-out, l-in, y)
		c.hline(rt+in, rt+out, y)
	}
}

// Circle draws a circle of radius r centred on (xm, ym).
func (c *Canvas) Circle(xm, ym, r int) {
	if r < 0 || c.outside(xm-r, ym-r, xm+r, ym+r) {
		return
	}
	if c.large(2*float64(r), 2*float64(r)) {
		c.rounded(xm, ym, xm, ym, r, false)
		return
	}
	arc(r, func(x, y int) {
		c.PutPixel(xm+x, ym+y)
		c.PutPixel(xm-x, ym+y)
		c.PutPixel(xm+x, ym-y)
		c.PutPixel(xm-x, ym-y)
		c.PutPixel(xm+y, ym+x)
		c.PutPixel(xm-y, ym+x)
		c.PutPixel(xm+y, ym-x)
		c.PutPixel(xm-y, ym-x)
	})
}

// FillCircle draws a filled circle of radius r centred on (xm, ym).
func (c *Canvas) FillCircle(xm, ym, r int) {
	if r < 0 || c.outside(xm-r, ym-r, xm+r, ym+r) {
		return
	}
	if c.large(2*float64(r), 2*float64(r)) {
		c.rounded(xm, ym, xm, ym, r, true)
		return
	}
	arc(r, func(x, y int) {
		c.hline(xm-x, xm+x, ym+y)
		c.hline(xm-x, xm+x, ym-y)
		c.hline(xm-y, xm+y, ym+x)
		c.hline(xm-y, xm+y, ym-x)
	})
}

// Ellipse draws the ellipse that fits the rectangle with corners (x0, y0)
// and (x1, y1).
func (c *Canvas) Ellipse(x0, y0, x1, y1 int) {
	if c.outside(x0, y0, x1, y1) {
		return
	}
	if c.large(float64(x1)-float64(x0), float64(y1)-float64(y0)) {
		c.ellipseRows(x0, y0, x1, y1)
		return
	}

	a, b := int64(abs(x1-x0)), int64(abs(y1-y0))
	b1 := b & 1
	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a

	if x0 > x1 {
		x0 = x1
		x1 += int(a)
	}
	if y0 > y1 {
		y0 = y1
	}
	y0 += int(b+1) / 2
	y1 = y0 - int(b1)
	a *= 8 * a
	b1 = 8 * b * b

	for x0 <= x1 {
		c.PutPixel(x1, y0)
		c.PutPixel(x0, y0)
		c.PutPixel(x0, y1)
		c.PutPixel(x1, y1)
		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += a
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += b1
			err += dx
		}
	}

	// Flat ellipses stop early; finish the tips
	for int64(y0-y1) < b {
		c.PutPixel(x0-1, y0)
		c.PutPixel(x1+1, y0)
		y0++
		c.PutPixel(x0-1, y1)
		c.PutPixel(x1+1, y1)
		y1--
	}
}

// ellipseRows draws the outline of the ellipse fitting the rectangle one
// visible row at a time.
func (c *Canvas) ellipseRows(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y0 == y1 {
		c.hline(x0, x1, y0)
		return
	}

	cx, a := (float64(x0)+float64(x1))/2, (float64(x1)-float64(x0))/2+0.5
	cy, b := (float64(y0)+float64(y1))/2, (float64(y1)-float64(y0))/2+0.5

	// span returns the leftmost and rightmost pixels of row y inside the
	// ellipse grown by half a pixel.
	span := func(y int) (int, int) {
		v := (float64(y) - cy) / b
		h := a * math.Sqrt(math.Max(0, 1-v*v))
		l, r := int(math.Ceil(cx-h)), int(math.Floor(cx+h))
		if l > r {
			l, r = int(math.Floor(cx)), int(math.Ceil(cx))
		}
		return l, r
	}

	for y := max(0, y0); y <= min(c.Height()-1, y1); y++ {
		l, r := span(y)

		// Step away from the centre to the neighbouring row
		n := y + 1
		if float64(y) < cy {
			n = y - 1
		}
		if n < y0 || n > y1 {
			c.hline(l, r, y)
			continue
		}
		nl, nr := span(n)
		c.hline(l, max(l, nl-1), y)
		c.hline(min(r, nr+1), r, y)
	}
}

// roundRect normalises the corners and clamps the radius to half of the
// shorter side.
func roundRect(x0, y0, x1, y1, r int) (int, int, int, int, int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	m := x1 - x0
	if y1-y0 < m {
		m = y1 - y0
	}
	if r > m/2 {
		r = m / 2
	}
	if r < 0 {
		r = 0
	}
	return x0, y0, x1, y1, r
}

// RoundRect draws the outline of a rectangle whose corners are quarter
// circles of radius r.
func (c *Canvas) RoundRect(x0, y0, x1, y1, r int) {
	x0, y0, x1, y1, r = roundRect(x0, y0, x1, y1, r)
	if c.outside(x0, y0, x1, y1) {
		return
	}
	if c.large(2*float64(r), 2*float64(r)) {
		c.rounded(x0+r, y0+r, x1-r, y1-r, r, false)
		return
	}

	c.Line(x0+r, y0, x1-r, y0)
	c.Line(x0+r, y1, x1-r, y1)
	c.Line(x0, y0+r, x0, y1-r)
	c.Line(x1, y0+r, x1, y1-r)

	l, t, rt, b := x0+r, y0+r, x1-r, y1-r
	arc(r, func(x, y int) {
		c.PutPixel(l-x, t-y)
		c.PutPixel(l-y, t-x)
		c.PutPixel(rt+x, t-y)
		c.PutPixel(rt+y, t-x)
		c.PutPixel(l-x, b+y)
		c.PutPixel(l-y, b+x)
		c.PutPixel(rt+x, b+y)
		c.PutPixel(rt+y, b+x)
	})
}

// FillRoundRect fills a rectangle whose corners are quarter circles of
// radius r.
func (c *Canvas) FillRoundRect(x0, y0, x1, y1, r int) {
	x0, y0, x1, y1, r = roundRect(x0, y0, x1, y1, r)
	if c.outside(x0, y0, x1, y1) {
		return
	}
	if c.large(2*float64(r), 2*float64(r)) {
		c.rounded(x0+r, y0+r, x1-r, y1-r, r, true)
		return
	}

	l, t, rt, b := x0+r, y0+r, x1-r, y1-r
	arc(r, func(x, y int) {
		c.hline(l-x, rt+x, t-y)
		c.hline(l-y, rt+y, t-x)
		c.hline(l-x, rt+x, b+y)
		c.hline(l-y, rt+y, b+x)
	})
	c.FillRect(x0, t, x1, b)
}
