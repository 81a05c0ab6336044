package bitmap

import "math"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

// outside reports whether the segment lies wholly beyond one edge of the
// canvas, in which case no pixel of it can be visible.
func (c *Canvas) outside(x0, y0, x1, y1 int) bool {
	w, h := c.Width(), c.Height()
	return (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= w && x1 >= w) || (y0 >= h && y1 >= h)
}

// large reports whether a shape w by h pixels is big enough that walking its
// outline would cost more than scanning every row of the canvas.
func (c *Canvas) large(w, h float64) bool {
	limit := float64(2 * (c.Width() + c.Height()))
	return math.Abs(w) > limit || math.Abs(h) > limit
}

// clip trims the segment to the canvas with the Liang-Barsky algorithm. An
// endpoint already on the canvas is returned unchanged.
func (c *Canvas) clip(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	w, h := c.Width(), c.Height()
	if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h && x1 >= 0 && x1 < w && y1 >= 0 && y1 < h {
		return x0, y0, x1, y1, true
	}

	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx, float64(y1)-fy
	t0, t1 := 0.0, 1.0

	for _, e := range [4][2]float64{
		{-dx, fx},
		{dx, float64(w-1) - fx},
		{-dy, fy},
		{dy, float64(h-1) - fy},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	at := func(t float64) (int, int) {
		x := min(max(int(math.Round(fx+t*dx)), 0), w-1)
		y := min(max(int(math.Round(fy+t*dy)), 0), h-1)
		return x, y
	}
	if t1 < 1 {
		x1, y1 = at(t1)
	}
	if t0 > 0 {
		x0, y0 = at(t0)
	}
	return x0, y0, x1, y1, true
}

// Line draws a line from (x0, y0) to (x1, y1) inclusive.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	if c.outside(x0, y0, x1, y1) {
		return
	}
	x0, y0, x1, y1, ok := c.clip(x0, y0, x1, y1)
	if !ok {
		return
	}

	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	err := dx + dy

	for {
		c.PutPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// hline fills the span from x0 to x1 inclusive on row y.
func (c *Canvas) hline(x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < 0 || y >= c.Height() || x1 < 0 || x0 >= c.Width() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= c.Width() {
		x1 = c.Width() - 1
	}

	i := c.m.PixOffset(x0, y)
	row := c.m.Pix[i : i+(x1-x0+1)*3]
	for j := 0; j < len(row); j += 3 {
		row[j], row[j+1], row[j+2] = c.pen.R, c.pen.G, c.pen.B
	}
}

// Rect draws the outline of the rectangle with corners (x0, y0) and
// (x1, y1).
func (c *Canvas) Rect(x0, y0, x1, y1 int) {
	c.Line(x0, y0, x1, y0)
	c.Line(x1, y0, x1, y1)
	c.Line(x1, y1, x0, y1)
	c.Line(x0, y1, x0, y0)
}

// FillRect fills the rectangle with corners (x0, y0) and (x1, y1),
// inclusive.
func (c *Canvas) FillRect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= c.Height() {
		y1 = c.Height() - 1
	}
	for y := y0; y <= y1; y++ {
		c.hline(x0, x1, y)
	}
}
