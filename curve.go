package bitmap

// bezierSteps is the number of line segments used to approximate a curve.
const bezierSteps = 20

// Bezier3 draws a quadratic Bezier curve from (x0, y0) to (x2, y2) with
// (x1, y1) as the control point. The curve is sampled at a fixed number of
// points, each truncated to whole pixels, and the samples joined with lines.
func (c *Canvas) Bezier3(x0, y0, x1, y1, x2, y2 int) {
	lx, ly := x0, y0
	for i := 1; i < bezierSteps; i++ {
		t := float64(i) / bezierSteps
		u := 1 - t
		x := int(u*u*float64(x0) + 2*u*t*float64(x1) + t*t*float64(x2))
		y := int(u*u*float64(y0) + 2*u*t*float64(y1) + t*t*float64(y2))
		c.Line(lx, ly, x, y)
		lx, ly = x, y
	}
	c.Line(lx, ly, x2, y2)
}
