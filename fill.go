package bitmap

import (
	"image"

	"github.com/zyedidia/generic/stack"
)

// Fill flood fills the 4-connected region of pixels sharing the colour found
// at (x, y) with the pen colour. Nothing happens if the seed is outside the
// canvas or already has the pen colour.
func (c *Canvas) Fill(x, y int) {
	if !image.Pt(x, y).In(c.m.Rect) {
		return
	}
	from := c.m.RGBAt(x, y)
	if from == c.pen {
		return
	}

	w, h := c.Width(), c.Height()
	s := stack.New[image.Point]()
	s.Push(image.Pt(x, y))

	for s.Size() > 0 {
		p := s.Pop()
		if c.m.RGBAt(p.X, p.Y) != from {
			continue
		}

		// Paint the whole span containing p, queueing the rows either side
		l, r := p.X, p.X
		for l > 0 && c.m.RGBAt(l-1, p.Y) == from {
			l--
		}
		for r < w-1 && c.m.RGBAt(r+1, p.Y) == from {
			r++
		}
		c.hline(l, r, p.Y)

		for _, ny := range []int{p.Y - 1, p.Y + 1} {
			if ny < 0 || ny >= h {
				continue
			}
			inside := false
			for nx := l; nx <= r; nx++ {
				match := c.m.RGBAt(nx, ny) == from
				if match && !inside {
					s.Push(image.Pt(nx, ny))
				}
				inside = match
			}
		}
	}
}
