package batch

import (
	"fmt"

	"github.com/bodgit/bitmap"
	"github.com/bodgit/bitmap/rgb"
)

// Op transforms a canvas. It may modify c in place and return it, or return
// a new canvas.
type Op func(c *bitmap.Canvas) (*bitmap.Canvas, error)

// Smooth applies a 3x3 median filter.
func Smooth() Op {
	return func(c *bitmap.Canvas) (*bitmap.Canvas, error) {
		c.Smooth()
		return c, nil
	}
}

// Quantize reduces each image to at most n colours.
func Quantize(n int) Op {
	return func(c *bitmap.Canvas) (*bitmap.Canvas, error) {
		if n < 1 {
			return nil, fmt.Errorf("batch: invalid colour count %d", n)
		}
		c.Quantize(n)
		return c, nil
	}
}

// Resample scales each image to w by h pixels. If either is zero it is
// derived from the other, keeping the aspect ratio.
func Resample(w, h int) Op {
	return func(c *bitmap.Canvas) (*bitmap.Canvas, error) {
		nw, nh := w, h
		switch {
		case nw == 0 && nh > 0:
			nw = max(1, c.Width()*nh/c.Height())
		case nh == 0 && nw > 0:
			nh = max(1, c.Height()*nw/c.Width())
		}
		return bitmap.Resample(c, nw, nh)
	}
}

// Swap replaces one colour with another.
func Swap(from, to rgb.Color) Op {
	return func(c *bitmap.Canvas) (*bitmap.Canvas, error) {
		c.SwapColor(from, to)
		return c, nil
	}
}

// Chain applies ops in order.
func Chain(ops ...Op) Op {
	return func(c *bitmap.Canvas) (*bitmap.Canvas, error) {
		var err error
		for _, op := range ops {
			if c, err = op(c); err != nil {
				return nil, err
			}
		}
		return c, nil
	}
}
