package bitmap

import (
	"image/color"
	"slices"

	"github.com/bodgit/bitmap/rgb"
	"github.com/ericpauley/go-quantize/quantize"
)

// Smooth replaces every pixel with the per-channel median of its 3 by 3
// neighbourhood. Neighbours outside the canvas are left out rather than
// wrapped or repeated, so edge pixels use smaller neighbourhoods.
func (c *Canvas) Smooth() {
	w, h := c.Width(), c.Height()
	out := make([]uint8, len(c.m.Pix))
	window := make([]uint8, 0, 9)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := c.m.PixOffset(x, y)
			for ch := 0; ch < 3; ch++ {
				window = window[:0]
				for ny := max(y-1, 0); ny <= min(y+1, h-1); ny++ {
					for nx := max(x-1, 0); nx <= min(x+1, w-1); nx++ {
						window = append(window, c.m.Pix[c.m.PixOffset(nx, ny)+ch])
					}
				}
				slices.Sort(window)
				out[o+ch] = window[len(window)/2]
			}
		}
	}

	copy(c.m.Pix, out)
}

// SwapColor replaces every pixel that is exactly from with to.
func (c *Canvas) SwapColor(from, to rgb.Color) {
	p := c.m.Pix
	for i := 0; i+2 < len(p); i += 3 {
		if p[i] == from.R && p[i+1] == from.G && p[i+2] == from.B {
			p[i], p[i+1], p[i+2] = to.R, to.G, to.B
		}
	}
}

// Quantize reduces the canvas to at most n colours using a median cut
// palette. It returns the palette used.
func (c *Canvas) Quantize(n int) color.Palette {
	if n <= 0 {
		return nil
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), c)
	if len(p) == 0 {
		return p
	}

	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.m.SetRGB(x, y, rgb.Model.Convert(p.Convert(c.m.RGBAt(x, y))).(rgb.Color))
		}
	}
	return p
}
