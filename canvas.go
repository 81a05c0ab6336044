/*
Package bitmap is a small raster graphics engine working on 24-bit RGB
canvases.

A Canvas owns its pixels together with a pen colour and a font. Every drawing
primitive, blit and text operation paints with the current pen, and clips to
the canvas so that any coordinates, however large or negative, are safe.
Canvases are loaded from and saved to uncompressed 24-bit BMP files.

A Canvas is not safe for concurrent use; each one should be driven by a single
goroutine.
*/
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/bitmap/font"
	"github.com/bodgit/bitmap/rgb"
	"github.com/bodgit/bitmap/xbm"
)

// ErrInvalidSize is returned when a canvas would have no pixels or more than
// rgb.MaxPixels of them.
var ErrInvalidSize = errors.New("bitmap: invalid size")

// Canvas is a mutable 24-bit image with a pen colour and font.
type Canvas struct {
	m   *rgb.Image
	pen rgb.Color

	font    *font.Table
	spacing int
}

func newCanvas(m *rgb.Image) *Canvas {
	t := font.Normal.Table()
	return &Canvas{
		m:       m,
		pen:     rgb.White,
		font:    t,
		spacing: t.Width(),
	}
}

// New returns a black canvas of the given size. The pen is white and the font
// is font.Normal.
func New(w, h int) (*Canvas, error) {
	if !rgb.Fits(w, h) {
		return nil, ErrInvalidSize
	}
	return newCanvas(rgb.NewImage(image.Rect(0, 0, w, h))), nil
}

// NewFromImage returns a canvas holding a copy of m.
func NewFromImage(m image.Image) (*Canvas, error) {
	b := m.Bounds()
	if !rgb.Fits(b.Dx(), b.Dy()) {
		return nil, ErrInvalidSize
	}
	if p, ok := m.(*rgb.Image); ok && p.Rect.Min == (image.Point{}) {
		return newCanvas(p.Clone()), nil
	}
	return newCanvas(rgb.Convert(m)), nil
}

// FromXBM returns a canvas the size of b with set bits drawn black on a
// white background.
func FromXBM(b *xbm.Bitmap) (*Canvas, error) {
	c, err := New(b.Width, b.Height)
	if err != nil {
		return nil, err
	}
	c.m.Fill(rgb.White)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Bit(x, y) {
				c.m.SetRGB(x, y, rgb.Black)
			}
		}
	}
	return c, nil
}

// Copy returns an independent duplicate of the canvas, including its pen and
// font.
func (c *Canvas) Copy() *Canvas {
	dup := *c
	dup.m = c.m.Clone()
	return &dup
}

func (c *Canvas) String() string {
	return fmt.Sprintf("Canvas[%dx%d]", c.Width(), c.Height())
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.m.Rect.Dx() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.m.Rect.Dy() }

// RGBImage returns the pixel buffer backing the canvas.
func (c *Canvas) RGBImage() *rgb.Image { return c.m }

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model { return rgb.Model }

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle { return c.m.Rect }

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color { return c.m.RGBAt(x, y) }

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) { c.m.Set(x, y, col) }

// SetPixel sets the pixel at (x, y) to col. Pixels outside the canvas are
// ignored.
func (c *Canvas) SetPixel(x, y int, col rgb.Color) { c.m.SetRGB(x, y, col) }

// Pixel returns the colour of the pixel at (x, y), or black outside the
// canvas.
func (c *Canvas) Pixel(x, y int) rgb.Color { return c.m.RGBAt(x, y) }

// RGB returns the channels of the pixel at (x, y).
func (c *Canvas) RGB(x, y int) (r, g, b uint8) {
	p := c.m.RGBAt(x, y)
	return p.R, p.G, p.B
}

// ColorIs reports whether the pixel at (x, y) is exactly col.
func (c *Canvas) ColorIs(x, y int, col rgb.Color) bool {
	return image.Pt(x, y).In(c.m.Rect) && c.m.RGBAt(x, y) == col
}

// Pen returns the current pen colour.
func (c *Canvas) Pen() rgb.Color { return c.pen }

// SetPen sets the pen colour.
func (c *Canvas) SetPen(col rgb.Color) { c.pen = col }

// SetPenRGB sets the pen colour from its channels.
func (c *Canvas) SetPenRGB(r, g, b uint8) { c.pen = rgb.Color{R: r, G: g, B: b} }

// SetPenPacked sets the pen colour from an integer of the form 0xRRGGBB.
func (c *Canvas) SetPenPacked(v int) { c.pen = rgb.FromPacked(v) }

// SetPenText sets the pen colour from text such as "#FF8000" or "orange".
// Text that cannot be parsed sets the pen to black.
func (c *Canvas) SetPenText(s string) {
	col, err := rgb.Parse(s)
	if err != nil {
		col = rgb.Black
	}
	c.pen = col
}

// Pick sets the pen to the colour of the pixel at (x, y).
func (c *Canvas) Pick(x, y int) { c.pen = c.m.RGBAt(x, y) }

// Clear fills the whole canvas with the pen colour.
func (c *Canvas) Clear() { c.m.Fill(c.pen) }

// PutPixel sets the pixel at (x, y) to the pen colour.
func (c *Canvas) PutPixel(x, y int) { c.m.SetRGB(x, y, c.pen) }
