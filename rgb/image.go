package rgb

import (
	"image"
	"image/color"
)

// Image is an in-memory image of 24-bit pixels stored as consecutive R, G, B
// bytes, row-major with the origin at the top-left.
type Image struct {
	// Pix holds the image's pixels in R, G, B order. The pixel at (x, y)
	// starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// MaxPixels is the largest number of pixels an Image may hold. At three bytes
// a pixel it also keeps every Image within what a BMP file can describe.
const MaxPixels = 1 << 26

// Fits reports whether a w by h Image is non-empty and holds no more than
// MaxPixels pixels.
func Fits(w, h int) bool {
	return w > 0 && h > 0 && w <= MaxPixels/h
}

// NewImage returns a new black Image with the given bounds. It panics if the
// bounds hold more than MaxPixels pixels.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	} else if !Fits(w, h) {
		panic("rgb: NewImage rectangle has huge dimensions")
	}
	return &Image{
		Pix:    make([]uint8, w*h*3),
		Stride: w * 3,
		Rect:   r,
	}
}

// ColorModel implements the image.Image interface.
func (p *Image) ColorModel() color.Model { return Model }

// Bounds implements the image.Image interface.
func (p *Image) Bounds() image.Rectangle { return p.Rect }

// Opaque reports that every pixel is fully opaque.
func (p *Image) Opaque() bool { return true }

// At implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt returns the colour of the pixel at (x, y), or black when (x, y) is
// outside the image.
func (p *Image) RGBAt(x, y int) Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return Black
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return Color{s[0], s[1], s[2]}
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Set implements the draw.Image interface.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB(x, y, model(c).(Color))
}

// SetRGB sets the pixel at (x, y). Writes outside the image are dropped.
func (p *Image) SetRGB(x, y int, c Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// Fill sets every pixel to c.
func (p *Image) Fill(c Color) {
	if len(p.Pix) < 3 {
		return
	}
	p.Pix[0], p.Pix[1], p.Pix[2] = c.R, c.G, c.B
	// Double the filled prefix until the buffer is covered
	for n := 3; n < len(p.Pix); n *= 2 {
		copy(p.Pix[n:], p.Pix[:n])
	}
}

// Clone returns a deep copy of the image.
func (p *Image) Clone() *Image {
	dup := &Image{
		Pix:    make([]uint8, len(p.Pix)),
		Stride: p.Stride,
		Rect:   p.Rect,
	}
	copy(dup.Pix, p.Pix)
	return dup
}

// Convert returns m as an *Image whose bounds start at (0, 0), copying it
// when necessary. Like NewImage it panics if m holds more than MaxPixels
// pixels.
func Convert(m image.Image) *Image {
	if p, ok := m.(*Image); ok && p.Rect.Min == (image.Point{}) {
		return p
	}
	b := m.Bounds()
	p := NewImage(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.SetRGB(x-b.Min.X, y-b.Min.Y, convert(m.At(x, y)))
		}
	}
	return p
}
