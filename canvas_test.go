package bitmap

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/bodgit/bitmap/font"
	"github.com/bodgit/bitmap/rgb"
	"github.com/bodgit/bitmap/xbm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = rgb.Color{R: 255}
	blue = rgb.Color{B: 255}
)

func mustNew(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	require.NoError(t, err)
	return c
}

// set returns the coordinates of every pixel that is not col.
func set(c *Canvas, col rgb.Color) map[image.Point]bool {
	m := make(map[image.Point]bool)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Pixel(x, y) != col {
				m[image.Pt(x, y)] = true
			}
		}
	}
	return m
}

func TestNew(t *testing.T) {
	c := mustNew(t, 3, 2)
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.Equal(t, "Canvas[3x2]", c.String())
	assert.Empty(t, set(c, rgb.Black))
	assert.Equal(t, rgb.White, c.Pen())

	f, spacing := c.Font()
	assert.Same(t, font.Normal.Table(), f)
	assert.Equal(t, f.Width(), spacing)

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {5, -1}, {1 << 32, 1 << 32}, {1 << 31, 1 << 31}, {1 << 40, 1}, {rgb.MaxPixels + 1, 1}, {8193, 8192}} {
		c, err := New(size[0], size[1])
		assert.Nil(t, c, "%v", size)
		assert.ErrorIs(t, err, ErrInvalidSize, "%v", size)
	}
}

func TestPixels(t *testing.T) {
	c := mustNew(t, 4, 4)
	c.SetPixel(1, 2, rgb.Color{R: 1, G: 2, B: 3})

	r, g, b := c.RGB(1, 2)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})
	assert.True(t, c.ColorIs(1, 2, rgb.Color{R: 1, G: 2, B: 3}))
	assert.False(t, c.ColorIs(2, 1, rgb.Color{R: 1, G: 2, B: 3}))

	// Out of range writes are dropped and reads are black
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {1 << 40, -1 << 40}} {
		c.SetPixel(p.X, p.Y, red)
		assert.Equal(t, rgb.Black, c.Pixel(p.X, p.Y))
		assert.False(t, c.ColorIs(p.X, p.Y, rgb.Black))
	}
	assert.Len(t, set(c, rgb.Black), 1)
}

func TestPen(t *testing.T) {
	c := mustNew(t, 2, 2)

	c.SetPenText("#FF0000")
	assert.Equal(t, red, c.Pen())
	c.SetPenText("Orange")
	assert.Equal(t, rgb.Color{R: 255, G: 165}, c.Pen())
	c.SetPenText("not a colour")
	assert.Equal(t, rgb.Black, c.Pen())

	c.SetPenPacked(0x123456)
	assert.Equal(t, rgb.Color{R: 0x12, G: 0x34, B: 0x56}, c.Pen())
	c.SetPenRGB(7, 8, 9)
	assert.Equal(t, rgb.Color{R: 7, G: 8, B: 9}, c.Pen())

	c.SetPixel(1, 1, blue)
	c.Pick(1, 1)
	assert.Equal(t, blue, c.Pen())
	c.Pick(5, 5)
	assert.Equal(t, rgb.Black, c.Pen())
}

func TestClear(t *testing.T) {
	c := mustNew(t, 5, 3)
	c.SetPen(blue)
	c.Clear()
	assert.Empty(t, set(c, blue))
}

func TestCopy(t *testing.T) {
	c := mustNew(t, 3, 3)
	c.SetPen(red)
	c.UseFont(font.Small)
	c.PutPixel(1, 1)

	dup := c.Copy()
	assert.Equal(t, red, dup.Pen())
	f, spacing := dup.Font()
	assert.Same(t, font.Small.Table(), f)
	assert.Equal(t, 4, spacing)
	assert.Equal(t, c.RGBImage().Pix, dup.RGBImage().Pix)

	dup.SetPixel(0, 0, blue)
	dup.SetPen(blue)
	assert.Equal(t, rgb.Black, c.Pixel(0, 0))
	assert.Equal(t, red, c.Pen())
}

func TestNewFromImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	m.Set(10, 10, color.NRGBA{R: 255, A: 255})
	m.Set(12, 11, color.NRGBA{B: 255, A: 255})

	c, err := NewFromImage(m)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), c.Bounds())
	assert.Equal(t, red, c.Pixel(0, 0))
	assert.Equal(t, blue, c.Pixel(2, 1))

	_, err = NewFromImage(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewFromImage(image.NewUniform(red))
	assert.ErrorIs(t, err, ErrInvalidSize)

	// Copies are independent of the source
	src := mustNew(t, 2, 2)
	c, err = NewFromImage(src.RGBImage())
	require.NoError(t, err)
	c.SetPixel(0, 0, red)
	assert.Equal(t, rgb.Black, src.Pixel(0, 0))
}

func TestDrawImage(t *testing.T) {
	c := mustNew(t, 4, 4)
	var _ draw.Image = c

	draw.Draw(c, image.Rect(1, 1, 3, 3), image.NewUniform(color.RGBA{G: 255, A: 255}), image.Point{}, draw.Src)
	assert.Len(t, set(c, rgb.Black), 4)
	assert.Equal(t, rgb.Color{G: 255}, c.Pixel(2, 2))
	assert.Equal(t, color.Color(rgb.Color{G: 255}), c.At(1, 1))
	assert.Equal(t, rgb.Model, c.ColorModel())
}

func TestFromXBM(t *testing.T) {
	b := xbm.New(3, 2)
	b.SetBit(0, 0, true)
	b.SetBit(2, 1, true)

	c, err := FromXBM(b)
	require.NoError(t, err)
	assert.Equal(t, rgb.Black, c.Pixel(0, 0))
	assert.Equal(t, rgb.Black, c.Pixel(2, 1))
	assert.Len(t, set(c, rgb.White), 2)

	_, err = FromXBM(xbm.New(0, 0))
	assert.Error(t, err)
}
