package rgb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tables := []struct {
		text  string
		color Color
		ok    bool
	}{
		{"#FF0000", Color{0xff, 0x00, 0x00}, true},
		{"#ff8000", Color{0xff, 0x80, 0x00}, true},
		{"#aBcDeF", Color{0xab, 0xcd, 0xef}, true},
		{"#fff", White, true},
		{"  #000000 ", Black, true},
		{"white", White, true},
		{"WHITE", White, true},
		{"CornflowerBlue", Color{0x64, 0x95, 0xed}, true},
		{"", Black, false},
		{"#", Black, false},
		{"#12345", Black, false},
		{"#GGGGGG", Black, false},
		{"no-such-colour", Black, false},
	}

	for _, table := range tables {
		t.Run(table.text, func(t *testing.T) {
			c, err := Parse(table.text)
			if table.ok {
				require.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			assert.Equal(t, table.color, c)
		})
	}
}

func TestPacked(t *testing.T) {
	assert.Equal(t, 0xff00ff, Packed("#FF00FF"))
	assert.Equal(t, 0xffffff, Packed("white"))
	assert.Equal(t, 0x000000, Packed("garbage"))

	c := FromPacked(0x123456)
	assert.Equal(t, Color{0x12, 0x34, 0x56}, c)
	assert.Equal(t, 0x123456, c.Packed())
	assert.Equal(t, "#123456", c.Hex())

	// Upper bits are ignored
	assert.Equal(t, Color{0x12, 0x34, 0x56}, FromPacked(0x7f123456))
}

func TestGradient(t *testing.T) {
	colors := []Color{Black, White, {0x12, 0x80, 0xfe}, {0xff, 0x00, 0x01}}
	for _, c1 := range colors {
		for _, c2 := range colors {
			assert.Equal(t, c1, Gradient(c1, c2, 0))
			assert.Equal(t, c2, Gradient(c1, c2, 1))
			assert.Equal(t, c1, Gradient(c1, c2, -3))
			assert.Equal(t, c2, Gradient(c1, c2, 7.5))
		}
	}

	assert.Equal(t, Color{0x80, 0x80, 0x80}, Gradient(Black, White, 0.5))
	assert.Equal(t, Color{0x55, 0x00, 0xaa}, Gradient(Color{0xff, 0, 0}, Color{0, 0, 0xff}, 2.0/3))
	assert.Equal(t, 0x808080, GradientPacked(0x000000, 0xffffff, 0.5))
}

func TestRGBA(t *testing.T) {
	r, g, b, a := Color{0xff, 0x80, 0x00}.RGBA()
	assert.Equal(t, []uint32{0xffff, 0x8080, 0x0000, 0xffff}, []uint32{r, g, b, a})

	assert.Equal(t, Color{0x10, 0x20, 0x30}, Model.Convert(color.RGBA{0x10, 0x20, 0x30, 0xff}))
	assert.Equal(t, Color{0xff, 0x00, 0x00}, Model.Convert(color.NRGBA{0xff, 0x00, 0x00, 0x80}))
	assert.Equal(t, Black, Model.Convert(color.Transparent))
}

func TestImage(t *testing.T) {
	m := NewImage(image.Rect(0, 0, 4, 3))
	assert.Len(t, m.Pix, 4*3*3)
	assert.True(t, m.Opaque())

	m.SetRGB(1, 2, White)
	assert.Equal(t, White, m.RGBAt(1, 2))
	assert.Equal(t, Black, m.RGBAt(2, 1))

	// Out of range writes are dropped, reads are black
	before := append([]uint8(nil), m.Pix...)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {1 << 30, 1 << 30}} {
		m.SetRGB(p.X, p.Y, White)
		assert.Equal(t, Black, m.RGBAt(p.X, p.Y))
	}
	assert.Equal(t, before, m.Pix)

	m.Fill(Color{1, 2, 3})
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, Color{1, 2, 3}, m.RGBAt(x, y))
		}
	}

	dup := m.Clone()
	dup.SetRGB(0, 0, White)
	assert.Equal(t, Color{1, 2, 3}, m.RGBAt(0, 0))

	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.Set(6, 5, color.RGBA{0xaa, 0xbb, 0xcc, 0xff})
	c := Convert(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), c.Bounds())
	assert.Equal(t, Color{0xaa, 0xbb, 0xcc}, c.RGBAt(1, 0))
	assert.Same(t, c, Convert(c))
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(1, 1))
	assert.True(t, Fits(8192, 8192))
	assert.True(t, Fits(MaxPixels, 1))
	assert.False(t, Fits(MaxPixels+1, 1))
	assert.False(t, Fits(8192, 8193))
	assert.False(t, Fits(0, 1))
	assert.False(t, Fits(1, -1))
	assert.False(t, Fits(1<<32, 1<<32))
	assert.False(t, Fits(1<<31, 1<<31))

	assert.Panics(t, func() { NewImage(image.Rect(0, 0, 1<<32, 1<<32)) })
	assert.Empty(t, NewImage(image.Rectangle{Max: image.Pt(0, 5)}).Pix)
}
