package bitmap

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/bitmap/bmp"
	"github.com/bodgit/bitmap/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkerboard is a 2x2 BMP with white at the top-left and bottom-right.
func checkerboard() []byte {
	b := new(bytes.Buffer)
	b.WriteString("BM")
	for _, v := range []interface{}{
		uint32(70), uint16(0), uint16(0), uint32(54), // file header
		uint32(40), int32(2), int32(2), uint16(1), uint16(24), // info header
		uint32(0), uint32(16), int32(2835), int32(2835), uint32(0), uint32(0),
	} {
		_ = binary.Write(b, binary.LittleEndian, v)
	}
	// Bottom row first
	b.Write([]byte{0, 0, 0, 0xff, 0xff, 0xff, 0, 0})
	b.Write([]byte{0xff, 0xff, 0xff, 0, 0, 0, 0, 0})
	return b.Bytes()
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "checkerboard.bmp")
	require.NoError(t, os.WriteFile(file, checkerboard(), 0o644))

	c, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "Canvas[2x2]", c.String())
	assert.Equal(t, rgb.White, c.Pixel(0, 0))
	assert.Equal(t, rgb.Black, c.Pixel(1, 0))
	assert.Equal(t, rgb.Black, c.Pixel(0, 1))
	assert.Equal(t, rgb.White, c.Pixel(1, 1))

	saved := filepath.Join(dir, "saved.bmp")
	require.NoError(t, c.Save(saved))

	d, err := Load(saved)
	require.NoError(t, err)
	assert.Equal(t, c.RGBImage().Pix, d.RGBImage().Pix)

	b, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, checkerboard(), b)
}

func TestRoundTrip(t *testing.T) {
	c := mustNew(t, 13, 7)
	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			c.SetPixel(x, y, rgb.Gradient(red, blue, float64(x*y)/72))
		}
	}
	c.SetPen(rgb.Color{G: 200})
	c.FillCircle(6, 3, 2)

	b := new(bytes.Buffer)
	require.NoError(t, c.Encode(b))

	d, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, c.RGBImage().Pix, d.RGBImage().Pix)
	assert.Equal(t, c.Bounds(), d.Bounds())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.bmp"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.bmp")
	require.NoError(t, os.WriteFile(bad, []byte("GIF89a not a bitmap at all, honest.........................."), 0o644))
	c, err := Load(bad)
	assert.ErrorIs(t, err, bmp.ErrNotBMP)
	assert.Nil(t, c)

	short := filepath.Join(dir, "short.bmp")
	require.NoError(t, os.WriteFile(short, checkerboard()[:60], 0o644))
	_, err = Load(short)
	assert.Error(t, err)

	assert.Error(t, mustNew(t, 1, 1).Save(filepath.Join(dir, "missing", "dir.bmp")))
}
