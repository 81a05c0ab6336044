package store

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/bitmap"
	"github.com/bodgit/bitmap/resource"
	"github.com/bodgit/bitmap/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func canvas(t *testing.T, w, h int, col rgb.Color) *bitmap.Canvas {
	t.Helper()
	c, err := bitmap.New(w, h)
	require.NoError(t, err)
	c.SetPen(col)
	c.Clear()
	return c
}

func count(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestPutGet(t *testing.T) {
	s := open(t)

	c := canvas(t, 3, 2, rgb.Color{R: 10, G: 20, B: 30})
	c.SetPixel(2, 1, rgb.White)
	require.NoError(t, s.Put("sprite", c))

	got, err := s.Get("sprite")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.RGBImage().Pix, got.RGBImage().Pix)

	got, err = s.Get("nothing")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = s.Load("nothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeduplicate(t *testing.T) {
	s := open(t)

	red := canvas(t, 2, 2, rgb.Color{R: 255})
	require.NoError(t, s.Put("a", red))
	require.NoError(t, s.Put("b", red.Copy()))
	assert.Equal(t, 1, count(t, s, "image"))
	assert.Equal(t, 2, count(t, s, "bitmap"))

	// Replacing a name drops data nothing else uses
	require.NoError(t, s.Put("a", canvas(t, 4, 1, rgb.White)))
	require.NoError(t, s.Put("b", canvas(t, 1, 1, rgb.White)))
	assert.Equal(t, 2, count(t, s, "image"))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, 4, entries[0].Width)
	assert.Equal(t, 1, entries[0].Height)
	assert.Len(t, entries[0].SHA1, 40)
	assert.Equal(t, "b", entries[1].Name)

	require.NoError(t, s.Delete("a"))
	require.NoError(t, s.Delete("a"))
	assert.Equal(t, 1, count(t, s, "image"))

	entries, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "b", Width: 1, Height: 1, SHA1: entries[0].SHA1}}, entries)
}

func TestImportFile(t *testing.T) {
	s := open(t)
	dir := t.TempDir()

	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	m.Set(1, 0, color.NRGBA{R: 4, G: 5, B: 6, A: 255})
	f, err := os.Create(filepath.Join(dir, "in.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())

	require.NoError(t, s.ImportFile("png", filepath.Join(dir, "in.png")))
	got, err := s.Get("png")
	require.NoError(t, err)
	assert.Equal(t, rgb.Color{R: 1, G: 2, B: 3}, got.Pixel(0, 0))
	assert.Equal(t, rgb.Color{R: 4, G: 5, B: 6}, got.Pixel(1, 0))

	require.NoError(t, got.Save(filepath.Join(dir, "in.bmp")))
	require.NoError(t, s.ImportFile("bmp", filepath.Join(dir, "in.bmp")))
	assert.Equal(t, 1, count(t, s, "image"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk"), []byte("junk"), 0o644))
	assert.Error(t, s.ImportFile("junk", filepath.Join(dir, "junk")))
	assert.Error(t, s.ImportFile("none", filepath.Join(dir, "none")))
}

func TestResourceLoader(t *testing.T) {
	s := open(t)
	require.NoError(t, s.Put("tile", canvas(t, 8, 8, rgb.White)))

	m := resource.New(s, 4, nil)
	c, err := m.Get("tile")
	require.NoError(t, err)
	assert.Equal(t, "Canvas[8x8]", c.String())

	_, err = m.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(file)
	require.NoError(t, err)
	require.NoError(t, s.Put("x", canvas(t, 1, 1, rgb.White)))
	require.NoError(t, s.Close())

	s, err = Open(file)
	require.NoError(t, err)
	defer s.Close()
	entries, err := s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
