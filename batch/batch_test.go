package batch

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/bitmap"
	"github.com/bodgit/bitmap/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = rgb.Color{R: 255}

// tree creates a directory of small red squares, plus some files that
// should be ignored.
func tree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	c, err := bitmap.New(4, 2)
	require.NoError(t, err)
	c.SetPen(red)
	c.Clear()

	for _, file := range []string{"a.bmp", "b.BMP", "sub/c.bmp", "sub/deeper/d.bmp", ".hidden/e.bmp", ".f.bmp"} {
		file = filepath.Join(dir, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
		require.NoError(t, c.Save(file))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	return dir
}

func pixel(t *testing.T, file string) rgb.Color {
	t.Helper()
	c, err := bitmap.Load(file)
	require.NoError(t, err)
	return c.Pixel(0, 0)
}

func TestRunInPlace(t *testing.T) {
	dir := tree(t)
	b := new(bytes.Buffer)
	p := New(3, log.New(b, "", 0))

	n, err := p.Run(context.Background(), dir, "", Swap(red, rgb.White))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, file := range []string{"a.bmp", "b.BMP", "sub/c.bmp", "sub/deeper/d.bmp"} {
		assert.Equal(t, rgb.White, pixel(t, filepath.Join(dir, filepath.FromSlash(file))), file)
	}
	for _, file := range []string{".hidden/e.bmp", ".f.bmp"} {
		assert.Equal(t, red, pixel(t, filepath.Join(dir, filepath.FromSlash(file))), file)
	}
	assert.Contains(t, b.String(), "Processed")
}

func TestRunOutput(t *testing.T) {
	dir := tree(t)
	out := filepath.Join(dir, "out")

	n, err := New(0, nil).Run(context.Background(), dir, out, Chain(Resample(8, 0), Smooth()))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	c, err := bitmap.Load(filepath.Join(out, "sub", "deeper", "d.bmp"))
	require.NoError(t, err)
	assert.Equal(t, "Canvas[8x4]", c.String())
	assert.Equal(t, red, c.Pixel(3, 3))

	// Originals are untouched
	c, err = bitmap.Load(filepath.Join(dir, "a.bmp"))
	require.NoError(t, err)
	assert.Equal(t, "Canvas[4x2]", c.String())

	// A second run must not pick up the first run's output
	n, err = New(2, nil).Run(context.Background(), dir, out, Smooth())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRunErrors(t *testing.T) {
	dir := tree(t)
	errOp := errors.New("op failed")

	_, err := New(2, nil).Run(context.Background(), dir, "", func(*bitmap.Canvas) (*bitmap.Canvas, error) {
		return nil, errOp
	})
	assert.ErrorIs(t, err, errOp)

	_, err = New(2, nil).Run(context.Background(), dir, "", Quantize(0))
	assert.Error(t, err)

	_, err = New(2, nil).Run(context.Background(), filepath.Join(dir, "missing"), "", Smooth())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = New(2, nil).Run(context.Background(), filepath.Join(dir, "a.bmp"), "", Smooth())
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.bmp"), []byte("BMnope"), 0o644))
	_, err = New(2, nil).Run(context.Background(), dir, "", Smooth())
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	dir := tree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(2, nil).Run(ctx, dir, "", Smooth())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOps(t *testing.T) {
	c, err := bitmap.New(10, 5)
	require.NoError(t, err)

	r, err := Resample(0, 10)(c)
	require.NoError(t, err)
	assert.Equal(t, "Canvas[20x10]", r.String())

	r, err = Resample(3, 3)(c)
	require.NoError(t, err)
	assert.Equal(t, "Canvas[3x3]", r.String())

	_, err = Resample(-1, 0)(c)
	assert.ErrorIs(t, err, bitmap.ErrInvalidSize)

	c.SetPen(red)
	c.Clear()
	r, err = Quantize(4)(c)
	require.NoError(t, err)
	assert.Equal(t, red, r.Pixel(0, 0))
}
