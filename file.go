package bitmap

import (
	"io"
	"os"

	"github.com/bodgit/bitmap/bmp"
)

// Decode reads a BMP image from r into a new canvas.
func Decode(r io.Reader) (*Canvas, error) {
	m, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return newCanvas(m), nil
}

// Load reads the BMP file into a new canvas.
func Load(file string) (*Canvas, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes the canvas to w as a 24-bit BMP image.
func (c *Canvas) Encode(w io.Writer) error {
	return bmp.Encode(w, c.m)
}

// Save writes the canvas to file as a 24-bit BMP image, replacing any
// existing file.
func (c *Canvas) Save(file string) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return c.Encode(f)
}
