package main

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/bitmap"
	"github.com/bodgit/bitmap/bmp"
	_ "golang.org/x/image/bmp" // other BMP variants
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// load reads a canvas from file. 24-bit BMP files are read directly, any
// other format registered with the image package is converted.
func load(file string) (*bitmap.Canvas, error) {
	c, err := bitmap.Load(file)
	if err == nil || !errors.Is(err, bmp.ErrNotBMP) && !errors.Is(err, bmp.ErrUnsupported) {
		return c, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return bitmap.NewFromImage(m)
}

// save writes c to file, choosing the format from the extension. Anything
// unrecognised is written as a 24-bit BMP.
func save(c *bitmap.Canvas, file string) (err error) {
	ext := strings.ToLower(filepath.Ext(file))
	if ext == ".bmp" || ext == "" {
		return c.Save(file)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch ext {
	case ".png":
		return png.Encode(f, c)
	case ".gif":
		return gif.Encode(f, c, nil)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, c, &jpeg.Options{Quality: 95})
	case ".tif", ".tiff":
		return tiff.Encode(f, c, nil)
	default:
		return c.Encode(f)
	}
}
