package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"image"
	"io"

	"github.com/bodgit/bitmap/rgb"
)

// RGBImager is implemented by images that can expose their pixels as an
// *rgb.Image without copying.
type RGBImager interface {
	RGBImage() *rgb.Image
}

type encoder struct {
	w *bufio.Writer
	m *rgb.Image
}

func (e *encoder) writeHeader() error {
	w, h := e.m.Rect.Dx(), e.m.Rect.Dy()
	size := stride(w) * h

	fh := fileHeader{
		Magic:  [2]byte{'B', 'M'},
		Size:   uint32(headerLen + size),
		Offset: headerLen,
	}
	ih := infoHeader{
		Size:          infoHeaderLen,
		Width:         int32(w),
		Height:        int32(h),
		Planes:        1,
		BitCount:      bitsPerPixel,
		Compression:   compressNone,
		ImageSize:     uint32(size),
		XPelsPerMeter: pixelsPerM,
		YPelsPerMeter: pixelsPerM,
	}

	if err := binary.Write(e.w, binary.LittleEndian, &fh); err != nil {
		return err
	}
	return binary.Write(e.w, binary.LittleEndian, &ih)
}

func (e *encoder) writePixels() error {
	w, h := e.m.Rect.Dx(), e.m.Rect.Dy()

	// Padding bytes stay zero
	row := make([]byte, stride(w))
	for y := h - 1; y >= 0; y-- {
		i := e.m.PixOffset(e.m.Rect.Min.X, e.m.Rect.Min.Y+y)
		p := e.m.Pix[i : i+w*bytesPerPixel]
		for x := 0; x < len(p); x += bytesPerPixel {
			row[x+0], row[x+1], row[x+2] = p[x+2], p[x+1], p[x+0]
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the Image m to w in 24-bit uncompressed BMP format.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return errors.New("bmp: image is empty")
	}
	if !rgb.Fits(b.Dx(), b.Dy()) {
		return errors.New("bmp: image is too large")
	}

	var p *rgb.Image
	switch t := m.(type) {
	case *rgb.Image:
		p = t
	case RGBImager:
		p = t.RGBImage()
	default:
		p = rgb.Convert(m)
	}

	e := encoder{
		w: bufio.NewWriter(w),
		m: p,
	}

	if err := e.writeHeader(); err != nil {
		return err
	}

	if err := e.writePixels(); err != nil {
		return err
	}

	return e.w.Flush()
}
