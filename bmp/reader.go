package bmp

import (
	"encoding/binary"
	"errors"
	"image"
	"io"

	"github.com/bodgit/bitmap/rgb"
)

var (
	// ErrNotBMP is returned when the input does not start with the "BM"
	// magic.
	ErrNotBMP = errors.New("bmp: not a BMP file")
	// ErrUnsupported is returned for any bit depth, plane count or
	// compression method other than 24-bit uncompressed.
	ErrUnsupported = errors.New("bmp: unsupported BMP variant")
	// ErrInvalidHeader is returned when the header describes impossible
	// dimensions or offsets.
	ErrInvalidHeader = errors.New("bmp: invalid header")
)

type decoder struct {
	r io.Reader

	fh fileHeader
	ih infoHeader

	width, height int
	topDown       bool

	image *rgb.Image
}

func (d *decoder) readHeader() error {
	if err := binary.Read(d.r, binary.LittleEndian, &d.fh); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if d.fh.Magic != [2]byte{'B', 'M'} {
		return ErrNotBMP
	}

	if err := binary.Read(d.r, binary.LittleEndian, &d.ih); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}

	// The 12 byte OS/2 header has a different layout entirely
	if d.ih.Size < infoHeaderLen {
		return ErrUnsupported
	}
	if d.ih.Planes != 1 || d.ih.BitCount != bitsPerPixel || d.ih.Compression != compressNone {
		return ErrUnsupported
	}

	d.width = int(d.ih.Width)
	d.height = int(d.ih.Height)
	if d.height < 0 {
		d.height, d.topDown = -d.height, true
	}
	if !rgb.Fits(d.width, d.height) {
		return ErrInvalidHeader
	}

	if int64(d.fh.Offset) < fileHeaderLen+int64(d.ih.Size) {
		return ErrInvalidHeader
	}

	return nil
}

// skipToPixels discards any remaining header bytes and palette up to the
// pixel data offset.
func (d *decoder) skipToPixels() error {
	skip := int64(d.fh.Offset) - headerLen
	if skip == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, d.r, skip); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// readPixels reads all of the pixel data before allocating the image, so a
// truncated file never allocates more than it holds.
func (d *decoder) readPixels() error {
	n := stride(d.width)
	data, err := io.ReadAll(io.LimitReader(d.r, int64(n)*int64(d.height)))
	if err != nil {
		return err
	}
	if len(data) < n*d.height {
		return io.ErrUnexpectedEOF
	}

	d.image = rgb.NewImage(image.Rect(0, 0, d.width, d.height))
	for i := 0; i < d.height; i++ {
		row := data[i*n : (i+1)*n]

		y := d.height - 1 - i
		if d.topDown {
			y = i
		}

		p := d.image.Pix[y*d.image.Stride : (y+1)*d.image.Stride]
		for x := 0; x < len(p); x += bytesPerPixel {
			// Stored as BGR
			p[x+0], p[x+1], p[x+2] = row[x+2], row[x+1], row[x+0]
		}
	}

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	if err := d.skipToPixels(); err != nil {
		return err
	}

	return d.readPixels()
}

// Decode reads a BMP image from r and returns it as an *rgb.Image.
func Decode(r io.Reader) (*rgb.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a BMP image without
// decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: rgb.Model,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
