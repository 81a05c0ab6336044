/*
Package xbm implements a decoder and encoder for X BitMap images.

An XBM file is a fragment of C source:

	#define name_width 16
	#define name_height 2
	static unsigned char name_bits[] = {
	   0xff, 0x01, 0x00, 0x80 };

Each row is padded to a whole number of bytes and the bits within a byte are
stored least significant bit first, so bit 0 of the first byte is the top-left
pixel.
*/
package xbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	errNoDimensions = errors.New("xbm: missing width or height")
	errNoBits       = errors.New("xbm: missing bits array")
	errBadByte      = errors.New("xbm: invalid byte value")
	errShort        = errors.New("xbm: not enough image data")
)

// Bitmap is a monochrome image.
type Bitmap struct {
	Width, Height int
	// Bits holds the packed rows, (Width+7)/8 bytes per row.
	Bits []byte
}

// New returns an empty Bitmap of the given size.
func New(width, height int) *Bitmap {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Bits:   make([]byte, Stride(width)*height),
	}
}

// Stride returns the number of bytes used by a row of width pixels.
func Stride(width int) int {
	return (width + 7) >> 3
}

// Bit reports whether the pixel at (x, y) is set. Pixels outside the bitmap
// are never set.
func (b *Bitmap) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Bits[y*Stride(b.Width)+x>>3]&(1<<uint(x&7)) != 0
}

// SetBit sets or clears the pixel at (x, y).
func (b *Bitmap) SetBit(x, y int, v bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := y*Stride(b.Width) + x>>3
	if v {
		b.Bits[i] |= 1 << uint(x&7)
	} else {
		b.Bits[i] &^= 1 << uint(x&7)
	}
}

// Decode reads an XBM image from r.
func Decode(r io.Reader) (*Bitmap, error) {
	var (
		width, height = -1, -1
		bits          []byte
		inArray       bool
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())

		if !inArray {
			if strings.HasPrefix(line, "#define") {
				f := strings.Fields(line)
				if len(f) != 3 {
					continue
				}
				v, err := strconv.Atoi(f[2])
				if err != nil {
					return nil, fmt.Errorf("xbm: %w", err)
				}
				switch {
				case strings.HasSuffix(f[1], "_width"):
					width = v
				case strings.HasSuffix(f[1], "_height"):
					height = v
				}
				continue
			}

			i := strings.IndexByte(line, '{')
			if i < 0 || !strings.Contains(line[:i], "_bits") {
				continue
			}
			inArray = true
			line = line[i+1:]
		}

		end := strings.IndexByte(line, '}')
		if end >= 0 {
			line = line[:end]
		}

		for _, tok := range strings.Split(line, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			v, err := strconv.ParseUint(tok, 0, 8)
			if err != nil {
				return nil, errBadByte
			}
			bits = append(bits, byte(v))
		}

		if end >= 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 {
		return nil, errNoDimensions
	}
	if !inArray {
		return nil, errNoBits
	}

	b := New(width, height)
	if len(bits) < len(b.Bits) {
		return nil, errShort
	}
	copy(b.Bits, bits)

	return b, nil
}

// Encode writes b to w as C source using name as the identifier prefix.
func Encode(w io.Writer, name string, b *Bitmap) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#define %s_width %d\n", name, b.Width)
	fmt.Fprintf(bw, "#define %s_height %d\n", name, b.Height)
	fmt.Fprintf(bw, "static unsigned char %s_bits[] = {", name)

	for i, v := range b.Bits {
		if i > 0 {
			bw.WriteByte(',')
		}
		if i%12 == 0 {
			bw.WriteString("\n   ")
		} else {
			bw.WriteByte(' ')
		}
		fmt.Fprintf(bw, "0x%02x", v)
	}
	bw.WriteString(" };\n")

	return bw.Flush()
}
