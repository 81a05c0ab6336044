/*
Package font implements the fixed-width monochrome glyph tables used to render
text onto a canvas.

A Table is an X BitMap atlas holding the printable ASCII characters 32 to 126
in six rows of sixteen cells, in code order, with code 127 holding the glyph
drawn for any character outside that range. Every cell has the same size which
is derived from the atlas dimensions, so an atlas for an 8 by 8 font is 128 by
48 pixels.
*/
package font

import (
	"errors"
	"io"

	"github.com/bodgit/bitmap/xbm"
	"golang.org/x/image/font/basicfont"
)

const (
	// First is the first character code held in a table.
	First = 32
	// Missing is the character code whose glyph is drawn for characters
	// that have no glyph of their own.
	Missing = 127

	columns = 16
	rows    = 6
)

var errLayout = errors.New("font: atlas is not 16 by 6 cells")

// Table is an immutable glyph table. It is safe to share between canvases
// and goroutines.
type Table struct {
	atlas         *xbm.Bitmap
	width, height int
}

// New returns a Table backed by atlas. The atlas is used directly and must not
// be modified afterwards.
func New(atlas *xbm.Bitmap) (*Table, error) {
	if atlas.Width <= 0 || atlas.Height <= 0 || atlas.Width%columns != 0 || atlas.Height%rows != 0 {
		return nil, errLayout
	}
	if len(atlas.Bits) < xbm.Stride(atlas.Width)*atlas.Height {
		return nil, errLayout
	}
	return &Table{
		atlas:  atlas,
		width:  atlas.Width / columns,
		height: atlas.Height / rows,
	}, nil
}

// Decode reads a Table from an XBM atlas.
func Decode(r io.Reader) (*Table, error) {
	atlas, err := xbm.Decode(r)
	if err != nil {
		return nil, err
	}
	return New(atlas)
}

// Width returns the width of a glyph cell, which is also the natural spacing
// between characters.
func (t *Table) Width() int { return t.width }

// Height returns the height of a glyph cell.
func (t *Table) Height() int { return t.height }

// Atlas returns the underlying atlas. It must not be modified.
func (t *Table) Atlas() *xbm.Bitmap { return t.atlas }

func cell(c byte) (int, int) {
	if c < First || c > Missing {
		c = Missing
	}
	i := int(c) - First
	return i % columns, i / columns
}

// Bit reports whether the pixel at (x, y) within the glyph for c is set.
func (t *Table) Bit(c byte, x, y int) bool {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return false
	}
	cx, cy := cell(c)
	return t.atlas.Bit(cx*t.width+x, cy*t.height+y)
}

func build(width, height int, set func(c byte, x, y int) bool) *Table {
	atlas := xbm.New(width*columns, height*rows)
	for c := First; c <= Missing; c++ {
		cx, cy := cell(byte(c))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if set(byte(c), x, y) {
					atlas.SetBit(cx*width+x, cy*height+y, true)
				}
			}
		}
	}
	return &Table{atlas: atlas, width: width, height: height}
}

// derive builds a new table of the given cell size where each pixel is
// computed from the glyph of the same character in t.
func (t *Table) derive(width, height int, f func(get func(x, y int) bool, x, y int) bool) *Table {
	return build(width, height, func(c byte, x, y int) bool {
		return f(func(x, y int) bool { return t.Bit(c, x, y) }, x, y)
	})
}

// box reports whether (x, y) is on the outline of a box inset by one pixel
// in a cell of the given size.
func box(width, height, x, y int) bool {
	if x < 1 || y < 1 || x > width-2 || y > height-2 {
		return false
	}
	return x == 1 || y == 1 || x == width-2 || y == height-2
}

// FromFace converts a basicfont face into a Table. Each cell is the face's
// advance wide and its ascent plus descent high; mask pixels at least half
// opaque become set bits. Characters the face does not cover, along with the
// missing glyph, are drawn as a hollow box.
func FromFace(f *basicfont.Face) *Table {
	width, height := f.Advance, f.Ascent+f.Descent
	origin := f.Mask.Bounds().Min

	return build(width, height, func(c byte, x, y int) bool {
		i, ok := glyphIndex(f, rune(c))
		if c == Missing || !ok {
			return box(width, height, x, y)
		}
		mx := x - f.Left
		if mx < 0 || mx >= f.Width {
			return false
		}
		_, _, _, a := f.Mask.At(origin.X+mx, origin.Y+i*height+y).RGBA()
		return a >= 0x8000
	})
}

func glyphIndex(f *basicfont.Face, r rune) (int, bool) {
	for _, rr := range f.Ranges {
		if rr.Low <= r && r < rr.High {
			return int(r-rr.Low) + rr.Offset, true
		}
	}
	return 0, false
}
