package bitmap

import (
	"fmt"
	"strings"

	"github.com/bodgit/bitmap/font"
)

// SetFont sets the glyph table and the advance between characters. A nil
// table keeps the current table and a spacing of zero or less keeps the
// current spacing.
func (c *Canvas) SetFont(t *font.Table, spacing int) {
	if t != nil {
		c.font = t
	}
	if spacing > 0 {
		c.spacing = spacing
	}
}

// UseFont selects a built-in glyph table with its natural spacing.
func (c *Canvas) UseFont(b font.Builtin) {
	t := b.Table()
	c.font, c.spacing = t, t.Width()
}

// Font returns the current glyph table and spacing.
func (c *Canvas) Font() (*font.Table, int) { return c.font, c.spacing }

// glyph paints the set bits of the glyph for ch with its top-left corner at
// (x, y), each bit as a size by size block.
func (c *Canvas) glyph(x, y int, ch byte, size int) {
	t := c.font
	if c.outside(x, y, x+t.Width()*size-1, y+t.Height()*size-1) {
		return
	}
	for gy := 0; gy < t.Height(); gy++ {
		for gx := 0; gx < t.Width(); gx++ {
			if !t.Bit(ch, gx, gy) {
				continue
			}
			if size == 1 {
				c.PutPixel(x+gx, y+gy)
				continue
			}
			px, py := x+gx*size, y+gy*size
			c.FillRect(px, py, px+size-1, py+size-1)
		}
	}
}

func (c *Canvas) text(x, y int, s string, size int) {
	cx := x
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			cx = x
			y += c.font.Height() * size
			continue
		}
		c.glyph(cx, y, s[i], size)
		cx += c.spacing * size
	}
}

// scale turns a magnification exponent into a block size. Negative
// exponents draw at normal size.
func scale(s int) int {
	return 1 << uint(max(0, min(s, 16)))
}

// Putc draws the character ch with its top-left corner at (x, y). Only the
// set bits of the glyph are painted.
func (c *Canvas) Putc(x, y int, ch byte) { c.glyph(x, y, ch, 1) }

// Puts draws s starting at (x, y), advancing by the spacing for each byte. A
// newline moves down one cell and back to x.
func (c *Canvas) Puts(x, y int, s string) { c.text(x, y, s, 1) }

// Printf formats according to a format specifier and draws the result with
// Puts.
func (c *Canvas) Printf(x, y int, format string, a ...interface{}) {
	c.text(x, y, fmt.Sprintf(format, a...), 1)
}

// PutcScaled is like Putc but magnifies the glyph by 2^s.
func (c *Canvas) PutcScaled(x, y, s int, ch byte) { c.glyph(x, y, ch, scale(s)) }

// PutsScaled is like Puts but magnifies the text by 2^s.
func (c *Canvas) PutsScaled(x, y, s int, str string) { c.text(x, y, str, scale(s)) }

// PrintfScaled is like Printf but magnifies the text by 2^s.
func (c *Canvas) PrintfScaled(x, y, s int, format string, a ...interface{}) {
	c.text(x, y, fmt.Sprintf(format, a...), scale(s))
}

// TextWidth returns the width in pixels of the longest line of s.
func (c *Canvas) TextWidth(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, len(line))
	}
	return n * c.spacing
}

// TextHeight returns the height in pixels of s.
func (c *Canvas) TextHeight(s string) int {
	return (strings.Count(s, "\n") + 1) * c.font.Height()
}
