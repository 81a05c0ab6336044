/*
Package rgb implements the 24-bit colour model used by the bitmap engine.

A Color is a plain (R, G, B) triple. It can also be represented as a packed
integer of the form 0xRRGGBB, or as text; either "#RRGGBB" (or the short
"#RGB") with case-insensitive hex digits, or one of the SVG 1.1 colour names
matched case-insensitively.
*/
package rgb

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	errEmpty   = errors.New("rgb: empty colour")
	errBadHex  = errors.New("rgb: invalid hex colour")
	errUnknown = errors.New("rgb: unknown colour name")
)

// Color is a 24-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// Common colours.
var (
	Black = Color{0x00, 0x00, 0x00}
	White = Color{0xff, 0xff, 0xff}
)

// RGBA implements the color.Color interface. The colour is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Packed returns the colour as an integer of the form 0xRRGGBB.
func (c Color) Packed() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// Hex returns the colour in "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// FromPacked converts an integer of the form 0xRRGGBB into a Color. Any bits
// above the lower 24 are ignored.
func FromPacked(v int) Color {
	return Color{
		R: uint8(v >> 16 & 0xff),
		G: uint8(v >> 8 & 0xff),
		B: uint8(v & 0xff),
	}
}

// Parse converts text into a Color.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Black, errEmpty
	}

	if s[0] == '#' {
		return parseHex(s[1:])
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{c.R, c.G, c.B}, nil
	}

	return Black, errUnknown
}

func parseHex(s string) (Color, error) {
	switch len(s) {
	case 3:
		// #RGB is shorthand for #RRGGBB
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return Black, errBadHex
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black, errBadHex
	}

	return FromPacked(int(v)), nil
}

// Packed converts text into an integer of the form 0xRRGGBB. Unrecognised
// text yields black.
func Packed(s string) int {
	c, _ := Parse(s)
	return c.Packed()
}

// Gradient returns the colour a fraction t along the line from c1 to c2. t is
// clamped to [0, 1] and each channel is rounded to the nearest integer.
func Gradient(c1, c2 Color, t float64) Color {
	switch {
	case math.IsNaN(t), t <= 0:
		return c1
	case t >= 1:
		return c2
	}
	return Color{
		R: lerp(c1.R, c2.R, t),
		G: lerp(c1.G, c2.G, t),
		B: lerp(c1.B, c2.B, t),
	}
}

// GradientPacked is Gradient for colours in packed 0xRRGGBB form.
func GradientPacked(c1, c2 int, t float64) int {
	return Gradient(FromPacked(c1), FromPacked(c2), t).Packed()
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Model converts any colour into a Color, discarding alpha.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return convert(c)
}

func convert(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Black
	}
	// Un-premultiply so translucent sources keep their hue
	if a != 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}
