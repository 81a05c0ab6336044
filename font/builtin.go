package font

import (
	"strings"
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Builtin identifies one of the glyph tables shipped with the package.
type Builtin int

// The built-in glyph tables.
const (
	Normal        Builtin = iota // Inconsolata 8x16
	Bold                         // Inconsolata Bold 8x16
	Circuit                      // traced outline of the bold face
	Hand                         // slanted 7x13 misc-fixed
	Small                        // 3x5 glyphs in a 4x6 cell
	SmallInverted                // Small with foreground and background swapped
	Thick                        // Normal thickened by one pixel
	numBuiltins
)

var builtinNames = [numBuiltins]string{
	Normal:        "normal",
	Bold:          "bold",
	Circuit:       "circuit",
	Hand:          "hand",
	Small:         "small",
	SmallInverted: "small_inverse",
	Thick:         "thick",
}

// aliases accepted by ByName in addition to the canonical names.
var aliases = map[string]Builtin{
	"small_i":  SmallInverted,
	"smalli":   SmallInverted,
	"inverse":  SmallInverted,
	"default":  Normal,
	"thin":     Normal,
	"computer": Circuit,
}

var (
	once     sync.Once
	builtins [numBuiltins]*Table
)

func load() {
	normal := FromFace(inconsolata.Regular8x16)
	bold := FromFace(inconsolata.Bold8x16)
	small := build(4, 6, smallGlyph)

	builtins[Normal] = normal
	builtins[Bold] = bold
	builtins[Circuit] = bold.derive(bold.width, bold.height, outline)
	builtins[Hand] = slant(FromFace(basicfont.Face7x13))
	builtins[Small] = small
	builtins[SmallInverted] = small.derive(small.width, small.height, func(get func(x, y int) bool, x, y int) bool {
		return !get(x, y)
	})
	builtins[Thick] = normal.derive(normal.width, normal.height, func(get func(x, y int) bool, x, y int) bool {
		return get(x, y) || get(x-1, y) || get(x, y-1) || get(x-1, y-1)
	})
}

// Table returns the glyph table. Unknown values return the Normal table.
func (b Builtin) Table() *Table {
	once.Do(load)
	if b < 0 || b >= numBuiltins {
		b = Normal
	}
	return builtins[b]
}

func (b Builtin) String() string {
	if b < 0 || b >= numBuiltins {
		return "unknown"
	}
	return builtinNames[b]
}

// Builtins returns every built-in table identifier in order.
func Builtins() []Builtin {
	l := make([]Builtin, numBuiltins)
	for i := range l {
		l[i] = Builtin(i)
	}
	return l
}

// ByName looks up a built-in table by name, ignoring case. Unknown names
// return Normal.
func ByName(name string) Builtin {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range builtinNames {
		if n == name {
			return Builtin(i)
		}
	}
	if b, ok := aliases[name]; ok {
		return b
	}
	return Normal
}

// outline keeps the set pixels that touch an unset pixel, hollowing out the
// glyph strokes.
func outline(get func(x, y int) bool, x, y int) bool {
	if !get(x, y) {
		return false
	}
	return !get(x-1, y) || !get(x+1, y) || !get(x, y-1) || !get(x, y+1)
}

// slant shears t to the right by one pixel for every four rows above the
// bottom of the cell, widening the cell to fit.
func slant(t *Table) *Table {
	shift := func(y int) int { return (t.height - 1 - y) / 4 }
	return t.derive(t.width+shift(0), t.height, func(get func(x, y int) bool, x, y int) bool {
		return get(x-shift(y), y)
	})
}
