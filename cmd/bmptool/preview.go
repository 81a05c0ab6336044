package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bodgit/bitmap"
	"github.com/bodgit/bitmap/rgb"
	"github.com/gookit/color"
	"golang.org/x/term"
)

const defaultColumns = 80

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// columns returns the width of the terminal behind w, or a default if it
// isn't one.
func columns(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultColumns
}

func swatch(c rgb.Color) string {
	return color.RGB(c.R, c.G, c.B, true).Sprint("      ")
}

// preview renders c using one character cell for every two rows of pixels,
// with the upper pixel as the foreground and the lower as the background.
func preview(w io.Writer, c *bitmap.Canvas, width int) error {
	if c.Width() > width {
		h := max(2, c.Height()*width/c.Width())
		var err error
		if c, err = bitmap.Resample(c, width, h); err != nil {
			return err
		}
	}

	var sb strings.Builder
	for y := 0; y < c.Height(); y += 2 {
		for x := 0; x < c.Width(); x++ {
			top, bottom := c.Pixel(x, y), c.Pixel(x, y+1)
			if y+1 >= c.Height() {
				bottom = rgb.Black
			}
			s := color.NewRGBStyle(color.RGB(top.R, top.G, top.B), color.RGB(bottom.R, bottom.G, bottom.B, true))
			sb.WriteString(s.Sprint("▀"))
		}
		sb.WriteByte('\n')
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}
