package main

import (
	"github.com/bodgit/bitmap"
	"github.com/bodgit/bitmap/font"
	"github.com/bodgit/bitmap/rgb"
)

const (
	specimen = "The quick brown fox jumps over the lazy dog 0123456789 !?#&"
	margin   = 4
)

// fontSheet draws the name and a sample line of every built-in font.
func fontSheet() (*bitmap.Canvas, error) {
	measure, err := bitmap.New(1, 1)
	if err != nil {
		return nil, err
	}

	w, h := 0, margin
	for _, b := range font.Builtins() {
		measure.UseFont(b)
		w = max(w, measure.TextWidth(b.String()+": "+specimen))
		h += measure.TextHeight(specimen) + margin
	}

	c, err := bitmap.New(w+2*margin, h)
	if err != nil {
		return nil, err
	}
	c.SetPen(rgb.White)
	c.Clear()
	c.SetPen(rgb.Black)

	y := margin
	for _, b := range font.Builtins() {
		c.UseFont(b)
		c.Printf(margin, y, "%s: %s", b, specimen)
		y += c.TextHeight(specimen) + margin
	}

	return c, nil
}

// testCard exercises every drawing primitive on a single canvas.
func testCard() (*bitmap.Canvas, error) {
	const w, h = 320, 240

	c, err := bitmap.New(w, h)
	if err != nil {
		return nil, err
	}

	top, bottom := rgb.Color{B: 96}, rgb.Black
	for y := 0; y < h; y++ {
		c.SetPen(rgb.Gradient(top, bottom, float64(y)/float64(h-1)))
		c.Line(0, y, w-1, y)
	}

	c.SetPenText("white")
	c.Rect(0, 0, w-1, h-1)

	// Line fan
	c.SetPenText("yellow")
	for x := 0; x <= 60; x += 10 {
		c.Line(10, 70, 10+x, 10)
		c.Line(10, 70, 70, 70-x)
	}

	c.SetPenText("tomato")
	c.FillCircle(120, 40, 28)
	c.SetPenText("white")
	c.Circle(120, 40, 30)

	c.SetPenText("lime")
	c.Ellipse(170, 15, 250, 65)

	c.SetPenText("#4080FF")
	c.FillRoundRect(260, 12, 310, 66, 10)
	c.SetPenText("white")
	c.RoundRect(258, 10, 312, 68, 12)

	c.SetPenText("orange")
	c.Bezier3(10, 150, 80, 80, 150, 150)

	// Flood fill a closed outline
	c.SetPen(rgb.Black)
	c.FillRect(170, 90, 250, 150)
	c.SetPenText("cyan")
	c.Rect(170, 90, 250, 150)
	c.Line(170, 90, 250, 150)
	c.SetPenText("teal")
	c.Fill(230, 100)

	// A sprite with a magenta key, blitted both ways
	sprite, err := bitmap.New(16, 16)
	if err != nil {
		return nil, err
	}
	sprite.SetPenText("magenta")
	sprite.Clear()
	sprite.SetPenText("gold")
	sprite.FillCircle(7, 7, 6)
	sprite.SetPenText("magenta")
	for i := 0; i < 4; i++ {
		bitmap.Blit(c, 10+i*20, 170, sprite, 0, 0, 16, 16)
		bitmap.MaskedBlit(c, 10+i*20, 195, sprite, 0, 0, 16, 16)
	}

	// Copy a region of the card onto itself, then recolour the tomato disc
	bitmap.Blit(c, 260, 170, c, 100, 10, 50, 50)
	c.SwapColor(rgb.Color{R: 0xff, G: 0x63, B: 0x47}, rgb.Color{R: 0x80, B: 0x80})

	c.SetPen(rgb.White)
	c.UseFont(font.Small)
	c.Puts(170, 160, "small")
	c.UseFont(font.Normal)
	c.PrintfScaled(170, 180, 1, "%dx%d", w, h)

	return c, nil
}
