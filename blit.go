package bitmap

// clip trims a w by h copy from (sx, sy) in src to (dx, dy) in dst so that
// both rectangles lie within their canvases. It reports false if nothing is
// left to copy.
func clip(dst *Canvas, dx, dy int, src *Canvas, sx, sy, w, h int) (int, int, int, int, int, int, bool) {
	if sx < 0 {
		dx -= sx
		w += sx
		sx = 0
	}
	if sy < 0 {
		dy -= sy
		h += sy
		sy = 0
	}
	if dx < 0 {
		sx -= dx
		w += dx
		dx = 0
	}
	if dy < 0 {
		sy -= dy
		h += dy
		dy = 0
	}
	w = min(w, src.Width()-sx, dst.Width()-dx)
	h = min(h, src.Height()-sy, dst.Height()-dy)
	return dx, dy, sx, sy, w, h, w > 0 && h > 0
}

// rows returns the order in which to visit rows so that copying within a
// single canvas never reads a row that has already been overwritten.
func rows(dst, src *Canvas, dy, sy, h int) (int, int, int) {
	if dst == src && dy > sy {
		return h - 1, -1, -1
	}
	return 0, h, 1
}

// Blit copies the w by h rectangle at (sx, sy) in src to (dx, dy) in dst.
// Both rectangles are clipped to their canvases and only the part that
// remains is copied. src and dst may be the same canvas.
func Blit(dst *Canvas, dx, dy int, src *Canvas, sx, sy, w, h int) {
	dx, dy, sx, sy, w, h, ok := clip(dst, dx, dy, src, sx, sy, w, h)
	if !ok {
		return
	}

	start, end, step := rows(dst, src, dy, sy, h)
	for y := start; y != end; y += step {
		si := src.m.PixOffset(sx, sy+y)
		di := dst.m.PixOffset(dx, dy+y)
		copy(dst.m.Pix[di:di+w*3], src.m.Pix[si:si+w*3])
	}
}

// MaskedBlit is like Blit but leaves the destination untouched wherever the
// source pixel matches the source canvas's pen colour.
func MaskedBlit(dst *Canvas, dx, dy int, src *Canvas, sx, sy, w, h int) {
	dx, dy, sx, sy, w, h, ok := clip(dst, dx, dy, src, sx, sy, w, h)
	if !ok {
		return
	}

	key := src.pen
	start, end, step := rows(dst, src, dy, sy, h)
	for y := start; y != end; y += step {
		// Walk right to left when shifting right within one canvas
		x0, x1, xs := 0, w, 1
		if dst == src && dy == sy && dx > sx {
			x0, x1, xs = w-1, -1, -1
		}
		for x := x0; x != x1; x += xs {
			p := src.m.RGBAt(sx+x, sy+y)
			if p != key {
				dst.m.SetRGB(dx+x, dy+y, p)
			}
		}
	}
}
