package bitmap

import "math"

// source maps output index i onto the input axis so that the first and last
// samples of both axes line up.
func source(i, in, out int) float64 {
	if out == 1 {
		return 0
	}
	return float64(i*(in-1)) / float64(out-1)
}

func mix(a, b uint8, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}

// Resample returns a new nw by nh canvas holding in scaled with bilinear
// interpolation. The new canvas has the same pen and font as in, which is
// left unmodified.
func Resample(in *Canvas, nw, nh int) (*Canvas, error) {
	out, err := New(nw, nh)
	if err != nil {
		return nil, err
	}
	out.pen, out.font, out.spacing = in.pen, in.font, in.spacing

	w, h := in.Width(), in.Height()
	for y := 0; y < nh; y++ {
		fy := source(y, h, nh)
		y0 := int(fy)
		y1 := min(y0+1, h-1)
		ty := fy - float64(y0)

		for x := 0; x < nw; x++ {
			fx := source(x, w, nw)
			x0 := int(fx)
			x1 := min(x0+1, w-1)
			tx := fx - float64(x0)

			i00, i10 := in.m.PixOffset(x0, y0), in.m.PixOffset(x1, y0)
			i01, i11 := in.m.PixOffset(x0, y1), in.m.PixOffset(x1, y1)
			o := out.m.PixOffset(x, y)

			for ch := 0; ch < 3; ch++ {
				top := mix(in.m.Pix[i00+ch], in.m.Pix[i10+ch], tx)
				bottom := mix(in.m.Pix[i01+ch], in.m.Pix[i11+ch], tx)
				out.m.Pix[o+ch] = uint8(math.Round(top + (bottom-top)*ty))
			}
		}
	}

	return out, nil
}
