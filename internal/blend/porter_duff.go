package blend

import "math"

// Color is a premultiplied colour with 8-bit channels.
type Color struct {
	R, G, B, A byte
}

// Premultiply converts a straight colour with channels in [0, 1] to a
// premultiplied 8-bit Color, rounding to nearest. Out-of-range inputs are
// clamped.
func Premultiply(r, g, b, a float64) Color {
	a = clamp01(a)
	return Color{
		R: to8(clamp01(r) * a),
		G: to8(clamp01(g) * a),
		B: to8(clamp01(b) * a),
		A: to8(a),
	}
}

// SourceOverBGRA composites c over dst through an 8-bit coverage mask.
// dst holds premultiplied pixels in B, G, R, A byte order, four bytes per
// mask entry:
//
//	S = c * m
//	D = S + D * (1 - Sa)
func SourceOverBGRA(dst, mask []byte, c Color) {
	n := len(mask)
	if len(dst)/4 < n {
		n = len(dst) / 4
	}
	for i := 0; i < n; i++ {
		m := mask[i]
		if m == 0 {
			continue
		}
		j := i * 4
		if m == 255 && c.A == 255 {
			dst[j+0] = c.B
			dst[j+1] = c.G
			dst[j+2] = c.R
			dst[j+3] = 255
			continue
		}

		sr, sg, sb, sa := c.R, c.G, c.B, c.A
		if m != 255 {
			sr = mulDiv255(sr, m)
			sg = mulDiv255(sg, m)
			sb = mulDiv255(sb, m)
			sa = mulDiv255(sa, m)
		}
		inv := 255 - sa
		dst[j+0] = addClamp(sb, mulDiv255(dst[j+0], inv))
		dst[j+1] = addClamp(sg, mulDiv255(dst[j+1], inv))
		dst[j+2] = addClamp(sr, mulDiv255(dst[j+2], inv))
		dst[j+3] = addClamp(sa, mulDiv255(dst[j+3], inv))
	}
}

// Threshold replaces every coverage value with 0 or 255, cutting at 50%.
func Threshold(mask []byte) {
	for i, m := range mask {
		if m >= 128 {
			mask[i] = 255
		} else {
			mask[i] = 0
		}
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func to8(v float64) byte {
	return byte(math.Round(v * 255))
}
