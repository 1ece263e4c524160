// Package blend implements per-channel alpha compositing on 8-bit values.
package blend

import "math"

// Over composites one straight-alpha source channel onto a destination
// channel: dst*(1-a) + src*a with a = alpha/255, rounded to nearest.
//
// Alpha 0 returns dst unchanged and alpha 255 returns src exactly. For any
// other alpha the result can be 1 above a blend that truncates to uint8,
// e.g. Over(0, 3, 128) is 2 where truncation gives 1.
func Over(dst, src, alpha uint8) uint8 {
	switch alpha {
	case 0:
		return dst
	case 255:
		return src
	}
	a := float64(alpha) / 255.0
	v := float64(dst)*(1-a) + float64(src)*a
	return clamp255(math.Round(v))
}

// OverBGR composites a straight-alpha RGB source onto a B, G, R pixel in place.
// px must hold at least 3 bytes.
func OverBGR(px []byte, r, g, b, alpha uint8) {
	if alpha == 0 {
		return
	}
	px[0] = Over(px[0], b, alpha)
	px[1] = Over(px[1], g, alpha)
	px[2] = Over(px[2], r, alpha)
}

// clamp255 clamps v to [0, 255] and converts it to uint8.
func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
