// Package blend composites solid colours onto premultiplied BGRA pixels.
//
// The div255 helpers avoid integer division with shifts and adds. mulDiv255
// rounds to nearest, so multiplying by 255 is the identity and full
// coverage of an opaque colour writes the colour unchanged.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// mulDiv255 returns round(a*b/255).
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
