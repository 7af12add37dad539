package sketch

import "fmt"

// RGB is an opaque colour with 8-bit channels. Opacity is given per draw
// call with FillAlpha and LineAlpha.
type RGB struct {
	R, G, B uint8
}

// Common colours.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{}
)

// unit returns the channels scaled to [0, 1].
func (c RGB) unit() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// String returns the colour as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rgb", "rgb", "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [6]byte
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			v[2*i], v[2*i+1] = s[i], s[i]
		}
	case 6:
		copy(v[:], s)
	default:
		return RGB{}, fmt.Errorf("sketch: invalid hex colour %q", s)
	}

	var out [3]uint8
	for i := range out {
		hi, ok1 := hexDigit(v[2*i])
		lo, ok2 := hexDigit(v[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("sketch: invalid hex colour %q", s)
		}
		out[i] = hi<<4 | lo
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// optional holds a value that may be absent.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}
