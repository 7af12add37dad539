package raster

import (
	"fmt"
	"image"
)

// Surface is a premultiplied pixel buffer, 4 bytes per pixel in B, G, R, A
// order, rows packed without padding.
type Surface struct {
	width  int
	height int
	data   []byte
}

// NewSurface allocates a transparent surface. It panics if either
// dimension is not positive.
func NewSurface(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: invalid surface size %dx%d", width, height))
	}
	return &Surface{
		width:  width,
		height: height,
		data:   make([]byte, width*height*4),
	}
}

// Width returns the width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int {
	return s.width * 4
}

// Data returns the raw BGRA bytes. The slice aliases the surface.
func (s *Surface) Data() []byte {
	return s.data
}

// RGBA returns a copy of the surface as an *image.RGBA, swapping the blue
// and red channels. Values stay premultiplied, which is what image.RGBA
// expects.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	src, dst := s.data, img.Pix
	for i := 0; i < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
	return img
}
