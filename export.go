package sketch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"
)

// createFile opens the destination of SavePNG.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path) //nolint:gosec // path is user-provided intentionally
}

// SavePNG writes the canvas to path as a PNG file.
//
// A path that does not end in ".png" is rejected: the problem is logged,
// nothing is written and SavePNG returns nil. Errors creating, encoding or
// closing the file are returned; a file that could not be fully written is
// removed.
func (c *Canvas) SavePNG(path string) error {
	if !strings.HasSuffix(path, ".png") {
		c.logger.Error(msgInvalidPath, "path", path)
		return nil
	}

	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("sketch: save png: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("sketch: save png: %w", err)
	}
	return nil
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("sketch: encode png: %w", err)
	}
	return nil
}

// Image returns a copy of the canvas in RGBA order. Like every
// *image.RGBA, the colour channels are premultiplied by alpha.
func (c *Canvas) Image() *image.RGBA {
	return c.ctx.Surface().RGBA()
}

// PixelArray is a row-major (height, width, 4) array of RGBA bytes.
type PixelArray struct {
	Width  int
	Height int
	Pix    []uint8
}

// Shape returns (height, width, channels).
func (a PixelArray) Shape() [3]int {
	return [3]int{a.Height, a.Width, 4}
}

// At returns the RGBA bytes of the pixel at column x, row y.
func (a PixelArray) At(x, y int) [4]uint8 {
	i := (y*a.Width + x) * 4
	return [4]uint8{a.Pix[i], a.Pix[i+1], a.Pix[i+2], a.Pix[i+3]}
}

// Array returns a copy of the canvas pixels as a PixelArray, with the same
// premultiplied values as Image.
func (c *Canvas) Array() PixelArray {
	img := c.Image()
	return PixelArray{
		Width:  c.width,
		Height: c.height,
		Pix:    img.Pix,
	}
}
