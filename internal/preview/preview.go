// Package preview shows an image in a terminal.
//
// Each terminal cell holds two vertically stacked pixels: the upper
// half-block glyph is painted in the foreground colour and the lower half
// shows the background colour. Pixels are shown as stored, so translucent
// premultiplied pixels appear composited over black.
package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

const upperHalf = '▀'

// Draw paints img onto screen, scaled to fit while keeping its aspect
// ratio, and shows the result. Cells outside the image are cleared.
func Draw(screen tcell.Screen, img image.Image) {
	screen.Clear()
	cols, rows := screen.Size()
	fit := fitRect(img.Bounds(), cols, rows*2)
	if fit.Empty() {
		screen.Show()
		return
	}

	px := image.NewRGBA(fit)
	xdraw.ApproxBiLinear.Scale(px, fit, img, img.Bounds(), xdraw.Src, nil)

	for y := 0; y < fit.Dy(); y += 2 {
		for x := 0; x < fit.Dx(); x++ {
			top := px.RGBAAt(x, y)
			bottom := top
			if y+1 < fit.Dy() {
				bottom = px.RGBAAt(x, y+1)
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			screen.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
	screen.Show()
}

// Run opens the terminal, shows img and waits until the user presses
// Escape, q or Ctrl-C. The image is redrawn when the terminal is resized.
func Run(img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()

	Draw(screen, img)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, img)
		case *tcell.EventKey:
			if quit(ev) {
				return nil
			}
		}
	}
}

func quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// fitRect returns the largest rectangle at the origin, no bigger than
// w×h, with the aspect ratio of src.
func fitRect(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	dw, dh := w, sh*w/sw
	if dh > h {
		dw, dh = sw*h/sh, h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	return image.Rect(0, 0, dw, dh)
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
