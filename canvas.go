package sketch

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/sketch/internal/raster"
	"github.com/gogpu/sketch/internal/stroke"
)

// Canvas is a fixed-size drawing surface.
//
// A Canvas owns its pixel buffer and backend context; nothing is shared
// between canvases. Draw calls mutate the canvas in place and return it so
// calls can be chained. Export calls only read. A Canvas is not safe for
// concurrent use.
type Canvas struct {
	width  int
	height int
	ctx    *raster.Context
	logger *slog.Logger
}

// NewCanvas creates a width×height canvas. Unless
// WithTransparentBackground is given, the canvas is filled with the
// background colour (White by default). It panics if either dimension is
// not positive.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("sketch: invalid canvas size %dx%d", width, height))
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ctx := raster.NewContext(raster.NewSurface(width, height))
	ctx.SetAntialias(options.antialias)
	ctx.Scale(float64(width), float64(height))

	c := &Canvas{
		width:  width,
		height: height,
		ctx:    ctx,
		logger: options.logger,
	}
	if bg, ok := options.background.get(); ok {
		c.drawBackground(bg)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// DrawCircle draws a circle of the given diameter around center.
func (c *Canvas) DrawCircle(center Point, width float64, opts ...DrawOption) *Canvas {
	s := newStyle(opts)
	return c.draw("circle", circlePoints(center, width, s.segments), s)
}

// DrawPolygon draws the polygon through points. The last point is joined
// back to the first.
func (c *Canvas) DrawPolygon(points []Point, opts ...DrawOption) *Canvas {
	return c.draw("polygon", points, newStyle(opts))
}

func (c *Canvas) drawBackground(bg RGB) {
	w, h := float64(c.width), float64(c.height)
	c.DrawPolygon([]Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}, FillColour(bg))
}

func (c *Canvas) draw(shape string, points []Point, s style) *Canvas {
	if len(points) == 0 {
		c.logger.Warn(msgNoShape, "shape", shape, "points", 0)
		return c
	}
	defer c.ctx.NewPath()

	c.trace(points)
	c.strokePath(s)
	c.fillPath(s)

	if !s.visible() {
		c.logger.Warn(msgNoShape, "shape", shape)
		return c
	}
	c.logger.Debug("shape drawn", "shape", shape, "points", len(points))
	return c
}

func (c *Canvas) trace(points []Point) {
	c.ctx.MoveTo(c.normalize(points[0]))
	for _, p := range points[1:] {
		c.ctx.LineTo(c.normalize(p))
	}
	c.ctx.ClosePath()
}

func (c *Canvas) strokePath(s style) {
	if !s.stroked() {
		return
	}
	lc, _ := s.lineColour.get()
	lw, _ := s.lineWidth.get()

	r, g, b := lc.unit()
	c.ctx.SetSourceRGBA(r, g, b, s.lineAlpha)
	c.ctx.SetLineWidth(lw / float64(c.width))
	c.ctx.SetLineCap(stroke.CapRound)
	c.ctx.SetLineJoin(stroke.JoinRound)
	c.ctx.StrokePreserve()
}

func (c *Canvas) fillPath(s style) {
	fc, ok := s.colour.get()
	if !ok {
		return
	}
	r, g, b := fc.unit()
	c.ctx.SetSourceRGBA(r, g, b, s.fillAlpha)
	c.ctx.Fill()
}

// normalize maps a pixel position into the unit square.
func (c *Canvas) normalize(p Point) (x, y float64) {
	return p.X / float64(c.width), p.Y / float64(c.height)
}
