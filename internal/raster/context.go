package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/stroke"
)

// deviceTolerance is the flattening tolerance for stroke joins, in pixels.
const deviceTolerance = 0.1

// Point is a position in user space.
type Point struct {
	X, Y float64
}

type subpath struct {
	points []Point
	closed bool
}

// Context draws paths onto a Surface.
type Context struct {
	surface *Surface
	matrix  Matrix

	path []subpath

	source     blend.Color
	lineWidth  float64
	lineCap    stroke.Cap
	lineJoin   stroke.Join
	miterLimit float64
	antialias  bool

	rasterizer *vector.Rasterizer
	mask       *image.Alpha
}

// NewContext binds a new context to s. The matrix starts as the identity,
// the source is opaque black, the line width is 2, caps are butt, joins
// are miter and antialiasing is on.
func NewContext(s *Surface) *Context {
	return &Context{
		surface:    s,
		matrix:     Identity(),
		source:     blend.Color{A: 255},
		lineWidth:  2,
		lineCap:    stroke.CapButt,
		lineJoin:   stroke.JoinMiter,
		miterLimit: 10,
		antialias:  true,
		rasterizer: vector.NewRasterizer(s.width, s.height),
		mask:       image.NewAlpha(image.Rect(0, 0, s.width, s.height)),
	}
}

// Surface returns the target surface.
func (c *Context) Surface() *Surface {
	return c.surface
}

// Matrix returns the current user-to-device transformation.
func (c *Context) Matrix() Matrix {
	return c.matrix
}

// Scale prepends a scaling to the current transformation. Points already
// in the path are not affected.
func (c *Context) Scale(sx, sy float64) {
	c.matrix = c.matrix.Multiply(Scale(sx, sy))
}

// SetAntialias turns edge antialiasing on or off.
func (c *Context) SetAntialias(on bool) {
	c.antialias = on
}

// SetSourceRGBA sets a solid source colour. Channels are straight (not
// premultiplied) and in [0, 1].
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	c.source = blend.Premultiply(r, g, b, a)
}

// SetLineWidth sets the stroke width in user units.
func (c *Context) SetLineWidth(w float64) {
	c.lineWidth = w
}

// LineWidth returns the stroke width in user units.
func (c *Context) LineWidth() float64 {
	return c.lineWidth
}

// SetLineCap sets the cap style for open subpaths.
func (c *Context) SetLineCap(lc stroke.Cap) {
	c.lineCap = lc
}

// SetLineJoin sets the join style.
func (c *Context) SetLineJoin(lj stroke.Join) {
	c.lineJoin = lj
}

// MoveTo begins a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{points: []Point{{X: x, Y: y}}})
}

// LineTo adds a segment to (x, y). Without a current point it behaves
// like MoveTo; after ClosePath it starts a new subpath at the closed
// subpath's first point.
func (c *Context) LineTo(x, y float64) {
	p := Point{X: x, Y: y}
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := &c.path[len(c.path)-1]
	if last.closed {
		c.path = append(c.path, subpath{points: []Point{last.points[0], p}})
		return
	}
	last.points = append(last.points, p)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path[len(c.path)-1].closed = true
}

// NewPath discards the current path.
func (c *Context) NewPath() {
	c.path = c.path[:0]
}

// HasPath reports whether the current path holds any point.
func (c *Context) HasPath() bool {
	return len(c.path) > 0
}

// FillPreserve fills the current path with the source and keeps the path.
// Open subpaths are closed implicitly.
func (c *Context) FillPreserve() {
	if !c.HasPath() {
		return
	}
	z := c.resetRasterizer()
	for _, sp := range c.path {
		ct := contour{start: c.matrix.TransformPoint(sp.points[0])}
		for _, q := range sp.points[1:] {
			ct.lineTo(c.matrix.TransformPoint(q))
		}
		c.addContour(z, &ct)
	}
	c.composite()
}

// Fill fills the current path and clears it.
func (c *Context) Fill() {
	c.FillPreserve()
	c.NewPath()
}

// StrokePreserve strokes the current path with the source and keeps the
// path. The pen is a disc of diameter LineWidth in user space.
func (c *Context) StrokePreserve() {
	if !c.HasPath() || c.lineWidth <= 0 {
		return
	}

	e := stroke.NewExpander(stroke.Style{
		Width:      c.lineWidth,
		Cap:        c.lineCap,
		Join:       c.lineJoin,
		MiterLimit: c.miterLimit,
	})
	if s := c.matrix.maxScale(); s > 0 {
		e.SetTolerance(deviceTolerance / s)
	}
	outline := e.Expand(c.strokeElements())
	if len(outline) == 0 {
		return
	}

	z := c.resetRasterizer()
	var ct *contour
	flush := func() {
		if ct != nil {
			c.addContour(z, ct)
			ct = nil
		}
	}
	for _, el := range outline {
		switch el := el.(type) {
		case stroke.MoveTo:
			flush()
			ct = &contour{start: c.device(el.Point)}
		case stroke.LineTo:
			if ct != nil {
				ct.lineTo(c.device(el.Point))
			}
		case stroke.CubicTo:
			if ct != nil {
				ct.cubicTo(c.device(el.Control1), c.device(el.Control2), c.device(el.Point))
			}
		case stroke.Close:
			flush()
		}
	}
	flush()
	c.composite()
}

// Stroke strokes the current path and clears it.
func (c *Context) Stroke() {
	c.StrokePreserve()
	c.NewPath()
}

func (c *Context) strokeElements() []stroke.Element {
	els := make([]stroke.Element, 0, 16)
	for _, sp := range c.path {
		els = append(els, stroke.MoveTo{Point: stroke.Point(sp.points[0])})
		for _, p := range sp.points[1:] {
			els = append(els, stroke.LineTo{Point: stroke.Point(p)})
		}
		if sp.closed {
			els = append(els, stroke.Close{})
		}
	}
	return els
}

func (c *Context) device(p stroke.Point) Point {
	return c.matrix.TransformPoint(Point(p))
}

// guard is the surface padded by one pixel. Contours reaching past it are
// clipped first so the rasterizer's fixed-point coordinates cannot
// overflow.
func (c *Context) guard() box {
	return box{x0: -1, y0: -1, x1: float64(c.surface.width + 1), y1: float64(c.surface.height + 1)}
}

// addContour feeds one closed device-space ring to z.
func (c *Context) addContour(z *vector.Rasterizer, ct *contour) {
	if len(ct.segs) == 0 || !ct.finite() {
		return
	}

	g := c.guard()
	if ct.within(g) {
		z.MoveTo(float32(ct.start.X), float32(ct.start.Y))
		for _, s := range ct.segs {
			if s.cubic {
				z.CubeTo(float32(s.c1.X), float32(s.c1.Y), float32(s.c2.X), float32(s.c2.Y), float32(s.p.X), float32(s.p.Y))
			} else {
				z.LineTo(float32(s.p.X), float32(s.p.Y))
			}
		}
		z.ClosePath()
		return
	}

	poly := clipPolygon(ct.flatten(flattenTolerance), g)
	if len(poly) < 3 {
		return
	}
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func (c *Context) resetRasterizer() *vector.Rasterizer {
	z := c.rasterizer
	z.Reset(c.surface.width, c.surface.height)
	z.DrawOp = draw.Src
	return z
}

// composite turns the rasterizer's accumulated edges into a coverage mask
// and blends the source through it.
func (c *Context) composite() {
	clear(c.mask.Pix)
	c.rasterizer.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})
	if !c.antialias {
		blend.Threshold(c.mask.Pix)
	}
	blend.SourceOverBGRA(c.surface.data, c.mask.Pix, c.source)
}
