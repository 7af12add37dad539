package stroke

import "math"

// Point is a position in the expander's input space.
type Point struct {
	X, Y float64
}

// Add offsets the point by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 is a displacement.
type Vec2 struct {
	X, Y float64
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Cap is the shape drawn at the ends of open subpaths.
type Cap int

const (
	// CapButt ends the stroke flush with the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half disc of radius width/2.
	CapRound
	// CapSquare extends the stroke by width/2 past the endpoint.
	CapSquare
)

// Join is the shape drawn where two segments meet.
type Join int

const (
	// JoinMiter extends the outer edges until they meet, up to MiterLimit.
	JoinMiter Join = iota
	// JoinRound fills the corner with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// Style describes the pen.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle matches the defaults of most 2D APIs: width 1, butt caps,
// miter joins with a limit of 10.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10,
	}
}

// Element is one command of a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

// LineTo adds a straight segment.
type LineTo struct{ Point Point }

// CubicTo adds a cubic Bezier segment. Only produced, never consumed.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// Expander turns polylines into stroke outlines.
// An Expander is not safe for concurrent use.
type Expander struct {
	style     Style
	tolerance float64

	right *outline
	left  *outline
	out   *outline

	startPt   Point
	startTan  Vec2
	startNorm Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2
	moved     bool

	joinThresh float64
}

// NewExpander returns an expander for the given pen.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the distance below which a change of direction is too
// small to need a join. Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the fill outline of the stroked input.
// CubicTo elements in the input are ignored.
func (e *Expander) Expand(elements []Element) []Element {
	e.reset()
	if e.style.Width <= 0 {
		return nil
	}

	for _, el := range elements {
		switch el := el.(type) {
		case MoveTo:
			e.finishOpen()
			e.startPt = el.Point
			e.lastPt = el.Point
			e.moved = true
		case LineTo:
			if !e.moved {
				e.startPt = el.Point
				e.lastPt = el.Point
				e.moved = true
				continue
			}
			e.segment(el.Point)
		case Close:
			if e.lastPt != e.startPt {
				e.segment(e.startPt)
			}
			e.finishClosed()
		}
	}

	e.finishOpen()
	return e.out.elements
}

func (e *Expander) reset() {
	e.right = newOutline()
	e.left = newOutline()
	e.out = newOutline()
	e.startPt, e.lastPt = Point{}, Point{}
	e.startTan, e.startNorm = Vec2{}, Vec2{}
	e.lastTan, e.lastNorm = Vec2{}, Vec2{}
	e.moved = false
	if e.style.Width > 0 {
		e.joinThresh = 2 * e.tolerance / e.style.Width
	}
}

// normal returns the left-hand normal of tan with length width/2.
func (e *Expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(0.5 * e.style.Width / tan.Length())
}

func (e *Expander) segment(p1 Point) {
	if p1 == e.lastPt {
		return
	}
	tan := p1.Sub(e.lastPt)
	norm := e.normal(tan)

	if e.right.empty() {
		e.right.moveTo(e.lastPt.Add(norm.Neg()))
		e.left.moveTo(e.lastPt.Add(norm))
		e.startTan = tan
		e.startNorm = norm
	} else {
		e.join(e.lastPt, tan, norm)
	}

	e.right.lineTo(p1.Add(norm.Neg()))
	e.left.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastTan = tan
	e.lastNorm = norm
}

// join connects the previous segment (ending at p0 with e.lastTan) to a
// new one leaving p0 along tan.
func (e *Expander) join(p0 Point, tan, norm Vec2) {
	cross := e.lastTan.Cross(tan)
	dot := e.lastTan.Dot(tan)
	hypot := math.Hypot(cross, dot)

	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.right.lineTo(p0.Add(norm.Neg()))
		e.left.lineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case JoinRound:
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			// Turning left: the right-hand side is outside.
			e.arc(e.right, p0, e.lastNorm.Neg(), angle)
			e.left.lineTo(p0.Add(norm))
		} else {
			e.arc(e.left, p0, e.lastNorm, angle)
			e.right.lineTo(p0.Add(norm.Neg()))
		}
	case JoinMiter:
		e.miter(p0, tan, norm, cross, dot, hypot)
	default:
		e.right.lineTo(p0.Add(norm.Neg()))
		e.left.lineTo(p0.Add(norm))
	}
}

func (e *Expander) miter(p0 Point, tan, norm Vec2, cross, dot, hypot float64) {
	limit := e.style.MiterLimit * e.style.MiterLimit
	if cross != 0 && 2*hypot < (hypot+dot)*limit {
		if cross > 0 {
			from := p0.Add(e.lastNorm.Neg())
			to := p0.Add(norm.Neg())
			h := e.lastTan.Cross(to.Sub(from)) / cross
			e.right.lineTo(to.Add(tan.Scale(-h)))
		} else {
			from := p0.Add(e.lastNorm)
			to := p0.Add(norm)
			h := e.lastTan.Cross(to.Sub(from)) / cross
			e.left.lineTo(to.Add(tan.Scale(-h)))
		}
	}
	e.right.lineTo(p0.Add(norm.Neg()))
	e.left.lineTo(p0.Add(norm))
}

func (e *Expander) finishOpen() {
	defer e.clearSubpath()
	if e.right.empty() {
		e.dot()
		return
	}

	e.out.append(e.right)
	e.cap(e.lastPt, e.lastNorm.Neg())
	e.out.appendReversed(e.left)
	e.cap(e.startPt, e.startNorm)
	e.out.close()
}

func (e *Expander) finishClosed() {
	defer e.clearSubpath()
	if e.right.empty() {
		e.dot()
		return
	}

	e.join(e.startPt, e.startTan, e.startNorm)

	e.out.append(e.right)
	e.out.close()
	e.out.moveTo(e.left.current)
	e.out.appendReversed(e.left)
	e.out.close()
}

// dot emits a full disc for a zero-length subpath with round caps.
func (e *Expander) dot() {
	if !e.moved || e.style.Cap != CapRound {
		return
	}
	r := Vec2{X: 0.5 * e.style.Width}
	e.out.moveTo(e.startPt.Add(r))
	e.arc(e.out, e.startPt, r, 2*math.Pi)
	e.out.close()
}

func (e *Expander) clearSubpath() {
	e.right = newOutline()
	e.left = newOutline()
	e.moved = false
}

// cap draws from center+norm around the end to center-norm.
func (e *Expander) cap(center Point, norm Vec2) {
	switch e.style.Cap {
	case CapRound:
		e.arc(e.out, center, norm, math.Pi)
	case CapSquare:
		ext := norm.Perp()
		e.out.lineTo(center.Add(norm).Add(ext))
		e.out.lineTo(center.Add(norm.Neg()).Add(ext))
		e.out.lineTo(center.Add(norm.Neg()))
	default:
		e.out.lineTo(center.Add(norm.Neg()))
	}
}

// arc appends a circular arc around center, starting at center+from and
// sweeping angle radians (negative sweeps clockwise in a y-up frame).
// The outline's current point must be center+from.
func (e *Expander) arc(out *outline, center Point, from Vec2, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	a := from.Angle()
	radius := from.Length()
	for i := 0; i < n; i++ {
		out.arcSegment(center, radius, a, a+step)
		a += step
	}
}

// outline accumulates path elements.
type outline struct {
	elements []Element
	current  Point
}

func newOutline() *outline {
	return &outline{elements: make([]Element, 0, 32)}
}

func (o *outline) empty() bool {
	return len(o.elements) == 0
}

func (o *outline) moveTo(p Point) {
	o.elements = append(o.elements, MoveTo{Point: p})
	o.current = p
}

func (o *outline) lineTo(p Point) {
	o.elements = append(o.elements, LineTo{Point: p})
	o.current = p
}

func (o *outline) cubicTo(c1, c2, p Point) {
	o.elements = append(o.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
	o.current = p
}

func (o *outline) close() {
	o.elements = append(o.elements, Close{})
}

func (o *outline) append(other *outline) {
	o.elements = append(o.elements, other.elements...)
	o.current = other.current
}

// appendReversed walks other backwards from its last point to its first,
// skipping its leading MoveTo.
func (o *outline) appendReversed(other *outline) {
	els := other.elements
	for i := len(els) - 1; i >= 1; i-- {
		prev := endPoint(els[i-1])
		switch el := els[i].(type) {
		case LineTo:
			o.lineTo(prev)
		case CubicTo:
			o.cubicTo(el.Control2, el.Control1, prev)
		}
	}
}

// arcSegment appends one cubic approximating the arc from a0 to a1
// (|a1-a0| <= pi/2).
func (o *outline) arcSegment(center Point, radius, a0, a1 float64) {
	da := a1 - a0
	t := math.Tan(da / 2)
	k := math.Sin(da) * (math.Sqrt(4+3*t*t) - 1) / 3

	sin0, cos0 := math.Sincos(a0)
	sin1, cos1 := math.Sincos(a1)

	p0 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p1 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}
	c1 := Point{X: p0.X - k*radius*sin0, Y: p0.Y + k*radius*cos0}
	c2 := Point{X: p1.X + k*radius*sin1, Y: p1.Y - k*radius*cos1}

	o.cubicTo(c1, c2, p1)
}

func endPoint(el Element) Point {
	switch el := el.(type) {
	case MoveTo:
		return el.Point
	case LineTo:
		return el.Point
	case CubicTo:
		return el.Point
	}
	return Point{}
}
