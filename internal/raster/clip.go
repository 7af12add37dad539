package raster

import "math"

// flattenTolerance is the maximum distance, in pixels, between a cubic and
// the polyline that replaces it when a contour has to be clipped.
const flattenTolerance = 0.1

// maxCubicSteps bounds the number of lines one cubic is flattened into.
const maxCubicSteps = 1024

// box is an axis-aligned rectangle in device space.
type box struct {
	x0, y0, x1, y1 float64
}

func (b box) contains(p Point) bool {
	return p.X >= b.x0 && p.X <= b.x1 && p.Y >= b.y0 && p.Y <= b.y1
}

// segment is a line to p, or a cubic to p when cubic is set.
type segment struct {
	cubic  bool
	c1, c2 Point
	p      Point
}

// contour is a closed device-space ring.
type contour struct {
	start Point
	segs  []segment
}

func (c *contour) lineTo(p Point) {
	c.segs = append(c.segs, segment{p: p})
}

func (c *contour) cubicTo(c1, c2, p Point) {
	c.segs = append(c.segs, segment{cubic: true, c1: c1, c2: c2, p: p})
}

// within reports whether every point of c, control points included, lies
// in b. A cubic stays inside the hull of its control points.
func (c *contour) within(b box) bool {
	if !b.contains(c.start) {
		return false
	}
	for _, s := range c.segs {
		if !b.contains(s.p) {
			return false
		}
		if s.cubic && (!b.contains(s.c1) || !b.contains(s.c2)) {
			return false
		}
	}
	return true
}

func (c *contour) finite() bool {
	ok := func(p Point) bool {
		return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
	}
	if !ok(c.start) {
		return false
	}
	for _, s := range c.segs {
		if !ok(s.p) || (s.cubic && (!ok(s.c1) || !ok(s.c2))) {
			return false
		}
	}
	return true
}

// flatten returns c as a polygon, replacing cubics by lines.
func (c *contour) flatten(tolerance float64) []Point {
	poly := make([]Point, 0, len(c.segs)+1)
	poly = append(poly, c.start)
	cur := c.start
	for _, s := range c.segs {
		if s.cubic {
			poly = appendCubic(poly, cur, s.c1, s.c2, s.p, tolerance)
		} else {
			poly = append(poly, s.p)
		}
		cur = s.p
	}
	return poly
}

// appendCubic appends the uniform subdivision of the cubic p0..p3, with
// enough steps to keep within tolerance, excluding p0.
func appendCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	ddx := math.Max(math.Abs(p0.X-2*p1.X+p2.X), math.Abs(p1.X-2*p2.X+p3.X))
	ddy := math.Max(math.Abs(p0.Y-2*p1.Y+p2.Y), math.Abs(p1.Y-2*p2.Y+p3.Y))
	n := int(math.Ceil(math.Sqrt(0.75 * math.Hypot(ddx, ddy) / tolerance)))
	n = max(1, min(n, maxCubicSteps))

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		dst = append(dst, Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return dst
}

// clipPolygon clips the closed polygon poly to b, one edge of b at a time
// (Sutherland-Hodgman). Points of b keep their winding number, so non-zero
// filling inside b is unchanged.
func clipPolygon(poly []Point, b box) []Point {
	edges := [4]struct {
		inside    func(Point) bool
		intersect func(s, e Point) Point
	}{
		{
			func(p Point) bool { return p.X >= b.x0 },
			func(s, e Point) Point { return Point{X: b.x0, Y: lerpAt(s.X, s.Y, e.X, e.Y, b.x0)} },
		},
		{
			func(p Point) bool { return p.X <= b.x1 },
			func(s, e Point) Point { return Point{X: b.x1, Y: lerpAt(s.X, s.Y, e.X, e.Y, b.x1)} },
		},
		{
			func(p Point) bool { return p.Y >= b.y0 },
			func(s, e Point) Point { return Point{X: lerpAt(s.Y, s.X, e.Y, e.X, b.y0), Y: b.y0} },
		},
		{
			func(p Point) bool { return p.Y <= b.y1 },
			func(s, e Point) Point { return Point{X: lerpAt(s.Y, s.X, e.Y, e.X, b.y1), Y: b.y1} },
		},
	}

	out := poly
	for _, edge := range edges {
		in := out
		if len(in) == 0 {
			return nil
		}
		out = make([]Point, 0, len(in)+4)
		s := in[len(in)-1]
		for _, e := range in {
			switch sIn, eIn := edge.inside(s), edge.inside(e); {
			case eIn && !sIn:
				out = append(out, edge.intersect(s, e), e)
			case eIn:
				out = append(out, e)
			case sIn:
				out = append(out, edge.intersect(s, e))
			}
			s = e
		}
	}
	return out
}

// lerpAt returns v at u = at on the line through (u0, v0) and (u1, v1).
// The caller guarantees u0 != u1.
func lerpAt(u0, v0, u1, v1, at float64) float64 {
	return v0 + (at-u0)/(u1-u0)*(v1-v0)
}
