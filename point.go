package sketch

import "math"

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DefaultCircleSegments is the number of vertices used for a circle: 16 per
// quadrant.
const DefaultCircleSegments = 64

// circlePoints returns the vertices of a regular polygon inscribed in the
// circle of the given diameter, starting at angle 0 and turning towards +y.
// A non-positive diameter yields no points.
func circlePoints(center Point, diameter float64, segments int) []Point {
	r := diameter / 2
	if !(r > 0) {
		return nil
	}
	if segments < 3 {
		segments = 3
	}

	pts := make([]Point, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = Point{X: center.X + r*cos, Y: center.Y + r*sin}
	}
	return pts
}
