package sketch

import (
	"math"
	"testing"
)

func TestCirclePoints(t *testing.T) {
	center := Pt(50, 40)
	pts := circlePoints(center, 20, DefaultCircleSegments)
	if len(pts) != 64 {
		t.Fatalf("len = %d, want 64", len(pts))
	}
	if pts[0] != Pt(60, 40) {
		t.Errorf("first vertex = %v, want (60, 40)", pts[0])
	}
	for i, p := range pts {
		if d := math.Hypot(p.X-center.X, p.Y-center.Y); math.Abs(d-10) > 1e-9 {
			t.Errorf("vertex %d at radius %v, want 10", i, d)
		}
	}
	// Angles increase towards +y.
	if pts[1].Y <= center.Y {
		t.Errorf("second vertex %v should lie below the center", pts[1])
	}
}

func TestCirclePointsSegments(t *testing.T) {
	tests := []struct {
		segments, want int
	}{
		{3, 3},
		{2, 3},
		{-5, 3},
		{17, 17},
	}
	for _, tt := range tests {
		if got := len(circlePoints(Pt(0, 0), 4, tt.segments)); got != tt.want {
			t.Errorf("circlePoints(segments=%d) has %d vertices, want %d", tt.segments, got, tt.want)
		}
	}
}

func TestCirclePointsDegenerate(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN()} {
		if pts := circlePoints(Pt(1, 1), d, 64); pts != nil {
			t.Errorf("circlePoints(d=%v) = %v, want nil", d, pts)
		}
	}
}
