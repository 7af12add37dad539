// Package stroke converts stroked polylines into fill outlines.
//
// A stroke is turned into a path that can be filled with the non-zero
// winding rule:
//   - the right-hand offset (at -width/2 along the normal) runs forward
//   - the left-hand offset (at +width/2) is appended in reverse
//   - caps join the two offsets at the ends of open subpaths
//   - joins connect consecutive segments
//
// Closed subpaths produce two rings of opposite orientation, so the area
// enclosed by the inner ring has a winding number of zero and stays empty.
//
// Round joins and caps are emitted as cubic Bezier arcs of at most 90
// degrees each. The expander works in whatever space its input is in; the
// caller transforms the outline afterwards, which turns a circular pen into
// an elliptical one under a non-uniform scale.
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Style{
//	    Width: 0.02,
//	    Cap:   stroke.CapRound,
//	    Join:  stroke.JoinRound,
//	})
//	e.SetTolerance(0.001)
//	outline := e.Expand([]stroke.Element{
//	    stroke.MoveTo{Point: stroke.Point{X: 0.1, Y: 0.1}},
//	    stroke.LineTo{Point: stroke.Point{X: 0.9, Y: 0.1}},
//	    stroke.LineTo{Point: stroke.Point{X: 0.5, Y: 0.8}},
//	    stroke.Close{},
//	})
package stroke
