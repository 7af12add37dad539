// Package sketch draws antialiased circles and polygons onto an in-memory
// canvas and exports the result as PNG, image.Image or a flat pixel array.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	c := sketch.NewCanvas(400, 300) // white background
//
//	c.DrawPolygon([]sketch.Point{{X: 20, Y: 20}, {X: 380, Y: 40}, {X: 200, Y: 280}},
//	    sketch.FillColour(sketch.RGB{R: 30, G: 144, B: 255}),
//	).DrawCircle(sketch.Pt(200, 150), 120,
//	    sketch.FillColour(sketch.RGB{R: 255, G: 99, B: 71}),
//	    sketch.FillAlpha(0.6),
//	    sketch.LineColour(sketch.Black),
//	    sketch.LineWidth(4),
//	)
//
//	if err := c.SavePNG("out.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinates
//
// All points and sizes are in pixels with the origin at the top-left
// corner. Internally the canvas works in a unit square: x is divided by
// the canvas width and y by the canvas height, and the backend scales
// back by (width, height). Line widths are divided by the width only, so
// on a canvas that is not square the pen is an ellipse: horizontal strokes
// are thinner than vertical ones when the canvas is wider than tall.
//
// # Shapes
//
// A draw call traces the points, closes the path, strokes it when both a
// line colour and a positive line width are given, then fills it when a
// fill colour is given. Later calls paint over earlier ones. A call that
// would draw nothing visible logs a warning and returns the canvas
// unchanged.
//
// Circles are regular polygons with DefaultCircleSegments vertices unless
// CircleSegments says otherwise.
//
// # Diagnostics
//
// Warnings and errors go through log/slog. By default a Canvas writes them
// as text to standard output; use WithLogger to redirect or silence them.
package sketch
