package sketch

import "log/slog"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// White background, diagnostics on stdout
//	c := sketch.NewCanvas(800, 600)
//
//	// Transparent background, silent
//	c := sketch.NewCanvas(800, 600,
//	    sketch.WithTransparentBackground(),
//	    sketch.WithLogger(nil))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background optional[RGB]
	logger     *slog.Logger
	antialias  bool
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		background: some(White),
		logger:     newStdoutLogger(),
		antialias:  true,
	}
}

// WithBackground fills the new canvas with c. The default is White.
func WithBackground(c RGB) CanvasOption {
	return func(o *canvasOptions) {
		o.background = some(c)
	}
}

// WithTransparentBackground leaves the new canvas fully transparent.
func WithTransparentBackground() CanvasOption {
	return func(o *canvasOptions) {
		o.background = optional[RGB]{}
	}
}

// WithLogger sets the logger for warnings and errors. Pass nil to discard
// all diagnostics.
func WithLogger(l *slog.Logger) CanvasOption {
	return func(o *canvasOptions) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}

// WithAntialias turns edge antialiasing on (the default) or off. Without
// antialiasing a pixel is painted when at least half of it is covered.
func WithAntialias(on bool) CanvasOption {
	return func(o *canvasOptions) {
		o.antialias = on
	}
}

// DrawOption configures a single DrawCircle or DrawPolygon call.
// Options that are not given are absent, not zero: a call without
// FillColour does not fill, while FillColour(Black) fills with black.
type DrawOption func(*style)

// style is the shape request assembled from DrawOptions.
type style struct {
	lineColour optional[RGB]
	colour     optional[RGB]
	lineWidth  optional[float64]
	fillAlpha  float64
	lineAlpha  float64
	segments   int
}

func newStyle(opts []DrawOption) style {
	s := style{
		fillAlpha: 1,
		lineAlpha: 1,
		segments:  DefaultCircleSegments,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// stroked reports whether the outline phase runs.
func (s style) stroked() bool {
	_, ok := s.lineColour.get()
	w, wok := s.lineWidth.get()
	return ok && wok && w > 0
}

// visible reports whether the call is expected to paint anything. It
// mirrors the warning rule: a fill colour, or a non-zero line width.
func (s style) visible() bool {
	if _, ok := s.colour.get(); ok {
		return true
	}
	w, ok := s.lineWidth.get()
	return ok && w != 0
}

// LineColour sets the outline colour. The outline is only drawn together
// with a positive LineWidth.
func LineColour(c RGB) DrawOption {
	return func(s *style) {
		s.lineColour = some(c)
	}
}

// FillColour sets the interior colour.
func FillColour(c RGB) DrawOption {
	return func(s *style) {
		s.colour = some(c)
	}
}

// LineWidth sets the outline width in pixels.
func LineWidth(w float64) DrawOption {
	return func(s *style) {
		s.lineWidth = some(w)
	}
}

// FillAlpha sets the fill opacity in [0, 1]. The default is 1.
func FillAlpha(a float64) DrawOption {
	return func(s *style) {
		s.fillAlpha = a
	}
}

// LineAlpha sets the outline opacity in [0, 1]. The default is 1.
func LineAlpha(a float64) DrawOption {
	return func(s *style) {
		s.lineAlpha = a
	}
}

// CircleSegments sets how many vertices approximate a circle. Values below
// 3 are raised to 3. Ignored by DrawPolygon.
func CircleSegments(n int) DrawOption {
	return func(s *style) {
		s.segments = n
	}
}
