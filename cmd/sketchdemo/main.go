// Command sketchdemo draws a sample scene with the sketch package.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/preview"
)

func main() {
	var (
		width   = flag.Int("width", 600, "image width")
		height  = flag.Int("height", 520, "image height")
		output  = flag.String("output", "demo.png", "output file")
		bg      = flag.String("background", "#ffffff", "background colour")
		show    = flag.Bool("preview", false, "show the result in the terminal")
		verbose = flag.Bool("v", false, "log every shape")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	background, err := sketch.ParseHex(*bg)
	if err != nil {
		logger.Error("bad background", "err", err)
		os.Exit(2)
	}
	if *width <= 0 || *height <= 0 {
		logger.Error("bad size", "width", *width, "height", *height)
		os.Exit(2)
	}

	c := sketch.NewCanvas(*width, *height,
		sketch.WithBackground(background),
		sketch.WithLogger(logger),
	)
	drawScene(c, float64(*width), float64(*height))

	if err := c.SavePNG(*output); err != nil {
		logger.Error("failed to save", "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "path", *output, "width", *width, "height", *height)

	if *show {
		if err := preview.Run(c.Image()); err != nil {
			logger.Error("preview failed", "err", err)
			os.Exit(1)
		}
	}
}

func drawScene(c *sketch.Canvas, w, h float64) {
	// Overlapping translucent circles
	r := math.Min(w, h) / 4
	cx, cy := w/3, h/3
	c.DrawCircle(sketch.Pt(cx, cy), 2*r,
		sketch.FillColour(sketch.RGB{R: 255, G: 76, B: 76}), sketch.FillAlpha(0.8)).
		DrawCircle(sketch.Pt(cx+r*0.8, cy), 2*r,
			sketch.FillColour(sketch.RGB{R: 76, G: 255, B: 76}), sketch.FillAlpha(0.8)).
		DrawCircle(sketch.Pt(cx+r*0.4, cy+r*0.7), 2*r,
			sketch.FillColour(sketch.RGB{R: 76, G: 76, B: 255}), sketch.FillAlpha(0.8))

	// Outlined star
	c.DrawPolygon(star(sketch.Pt(w*0.75, h*0.7), math.Min(w, h)/5, 5),
		sketch.FillColour(sketch.RGB{R: 255, G: 204}),
		sketch.LineColour(sketch.Black),
		sketch.LineWidth(4),
		sketch.LineAlpha(0.6))

	// Hexagon ring outline only
	c.DrawCircle(sketch.Pt(w*0.2, h*0.8), math.Min(w, h)/4,
		sketch.CircleSegments(6),
		sketch.LineColour(sketch.RGB{R: 40, G: 40, B: 120}),
		sketch.LineWidth(6))
}

func star(center sketch.Point, radius float64, spikes int) []sketch.Point {
	pts := make([]sketch.Point, 0, 2*spikes)
	for i := 0; i < 2*spikes; i++ {
		rr := radius
		if i%2 == 1 {
			rr *= 0.45
		}
		a := float64(i)*math.Pi/float64(spikes) - math.Pi/2
		pts = append(pts, sketch.Pt(center.X+rr*math.Cos(a), center.Y+rr*math.Sin(a)))
	}
	return pts
}
