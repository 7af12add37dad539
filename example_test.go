package sketch_test

import (
	"fmt"

	"github.com/gogpu/sketch"
)

func Example() {
	c := sketch.NewCanvas(4, 3, sketch.WithLogger(nil))
	c.DrawPolygon([]sketch.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}, {X: 0, Y: 3}},
		sketch.FillColour(sketch.RGB{R: 255}))

	a := c.Array()
	fmt.Println(a.Shape())
	fmt.Println(a.At(0, 0), a.At(3, 0))
	// Output:
	// [3 4 4]
	// [255 0 0 255] [255 255 255 255]
}

func ExampleCanvas_DrawCircle() {
	c := sketch.NewCanvas(21, 21, sketch.WithTransparentBackground(), sketch.WithLogger(nil))
	c.DrawCircle(sketch.Pt(10.5, 10.5), 12,
		sketch.FillColour(sketch.RGB{G: 128}),
		sketch.LineColour(sketch.Black),
		sketch.LineWidth(2),
	)
	fmt.Println(c.Array().At(10, 10))
	// Output:
	// [0 128 0 255]
}
