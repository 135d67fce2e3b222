// Package render draws the survey map onto a Canvas.
package render

// Color is a "#rrggbb" hex colour.
type Color string

// Canvas is a drawing surface measured in pixels, origin top-left.
type Canvas interface {
	Size() (width, height int)
	// Fill paints the whole surface.
	Fill(c Color)
	Line(x1, y1, x2, y2, width float64, c Color)
	// Circle strokes a circle outline.
	Circle(x, y, r, width float64, c Color)
	// Disc fills a circle.
	Disc(x, y, r float64, c Color)
	// Text draws s horizontally centred on x with its baseline at y.
	Text(s string, x, y float64, c Color)
}
