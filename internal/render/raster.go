package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
)

// Raster is a Canvas backed by an in-memory RGBA image.
type Raster struct {
	dc *gg.Context
}

// NewRaster creates a width x height raster canvas.
func NewRaster(width, height int) *Raster {
	return &Raster{dc: gg.NewContext(width, height)}
}

func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *Raster) Fill(c Color) {
	r.dc.SetHexColor(string(c))
	r.dc.Clear()
}

func (r *Raster) Line(x1, y1, x2, y2, width float64, c Color) {
	r.dc.SetHexColor(string(c))
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

func (r *Raster) Circle(x, y, radius, width float64, c Color) {
	r.dc.SetHexColor(string(c))
	r.dc.SetLineWidth(width)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Stroke()
}

func (r *Raster) Disc(x, y, radius float64, c Color) {
	r.dc.SetHexColor(string(c))
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

func (r *Raster) Text(s string, x, y float64, c Color) {
	r.dc.SetHexColor(string(c))
	r.dc.DrawStringAnchored(s, x, y, 0.5, 0)
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png %s: %w", path, err)
	}
	return nil
}
