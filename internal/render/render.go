package render

import (
	"github.com/archaeoscan/fieldmap/internal/geo"
	"github.com/archaeoscan/fieldmap/pkg/core"
)

// Marker and chrome geometry in pixels.
const (
	GridPitch       = 50
	MarkerRadius    = 8
	RingRadius      = 12
	RingWidth       = 2
	LabelOffset     = 15
	CrosshairHalf   = 10
	CrosshairWidth  = 2
	contourBase     = 50
	contourStep     = 30
	contourCount    = 5
	chromeLineWidth = 1
)

// State is the part of the view the renderer reads.
type State struct {
	Center   core.Coordinate
	Zoom     int
	ShowGrid bool
}

// Stats summarises one render pass.
type Stats struct {
	Drawn  int
	Culled int
}

// Render draws objects onto c in layers: background, grid, contour rings,
// markers in catalog order, crosshair. Each call repaints the full surface.
// A nil canvas or one with no area is left untouched.
func Render(c Canvas, objects []core.FoundObject, st State) Stats {
	var stats Stats
	if c == nil {
		return stats
	}
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return stats
	}
	width, height := float64(w), float64(h)
	midX, midY := width/2, height/2

	c.Fill(Background)

	if st.ShowGrid {
		for x := 0; x < w; x += GridPitch {
			c.Line(float64(x), 0, float64(x), height, chromeLineWidth, GridLine)
		}
		for y := 0; y < h; y += GridPitch {
			c.Line(0, float64(y), width, float64(y), chromeLineWidth, GridLine)
		}
	}

	for i := 0; i < contourCount; i++ {
		c.Circle(midX, midY, float64(contourBase+i*contourStep), chromeLineWidth, Contour)
	}

	for _, o := range objects {
		p := geo.Project(o.Coordinate(), st.Center, st.Zoom, width, height)
		if !geo.InSurface(p, width, height) {
			stats.Culled++
			continue
		}
		c.Disc(p.X, p.Y, MarkerRadius, TypeColor(o.Type))
		c.Circle(p.X, p.Y, RingRadius, RingWidth, TierColor(o.Tier()))
		c.Text(o.ID, p.X, p.Y-LabelOffset, Label)
		stats.Drawn++
	}

	c.Line(midX-CrosshairHalf, midY, midX+CrosshairHalf, midY, CrosshairWidth, Crosshair)
	c.Line(midX, midY-CrosshairHalf, midX, midY+CrosshairHalf, CrosshairWidth, Crosshair)

	return stats
}
