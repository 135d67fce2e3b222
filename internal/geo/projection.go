package geo

import (
	"math"

	"github.com/archaeoscan/fieldmap/pkg/core"
)

const (
	// MetersPerDegree is the length of one degree of latitude at the equator.
	MetersPerDegree = 111320.0
	// TileSize is the web-map tile edge in pixels.
	TileSize = 256.0
)

// Point is a position on the drawing surface in pixels, origin top-left
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Scale returns pixels per degree at the given zoom level.
func Scale(zoom int) float64 {
	return MetersPerDegree * math.Pow(2, float64(zoom)) / TileSize
}

// Project maps c onto a width x height surface centred on center.
// The longitude delta is shrunk by cos(center latitude); this is a local
// flat-earth approximation and is not valid over large areas or near poles.
// Results are not clamped to the surface.
func Project(c, center core.Coordinate, zoom int, width, height float64) Point {
	scale := Scale(zoom)
	cosLat := math.Cos(center.Lat * math.Pi / 180)
	return Point{
		X: (c.Lng-center.Lng)*cosLat*scale + width/2,
		Y: (center.Lat-c.Lat)*scale + height/2,
	}
}

// Unproject is the inverse of Project.
func Unproject(p Point, center core.Coordinate, zoom int, width, height float64) core.Coordinate {
	scale := Scale(zoom)
	cosLat := math.Cos(center.Lat * math.Pi / 180)

	c := core.Coordinate{
		Lat: center.Lat - (p.Y-height/2)/scale,
		Lng: center.Lng,
	}
	// at a pole every longitude projects to the same column
	if math.Abs(cosLat) > 1e-12 {
		c.Lng = center.Lng + (p.X-width/2)/(cosLat*scale)
	}
	return c
}

// InSurface reports whether p falls inside [0,width] x [0,height].
func InSurface(p Point, width, height float64) bool {
	return p.X >= 0 && p.X <= width && p.Y >= 0 && p.Y <= height
}
