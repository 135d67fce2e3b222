package core

// MapBounds is a geographic bounding box in degrees
type MapBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether c lies inside the box, edges included.
// Boxes crossing the antimeridian are not supported.
func (b MapBounds) Contains(c Coordinate) bool {
	return c.Lat <= b.North && c.Lat >= b.South &&
		c.Lng <= b.East && c.Lng >= b.West
}

// BoundsOf returns the smallest box holding every object.
// The second return is false when objects is empty.
func BoundsOf(objects []FoundObject) (MapBounds, bool) {
	if len(objects) == 0 {
		return MapBounds{}, false
	}
	b := MapBounds{
		North: objects[0].Latitude,
		South: objects[0].Latitude,
		East:  objects[0].Longitude,
		West:  objects[0].Longitude,
	}
	for _, o := range objects[1:] {
		b.North = max(b.North, o.Latitude)
		b.South = min(b.South, o.Latitude)
		b.East = max(b.East, o.Longitude)
		b.West = min(b.West, o.Longitude)
	}
	return b, true
}
