package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/archaeoscan/fieldmap/internal/geo"
	"github.com/archaeoscan/fieldmap/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

type namedCRS struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
}

type featureCollection struct {
	Type     string                `json:"type"`
	CRS      *namedCRS             `json:"crs,omitempty"`
	BBox     []float64             `json:"bbox,omitempty"`
	Features []geom.GeoJSONFeature `json:"features"`
}

func position(c core.Coordinate, srid int) geom.XY {
	if srid == 3857 {
		x, y := geo.WebMercator(c)
		return geom.XY{X: x, Y: y}
	}
	return geom.XY{X: c.Lng, Y: c.Lat}
}

func pointAt(c core.Coordinate, srid int) geom.Point {
	return geom.NewPoint(
		geom.Coordinates{
			XY:   position(c, srid),
			Type: geom.CoordinatesType(geom.DimXY),
		},
	)
}

func featureProperties(o core.FoundObject) map[string]interface{} {
	props := map[string]interface{}{
		"name":         o.Name,
		"type":         string(o.Type),
		"depth":        o.Depth,
		"confidence":   o.Confidence,
		"tier":         o.Tier().String(),
		"description":  o.Description,
		"discoveredAt": o.DiscoveredAt.UTC().Format(time.RFC3339),
	}
	optional := map[string]string{
		"material":  o.Properties.Material,
		"era":       o.Properties.Era,
		"size":      o.Properties.Size,
		"condition": o.Properties.Condition,
	}
	for k, v := range optional {
		if v != "" {
			props[k] = v
		}
	}
	return props
}

// GeoJSON writes objects as a FeatureCollection of points. Feature IDs are
// object IDs and the collection carries a bbox when non-empty.
func GeoJSON(w io.Writer, objects []core.FoundObject, opts Options) error {
	srid := opts.SRID
	if srid == 0 {
		srid = 4326
	}
	if srid != 4326 && srid != 3857 {
		return fmt.Errorf("unsupported srid %d", srid)
	}

	fc := featureCollection{
		Type:     "FeatureCollection",
		Features: make([]geom.GeoJSONFeature, 0, len(objects)),
	}
	if srid == 3857 {
		fc.CRS = &namedCRS{Type: "name", Properties: map[string]string{"name": "EPSG:3857"}}
	}
	if b, ok := core.BoundsOf(objects); ok {
		sw := position(core.Coordinate{Lat: b.South, Lng: b.West}, srid)
		ne := position(core.Coordinate{Lat: b.North, Lng: b.East}, srid)
		fc.BBox = []float64{sw.X, sw.Y, ne.X, ne.Y}
	}

	for _, o := range objects {
		fc.Features = append(fc.Features, geom.GeoJSONFeature{
			Geometry:   pointAt(o.Coordinate(), srid).AsGeometry(),
			ID:         o.ID,
			Properties: featureProperties(o),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("failed to encode geojson: %w", err)
	}
	return nil
}
