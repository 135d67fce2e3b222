package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/archaeoscan/fieldmap/pkg/core"
	"github.com/wroge/wgs84"
)

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

const earthRadiusMeters = 6371000.0

// CoordinateFromString parses a string in the format "lat,lng".
func CoordinateFromString(coords string) (core.Coordinate, error) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return core.Coordinate{}, ErrInvalidCoordinates
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return core.Coordinate{}, ErrInvalidCoordinates
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return core.Coordinate{}, ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return core.Coordinate{}, ErrInvalidCoordinates
	}
	return core.Coordinate{Lat: lat, Lng: lng}, nil
}

// WebMercator converts a WGS84 coordinate to EPSG:3857 metres.
func WebMercator(c core.Coordinate) (x, y float64) {
	f := wgs84.EPSG().Transform(4326, 3857)
	x, y, _ = f(c.Lng, c.Lat, 0)
	return x, y
}

// HaversineMeters returns the great-circle distance between two coordinates
func HaversineMeters(a, b core.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
