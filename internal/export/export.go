// Package export writes the survey catalog in geographic interchange formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/archaeoscan/fieldmap/pkg/core"
)

// ErrUnknownFormat is returned for an unsupported export format
var ErrUnknownFormat = errors.New("unknown export format")

// Format names.
const (
	FormatGeoJSON = "geojson"
	FormatKML     = "kml"
)

// Options tunes an export.
type Options struct {
	// SRID is 4326 (degrees, default) or 3857 (Web Mercator metres). KML
	// is always 4326.
	SRID int
}

// Write exports objects in the named format.
func Write(w io.Writer, format string, objects []core.FoundObject, opts Options) error {
	switch strings.ToLower(format) {
	case FormatGeoJSON, "json":
		return GeoJSON(w, objects, opts)
	case FormatKML:
		return KML(w, objects)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	if strings.ToLower(format) == FormatKML {
		return ".kml"
	}
	return ".geojson"
}
