package session

import "github.com/archaeoscan/fieldmap/pkg/core"

// Layer is the basemap label shown on screen. It does not change rendering.
type Layer string

const (
	LayerTerrain   Layer = "terrain"
	LayerSatellite Layer = "satellite"
	LayerMagnetic  Layer = "magnetic"
	LayerDepth     Layer = "depth"
)

var layers = []Layer{LayerTerrain, LayerSatellite, LayerMagnetic, LayerDepth}

// Layer returns the active layer label.
func (s *Session) Layer() Layer {
	return s.layer
}

// NextLayer cycles through the layer labels.
func (s *Session) NextLayer() Layer {
	for i, l := range layers {
		if l == s.layer {
			s.layer = layers[(i+1)%len(layers)]
			return s.layer
		}
	}
	s.layer = LayerTerrain
	return s.layer
}

// Operator is a GPS fix for the person running the survey.
type Operator struct {
	Position core.Coordinate
	Altitude float64 // metres
	Accuracy float64 // metres
}

// DefaultOperator is the simulated fix used until a receiver is attached.
var DefaultOperator = Operator{
	Position: core.Coordinate{Lat: 40.7496, Lng: 14.4847},
	Altitude: 42.3,
	Accuracy: 2.5,
}
