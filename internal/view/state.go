// Package view owns the interactive map state and turns pointer clicks
// into object selections.
package view

import (
	"github.com/archaeoscan/fieldmap/internal/render"
	"github.com/archaeoscan/fieldmap/pkg/core"
)

const (
	MinZoom     = 1
	MaxZoom     = 20
	DefaultZoom = 15

	// HitRadius matches the confidence ring, the widest part of a marker.
	HitRadius = render.RingRadius
)

// DefaultCenter is the survey site origin used on start and by ResetCenter.
var DefaultCenter = core.Coordinate{Lat: 40.7496, Lng: 14.4847}

// State is the mutable view of the map.
type State struct {
	Zoom     int
	Center   core.Coordinate
	Selected *core.FoundObject
	ShowGrid bool
}

// DefaultState returns the state a freshly mounted map starts with.
func DefaultState() State {
	return State{
		Zoom:     DefaultZoom,
		Center:   DefaultCenter,
		ShowGrid: true,
	}
}

// RenderState returns the subset of s the renderer needs.
func (s State) RenderState() render.State {
	return render.State{Center: s.Center, Zoom: s.Zoom, ShowGrid: s.ShowGrid}
}

func clampZoom(z int) int {
	return min(max(z, MinZoom), MaxZoom)
}
