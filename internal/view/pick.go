package view

import (
	"fmt"
	"strings"

	"github.com/archaeoscan/fieldmap/internal/geo"
	"github.com/archaeoscan/fieldmap/pkg/core"
)

// PickPolicy decides which candidate wins when several markers lie under
// the pointer.
type PickPolicy int

const (
	// PickNearest selects the candidate closest to the pointer. Equal
	// distances go to the later object, which is drawn on top.
	PickNearest PickPolicy = iota
	// PickLastMatch selects the last candidate in catalog order regardless
	// of distance. The final selection matches iterate-and-overwrite, but
	// the selection callback fires once with the winner rather than once
	// per candidate.
	PickLastMatch
)

// ParsePickPolicy accepts "nearest" or "last".
func ParsePickPolicy(s string) (PickPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return PickNearest, nil
	case "last", "lastmatch":
		return PickLastMatch, nil
	default:
		return PickNearest, fmt.Errorf("unknown pick policy: %s", s)
	}
}

func (p PickPolicy) String() string {
	if p == PickLastMatch {
		return "last"
	}
	return "nearest"
}

// Pick returns the index of the object under the pointer at (x, y), or -1.
// Only objects whose projection falls inside the surface are candidates,
// and the projection is the same one the renderer uses.
func Pick(x, y float64, objects []core.FoundObject, st State, width, height float64, policy PickPolicy) int {
	pointer := geo.Point{X: x, Y: y}
	best := -1
	bestDist := 0.0
	for i, o := range objects {
		p := geo.Project(o.Coordinate(), st.Center, st.Zoom, width, height)
		if !geo.InSurface(p, width, height) {
			continue
		}
		d := p.Dist(pointer)
		if d > HitRadius {
			continue
		}
		if policy == PickLastMatch || best < 0 || d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
