package session

import (
	"fmt"
	"strconv"

	"github.com/archaeoscan/fieldmap/internal/geo"
	"github.com/archaeoscan/fieldmap/pkg/core"
)

// Detail is the metadata panel for the selected object.
type Detail struct {
	ID          string
	Name        string
	Description string
	Type        string
	Depth       string
	Confidence  string
	Tier        core.ConfidenceTier
	Material    string
	Era         string
	Size        string
	Condition   string
	Discovered  string
	Distance    string
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DetailOf builds the panel for obj as seen from op.
func DetailOf(obj core.FoundObject, op Operator) Detail {
	return Detail{
		ID:          obj.ID,
		Name:        obj.Name,
		Description: obj.Description,
		Type:        string(obj.Type),
		Depth:       formatNumber(obj.Depth) + " m",
		Confidence:  formatNumber(obj.Confidence) + "%",
		Tier:        obj.Tier(),
		Material:    orUnknown(obj.Properties.Material),
		Era:         orUnknown(obj.Properties.Era),
		Size:        orUnknown(obj.Properties.Size),
		Condition:   orUnknown(obj.Properties.Condition),
		Discovered:  obj.DiscoveredAt.Format("2006-01-02"),
		Distance:    fmt.Sprintf("%.1f m", geo.HaversineMeters(op.Position, obj.Coordinate())),
	}
}

// Detail returns the panel for the current selection.
func (s *Session) Detail() (Detail, bool) {
	obj, ok := s.Selected()
	if !ok {
		return Detail{}, false
	}
	return DetailOf(obj, s.operator), true
}

// Fields returns label/value pairs in display order.
func (d Detail) Fields() [][2]string {
	return [][2]string{
		{"ID", d.ID},
		{"Type", d.Type},
		{"Depth", d.Depth},
		{"Confidence", d.Confidence},
		{"Material", d.Material},
		{"Era", d.Era},
		{"Size", d.Size},
		{"Condition", d.Condition},
		{"Discovered", d.Discovered},
		{"Distance", d.Distance},
	}
}
