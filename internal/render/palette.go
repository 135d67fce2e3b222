package render

import "github.com/archaeoscan/fieldmap/pkg/core"

const (
	Background Color = "#0f1419"
	GridLine   Color = "#1a1a1a"
	Contour    Color = "#1e293b"
	Label      Color = "#ffffff"
	Crosshair  Color = "#ef4444"

	Amber Color = "#f59e0b"
	Blue  Color = "#3b82f6"
	Red   Color = "#ef4444"
	Green Color = "#10b981"
	Gray  Color = "#6b7280"
)

// TypeColor returns the marker fill for an object type. Unknown types are gray.
func TypeColor(t core.ObjectType) Color {
	switch t {
	case core.Artifact:
		return Amber
	case core.Structure:
		return Blue
	case core.Anomaly:
		return Red
	case core.Organic:
		return Green
	default:
		return Gray
	}
}

// TierColor returns the confidence ring colour.
func TierColor(t core.ConfidenceTier) Color {
	switch t {
	case core.TierSuccess:
		return Green
	case core.TierWarning:
		return Amber
	default:
		return Red
	}
}
