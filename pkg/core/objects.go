package core

import (
	"errors"
	"time"
)

// ErrUnknownObjectType is returned when a type name is outside the known set
var ErrUnknownObjectType = errors.New("unknown object type")

// ObjectType classifies a survey finding. It drives the marker colour.
type ObjectType string

const (
	Artifact  ObjectType = "artifact"
	Structure ObjectType = "structure"
	Anomaly   ObjectType = "anomaly"
	Organic   ObjectType = "organic"
)

// AllObjectTypes returns the known types in display order.
func AllObjectTypes() []ObjectType {
	return []ObjectType{Artifact, Structure, Anomaly, Organic}
}

// Valid reports whether t is one of the known types.
func (t ObjectType) Valid() bool {
	switch t {
	case Artifact, Structure, Anomaly, Organic:
		return true
	}
	return false
}

// ParseObjectType converts a string into an ObjectType
func ParseObjectType(s string) (ObjectType, error) {
	t := ObjectType(s)
	if !t.Valid() {
		return "", ErrUnknownObjectType
	}
	return t, nil
}

// Coordinate is a geographic position in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Properties holds optional descriptive fields. Empty means absent.
type Properties struct {
	Material  string `json:"material,omitempty"`
	Era       string `json:"era,omitempty"`
	Size      string `json:"size,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// FoundObject is a single survey finding
type FoundObject struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         ObjectType `json:"type"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Depth        float64    `json:"depth"`      // metres below surface
	Confidence   float64    `json:"confidence"` // 0-100
	Description  string     `json:"description"`
	DiscoveredAt time.Time  `json:"discoveredAt"`
	Properties   Properties `json:"properties"`
}

// Coordinate returns the object's position.
func (o FoundObject) Coordinate() Coordinate {
	return Coordinate{Lat: o.Latitude, Lng: o.Longitude}
}

// Tier returns the confidence tier of the object.
func (o FoundObject) Tier() ConfidenceTier {
	return TierFor(o.Confidence)
}
