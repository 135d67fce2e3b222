package catalog

import (
	"context"
	"time"

	"github.com/archaeoscan/fieldmap/pkg/core"
)

func discovered(hour, minute int) time.Time {
	return time.Date(2024, time.January, 15, hour, minute, 0, 0, time.UTC)
}

// Fixture returns the reference survey finds around the default site centre.
func Fixture() []core.FoundObject {
	return []core.FoundObject{
		{
			ID:           "OBJ-001",
			Name:         "Ancient coin",
			Type:         core.Artifact,
			Latitude:     40.7496,
			Longitude:    14.4847,
			Depth:        0.8,
			Confidence:   94,
			Description:  "Roman coin from the reign of Augustus",
			DiscoveredAt: discovered(10, 30),
			Properties:   core.Properties{Material: "Bronze", Era: "Roman Empire", Size: "2.5 cm", Condition: "Good"},
		},
		{
			ID:           "OBJ-002",
			Name:         "Ceramic vessel",
			Type:         core.Artifact,
			Latitude:     40.7502,
			Longitude:    14.4851,
			Depth:        1.2,
			Confidence:   87,
			Description:  "Fragment of an ancient Greek amphora",
			DiscoveredAt: discovered(11, 45),
			Properties:   core.Properties{Material: "Ceramic", Era: "Ancient Greece", Size: "15 cm", Condition: "Fragment"},
		},
		{
			ID:           "OBJ-003",
			Name:         "Stone structure",
			Type:         core.Structure,
			Latitude:     40.7489,
			Longitude:    14.4842,
			Depth:        2.5,
			Confidence:   92,
			Description:  "Base of an ancient wall or foundation",
			DiscoveredAt: discovered(13, 20),
			Properties:   core.Properties{Material: "Sandstone", Era: "Unknown", Size: "3 m x 1 m", Condition: "Ruined"},
		},
		{
			ID:           "OBJ-004",
			Name:         "Metal anomaly",
			Type:         core.Anomaly,
			Latitude:     40.7511,
			Longitude:    14.4863,
			Depth:        1.8,
			Confidence:   76,
			Description:  "Unidentified metallic object",
			DiscoveredAt: discovered(14, 10),
			Properties:   core.Properties{Material: "Metal", Era: "Unknown", Size: "30 cm", Condition: "Unknown"},
		},
		{
			ID:           "OBJ-005",
			Name:         "Organic remains",
			Type:         core.Organic,
			Latitude:     40.7498,
			Longitude:    14.4855,
			Depth:        0.5,
			Confidence:   68,
			Description:  "Traces of organic material",
			DiscoveredAt: discovered(15, 30),
			Properties:   core.Properties{Material: "Organic", Era: "Unknown", Size: "10 cm", Condition: "Decomposing"},
		},
		{
			ID:           "OBJ-006",
			Name:         "Bronze statuette",
			Type:         core.Artifact,
			Latitude:     40.7505,
			Longitude:    14.4838,
			Depth:        1.5,
			Confidence:   89,
			Description:  "Small bronze figurine",
			DiscoveredAt: discovered(16, 45),
			Properties:   core.Properties{Material: "Bronze", Era: "Hellenistic period", Size: "8 cm", Condition: "Fair"},
		},
	}
}

// FixtureSource serves Fixture.
func FixtureSource() Source {
	return SourceFunc(func(ctx context.Context) ([]core.FoundObject, error) {
		return Fixture(), nil
	})
}
