package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectType(t *testing.T) {
	for _, want := range AllObjectTypes() {
		got, err := ParseObjectType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseObjectType("meteorite")
	assert.ErrorIs(t, err, ErrUnknownObjectType)

	_, err = ParseObjectType("")
	assert.ErrorIs(t, err, ErrUnknownObjectType)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       ConfidenceTier
	}{
		{100, TierSuccess},
		{80.5, TierSuccess},
		{80, TierWarning},
		{61, TierWarning},
		{60, TierError},
		{0, TierError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.confidence), "confidence %v", tt.confidence)
	}
	assert.Equal(t, "success", TierSuccess.String())
	assert.Equal(t, "warning", TierWarning.String())
	assert.Equal(t, "error", TierError.String())
}

func TestFoundObject_Coordinate(t *testing.T) {
	o := FoundObject{Latitude: 40.75, Longitude: 14.48, Confidence: 94}
	assert.Equal(t, Coordinate{Lat: 40.75, Lng: 14.48}, o.Coordinate())
	assert.Equal(t, TierSuccess, o.Tier())
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	objects := []FoundObject{
		{ID: "a", Latitude: 40.7496, Longitude: 14.4847},
		{ID: "b", Latitude: 40.7511, Longitude: 14.4863},
		{ID: "c", Latitude: 40.7489, Longitude: 14.4838},
	}
	b, ok := BoundsOf(objects)
	require.True(t, ok)
	assert.Equal(t, MapBounds{North: 40.7511, South: 40.7489, East: 14.4863, West: 14.4838}, b)

	for _, o := range objects {
		assert.True(t, b.Contains(o.Coordinate()))
	}
	assert.False(t, b.Contains(Coordinate{Lat: 41, Lng: 14.485}))
}
