package geo

import (
	"math"
	"testing"

	"github.com/archaeoscan/fieldmap/pkg/core"
	"github.com/stretchr/testify/assert"
)

var testCenter = core.Coordinate{Lat: 40.7496, Lng: 14.4847}

func TestScale(t *testing.T) {
	assert.InDelta(t, 111320.0/256*2, Scale(1), 1e-9)
	assert.InDelta(t, 111320.0/256*32768, Scale(15), 1e-6)
	assert.InDelta(t, Scale(14)*2, Scale(15), 1e-6)
}

func TestProject_CenterMapsToMidpoint(t *testing.T) {
	p := Project(testCenter, testCenter, 15, 800, 600)
	assert.Equal(t, Point{X: 400, Y: 300}, p)
}

func TestProject_Deterministic(t *testing.T) {
	c := core.Coordinate{Lat: 40.7502, Lng: 14.4851}
	first := Project(c, testCenter, 15, 800, 600)
	second := Project(c, testCenter, 15, 800, 600)
	assert.Equal(t, first, second)
}

func TestProject_NorthIsUp(t *testing.T) {
	north := Project(core.Coordinate{Lat: testCenter.Lat + 0.0001, Lng: testCenter.Lng}, testCenter, 15, 800, 600)
	south := Project(core.Coordinate{Lat: testCenter.Lat - 0.0001, Lng: testCenter.Lng}, testCenter, 15, 800, 600)
	assert.Less(t, north.Y, 300.0)
	assert.Greater(t, south.Y, 300.0)
	assert.InDelta(t, 400, north.X, 1e-9)
}

func TestProject_LongitudeScaledByLatitude(t *testing.T) {
	c := core.Coordinate{Lat: testCenter.Lat, Lng: testCenter.Lng + 0.0001}
	east := Project(c, testCenter, 15, 800, 600)
	want := (c.Lng-testCenter.Lng)*math.Cos(testCenter.Lat*math.Pi/180)*Scale(15) + 400
	assert.InDelta(t, want, east.X, 1e-9)
	assert.InDelta(t, 300, east.Y, 1e-9)
}

func TestProject_NoClamp(t *testing.T) {
	far := Project(core.Coordinate{Lat: 41, Lng: 15}, testCenter, 15, 800, 600)
	assert.Greater(t, far.X, 800.0)
	assert.Less(t, far.Y, 0.0)
	assert.False(t, InSurface(far, 800, 600))
}

func TestUnproject_RoundTrip(t *testing.T) {
	for _, c := range []core.Coordinate{
		{Lat: 40.7502, Lng: 14.4851},
		{Lat: 40.7489, Lng: 14.4842},
		testCenter,
	} {
		p := Project(c, testCenter, 17, 640, 480)
		got := Unproject(p, testCenter, 17, 640, 480)
		assert.InDelta(t, c.Lat, got.Lat, 1e-9)
		assert.InDelta(t, c.Lng, got.Lng, 1e-9)
	}
}

func TestUnproject_AtPole(t *testing.T) {
	pole := core.Coordinate{Lat: 90, Lng: 10}
	got := Unproject(Point{X: 500, Y: 300}, pole, 10, 800, 600)
	assert.False(t, math.IsInf(got.Lng, 0))
	assert.False(t, math.IsNaN(got.Lng))
}

func TestInSurface_EdgesInclusive(t *testing.T) {
	assert.True(t, InSurface(Point{X: 0, Y: 0}, 800, 600))
	assert.True(t, InSurface(Point{X: 800, Y: 600}, 800, 600))
	assert.False(t, InSurface(Point{X: -0.1, Y: 10}, 800, 600))
	assert.False(t, InSurface(Point{X: 10, Y: 600.1}, 800, 600))
}

func TestPoint_Dist(t *testing.T) {
	assert.Equal(t, 5.0, Point{X: 0, Y: 0}.Dist(Point{X: 3, Y: 4}))
}
