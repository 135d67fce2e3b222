package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/archaeoscan/fieldmap/pkg/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "catalog.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SeedAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Seed(ctx, Fixture()))

	objects, err := s.Objects(ctx)
	require.NoError(t, err)
	require.Len(t, objects, 6)
	assert.Equal(t, ids(Fixture()), ids(objects))

	want := Fixture()[1]
	got := objects[1]
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, want.Latitude, got.Latitude)
	assert.Equal(t, want.Longitude, got.Longitude)
	assert.Equal(t, want.Confidence, got.Confidence)
	assert.Equal(t, want.Properties, got.Properties)
	assert.True(t, want.DiscoveredAt.Equal(got.DiscoveredAt))
}

func TestStore_SeedUpsertKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Seed(ctx, Fixture()))

	changed := Fixture()[0]
	changed.Confidence = 55
	changed.Properties.Condition = "Worn"
	require.NoError(t, s.Seed(ctx, []core.FoundObject{changed}))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	objects, err := s.Objects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OBJ-001", objects[0].ID)
	assert.Equal(t, 55.0, objects[0].Confidence)
	assert.Equal(t, "Worn", objects[0].Properties.Condition)
}

func TestStore_ObjectsOfType(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Seed(ctx, Fixture()))

	artifacts, err := s.ObjectsOfType(ctx, core.Artifact)
	require.NoError(t, err)
	assert.Equal(t, []string{"OBJ-001", "OBJ-002", "OBJ-006"}, ids(artifacts))
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Seed(ctx, Fixture()))

	o, err := s.Get(ctx, "OBJ-005")
	require.NoError(t, err)
	assert.Equal(t, core.Organic, o.Type)

	_, err = s.Get(ctx, "OBJ-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := OpenStore("", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Seed(ctx, Fixture()[:2]))
	require.NoError(t, s.Seed(ctx, nil))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
