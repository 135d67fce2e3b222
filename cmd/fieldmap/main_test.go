package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig creates a config dir whose logs stay inside the test dir.
func writeConfig(t *testing.T, extra map[string]any) string {
	t.Helper()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	cfg := map[string]any{"logsDir": filepath.Join(dir, "logs")}
	for k, v := range extra {
		cfg[k] = v
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fieldmap.json"), data, 0644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPick_Hit(t *testing.T) {
	dir := writeConfig(t, nil)
	out, err := run(t, "pick", "400", "300", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Ancient coin")
	assert.Contains(t, out, "OBJ-001")
	assert.Contains(t, out, "94%")
}

func TestPick_Miss(t *testing.T) {
	dir := writeConfig(t, nil)
	out, err := run(t, "pick", "5", "5", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "no object at 5,5")
}

func TestPick_BadArgs(t *testing.T) {
	dir := writeConfig(t, nil)
	_, err := run(t, "pick", "x", "1", "--config", dir)
	assert.Error(t, err)
}

func TestPick_FilterHidesObject(t *testing.T) {
	dir := writeConfig(t, nil)
	out, err := run(t, "pick", "400", "300", "--filter", "structure", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "no object")
}

func TestRender_WritesPNG(t *testing.T) {
	dir := writeConfig(t, map[string]any{"map": map[string]any{"width": 200, "height": 150}})
	path := filepath.Join(dir, "map.png")
	out, err := run(t, "render", "--out", path, "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestExport_GeoJSON(t *testing.T) {
	dir := writeConfig(t, nil)
	out, err := run(t, "export", "--config", dir)
	require.NoError(t, err)

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 6)
}

func TestExport_UnknownFormat(t *testing.T) {
	dir := writeConfig(t, nil)
	_, err := run(t, "export", "--format", "shp", "--config", dir)
	assert.Error(t, err)
}

func TestExport_BadFormatLeavesNoFile(t *testing.T) {
	dir := writeConfig(t, nil)
	path := filepath.Join(dir, "finds.shp")
	_, err := run(t, "export", "--format", "shapefile", "--out", path, "--config", dir)
	require.Error(t, err)
	assert.NoFileExists(t, path)

	_, err = run(t, "export", "--srid", "27700", "--out", path, "--config", dir)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestExport_ToFile(t *testing.T) {
	dir := writeConfig(t, nil)
	path := filepath.Join(dir, "finds.kml")
	out, err := run(t, "export", "--format", "kml", "--out", path, "--config", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<Placemark")
}

func TestSeedThenExportFromSQLite(t *testing.T) {
	dir := writeConfig(t, nil)
	db := filepath.Join(dir, "catalog.db")
	out, err := run(t, "seed", "--db", db, "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 6 objects")

	viper.Reset()
	dir = writeConfig(t, map[string]any{"catalog": map[string]any{"source": "sqlite", "path": db}})
	out, err = run(t, "export", "--format", "kml", "--filter", "artifact", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "<kml")
	assert.Contains(t, out, "OBJ-001")
	assert.NotContains(t, out, "OBJ-003")
}
