package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/archaeoscan/fieldmap/pkg/core"
)

// JSONFile reads a JSON array of objects from disk on every call.
type JSONFile struct {
	Path string
}

func (f JSONFile) Objects(ctx context.Context) ([]core.FoundObject, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", f.Path, err)
	}
	var objects []core.FoundObject
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", f.Path, err)
	}
	return objects, nil
}

// WriteJSONFile writes objects as an indented JSON array.
func WriteJSONFile(path string, objects []core.FoundObject) error {
	data, err := json.MarshalIndent(objects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}
