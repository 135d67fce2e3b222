// Package catalog supplies the ordered list of found objects shown on the map.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/archaeoscan/fieldmap/pkg/core"
)

// FilterAll disables type filtering.
const FilterAll = "all"

var (
	// ErrNotFound is returned when an object ID is not in the catalog
	ErrNotFound = errors.New("object not found")
	// ErrUnknownSource is returned for an unsupported source kind
	ErrUnknownSource = errors.New("unknown catalog source")
)

// Source provides found objects in catalog order.
type Source interface {
	Objects(ctx context.Context) ([]core.FoundObject, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]core.FoundObject, error)

func (f SourceFunc) Objects(ctx context.Context) ([]core.FoundObject, error) {
	return f(ctx)
}

// Filter returns the objects matching kind, preserving order. kind is
// FilterAll or an object type name.
func Filter(objects []core.FoundObject, kind string) ([]core.FoundObject, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" || kind == FilterAll {
		out := make([]core.FoundObject, len(objects))
		copy(out, objects)
		return out, nil
	}
	t, err := core.ParseObjectType(kind)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", kind, err)
	}
	out := make([]core.FoundObject, 0, len(objects))
	for _, o := range objects {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out, nil
}

// FilterKinds lists the accepted filter values in display order.
func FilterKinds() []string {
	kinds := []string{FilterAll}
	for _, t := range core.AllObjectTypes() {
		kinds = append(kinds, string(t))
	}
	return kinds
}

// Find returns the object with the given ID. With duplicate IDs the first wins.
func Find(objects []core.FoundObject, id string) (core.FoundObject, error) {
	for _, o := range objects {
		if o.ID == id {
			return o, nil
		}
	}
	return core.FoundObject{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}
