package catalog

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Config selects and locates the catalog source.
type Config struct {
	Source string `json:"source" mapstructure:"source"` // fixture, json or sqlite
	Path   string `json:"path" mapstructure:"path"`
}

// NewSource creates a catalog source based on configuration. The returned
// closer releases any resources held by the source.
func NewSource(cfg Config, log zerolog.Logger) (Source, io.Closer, error) {
	switch cfg.Source {
	case "", "fixture":
		return FixtureSource(), nopCloser{}, nil
	case "json":
		if cfg.Path == "" {
			return nil, nil, fmt.Errorf("json catalog requires a path")
		}
		return JSONFile{Path: cfg.Path}, nopCloser{}, nil
	case "sqlite":
		store, err := OpenStore(cfg.Path, log)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Source)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
