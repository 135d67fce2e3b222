package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "fieldmap.json"

// MapConfig holds the drawing surface and initial view settings
type MapConfig struct {
	Width      int    `json:"width" mapstructure:"width"`
	Height     int    `json:"height" mapstructure:"height"`
	Zoom       int    `json:"zoom" mapstructure:"zoom"`
	ShowGrid   bool   `json:"showGrid" mapstructure:"showGrid"`
	PickPolicy string `json:"pickPolicy" mapstructure:"pickPolicy"`
}

// CatalogConfig selects where found objects come from
type CatalogConfig struct {
	Source string `json:"source" mapstructure:"source"`
	Path   string `json:"path" mapstructure:"path"`
}

// ExportConfig holds export defaults
type ExportConfig struct {
	Format string `json:"format" mapstructure:"format"`
	SRID   int    `json:"srid" mapstructure:"srid"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
	Endpoint     string        `json:"endpoint" mapstructure:"endpoint"`
	Insecure     bool          `json:"insecure" mapstructure:"insecure"`
}

// SetDefaults registers default values for every known key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("map.width", 800)
	viper.SetDefault("map.height", 600)
	viper.SetDefault("map.zoom", 15)
	viper.SetDefault("map.showGrid", true)
	viper.SetDefault("map.pickPolicy", "nearest")

	viper.SetDefault("catalog.source", "fixture")
	viper.SetDefault("catalog.path", "")

	viper.SetDefault("export.format", "geojson")
	viper.SetDefault("export.srid", 4326)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "fieldmap")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)
}

// Load sets default values and reads fieldmap.json from configDir.
// A missing file leaves the defaults in place.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetMapConfig returns the map settings.
func GetMapConfig() MapConfig {
	return MapConfig{
		Width:      viper.GetInt("map.width"),
		Height:     viper.GetInt("map.height"),
		Zoom:       viper.GetInt("map.zoom"),
		ShowGrid:   viper.GetBool("map.showGrid"),
		PickPolicy: viper.GetString("map.pickPolicy"),
	}
}

// GetCatalogConfig returns the catalog source settings.
func GetCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Source: viper.GetString("catalog.source"),
		Path:   viper.GetString("catalog.path"),
	}
}

// GetExportConfig returns the export defaults.
func GetExportConfig() ExportConfig {
	return ExportConfig{
		Format: viper.GetString("export.format"),
		SRID:   viper.GetInt("export.srid"),
	}
}

// GetOTelConfig returns the OpenTelemetry settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}
