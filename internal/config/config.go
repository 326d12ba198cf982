// Package config handles configuration loading for the validator binaries.
package config

import (
	"fmt"
	"os"

	"github.com/woozymasta/geoschema/geojson"

	"gopkg.in/yaml.v3"
)

// DefaultMaxBodyBytes limits request bodies accepted by the server.
const DefaultMaxBodyBytes = 32 << 20

// Config represents the root configuration file structure.
type Config struct {
	// Bounds overrides the WGS84 limits used for bbox validation.
	Bounds *geojson.Bounds `yaml:"bounds,omitempty"`

	Unknown        string `yaml:"unknown,omitempty"`
	MaxDepth       int    `yaml:"max_depth,omitempty"`
	MaxBodyBytes   int64  `yaml:"max_body_bytes,omitempty"`
	GeometriesOnly bool   `yaml:"geometries_only,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	policy, err := geojson.ParseUnknownPolicy(c.Unknown)
	if err != nil {
		return err
	}
	c.Unknown = string(policy)

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = geojson.DefaultMaxDepth
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if b := c.Bounds; b != nil {
		if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
			return fmt.Errorf("bounds minimum exceeds maximum: %+v", *b)
		}
	}
	return nil
}

// SchemaOptions converts the configuration into schema options.
func (c *Config) SchemaOptions() []geojson.Option {
	opts := []geojson.Option{
		geojson.WithUnknown(geojson.UnknownPolicy(c.Unknown)),
		geojson.WithMaxDepth(c.MaxDepth),
	}
	if c.Bounds != nil {
		opts = append(opts, geojson.WithBounds(*c.Bounds))
	}
	return opts
}

// Schema builds the dispatching schema described by the configuration.
// Extra options are applied after the configured ones.
func (c *Config) Schema(extra ...geojson.Option) *geojson.Schema {
	opts := append(c.SchemaOptions(), extra...)
	if c.GeometriesOnly {
		return geojson.NewGeometriesSchema(opts...)
	}
	return geojson.NewGeoJSONSchema(opts...)
}
