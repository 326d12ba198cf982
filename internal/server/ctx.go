package server

import (
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geoschema/geojson"
	"github.com/woozymasta/geoschema/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config *config.Config
	// Types is the registry served by HandleTypes.
	Types []TypeInfo
}

// TypeInfo describes one object type the server accepts.
type TypeInfo struct {
	Type      geojson.ObjectType `json:"type"`
	Geometry  bool               `json:"geometry"`
	Forbidden []string           `json:"forbidden_members"`
}

// NewServerContext initializes the context from a normalized configuration.
func NewServerContext(cfg *config.Config) *ServerContext {
	schema := cfg.Schema()

	types := make([]TypeInfo, 0, len(schema.Types()))
	for _, t := range schema.Types() {
		types = append(types, TypeInfo{
			Type:      t,
			Geometry:  t.IsGeometry(),
			Forbidden: geojson.ForbiddenMembers(t),
		})
	}

	log.Info().
		Int("types", len(types)).
		Str("unknown", cfg.Unknown).
		Int("max_depth", cfg.MaxDepth).
		Int64("max_body_bytes", cfg.MaxBodyBytes).
		Bool("custom_bounds", cfg.Bounds != nil).
		Msg("Server context initialized")

	return &ServerContext{
		Config: cfg,
		Types:  types,
	}
}
