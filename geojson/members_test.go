package geojson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForbiddenMembers(t *testing.T) {
	assert.Equal(t, []string{"geometry", "properties", "features"}, ForbiddenMembers(TypePolygon))
	assert.Equal(t, []string{"coordinates", "geometries", "features"}, ForbiddenMembers(TypeFeature))
	assert.Equal(t, []string{"coordinates", "geometries", "geometry", "properties"}, ForbiddenMembers(TypeFeatureCollection))
	assert.Empty(t, ForbiddenMembers("Unknown"))
}

func TestMemberExclusivity(t *testing.T) {
	tests := []struct {
		name   string
		input  map[string]any
		member string
		owner  ObjectType
	}{
		{
			name:   "feature with coordinates",
			input:  map[string]any{"type": "Feature", "geometry": nil, "properties": map[string]any{}, "coordinates": []any{0.0, 0.0}},
			member: "coordinates",
			owner:  TypeFeature,
		},
		{
			name:   "feature with features",
			input:  map[string]any{"type": "Feature", "geometry": nil, "properties": nil, "features": []any{}},
			member: "features",
			owner:  TypeFeature,
		},
		{
			name:   "point with properties",
			input:  map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}, "properties": map[string]any{}},
			member: "properties",
			owner:  TypePoint,
		},
		{
			name:   "collection with geometry",
			input:  map[string]any{"type": "GeometryCollection", "geometries": []any{}, "geometry": nil},
			member: "geometry",
			owner:  TypeGeometryCollection,
		},
		{
			name:   "feature collection with geometries",
			input:  map[string]any{"type": "FeatureCollection", "features": []any{}, "geometries": []any{}},
			member: "geometries",
			owner:  TypeFeatureCollection,
		},
		{
			name:   "feature collection with properties",
			input:  map[string]any{"type": "FeatureCollection", "features": []any{}, "properties": nil},
			member: "properties",
			owner:  TypeFeatureCollection,
		},
		{
			// exclusivity is checked before the coordinates are looked at
			name:   "malformed point with features",
			input:  map[string]any{"type": "Point", "coordinates": "garbage", "features": []any{}},
			member: "features",
			owner:  TypePoint,
		},
	}

	schema := NewGeoJSONSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Load(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ForbiddenMember), "got %v", err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.member, ve.Member)
			assert.Equal(t, tt.owner, ve.Owner)
			assert.Contains(t, ve.Error(), "RFC 7946 Section 7.1")
		})
	}
}

func TestMemberExclusivityIgnoresUnknownPolicy(t *testing.T) {
	schema := NewGeoJSONSchema(WithUnknown(UnknownExclude))
	_, err := schema.Load(map[string]any{
		"type": "Point", "coordinates": []any{0.0, 0.0}, "geometry": nil,
	})
	assert.True(t, errors.Is(err, ForbiddenMember))
}

func TestCheckMembersNested(t *testing.T) {
	_, err := NewGeoJSONSchema().Load(map[string]any{
		"type": "FeatureCollection",
		"features": []any{
			map[string]any{"type": "Feature", "geometry": nil, "properties": nil},
			map[string]any{"type": "Feature", "geometry": nil, "properties": nil, "geometries": []any{}},
		},
	})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, ForbiddenMember, ve.Kind)
	assert.Equal(t, "features.1.geometries", ve.Path)
}
