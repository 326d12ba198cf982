package geojson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Len(t, GeometryTypes(), 7)
	assert.Len(t, GeoJSONTypes(), 9)

	for _, g := range GeometryTypes() {
		assert.True(t, IsGeometryType(string(g)), g)
		assert.True(t, IsGeoJSONType(string(g)), g)
	}

	assert.False(t, IsGeometryType("Feature"))
	assert.False(t, IsGeometryType("FeatureCollection"))
	assert.True(t, IsGeoJSONType("Feature"))
	assert.True(t, IsGeoJSONType("FeatureCollection"))

	// tags are case-sensitive
	assert.False(t, IsGeoJSONType("point"))
	assert.False(t, IsGeoJSONType(""))
}

func TestRegistryReturnsCopies(t *testing.T) {
	types := GeometryTypes()
	types[0] = "Broken"
	assert.Equal(t, TypePoint, GeometryTypes()[0])
}

func TestParseObjectType(t *testing.T) {
	typ, err := ParseObjectType("MultiPolygon")
	require.NoError(t, err)
	assert.Equal(t, TypeMultiPolygon, typ)

	_, err = ParseObjectType("NotAType")
	require.Error(t, err)
	assert.True(t, errors.Is(err, UnknownObjectClass))
	assert.Contains(t, err.Error(), "NotAType")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ring", Ring.String())
	assert.Equal(t, "forbidden_member", ForbiddenMember.Error())
	assert.Equal(t, "kind(99)", Kind(99).String())
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
}
