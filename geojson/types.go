// Package geojson validates and (de)serializes RFC 7946 GeoJSON objects.
//
// Input is the generic value tree produced by a JSON decoder
// (map[string]any, []any, string, float64 or json.Number, bool, nil).
// Every accepted object is returned as a strongly typed Object and can be
// dumped back to the same generic shape.
//
// For the RFC see:
//
//	https://www.rfc-editor.org/rfc/rfc7946
package geojson

// ObjectType is the value of the "type" member of a GeoJSON object.
type ObjectType string

// GeoJSON object types, RFC 7946 section 1.4.
const (
	TypePoint              ObjectType = "Point"
	TypeMultiPoint         ObjectType = "MultiPoint"
	TypeLineString         ObjectType = "LineString"
	TypeMultiLineString    ObjectType = "MultiLineString"
	TypePolygon            ObjectType = "Polygon"
	TypeMultiPolygon       ObjectType = "MultiPolygon"
	TypeGeometryCollection ObjectType = "GeometryCollection"
	TypeFeature            ObjectType = "Feature"
	TypeFeatureCollection  ObjectType = "FeatureCollection"
)

// registry order is the order of RFC 7946 section 1.4
var geometryTypes = [...]ObjectType{
	TypePoint,
	TypeMultiPoint,
	TypeLineString,
	TypeMultiLineString,
	TypePolygon,
	TypeMultiPolygon,
	TypeGeometryCollection,
}

var geojsonTypes = [...]ObjectType{
	TypePoint,
	TypeMultiPoint,
	TypeLineString,
	TypeMultiLineString,
	TypePolygon,
	TypeMultiPolygon,
	TypeGeometryCollection,
	TypeFeature,
	TypeFeatureCollection,
}

// String implements fmt.Stringer.
func (t ObjectType) String() string { return string(t) }

// IsGeometry reports whether t is one of the seven geometry types.
func (t ObjectType) IsGeometry() bool {
	for _, g := range geometryTypes {
		if g == t {
			return true
		}
	}
	return false
}

// IsValid reports whether t is any of the nine GeoJSON types.
func (t ObjectType) IsValid() bool {
	return t.IsGeometry() || t == TypeFeature || t == TypeFeatureCollection
}

// IsGeometryType reports whether tag names a geometry type. Tags are case-sensitive.
func IsGeometryType(tag string) bool { return ObjectType(tag).IsGeometry() }

// IsGeoJSONType reports whether tag names any GeoJSON type.
func IsGeoJSONType(tag string) bool { return ObjectType(tag).IsValid() }

// GeometryTypes returns the seven geometry types.
func GeometryTypes() []ObjectType {
	out := make([]ObjectType, len(geometryTypes))
	copy(out, geometryTypes[:])
	return out
}

// GeoJSONTypes returns all nine GeoJSON types.
func GeoJSONTypes() []ObjectType {
	out := make([]ObjectType, len(geojsonTypes))
	copy(out, geojsonTypes[:])
	return out
}

// ParseObjectType classifies tag, failing with UnknownObjectClass when
// the registry does not know it.
func ParseObjectType(tag string) (ObjectType, error) {
	t := ObjectType(tag)
	if !t.IsValid() {
		return "", unknownObjectClass(tag)
	}
	return t, nil
}
