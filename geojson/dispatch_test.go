package geojson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []any {
	return []any{
		[]any{0.0, 0.0}, []any{1.0, 0.0}, []any{1.0, 1.0}, []any{0.0, 1.0}, []any{0.0, 0.0},
	}
}

func validInputs() map[string]map[string]any {
	return map[string]map[string]any{
		"Point": {"type": "Point", "coordinates": []any{125.6, 10.1}},
		"MultiPoint": {
			"type":        "MultiPoint",
			"coordinates": []any{[]any{100.0, 0.0}, []any{101.0, 1.0}},
		},
		"LineString": {
			"type":        "LineString",
			"coordinates": []any{[]any{100.0, 0.0}, []any{101.0, 1.0}},
			"bbox":        []any{100.0, 0.0, 101.0, 1.0},
		},
		"MultiLineString": {
			"type": "MultiLineString",
			"coordinates": []any{
				[]any{[]any{100.0, 0.0}, []any{101.0, 1.0}},
				[]any{[]any{102.0, 2.0}, []any{103.0, 3.0, 12.5}},
			},
		},
		"Polygon": {"type": "Polygon", "coordinates": []any{square()}},
		"MultiPolygon": {
			"type":        "MultiPolygon",
			"coordinates": []any{[]any{square()}, []any{square(), square()}},
		},
		"GeometryCollection": {
			"type": "GeometryCollection",
			"geometries": []any{
				map[string]any{"type": "Point", "coordinates": []any{100.0, 0.0}},
				map[string]any{
					"type": "GeometryCollection",
					"geometries": []any{
						map[string]any{"type": "LineString", "coordinates": []any{[]any{101.0, 0.0}, []any{102.0, 1.0}}},
					},
				},
			},
		},
		"Feature": {
			"type":       "Feature",
			"geometry":   map[string]any{"type": "Polygon", "coordinates": []any{square()}},
			"properties": map[string]any{"name": "Dinagat Islands", "rank": 3.0, "tags": []any{"a", "b"}},
			"id":         "f-1",
			"bbox":       []any{0.0, 0.0, 1.0, 1.0},
		},
		"FeatureCollection": {
			"type": "FeatureCollection",
			"features": []any{
				map[string]any{"type": "Feature", "geometry": nil, "properties": nil, "id": 7.0},
				map[string]any{
					"type":       "Feature",
					"geometry":   map[string]any{"type": "Point", "coordinates": []any{-180.0, 90.0}},
					"properties": map[string]any{},
				},
			},
			"bbox": []any{170.0, -10.0, -170.0, 10.0},
		},
	}
}

func TestLoadDispatch(t *testing.T) {
	obj, err := NewGeoJSONSchema().Load(map[string]any{"type": "Point", "coordinates": []any{125.6, 10.1}})
	require.NoError(t, err)

	point, ok := obj.(*Point)
	require.True(t, ok)
	assert.Equal(t, TypePoint, point.Type())
	assert.Equal(t, Position{125.6, 10.1}, point.Coordinates)
	assert.Nil(t, point.BBox)
	assert.Nil(t, point.Foreign)
}

func TestLoadEveryType(t *testing.T) {
	schema := NewGeoJSONSchema()
	for name, input := range validInputs() {
		t.Run(name, func(t *testing.T) {
			obj, err := schema.Load(input)
			require.NoError(t, err)
			assert.Equal(t, ObjectType(name), obj.Type())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	schema := NewGeoJSONSchema()
	for name, input := range validInputs() {
		t.Run(name, func(t *testing.T) {
			obj, err := schema.Load(input)
			require.NoError(t, err)

			dumped, err := schema.Dump(obj)
			require.NoError(t, err)

			again, err := schema.Load(dumped)
			require.NoError(t, err)
			assert.Equal(t, obj, again)

			// dumping twice yields identical output
			dumpedAgain, err := schema.Dump(again)
			require.NoError(t, err)
			assert.Equal(t, dumped, dumpedAgain)
		})
	}
}

func TestDumpMatchesInput(t *testing.T) {
	schema := NewGeoJSONSchema()
	for name, input := range validInputs() {
		t.Run(name, func(t *testing.T) {
			obj, err := schema.Load(input)
			require.NoError(t, err)

			dumped, err := schema.Dump(obj)
			require.NoError(t, err)
			assert.Equal(t, input, dumped)
		})
	}
}

func TestNestedGeometryCollection(t *testing.T) {
	obj, err := NewGeometriesSchema().Load(validInputs()["GeometryCollection"])
	require.NoError(t, err)

	gc := obj.(*GeometryCollection)
	require.Len(t, gc.Geometries, 2)
	assert.IsType(t, &Point{}, gc.Geometries[0])

	inner, ok := gc.Geometries[1].(*GeometryCollection)
	require.True(t, ok)
	require.Len(t, inner.Geometries, 1)
	assert.Equal(t, []Position{{101, 0}, {102, 1}}, inner.Geometries[0].(*LineString).Coordinates)
}

func TestHeterogeneousBatch(t *testing.T) {
	objs, err := NewGeoJSONSchema(WithMany(true)).LoadMany([]any{
		map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}},
		map[string]any{"type": "Feature", "geometry": nil, "properties": nil},
	})
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.IsType(t, &Point{}, objs[0])

	feature, ok := objs[1].(*Feature)
	require.True(t, ok)
	assert.Nil(t, feature.Geometry)
	assert.Nil(t, feature.Properties)
	assert.Nil(t, feature.ID)

	dumped, err := NewGeoJSONSchema().DumpMany(objs)
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}},
		map[string]any{"type": "Feature", "geometry": nil, "properties": nil},
	}, dumped)
}

func TestBatchAbortsOnFirstError(t *testing.T) {
	_, err := NewGeoJSONSchema().LoadMany([]any{
		map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}},
		map[string]any{"type": "Point", "coordinates": []any{0.0, 91.0}},
		map[string]any{"type": "NotAType"},
	})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, CoordinateRange, ve.Kind)
	assert.Equal(t, "1.coordinates", ve.Path)
	assert.Equal(t, 91.0, ve.Value)
}

func TestUnknownTypeRejected(t *testing.T) {
	_, err := NewGeoJSONSchema().Load(map[string]any{"type": "NotAType", "coordinates": []any{0.0, 0.0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, UnknownObjectClass))
	assert.Equal(t, "type: Unknown object class for NotAType.", err.Error())
}

func TestGeometriesSchemaRejectsFeatures(t *testing.T) {
	schema := NewGeometriesSchema()
	for _, input := range []map[string]any{
		{"type": "Feature", "geometry": nil, "properties": nil},
		{"type": "FeatureCollection", "features": []any{}},
	} {
		_, err := schema.Load(input)
		assert.True(t, errors.Is(err, UnknownObjectClass), "got %v", err)
	}

	_, err := schema.GetSchema("Feature")
	assert.True(t, errors.Is(err, UnknownObjectClass))

	_, err = schema.Dump(&Feature{})
	assert.True(t, errors.Is(err, UnknownObjectClass))

	assert.Len(t, schema.Types(), 7)
	assert.Len(t, NewGeoJSONSchema().Types(), 9)
}

func TestFeatureGeometryMustBeGeometry(t *testing.T) {
	_, err := NewGeoJSONSchema().Load(map[string]any{
		"type":       "Feature",
		"properties": nil,
		"geometry":   map[string]any{"type": "Feature", "geometry": nil, "properties": nil},
	})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, UnknownObjectClass, ve.Kind)
	assert.Equal(t, "geometry.type", ve.Path)
}

func TestShapeMismatch(t *testing.T) {
	single := map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}}

	_, err := NewGeoJSONSchema().LoadMany(single)
	assert.True(t, errors.Is(err, ShapeMismatch))

	_, err = NewGeoJSONSchema(WithMany(true)).Decode(single)
	assert.True(t, errors.Is(err, ShapeMismatch))

	_, err = NewGeoJSONSchema().Load([]any{single})
	assert.True(t, errors.Is(err, ShapeMismatch))

	_, err = NewGeoJSONSchema().Decode([]any{single})
	assert.True(t, errors.Is(err, ShapeMismatch))

	objs, err := NewGeoJSONSchema().Decode(single)
	require.NoError(t, err)
	assert.Len(t, objs, 1)

	point := &Point{Coordinates: Position{0, 0}}
	_, err = NewGeoJSONSchema(WithMany(true)).Encode(point)
	assert.True(t, errors.Is(err, ShapeMismatch))

	_, err = NewGeoJSONSchema().Encode([]Object{point})
	assert.True(t, errors.Is(err, ShapeMismatch))

	out, err := NewGeoJSONSchema(WithMany(true)).Encode([]Object{point})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = NewGeoJSONSchema().Dump(nil)
	assert.True(t, errors.Is(err, ShapeMismatch))
}

func TestTypeTagErrors(t *testing.T) {
	schema := NewGeoJSONSchema()

	_, err := schema.Load(map[string]any{"coordinates": []any{0.0, 0.0}})
	assert.True(t, errors.Is(err, InvalidTypeTag))

	_, err = schema.Load(map[string]any{"type": 5.0, "coordinates": []any{0.0, 0.0}})
	assert.True(t, errors.Is(err, InvalidTypeTag))

	ps, err := schema.GetSchema("Polygon")
	require.NoError(t, err)
	assert.Equal(t, TypePolygon, ps.Type())

	_, err = ps.Load(map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, InvalidTypeTag))
	assert.Contains(t, err.Error(), `expected "Polygon"`)

	_, err = ps.Dump(&Point{Coordinates: Position{0, 0}})
	assert.True(t, errors.Is(err, InvalidTypeTag))

	// a FeatureCollection only holds Features
	_, err = schema.Load(map[string]any{
		"type":     "FeatureCollection",
		"features": []any{map[string]any{"type": "Point", "geometry": nil, "properties": nil}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, InvalidTypeTag))
}

func TestStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		kind  Kind
		path  string
	}{
		{
			name:  "point out of range",
			input: map[string]any{"type": "Point", "coordinates": []any{-180.0001, 0.0}},
			kind:  CoordinateRange,
			path:  "coordinates",
		},
		{
			name:  "polygon ring not closed",
			input: map[string]any{"type": "Polygon", "coordinates": []any{square()[:4]}},
			kind:  Ring,
			path:  "coordinates.0",
		},
		{
			name:  "polygon without rings",
			input: map[string]any{"type": "Polygon", "coordinates": []any{}},
			kind:  PolygonRingCount,
			path:  "coordinates",
		},
		{
			name:  "short line",
			input: map[string]any{"type": "LineString", "coordinates": []any{[]any{0.0, 0.0}}},
			kind:  LineStringLength,
			path:  "coordinates",
		},
		{
			name: "multi line with a short line",
			input: map[string]any{"type": "MultiLineString", "coordinates": []any{
				[]any{[]any{0.0, 0.0}, []any{1.0, 1.0}},
				[]any{[]any{0.0, 0.0}},
			}},
			kind: LineStringLength,
			path: "coordinates.1",
		},
		{
			name: "multi polygon with an empty polygon",
			input: map[string]any{"type": "MultiPolygon", "coordinates": []any{
				[]any{square()}, []any{},
			}},
			kind: PolygonRingCount,
			path: "coordinates.1",
		},
		{
			name:  "multi point position arity",
			input: map[string]any{"type": "MultiPoint", "coordinates": []any{[]any{0.0, 0.0, 0.0, 0.0}}},
			kind:  CoordinateRange,
			path:  "coordinates.0",
		},
		{
			name:  "missing coordinates",
			input: map[string]any{"type": "Point"},
			kind:  MissingField,
			path:  "coordinates",
		},
		{
			name:  "null coordinates",
			input: map[string]any{"type": "Point", "coordinates": nil},
			kind:  InvalidField,
			path:  "coordinates",
		},
		{
			name:  "bad bbox",
			input: map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}, "bbox": []any{0.0, 0.0, 1.0}},
			kind:  BoundingBox,
			path:  "bbox",
		},
		{
			name:  "missing geometry",
			input: map[string]any{"type": "Feature", "properties": nil},
			kind:  MissingField,
			path:  "geometry",
		},
		{
			name:  "missing properties",
			input: map[string]any{"type": "Feature", "geometry": nil},
			kind:  MissingField,
			path:  "properties",
		},
		{
			name:  "properties not a mapping",
			input: map[string]any{"type": "Feature", "geometry": nil, "properties": []any{}},
			kind:  InvalidField,
			path:  "properties",
		},
		{
			name:  "boolean id",
			input: map[string]any{"type": "Feature", "geometry": nil, "properties": nil, "id": true},
			kind:  InvalidField,
			path:  "id",
		},
		{
			name:  "missing features",
			input: map[string]any{"type": "FeatureCollection"},
			kind:  MissingField,
			path:  "features",
		},
		{
			name:  "features not a list",
			input: map[string]any{"type": "FeatureCollection", "features": map[string]any{}},
			kind:  InvalidField,
			path:  "features",
		},
		{
			name: "nested geometry error",
			input: map[string]any{"type": "GeometryCollection", "geometries": []any{
				map[string]any{"type": "GeometryCollection", "geometries": []any{
					map[string]any{"type": "Point", "coordinates": []any{0.0, 100.0}},
				}},
			}},
			kind: CoordinateRange,
			path: "geometries.0.geometries.0.coordinates",
		},
		{
			name: "feature geometry error",
			input: map[string]any{"type": "FeatureCollection", "features": []any{
				map[string]any{"type": "Feature", "properties": nil, "geometry": map[string]any{
					"type": "LineString", "coordinates": []any{[]any{0.0, 0.0}, []any{0.0, "1"}},
				}},
			}},
			kind: InvalidField,
			path: "features.0.geometry.coordinates.1.1",
		},
	}

	schema := NewGeoJSONSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Load(tt.input)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.kind, ve.Kind, ve.Error())
			assert.Equal(t, tt.path, ve.Path)
		})
	}
}

func TestFeatureID(t *testing.T) {
	schema := NewGeoJSONSchema()
	for _, id := range []any{"abc", 12.0, 7} {
		obj, err := schema.Load(map[string]any{"type": "Feature", "geometry": nil, "properties": nil, "id": id})
		require.NoError(t, err)
		assert.Equal(t, id, obj.(*Feature).ID)
	}

	// a null id is treated as absent
	obj, err := schema.Load(map[string]any{"type": "Feature", "geometry": nil, "properties": nil, "id": nil})
	require.NoError(t, err)
	dumped, err := schema.Dump(obj)
	require.NoError(t, err)
	assert.NotContains(t, dumped, "id")
}

func TestNullBBoxIsAbsent(t *testing.T) {
	obj, err := NewGeoJSONSchema().Load(map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}, "bbox": nil})
	require.NoError(t, err)
	assert.Nil(t, obj.Box())
}

func TestUnknownPolicies(t *testing.T) {
	input := func() map[string]any {
		return map[string]any{
			"type":        "Point",
			"coordinates": []any{1.0, 2.0},
			"title":       "foreign member",
			"crs":         map[string]any{"type": "name"},
		}
	}

	obj, err := NewGeoJSONSchema().Load(input())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "foreign member", "crs": map[string]any{"type": "name"}}, obj.(*Point).Foreign)

	dumped, err := NewGeoJSONSchema().Dump(obj)
	require.NoError(t, err)
	assert.Equal(t, input(), dumped)

	obj, err = NewGeoJSONSchema(WithUnknown(UnknownExclude)).Load(input())
	require.NoError(t, err)
	assert.Nil(t, obj.(*Point).Foreign)

	_, err = NewGeoJSONSchema(WithUnknown(UnknownRaise)).Load(input())
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, UnknownField, ve.Kind)
	assert.Equal(t, "crs", ve.Member)
	assert.Equal(t, TypePoint, ve.Owner)
}

func TestUnknownPolicyAppliesToNestedObjects(t *testing.T) {
	_, err := NewGeoJSONSchema(WithUnknown(UnknownRaise)).Load(map[string]any{
		"type":       "Feature",
		"properties": nil,
		"geometry":   map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}, "extra": 1.0},
	})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "geometry.extra", ve.Path)
}

func TestForeignMembersDoNotOverrideDeclared(t *testing.T) {
	p := &Point{
		Coordinates: Position{1, 2},
		Foreign:     map[string]any{"type": "Polygon", "coordinates": "bogus", "name": "x"},
	}
	dumped, err := NewGeoJSONSchema().Dump(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "Point", "coordinates": []any{1.0, 2.0}, "name": "x"}, dumped)
}

func TestParseUnknownPolicy(t *testing.T) {
	for in, want := range map[string]UnknownPolicy{
		"":        UnknownInclude,
		"include": UnknownInclude,
		"exclude": UnknownExclude,
		"raise":   UnknownRaise,
	} {
		got, err := ParseUnknownPolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseUnknownPolicy("ignore")
	assert.Error(t, err)
}

func TestPartial(t *testing.T) {
	_, err := NewGeoJSONSchema().Load(map[string]any{"type": "Feature"})
	assert.True(t, errors.Is(err, MissingField))

	obj, err := NewGeoJSONSchema(WithPartial()).Load(map[string]any{"type": "Feature"})
	require.NoError(t, err)
	assert.Equal(t, &Feature{}, obj)

	_, err = NewGeoJSONSchema(WithPartial("geometry")).Load(map[string]any{"type": "Feature"})
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "properties", ve.Path)

	obj, err = NewGeoJSONSchema(WithPartial("coordinates")).Load(map[string]any{"type": "Polygon"})
	require.NoError(t, err)
	assert.Nil(t, obj.(*Polygon).Coordinates)

	// partial never relaxes the type tag or the values that are present
	_, err = NewGeoJSONSchema(WithPartial()).Load(map[string]any{"coordinates": []any{0.0, 0.0}})
	assert.True(t, errors.Is(err, InvalidTypeTag))
	_, err = NewGeoJSONSchema(WithPartial()).Load(map[string]any{"type": "Point", "coordinates": []any{0.0, 95.0}})
	assert.True(t, errors.Is(err, CoordinateRange))
}

func TestMaxDepth(t *testing.T) {
	nest := func(depth int) map[string]any {
		g := map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}}
		for i := 0; i < depth; i++ {
			g = map[string]any{"type": "GeometryCollection", "geometries": []any{g}}
		}
		return g
	}

	_, err := NewGeoJSONSchema(WithMaxDepth(3)).Load(nest(3))
	require.NoError(t, err)

	_, err = NewGeoJSONSchema(WithMaxDepth(3)).Load(nest(4))
	assert.True(t, errors.Is(err, MaxDepth))

	_, err = NewGeoJSONSchema().Load(nest(DefaultMaxDepth + 1))
	assert.True(t, errors.Is(err, MaxDepth))
}

func TestPropertiesValidator(t *testing.T) {
	requireName := func(p Properties) error {
		if _, ok := p.GetString("name"); !ok {
			return errors.New("name is required")
		}
		return nil
	}
	schema := NewGeoJSONSchema(WithPropertiesValidator(requireName))

	obj, err := schema.Load(map[string]any{"type": "Feature", "geometry": nil, "properties": map[string]any{"name": "x"}})
	require.NoError(t, err)
	name, _ := obj.(*Feature).Properties.GetString("name")
	assert.Equal(t, "x", name)

	_, err = schema.Load(map[string]any{"type": "Feature", "geometry": nil, "properties": nil})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, InvalidField, ve.Kind)
	assert.Equal(t, "properties", ve.Path)
	assert.Equal(t, "properties: name is required", ve.Error())
}

func TestCustomBounds(t *testing.T) {
	schema := NewGeoJSONSchema(WithBounds(Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10}))
	_, err := schema.Load(map[string]any{"type": "Point", "coordinates": []any{50.0, 50.0}, "bbox": []any{0.0, 0.0, 20.0, 5.0}})
	assert.True(t, errors.Is(err, BoundingBox))
	assert.Equal(t, 10.0, schema.Options().Bounds.MaxLon)
}

func TestNativeGoInput(t *testing.T) {
	obj, err := NewGeoJSONSchema().Load(map[string]any{
		"type":        "Polygon",
		"coordinates": [][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]Position{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, obj.(*Polygon).Coordinates)
}

func TestDumpRejectsNilMembers(t *testing.T) {
	schema := NewGeoJSONSchema()

	_, err := schema.Dump(&GeometryCollection{Geometries: []Geometry{&Point{Coordinates: Position{0, 0}}, nil}})
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "geometries.1", ve.Path)

	_, err = schema.Dump(&FeatureCollection{Features: []*Feature{nil}})
	require.Error(t, err)

	var nilPoint *Point
	_, err = schema.Dump(nilPoint)
	assert.True(t, errors.Is(err, ShapeMismatch))
}

func TestLoadedObjectsDoNotShareCallerMaps(t *testing.T) {
	schema := NewGeoJSONSchema()
	in := map[string]any{
		"type":       "Feature",
		"geometry":   nil,
		"properties": map[string]any{"a": 1.0, "tags": []any{"x"}},
		"extra":      map[string]any{"rank": 1.0},
	}

	obj, err := schema.Load(in)
	require.NoError(t, err)
	f := obj.(*Feature)

	in["properties"].(map[string]any)["a"] = 99.0
	in["properties"].(map[string]any)["tags"].([]any)[0] = "y"
	in["extra"].(map[string]any)["rank"] = 2.0

	dumped, err := schema.Dump(f)
	require.NoError(t, err)
	dumped["properties"].(map[string]any)["b"] = "injected"
	dumped["extra"].(map[string]any)["rank"] = 3.0

	assert.Equal(t, Properties{"a": 1.0, "tags": []any{"x"}}, f.Properties)
	assert.Equal(t, map[string]any{"extra": map[string]any{"rank": 1.0}}, f.Foreign)

	again, err := schema.Dump(f)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0, "tags": []any{"x"}}, again["properties"])
}

func TestPropertiesValidatorSeesCopy(t *testing.T) {
	var seen Properties
	schema := NewGeoJSONSchema(WithPropertiesValidator(func(p Properties) error {
		seen = p
		return nil
	}))

	in := map[string]any{"type": "Feature", "geometry": nil, "properties": map[string]any{"name": "x"}}
	obj, err := schema.Load(in)
	require.NoError(t, err)

	in["properties"].(map[string]any)["name"] = 1.0
	assert.Equal(t, "x", seen["name"])
	name, _ := obj.(*Feature).Properties.GetString("name")
	assert.Equal(t, "x", name)
}
