package geojson

import "sort"

// TypeSchema loads and dumps objects of exactly one GeoJSON type.
type TypeSchema interface {
	Type() ObjectType
	// Load validates raw and returns the typed object.
	Load(raw map[string]any) (Object, error)
	// Dump converts obj, which must be of Type(), to its generic form.
	Dump(obj Object) (map[string]any, error)
}

// members declared by each schema besides "type" and "bbox"
var declaredMembers = map[ObjectType][]string{
	TypePoint:              {"coordinates"},
	TypeMultiPoint:         {"coordinates"},
	TypeLineString:         {"coordinates"},
	TypeMultiLineString:    {"coordinates"},
	TypePolygon:            {"coordinates"},
	TypeMultiPolygon:       {"coordinates"},
	TypeGeometryCollection: {"geometries"},
	TypeFeature:            {"geometry", "properties", "id"},
	TypeFeatureCollection:  {"features"},
}

type typeSchema struct {
	typ  ObjectType
	opts *Options
}

func (s *typeSchema) Type() ObjectType { return s.typ }

func (s *typeSchema) Load(raw map[string]any) (Object, error) {
	l := &loader{opts: s.opts}
	return l.load(s.typ, raw)
}

func (s *typeSchema) Dump(obj Object) (map[string]any, error) {
	if isNilObject(obj) {
		return nil, newError(ShapeMismatch, nil, "Invalid input type.")
	}
	if obj.Type() != s.typ {
		return nil, invalidType(s.typ, string(obj.Type()))
	}
	return dumpObject(obj)
}

// loader carries options and nesting depth through one load call.
type loader struct {
	opts  *Options
	depth int
}

// load runs, in order, the member-exclusivity check, the type tag check,
// the type specific member checks, the bbox check and the unknown
// member policy.
func (l *loader) load(t ObjectType, raw map[string]any) (Object, error) {
	if err := CheckMembers(t, raw); err != nil {
		return nil, err
	}

	tag, ok := raw["type"]
	if !ok {
		e := newError(InvalidTypeTag, nil, "Missing data for required field.")
		e.Path = "type"
		return nil, e
	}
	if s, ok := tag.(string); !ok || s != string(t) {
		return nil, invalidType(t, tag)
	}

	var (
		obj Object
		err error
	)
	switch t {
	case TypePoint:
		obj, err = l.point(raw)
	case TypeMultiPoint:
		obj, err = l.multiPoint(raw)
	case TypeLineString:
		obj, err = l.lineString(raw)
	case TypeMultiLineString:
		obj, err = l.multiLineString(raw)
	case TypePolygon:
		obj, err = l.polygon(raw)
	case TypeMultiPolygon:
		obj, err = l.multiPolygon(raw)
	case TypeGeometryCollection:
		obj, err = l.geometryCollection(raw)
	case TypeFeature:
		obj, err = l.feature(raw)
	case TypeFeatureCollection:
		obj, err = l.featureCollection(raw)
	default:
		return nil, unknownObjectClass(string(t))
	}
	if err != nil {
		return nil, err
	}

	box, err := l.bbox(raw)
	if err != nil {
		return nil, err
	}
	foreign, err := l.foreign(t, raw)
	if err != nil {
		return nil, err
	}

	switch o := obj.(type) {
	case *Point:
		o.BBox, o.Foreign = box, foreign
	case *MultiPoint:
		o.BBox, o.Foreign = box, foreign
	case *LineString:
		o.BBox, o.Foreign = box, foreign
	case *MultiLineString:
		o.BBox, o.Foreign = box, foreign
	case *Polygon:
		o.BBox, o.Foreign = box, foreign
	case *MultiPolygon:
		o.BBox, o.Foreign = box, foreign
	case *GeometryCollection:
		o.BBox, o.Foreign = box, foreign
	case *Feature:
		o.BBox, o.Foreign = box, foreign
	case *FeatureCollection:
		o.BBox, o.Foreign = box, foreign
	}
	return obj, nil
}

// required fetches a required member. A missing member allowed by the
// partial options yields ok == false and no error.
func (l *loader) required(raw map[string]any, name string) (v any, ok bool, err error) {
	v, ok = raw[name]
	if ok {
		return v, true, nil
	}
	if l.opts.isPartial(name) {
		return nil, false, nil
	}
	return nil, false, missingField(name)
}

func (l *loader) coordinates(raw map[string]any) (any, bool, error) {
	v, ok, err := l.required(raw, "coordinates")
	if err != nil || !ok {
		return nil, false, err
	}
	if v == nil {
		e := newError(InvalidField, nil, "Field may not be null.")
		e.Path = "coordinates"
		return nil, false, e
	}
	return v, true, nil
}

func (l *loader) point(raw map[string]any) (Object, error) {
	v, ok, err := l.coordinates(raw)
	if err != nil || !ok {
		return &Point{}, err
	}
	pos, err := ValidatePosition(v)
	if err != nil {
		return nil, atPath(err, "coordinates")
	}
	return &Point{Coordinates: pos}, nil
}

func (l *loader) multiPoint(raw map[string]any) (Object, error) {
	v, ok, err := l.coordinates(raw)
	if err != nil || !ok {
		return &MultiPoint{}, err
	}
	positions, err := validatePositions(v)
	if err != nil {
		return nil, atPath(err, "coordinates")
	}
	return &MultiPoint{Coordinates: positions}, nil
}

func (l *loader) lineString(raw map[string]any) (Object, error) {
	v, ok, err := l.coordinates(raw)
	if err != nil || !ok {
		return &LineString{}, err
	}
	positions, err := ValidateLineString(v)
	if err != nil {
		return nil, atPath(err, "coordinates")
	}
	return &LineString{Coordinates: positions}, nil
}

func (l *loader) multiLineString(raw map[string]any) (Object, error) {
	v, ok, err := l.coordinates(raw)
	if err != nil || !ok {
		return &MultiLineString{}, err
	}
	lines, err := validateMultiLineString(v)
	if err != nil {
		return nil, atPath(err, "coordinates")
	}
	return &MultiLineString{Coordinates: lines}, nil
}

func (l *loader) polygon(raw map[string]any) (Object, error) {
	v, ok, err := l.coordinates(raw)
	if err != nil || !ok {
		return &Polygon{}, err
	}
	rings, err := ValidatePolygonRings(v)
	if err != nil {
		return nil, atPath(err, "coordinates")
	}
	return &Polygon{Coordinates: rings}, nil
}

func (l *loader) multiPolygon(raw map[string]any) (Object, error) {
	v, ok, err := l.coordinates(raw)
	if err != nil || !ok {
		return &MultiPolygon{}, err
	}
	polygons, err := validateMultiPolygon(v)
	if err != nil {
		return nil, atPath(err, "coordinates")
	}
	return &MultiPolygon{Coordinates: polygons}, nil
}

func (l *loader) geometryCollection(raw map[string]any) (Object, error) {
	v, ok, err := l.required(raw, "geometries")
	if err != nil || !ok {
		return &GeometryCollection{}, err
	}
	arr, ok := asArray(v)
	if !ok {
		e := newError(InvalidField, v, "Not a valid list, got %s.", typeName(v))
		return nil, atPath(e, "geometries")
	}

	l.depth++
	defer func() { l.depth-- }()
	if l.depth > l.opts.MaxDepth {
		e := newError(MaxDepth, l.depth, "GeometryCollection nesting exceeds the maximum depth of %d.", l.opts.MaxDepth)
		return nil, atPath(e, "geometries")
	}

	geometries := make([]Geometry, 0, len(arr))
	for i, el := range arr {
		g, err := l.geometry(el)
		if err != nil {
			return nil, atPath(atIndex(err, i), "geometries")
		}
		geometries = append(geometries, g)
	}
	return &GeometryCollection{Geometries: geometries}, nil
}

// geometry dispatches a nested geometry object on its "type" member.
func (l *loader) geometry(v any) (Geometry, error) {
	raw, ok := asObject(v)
	if !ok {
		return nil, newError(InvalidField, v, "Invalid input type, expected a geometry object, got %s.", typeName(v))
	}
	t, err := dispatchType(raw, false)
	if err != nil {
		return nil, err
	}
	obj, err := l.load(t, raw)
	if err != nil {
		return nil, err
	}
	return obj.(Geometry), nil
}

func (l *loader) feature(raw map[string]any) (Object, error) {
	f := &Feature{}

	v, ok, err := l.required(raw, "geometry")
	if err != nil {
		return nil, err
	}
	if ok && v != nil {
		g, err := l.geometry(v)
		if err != nil {
			return nil, atPath(err, "geometry")
		}
		f.Geometry = g
	}

	v, ok, err = l.required(raw, "properties")
	if err != nil {
		return nil, err
	}
	if ok {
		props, err := loadProperties(v, l.opts.Properties)
		if err != nil {
			return nil, atPath(err, "properties")
		}
		f.Properties = props
	}

	if id, ok := raw["id"]; ok && id != nil {
		if _, isString := id.(string); !isString && !isNumber(id) {
			e := newError(InvalidField, id, "Feature id must be a string or a number, got %s.", typeName(id))
			e.Path = "id"
			return nil, e
		}
		f.ID = id
	}

	return f, nil
}

func (l *loader) featureCollection(raw map[string]any) (Object, error) {
	v, ok, err := l.required(raw, "features")
	if err != nil || !ok {
		return &FeatureCollection{}, err
	}
	arr, ok := asArray(v)
	if !ok {
		e := newError(InvalidField, v, "Not a valid list, got %s.", typeName(v))
		return nil, atPath(e, "features")
	}

	features := make([]*Feature, 0, len(arr))
	for i, el := range arr {
		m, ok := asObject(el)
		if !ok {
			e := newError(InvalidField, el, "Invalid input type, expected a Feature object, got %s.", typeName(el))
			return nil, atPath(atIndex(e, i), "features")
		}
		obj, err := l.load(TypeFeature, m)
		if err != nil {
			return nil, atPath(atIndex(err, i), "features")
		}
		features = append(features, obj.(*Feature))
	}
	return &FeatureCollection{Features: features}, nil
}

func (l *loader) bbox(raw map[string]any) (BBox, error) {
	v, ok := raw["bbox"]
	if !ok || v == nil {
		return nil, nil
	}
	box, err := ValidateBBox(v, l.opts.Bounds)
	if err != nil {
		return nil, atPath(err, "bbox")
	}
	return box, nil
}

// foreign applies the unknown member policy. Keys are visited in sorted
// order so a raised error is deterministic.
func (l *loader) foreign(t ObjectType, raw map[string]any) (map[string]any, error) {
	if l.opts.Unknown == UnknownExclude {
		return nil, nil
	}

	var keys []string
	for k := range raw {
		if !isDeclared(t, k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	if l.opts.Unknown == UnknownRaise {
		k := keys[0]
		e := newError(UnknownField, raw[k], "Unknown field.")
		e.Path = k
		e.Member = k
		e.Owner = t
		return nil, e
	}

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = cloneValue(raw[k])
	}
	return out, nil
}

func isDeclared(t ObjectType, key string) bool {
	if key == "type" || key == "bbox" {
		return true
	}
	for _, m := range declaredMembers[t] {
		if m == key {
			return true
		}
	}
	return false
}

// dispatchType reads the "type" member of raw and classifies it.
// Feature and FeatureCollection are unknown unless all is set.
func dispatchType(raw map[string]any, all bool) (ObjectType, error) {
	tag, ok := raw["type"]
	if !ok {
		e := newError(InvalidTypeTag, nil, "Missing data for required field.")
		e.Path = "type"
		return "", e
	}
	s, ok := tag.(string)
	if !ok {
		e := newError(InvalidTypeTag, tag, "Not a valid string.")
		e.Path = "type"
		return "", e
	}

	t := ObjectType(s)
	if all && t.IsValid() || t.IsGeometry() {
		return t, nil
	}
	return "", unknownObjectClass(s)
}
