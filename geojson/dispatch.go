package geojson

// Schema routes generic input to the per-type schema named by its "type"
// member. A geometries schema only knows the seven geometry types, a
// GeoJSON schema all nine.
type Schema struct {
	opts Options
	all  bool
}

// NewGeoJSONSchema returns a schema dispatching to all nine GeoJSON types.
func NewGeoJSONSchema(opts ...Option) *Schema {
	return &Schema{opts: newOptions(opts), all: true}
}

// NewGeometriesSchema returns a schema dispatching to the seven geometry
// types only. Feature and FeatureCollection are UnknownObjectClass.
func NewGeometriesSchema(opts ...Option) *Schema {
	return &Schema{opts: newOptions(opts)}
}

// Options returns a copy of the schema options.
func (s *Schema) Options() Options { return s.opts }

// Types returns the object types the schema dispatches to.
func (s *Schema) Types() []ObjectType {
	if s.all {
		return GeoJSONTypes()
	}
	return GeometryTypes()
}

// GetSchema returns the per-type schema for tag.
func (s *Schema) GetSchema(tag string) (TypeSchema, error) {
	t, err := s.classify(tag)
	if err != nil {
		return nil, err
	}
	return &typeSchema{typ: t, opts: &s.opts}, nil
}

func (s *Schema) classify(tag string) (ObjectType, error) {
	t := ObjectType(tag)
	if s.all && t.IsValid() || t.IsGeometry() {
		return t, nil
	}
	return "", unknownObjectClass(tag)
}

// Load validates a single object. Passing an array is a ShapeMismatch.
func (s *Schema) Load(data any) (Object, error) {
	raw, ok := asObject(data)
	if !ok {
		return nil, shapeMismatch(data, false)
	}
	return s.load(raw)
}

// LoadMany validates an array of objects of possibly different types.
// The first invalid element aborts the call; its index prefixes the
// error path. Passing a single object is a ShapeMismatch.
func (s *Schema) LoadMany(data any) ([]Object, error) {
	arr, ok := asArray(data)
	if !ok {
		return nil, shapeMismatch(data, true)
	}

	out := make([]Object, 0, len(arr))
	for i, el := range arr {
		raw, ok := asObject(el)
		if !ok {
			e := newError(InvalidField, el, "Invalid input type, expected an object, got %s.", typeName(el))
			return nil, atIndex(e, i)
		}
		obj, err := s.load(raw)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out = append(out, obj)
	}
	return out, nil
}

// Decode loads data honoring the Many option. In single mode the result
// holds exactly one object.
func (s *Schema) Decode(data any) ([]Object, error) {
	if s.opts.Many {
		return s.LoadMany(data)
	}
	obj, err := s.Load(data)
	if err != nil {
		return nil, err
	}
	return []Object{obj}, nil
}

func (s *Schema) load(raw map[string]any) (Object, error) {
	t, err := dispatchType(raw, s.all)
	if err != nil {
		return nil, err
	}
	l := &loader{opts: &s.opts}
	return l.load(t, raw)
}

// Dump converts a single object to its generic form, dispatching on the
// object's own type.
func (s *Schema) Dump(obj Object) (map[string]any, error) {
	if isNilObject(obj) {
		return nil, shapeMismatch(nil, false)
	}
	if _, err := s.classify(string(obj.Type())); err != nil {
		return nil, err
	}
	return dumpObject(obj)
}

// DumpMany converts objs in order.
func (s *Schema) DumpMany(objs []Object) ([]any, error) {
	if objs == nil {
		return nil, shapeMismatch(nil, true)
	}
	out := make([]any, 0, len(objs))
	for i, obj := range objs {
		m, err := s.Dump(obj)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out = append(out, m)
	}
	return out, nil
}

// Encode dumps v honoring the Many option: v must be an Object in single
// mode and a []Object in batch mode.
func (s *Schema) Encode(v any) (any, error) {
	if s.opts.Many {
		objs, ok := v.([]Object)
		if !ok {
			return nil, shapeMismatch(v, true)
		}
		return s.DumpMany(objs)
	}

	obj, ok := v.(Object)
	if !ok {
		return nil, shapeMismatch(v, false)
	}
	return s.Dump(obj)
}

func shapeMismatch(data any, many bool) *ValidationError {
	if many {
		return newError(ShapeMismatch, data, "Invalid input type, expected an array of objects, got %s.", typeName(data))
	}
	return newError(ShapeMismatch, data, "Invalid input type, expected a single object, got %s.", typeName(data))
}
