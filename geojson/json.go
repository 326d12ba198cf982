package geojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

var defaultOptions = newOptions(nil)

// ParseJSON decodes a JSON document into the generic value tree. Numbers
// are kept as json.Number so feature ids and properties keep their
// literal form.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}
	return v, nil
}

// LoadJSON parses data and loads a single object.
func (s *Schema) LoadJSON(data []byte) (Object, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return s.Load(v)
}

// LoadManyJSON parses data and loads an array of objects.
func (s *Schema) LoadManyJSON(data []byte) ([]Object, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return s.LoadMany(v)
}

// DecodeJSON parses data and loads it honoring the Many option.
func (s *Schema) DecodeJSON(data []byte) ([]Object, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return s.Decode(v)
}

// Marshal encodes obj as JSON.
func Marshal(obj Object) ([]byte, error) {
	m, err := dumpObject(obj)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

func unmarshal(data []byte, t ObjectType) (Object, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	raw, ok := asObject(v)
	if !ok {
		return nil, shapeMismatch(v, false)
	}
	l := &loader{opts: &defaultOptions}
	return l.load(t, raw)
}

// MarshalJSON implements json.Marshaler.
func (g *Point) MarshalJSON() ([]byte, error) { return Marshal(g) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (g *Point) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypePoint)
	if err != nil {
		return err
	}
	*g = *obj.(*Point)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *MultiPoint) MarshalJSON() ([]byte, error) { return Marshal(g) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (g *MultiPoint) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypeMultiPoint)
	if err != nil {
		return err
	}
	*g = *obj.(*MultiPoint)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *LineString) MarshalJSON() ([]byte, error) { return Marshal(g) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (g *LineString) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypeLineString)
	if err != nil {
		return err
	}
	*g = *obj.(*LineString)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *MultiLineString) MarshalJSON() ([]byte, error) { return Marshal(g) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (g *MultiLineString) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypeMultiLineString)
	if err != nil {
		return err
	}
	*g = *obj.(*MultiLineString)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *Polygon) MarshalJSON() ([]byte, error) { return Marshal(g) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (g *Polygon) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypePolygon)
	if err != nil {
		return err
	}
	*g = *obj.(*Polygon)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *MultiPolygon) MarshalJSON() ([]byte, error) { return Marshal(g) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (g *MultiPolygon) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypeMultiPolygon)
	if err != nil {
		return err
	}
	*g = *obj.(*MultiPolygon)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *GeometryCollection) MarshalJSON() ([]byte, error) { return Marshal(g) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (g *GeometryCollection) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypeGeometryCollection)
	if err != nil {
		return err
	}
	*g = *obj.(*GeometryCollection)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f *Feature) MarshalJSON() ([]byte, error) { return Marshal(f) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (f *Feature) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypeFeature)
	if err != nil {
		return err
	}
	*f = *obj.(*Feature)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f *FeatureCollection) MarshalJSON() ([]byte, error) { return Marshal(f) }

// UnmarshalJSON implements json.Unmarshaler, validating the input.
func (f *FeatureCollection) UnmarshalJSON(data []byte) error {
	obj, err := unmarshal(data, TypeFeatureCollection)
	if err != nil {
		return err
	}
	*f = *obj.(*FeatureCollection)
	return nil
}
