package geojson

import (
	"encoding/json"
	"math"
	"reflect"
)

// asObject accepts map[string]any and any other map keyed by strings.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Properties:
		return map[string]any(m), true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if rv.IsNil() {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asArray accepts []any and any other slice or array, so callers may pass
// natively typed values such as [][]float64.
func asArray(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case nil:
		return nil, false
	case string, json.Number:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asNumber converts any JSON-representable number. Booleans are not numbers.
func asNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isNumber(v any) bool {
	_, ok := asNumber(v)
	return ok
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := asObject(v); ok {
		return "object"
	}
	if _, ok := asArray(v); ok {
		return "array"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	if isNumber(v) {
		return "number"
	}
	return reflect.TypeOf(v).String()
}

// cloneValue deep-copies the mappings and sequences of a generic value so
// a loaded or dumped object shares no mutable state with its caller.
// Natively typed maps and slices come back in generic form.
func cloneValue(v any) any {
	switch v := v.(type) {
	case nil, string, bool, json.Number, float64, float32,
		int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return v
	case map[string]any:
		return cloneMap(v)
	case Properties:
		return cloneMap(v)
	case []any:
		return cloneSlice(v)
	}
	if m, ok := asObject(v); ok {
		return cloneMap(m)
	}
	if s, ok := asArray(v); ok {
		return cloneSlice(s)
	}
	return v
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, el := range m {
		out[k] = cloneValue(el)
	}
	return out
}

func cloneSlice(s []any) []any {
	out := make([]any, len(s))
	for i, el := range s {
		out[i] = cloneValue(el)
	}
	return out
}
