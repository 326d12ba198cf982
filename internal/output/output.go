// Package output renders dumped GeoJSON values as JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/tdewolff/minify/v2"
	jsonmin "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	JSON = "json"
	YAML = "yaml"
)

const jsonMediaType = "application/json"

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(jsonMediaType, jsonmin.Minify)
	return m
}

// Render encodes v in format. JSON is indented unless compact is set, in
// which case it is passed through the minifier. compact has no effect on
// YAML.
func Render(v any, format string, compact bool) ([]byte, error) {
	switch format {
	case "", JSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		if !compact {
			return data, nil
		}
		return minifier.Bytes(jsonMediaType, data)
	case YAML:
		return yaml.Marshal(plain(v))
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// ContentType returns the HTTP media type for format.
func ContentType(format string) string {
	if format == YAML {
		return "application/yaml"
	}
	return "application/geo+json"
}

// plain replaces json.Number values, which yaml.v3 would quote, with
// int64 or float64.
func plain(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, el := range v {
			out[k] = plain(el)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, el := range v {
			out[i] = plain(el)
		}
		return out
	}
	return v
}
