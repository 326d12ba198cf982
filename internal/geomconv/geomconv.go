// Package geomconv converts validated GeoJSON geometries to and from
// github.com/twpayne/go-geom values.
package geomconv

import (
	"errors"
	"fmt"
	"math"

	"github.com/woozymasta/geoschema/geojson"

	"github.com/twpayne/go-geom"
)

// ToGeom converts g into the matching go-geom type. A geometry that mixes
// 2D and 3D positions gets the XYZ layout with a zero altitude for the 2D
// positions.
func ToGeom(g geojson.Geometry) (geom.T, error) {
	switch g := g.(type) {
	case *geojson.Point:
		layout := layoutOf([]geojson.Position{g.Coordinates})
		return geom.NewPoint(layout).SetCoords(coord(g.Coordinates, layout))
	case *geojson.MultiPoint:
		layout := layoutOf(g.Coordinates)
		return geom.NewMultiPoint(layout).SetCoords(coords1(g.Coordinates, layout))
	case *geojson.LineString:
		layout := layoutOf(g.Coordinates)
		return geom.NewLineString(layout).SetCoords(coords1(g.Coordinates, layout))
	case *geojson.MultiLineString:
		layout := layoutOf(flatten2(g.Coordinates))
		return geom.NewMultiLineString(layout).SetCoords(coords2(g.Coordinates, layout))
	case *geojson.Polygon:
		layout := layoutOf(flatten2(g.Coordinates))
		return geom.NewPolygon(layout).SetCoords(coords2(g.Coordinates, layout))
	case *geojson.MultiPolygon:
		var all []geojson.Position
		for _, p := range g.Coordinates {
			all = append(all, flatten2(p)...)
		}
		layout := layoutOf(all)
		coords := make([][][]geom.Coord, len(g.Coordinates))
		for i, p := range g.Coordinates {
			coords[i] = coords2(p, layout)
		}
		return geom.NewMultiPolygon(layout).SetCoords(coords)
	case *geojson.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for i, child := range g.Geometries {
			t, err := ToGeom(child)
			if err != nil {
				return nil, fmt.Errorf("geometries.%d: %w", i, err)
			}
			if err := gc.Push(t); err != nil {
				return nil, fmt.Errorf("geometries.%d: %w", i, err)
			}
		}
		return gc, nil
	case nil:
		return nil, errors.New("nil geometry")
	}
	return nil, fmt.Errorf("unsupported geometry %T", g)
}

// FromGeom converts t back and validates the result with the geometries
// schema, so out of range coordinates or open rings are rejected.
func FromGeom(t geom.T) (geojson.Geometry, error) {
	raw, err := generic(t)
	if err != nil {
		return nil, err
	}
	obj, err := geojson.NewGeometriesSchema().Load(raw)
	if err != nil {
		return nil, err
	}
	return obj.(geojson.Geometry), nil
}

func generic(t geom.T) (map[string]any, error) {
	switch t.Layout() {
	case geom.XY, geom.XYZ, geom.NoLayout:
	default:
		return nil, fmt.Errorf("unsupported layout %v", t.Layout())
	}

	switch t := t.(type) {
	case *geom.Point:
		return object(geojson.TypePoint, "coordinates", floats(t.Coords())), nil
	case *geom.MultiPoint:
		return object(geojson.TypeMultiPoint, "coordinates", list1(t.Coords())), nil
	case *geom.LineString:
		return object(geojson.TypeLineString, "coordinates", list1(t.Coords())), nil
	case *geom.MultiLineString:
		return object(geojson.TypeMultiLineString, "coordinates", list2(t.Coords())), nil
	case *geom.Polygon:
		return object(geojson.TypePolygon, "coordinates", list2(t.Coords())), nil
	case *geom.MultiPolygon:
		polygons := t.Coords()
		out := make([]any, len(polygons))
		for i, p := range polygons {
			out[i] = list2(p)
		}
		return object(geojson.TypeMultiPolygon, "coordinates", out), nil
	case *geom.GeometryCollection:
		geoms := t.Geoms()
		out := make([]any, len(geoms))
		for i, child := range geoms {
			m, err := generic(child)
			if err != nil {
				return nil, fmt.Errorf("geometries.%d: %w", i, err)
			}
			out[i] = m
		}
		return object(geojson.TypeGeometryCollection, "geometries", out), nil
	}
	return nil, fmt.Errorf("unsupported geometry %T", t)
}

func object(t geojson.ObjectType, member string, v any) map[string]any {
	return map[string]any{"type": string(t), member: v}
}

func layoutOf(positions []geojson.Position) geom.Layout {
	for _, p := range positions {
		if len(p) > 2 {
			return geom.XYZ
		}
	}
	return geom.XY
}

func flatten2(rings [][]geojson.Position) []geojson.Position {
	var out []geojson.Position
	for _, r := range rings {
		out = append(out, r...)
	}
	return out
}

// coord copies p, padded with zeros to the stride of layout.
func coord(p geojson.Position, layout geom.Layout) geom.Coord {
	c := make(geom.Coord, layout.Stride())
	copy(c, p)
	return c
}

func coords1(ps []geojson.Position, layout geom.Layout) []geom.Coord {
	out := make([]geom.Coord, len(ps))
	for i, p := range ps {
		out[i] = coord(p, layout)
	}
	return out
}

func coords2(rings [][]geojson.Position, layout geom.Layout) [][]geom.Coord {
	out := make([][]geom.Coord, len(rings))
	for i, r := range rings {
		out[i] = coords1(r, layout)
	}
	return out
}

func floats(c geom.Coord) []any {
	out := make([]any, len(c))
	for i, f := range c {
		out[i] = f
	}
	return out
}

func list1(cs []geom.Coord) []any {
	out := make([]any, len(cs))
	for i, c := range cs {
		out[i] = floats(c)
	}
	return out
}

func list2(rings [][]geom.Coord) []any {
	out := make([]any, len(rings))
	for i, r := range rings {
		out[i] = list1(r)
	}
	return out
}

// Summary describes a geometry for diagnostics.
type Summary struct {
	Layout string `json:"layout" yaml:"layout"`
	// Bounds is [minx, miny, maxx, maxy], nil for an empty geometry.
	Bounds    []float64 `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Positions int       `json:"positions" yaml:"positions"`
	Parts     int       `json:"parts" yaml:"parts"`
}

// Summarize reports the layout, extent and size of t.
func Summarize(t geom.T) Summary {
	s := Summary{
		Layout:    layoutName(t.Layout()),
		Positions: countPositions(t),
		Parts:     1,
	}

	switch t := t.(type) {
	case *geom.MultiPoint:
		s.Parts = t.NumPoints()
	case *geom.MultiLineString:
		s.Parts = t.NumLineStrings()
	case *geom.Polygon:
		s.Parts = t.NumLinearRings()
	case *geom.MultiPolygon:
		s.Parts = t.NumPolygons()
	case *geom.GeometryCollection:
		s.Parts = t.NumGeoms()
	}

	if s.Positions > 0 {
		s.Bounds = extent(t, nil)
	}
	return s
}

// extent grows box, [minx, miny, maxx, maxy], by t. Collections are
// walked child by child since go-geom cannot flatten nested collections.
func extent(t geom.T, box []float64) []float64 {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			box = extent(child, box)
		}
		return box
	}
	if len(t.FlatCoords()) == 0 {
		return box
	}

	b := t.Bounds()
	if box == nil {
		return []float64{b.Min(0), b.Min(1), b.Max(0), b.Max(1)}
	}
	box[0] = math.Min(box[0], b.Min(0))
	box[1] = math.Min(box[1], b.Min(1))
	box[2] = math.Max(box[2], b.Max(0))
	box[3] = math.Max(box[3], b.Max(1))
	return box
}

func countPositions(t geom.T) int {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		n := 0
		for _, child := range gc.Geoms() {
			n += countPositions(child)
		}
		return n
	}
	if t.Stride() == 0 {
		return 0
	}
	return len(t.FlatCoords()) / t.Stride()
}

func layoutName(l geom.Layout) string {
	switch l {
	case geom.XY:
		return "XY"
	case geom.XYZ:
		return "XYZ"
	case geom.NoLayout:
		return "empty"
	}
	return l.String()
}
