package geojson

import "reflect"

// dumpObject converts obj to the generic value tree accepted by load.
// Foreign members are written first so declared members always win.
func dumpObject(obj Object) (map[string]any, error) {
	if isNilObject(obj) {
		return nil, newError(InvalidField, nil, "Field may not be null.")
	}

	out := make(map[string]any, 4)
	var (
		foreign map[string]any
		err     error
	)

	switch o := obj.(type) {
	case *Point:
		foreign = o.Foreign
		if o.Coordinates != nil {
			out["coordinates"] = positionValue(o.Coordinates)
		}
	case *MultiPoint:
		foreign = o.Foreign
		if o.Coordinates != nil {
			out["coordinates"] = positionsValue(o.Coordinates)
		}
	case *LineString:
		foreign = o.Foreign
		if o.Coordinates != nil {
			out["coordinates"] = positionsValue(o.Coordinates)
		}
	case *MultiLineString:
		foreign = o.Foreign
		if o.Coordinates != nil {
			out["coordinates"] = ringsValue(o.Coordinates)
		}
	case *Polygon:
		foreign = o.Foreign
		if o.Coordinates != nil {
			out["coordinates"] = ringsValue(o.Coordinates)
		}
	case *MultiPolygon:
		foreign = o.Foreign
		if o.Coordinates != nil {
			polygons := make([]any, len(o.Coordinates))
			for i, rings := range o.Coordinates {
				polygons[i] = ringsValue(rings)
			}
			out["coordinates"] = polygons
		}
	case *GeometryCollection:
		foreign = o.Foreign
		if o.Geometries != nil {
			geometries := make([]any, len(o.Geometries))
			for i, g := range o.Geometries {
				if geometries[i], err = dumpObject(g); err != nil {
					return nil, atPath(atIndex(err, i), "geometries")
				}
			}
			out["geometries"] = geometries
		}
	case *Feature:
		foreign = o.Foreign
		out["geometry"] = nil
		if o.Geometry != nil && !isNilObject(o.Geometry) {
			if out["geometry"], err = dumpObject(o.Geometry); err != nil {
				return nil, atPath(err, "geometry")
			}
		}
		if o.Properties != nil {
			out["properties"] = cloneMap(o.Properties)
		} else {
			out["properties"] = nil
		}
		if o.ID != nil {
			out["id"] = o.ID
		}
	case *FeatureCollection:
		foreign = o.Foreign
		if o.Features != nil {
			features := make([]any, len(o.Features))
			for i, f := range o.Features {
				if features[i], err = dumpObject(f); err != nil {
					return nil, atPath(atIndex(err, i), "features")
				}
			}
			out["features"] = features
		}
	default:
		return nil, unknownObjectClass(string(obj.Type()))
	}

	for k, v := range foreign {
		if _, ok := out[k]; !ok && !isDeclared(obj.Type(), k) {
			out[k] = cloneValue(v)
		}
	}
	out["type"] = string(obj.Type())
	if box := obj.Box(); box != nil {
		out["bbox"] = floatsValue(box)
	}
	return out, nil
}

func isNilObject(obj Object) bool {
	if obj == nil {
		return true
	}
	rv := reflect.ValueOf(obj)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func floatsValue(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

func positionValue(p Position) []any { return floatsValue(p) }

func positionsValue(ps []Position) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = positionValue(p)
	}
	return out
}

func ringsValue(rings [][]Position) []any {
	out := make([]any, len(rings))
	for i, r := range rings {
		out[i] = positionsValue(r)
	}
	return out
}
