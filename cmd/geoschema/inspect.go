package main

import (
	"fmt"
	"strconv"

	"github.com/woozymasta/geoschema/geojson"
	"github.com/woozymasta/geoschema/internal/geomconv"
)

type entry struct {
	Path             string             `json:"path"           yaml:"path"`
	Type             geojson.ObjectType `json:"type"           yaml:"type"`
	ID               any                `json:"id,omitempty"   yaml:"id,omitempty"`
	geomconv.Summary `yaml:",inline"`
}

// inspect summarizes every geometry found in objs. Features are reported
// with their geometry, collections with one entry per feature.
func inspect(objs []geojson.Object) ([]entry, error) {
	var out []entry
	for i, obj := range objs {
		entries, err := inspectObject(strconv.Itoa(i), obj)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

func inspectObject(path string, obj geojson.Object) ([]entry, error) {
	switch o := obj.(type) {
	case *geojson.FeatureCollection:
		var out []entry
		for i, f := range o.Features {
			entries, err := inspectObject(path+".features."+strconv.Itoa(i), f)
			if err != nil {
				return nil, err
			}
			out = append(out, entries...)
		}
		return out, nil
	case *geojson.Feature:
		e := entry{Path: path, Type: geojson.TypeFeature, ID: o.ID, Summary: geomconv.Summary{Layout: "empty"}}
		if o.Geometry != nil {
			t, err := geomconv.ToGeom(o.Geometry)
			if err != nil {
				return nil, fmt.Errorf("%s.geometry: %w", path, err)
			}
			e.Summary = geomconv.Summarize(t)
		}
		return []entry{e}, nil
	case geojson.Geometry:
		t, err := geomconv.ToGeom(o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []entry{{Path: path, Type: o.Type(), Summary: geomconv.Summarize(t)}}, nil
	}
	return nil, nil
}
