package geojson

// Object is any of the nine GeoJSON object types. The concrete types are
// the pointer types declared in this file.
type Object interface {
	Type() ObjectType
	// Box returns the bbox member, nil when absent.
	Box() BBox
	object()
}

// Geometry is one of the seven geometry objects.
type Geometry interface {
	Object
	geometry()
}

// Point geometry, RFC 7946 section 3.1.2.
type Point struct {
	Coordinates Position
	BBox        BBox
	// Foreign holds members this schema does not declare.
	Foreign map[string]any
}

// MultiPoint geometry, RFC 7946 section 3.1.3.
type MultiPoint struct {
	Coordinates []Position
	BBox        BBox
	Foreign     map[string]any
}

// LineString geometry, RFC 7946 section 3.1.4.
type LineString struct {
	Coordinates []Position
	BBox        BBox
	Foreign     map[string]any
}

// MultiLineString geometry, RFC 7946 section 3.1.5.
type MultiLineString struct {
	Coordinates [][]Position
	BBox        BBox
	Foreign     map[string]any
}

// Polygon geometry, RFC 7946 section 3.1.6. The first ring is the
// exterior ring.
type Polygon struct {
	Coordinates [][]Position
	BBox        BBox
	Foreign     map[string]any
}

// MultiPolygon geometry, RFC 7946 section 3.1.7.
type MultiPolygon struct {
	Coordinates [][][]Position
	BBox        BBox
	Foreign     map[string]any
}

// GeometryCollection, RFC 7946 section 3.1.8. It may nest other
// collections.
type GeometryCollection struct {
	Geometries []Geometry
	BBox       BBox
	Foreign    map[string]any
}

// Feature, RFC 7946 section 3.2.
type Feature struct {
	// Geometry is nil for an unlocated feature ("geometry": null).
	Geometry Geometry
	// Properties is nil for "properties": null.
	Properties Properties
	// ID is a string or a number, nil when absent.
	ID      any
	BBox    BBox
	Foreign map[string]any
}

// FeatureCollection, RFC 7946 section 3.3.
type FeatureCollection struct {
	Features []*Feature
	BBox     BBox
	Foreign  map[string]any
}

func (*Point) Type() ObjectType              { return TypePoint }
func (*MultiPoint) Type() ObjectType         { return TypeMultiPoint }
func (*LineString) Type() ObjectType         { return TypeLineString }
func (*MultiLineString) Type() ObjectType    { return TypeMultiLineString }
func (*Polygon) Type() ObjectType            { return TypePolygon }
func (*MultiPolygon) Type() ObjectType       { return TypeMultiPolygon }
func (*GeometryCollection) Type() ObjectType { return TypeGeometryCollection }
func (*Feature) Type() ObjectType            { return TypeFeature }
func (*FeatureCollection) Type() ObjectType  { return TypeFeatureCollection }

func (g *Point) Box() BBox              { return g.BBox }
func (g *MultiPoint) Box() BBox         { return g.BBox }
func (g *LineString) Box() BBox         { return g.BBox }
func (g *MultiLineString) Box() BBox    { return g.BBox }
func (g *Polygon) Box() BBox            { return g.BBox }
func (g *MultiPolygon) Box() BBox       { return g.BBox }
func (g *GeometryCollection) Box() BBox { return g.BBox }
func (f *Feature) Box() BBox            { return f.BBox }
func (f *FeatureCollection) Box() BBox  { return f.BBox }

func (*Point) object()              {}
func (*MultiPoint) object()         {}
func (*LineString) object()         {}
func (*MultiLineString) object()    {}
func (*Polygon) object()            {}
func (*MultiPolygon) object()       {}
func (*GeometryCollection) object() {}
func (*Feature) object()            {}
func (*FeatureCollection) object()  {}

func (*Point) geometry()              {}
func (*MultiPoint) geometry()         {}
func (*LineString) geometry()         {}
func (*MultiLineString) geometry()    {}
func (*Polygon) geometry()            {}
func (*MultiPolygon) geometry()       {}
func (*GeometryCollection) geometry() {}
