package geojson

// BBox is a bounding box: [west, south, east, north] or
// [west, south, depth, east, north, height], RFC 7946 section 5.
// A nil BBox means the member is absent.
type BBox []float64

// Bounds limits the longitude and latitude values a bbox may hold.
type Bounds struct {
	MinLon float64 `yaml:"min_lon"`
	MaxLon float64 `yaml:"max_lon"`
	MinLat float64 `yaml:"min_lat"`
	MaxLat float64 `yaml:"max_lat"`
}

// WGS84 are the default bounds.
var WGS84 = Bounds{
	MinLon: MinLongitude,
	MaxLon: MaxLongitude,
	MinLat: MinLatitude,
	MaxLat: MaxLatitude,
}

// IsZero reports whether b is unset.
func (b Bounds) IsZero() bool { return b == Bounds{} }

// ValidateBBox checks a bbox member against b. Length must be 2, 4 or 6.
// A west longitude greater than the east one is accepted as an
// antimeridian crossing when the resulting span stays below 360 degrees.
func ValidateBBox(v any, b Bounds) (BBox, error) {
	if b.IsZero() {
		b = WGS84
	}

	arr, ok := asArray(v)
	if !ok {
		return nil, newError(InvalidField, v, "Not a valid list, got %s.", typeName(v))
	}

	box := make(BBox, len(arr))
	for i, el := range arr {
		f, ok := asNumber(el)
		if !ok {
			return nil, atIndex(newError(InvalidField, el, "Bounding box must contain only numeric values."), i)
		}
		box[i] = f
	}

	switch len(box) {
	case 2:
		// no positional semantics for a one dimensional box
	case 4:
		if err := b.check2D(box[0], box[1], box[2], box[3]); err != nil {
			return nil, err
		}
	case 6:
		if err := b.check2D(box[0], box[1], box[3], box[4]); err != nil {
			return nil, err
		}
		if depth, height := box[2], box[5]; depth > height {
			return nil, newError(BoundingBox, box, "Bounding box depth (%v) must be <= height (%v).", depth, height)
		}
	default:
		return nil, newError(BoundingBox, len(box),
			"Bounding box must have 2, 4, or 6 elements (got %d). According to RFC 7946, "+
				"bbox length must be 2*n where n is the number of dimensions.", len(box))
	}

	return box, nil
}

func (b Bounds) check2D(west, south, east, north float64) error {
	if west < b.MinLon || west > b.MaxLon {
		return newError(BoundingBox, west, "Bounding box west longitude must be in [%v, %v], got %v.", b.MinLon, b.MaxLon, west)
	}
	if east < b.MinLon || east > b.MaxLon {
		return newError(BoundingBox, east, "Bounding box east longitude must be in [%v, %v], got %v.", b.MinLon, b.MaxLon, east)
	}
	if south < b.MinLat || south > b.MaxLat {
		return newError(BoundingBox, south, "Bounding box south latitude must be in [%v, %v], got %v.", b.MinLat, b.MaxLat, south)
	}
	if north < b.MinLat || north > b.MaxLat {
		return newError(BoundingBox, north, "Bounding box north latitude must be in [%v, %v], got %v.", b.MinLat, b.MaxLat, north)
	}

	if north < south {
		return newError(BoundingBox, []float64{south, north},
			"Bounding box north latitude (%v) must be >= south latitude (%v). "+
				"According to RFC 7946 Section 5.3, even pole cases follow this rule.", north, south)
	}

	if west > east {
		span := (180 - west) + (east + 180)
		if span >= 360 {
			return newError(BoundingBox, []float64{west, east},
				"Bounding box with antimeridian crossing: west (%v) > east (%v) but span is >= 360 degrees, which is invalid.",
				west, east)
		}
	}
	return nil
}
