package geojson

import "strconv"

// Position is [longitude, latitude] or [longitude, latitude, altitude].
type Position []float64

// Longitude of the position, zero for an empty position such as the
// coordinates of a partially loaded Point.
func (p Position) Longitude() float64 {
	if len(p) < 1 {
		return 0
	}
	return p[0]
}

// Latitude of the position, zero when absent.
func (p Position) Latitude() float64 {
	if len(p) < 2 {
		return 0
	}
	return p[1]
}

// Altitude returns the third element and whether it is present.
func (p Position) Altitude() (float64, bool) {
	if len(p) < 3 {
		return 0, false
	}
	return p[2], true
}

// Equal reports element-wise equality.
func (p Position) Equal(o Position) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// WGS84 longitude and latitude limits, RFC 7946 section 4.
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// ValidatePosition checks arity and WGS84 ranges of a single position.
// More than three elements is rejected although RFC 7946 section 3.1.1
// only says implementations SHOULD NOT extend positions.
func ValidatePosition(v any) (Position, error) {
	arr, ok := asArray(v)
	if !ok {
		return nil, newError(InvalidField, v, "Position must be an array of numbers, got %s.", typeName(v))
	}

	if len(arr) < 2 {
		return nil, newError(CoordinateRange, v,
			"Position must have at least 2 elements (longitude, latitude), got %d.", len(arr))
	}
	if len(arr) > 3 {
		return nil, newError(CoordinateRange, v,
			"Position must have at most 3 elements (longitude, latitude, optional altitude), got %d. "+
				"According to RFC 7946 Section 3.1.1, implementations SHOULD NOT extend positions beyond three elements.",
			len(arr))
	}

	pos := make(Position, len(arr))
	for i, el := range arr {
		f, ok := asNumber(el)
		if !ok {
			err := newError(InvalidField, el, "Not a valid number.")
			return nil, atIndex(err, i)
		}
		pos[i] = f
	}

	if pos[0] < MinLongitude || pos[0] > MaxLongitude {
		return nil, newError(CoordinateRange, pos[0], "Longitude must be between -180, 180, got %v.", pos[0])
	}
	if pos[1] < MinLatitude || pos[1] > MaxLatitude {
		return nil, newError(CoordinateRange, pos[1], "Latitude must be between -90, 90, got %v.", pos[1])
	}

	return pos, nil
}

func validatePositions(v any) ([]Position, error) {
	arr, ok := asArray(v)
	if !ok {
		return nil, newError(InvalidField, v, "Not a valid list, got %s.", typeName(v))
	}

	out := make([]Position, 0, len(arr))
	for i, el := range arr {
		p, err := ValidatePosition(el)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out = append(out, p)
	}
	return out, nil
}

// ValidateLineString checks a LineString coordinate array: two or more
// positions, RFC 7946 section 3.1.4.
func ValidateLineString(v any) ([]Position, error) {
	positions, err := validatePositions(v)
	if err != nil {
		return nil, err
	}
	if len(positions) < 2 {
		return nil, newError(LineStringLength, len(positions),
			"LineString must have at least 2 coordinates (got %d). According to RFC 7946 Section 3.1.4, "+
				"LineString coordinates must be an array of two or more positions.", len(positions))
	}
	return positions, nil
}

// ValidateLinearRing checks a closed ring of four or more positions whose
// first and last positions are identical, RFC 7946 section 3.1.6.
func ValidateLinearRing(v any) ([]Position, error) {
	positions, err := validatePositions(v)
	if err != nil {
		return nil, err
	}
	if len(positions) < 4 {
		return nil, newError(Ring, len(positions), "Linear Ring length must be >=4, not %d.", len(positions))
	}

	start, end := positions[0], positions[len(positions)-1]
	if !start.Equal(end) {
		return nil, newError(Ring, []Position{start, end},
			"Linear Rings must start and end at the same coordinate. Start %s, End %s.", start, end)
	}
	return positions, nil
}

// ValidatePolygonRings checks a Polygon coordinate array: at least one
// ring, each a valid linear ring.
func ValidatePolygonRings(v any) ([][]Position, error) {
	arr, ok := asArray(v)
	if !ok {
		return nil, newError(InvalidField, v, "Not a valid list, got %s.", typeName(v))
	}
	if len(arr) == 0 {
		return nil, newError(PolygonRingCount, 0,
			"Polygon must have at least one linear ring (the exterior ring). According to RFC 7946 Section 3.1.6, "+
				"Polygon coordinates must be an array of linear ring coordinate arrays.")
	}

	rings := make([][]Position, 0, len(arr))
	for i, el := range arr {
		ring, err := ValidateLinearRing(el)
		if err != nil {
			return nil, atIndex(err, i)
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

func validateMultiLineString(v any) ([][]Position, error) {
	arr, ok := asArray(v)
	if !ok {
		return nil, newError(InvalidField, v, "Not a valid list, got %s.", typeName(v))
	}

	lines := make([][]Position, 0, len(arr))
	for i, el := range arr {
		line, err := ValidateLineString(el)
		if err != nil {
			return nil, atIndex(err, i)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func validateMultiPolygon(v any) ([][][]Position, error) {
	arr, ok := asArray(v)
	if !ok {
		return nil, newError(InvalidField, v, "Not a valid list, got %s.", typeName(v))
	}

	polygons := make([][][]Position, 0, len(arr))
	for i, el := range arr {
		rings, err := ValidatePolygonRings(el)
		if err != nil {
			return nil, atIndex(err, i)
		}
		polygons = append(polygons, rings)
	}
	return polygons, nil
}

// String formats p as a JSON array.
func (p Position) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '[')
	for i, f := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
	}
	return string(append(buf, ']'))
}
