package geojson

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies a validation failure. Kind implements error so callers
// can match with errors.Is(err, geojson.Ring).
type Kind int

// Validation error kinds.
const (
	InvalidTypeTag Kind = iota + 1
	UnknownObjectClass
	ShapeMismatch
	CoordinateRange
	Ring
	PolygonRingCount
	LineStringLength
	BoundingBox
	ForbiddenMember
	UnknownField
	MissingField
	InvalidField
	MaxDepth
)

var kindNames = map[Kind]string{
	InvalidTypeTag:     "invalid_type_tag",
	UnknownObjectClass: "unknown_object_class",
	ShapeMismatch:      "shape_mismatch",
	CoordinateRange:    "coordinate_range",
	Ring:               "ring",
	PolygonRingCount:   "polygon_ring_count",
	LineStringLength:   "line_string_length",
	BoundingBox:        "bounding_box",
	ForbiddenMember:    "forbidden_member",
	UnknownField:       "unknown_field",
	MissingField:       "missing_field",
	InvalidField:       "invalid_field",
	MaxDepth:           "max_depth",
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Error implements error.
func (k Kind) Error() string { return k.String() }

// ValidationError describes the first invariant a loaded value violated.
type ValidationError struct {
	Kind Kind
	// Path is the dot-joined location of the offending member, e.g.
	// "features.1.geometry.coordinates.0". Empty for the root object.
	Path    string
	Message string
	// Value is the literal offending value when one applies.
	Value any
	// Member and Owner are set for ForbiddenMember and UnknownField.
	Member string
	Owner  ObjectType
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Unwrap exposes the Kind for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Kind }

// KindOf returns the Kind of err, or 0 when err is not a validation error.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}

func newError(kind Kind, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	}
}

// atPath prefixes the path of a validation error with segment.
func atPath(err error, segment string) error {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	if ve.Path == "" {
		ve.Path = segment
	} else {
		ve.Path = segment + "." + ve.Path
	}
	return ve
}

func atIndex(err error, i int) error {
	return atPath(err, strconv.Itoa(i))
}

func unknownObjectClass(tag any) *ValidationError {
	e := newError(UnknownObjectClass, tag, "Unknown object class for %v.", tag)
	e.Path = "type"
	return e
}

func invalidType(expected ObjectType, got any) *ValidationError {
	e := newError(InvalidTypeTag, got, "Invalid %s type: expected %q, got %v", expected, string(expected), got)
	e.Path = "type"
	return e
}

func missingField(name string) *ValidationError {
	e := newError(MissingField, nil, "Missing data for required field.")
	e.Path = name
	return e
}

func forbiddenMember(owner ObjectType, member string, defines string) *ValidationError {
	e := newError(ForbiddenMember, nil,
		"%s objects MUST NOT contain %q member. According to RFC 7946 Section 7.1, %q defines %s objects.",
		owner, member, member, defines)
	e.Path = member
	e.Member = member
	e.Owner = owner
	return e
}
