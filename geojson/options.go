package geojson

import "fmt"

// UnknownPolicy decides what happens to members a schema does not declare.
type UnknownPolicy string

// Unknown member policies.
const (
	// UnknownInclude keeps foreign members in Foreign and dumps them back.
	UnknownInclude UnknownPolicy = "include"
	// UnknownExclude drops foreign members.
	UnknownExclude UnknownPolicy = "exclude"
	// UnknownRaise rejects objects with foreign members.
	UnknownRaise UnknownPolicy = "raise"
)

// DefaultMaxDepth bounds GeometryCollection nesting.
const DefaultMaxDepth = 32

// ParseUnknownPolicy parses "include", "exclude" or "raise". The empty
// string yields UnknownInclude.
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch p := UnknownPolicy(s); p {
	case "":
		return UnknownInclude, nil
	case UnknownInclude, UnknownExclude, UnknownRaise:
		return p, nil
	}
	return "", fmt.Errorf("unknown field policy %q, expected include, exclude or raise", s)
}

// Options control how a Schema loads and dumps objects.
type Options struct {
	// Many selects batch mode for Decode and Encode.
	Many bool
	// Partial skips required-member checks for every member except "type".
	Partial bool
	// PartialFields skips required-member checks for the named members only.
	PartialFields []string
	Unknown       UnknownPolicy
	// MaxDepth limits GeometryCollection nesting, DefaultMaxDepth when zero.
	MaxDepth int
	// Bounds used for bbox validation, WGS84 when zero.
	Bounds     Bounds
	Properties PropertiesValidator
}

// Option configures Options.
type Option func(*Options)

// WithMany enables batch mode.
func WithMany(many bool) Option {
	return func(o *Options) { o.Many = many }
}

// WithPartial allows the named required members to be missing. Without
// arguments every required member except "type" may be missing.
func WithPartial(fields ...string) Option {
	return func(o *Options) {
		if len(fields) == 0 {
			o.Partial = true
			return
		}
		o.PartialFields = append(o.PartialFields, fields...)
	}
}

// WithUnknown sets the unknown member policy.
func WithUnknown(p UnknownPolicy) Option {
	return func(o *Options) { o.Unknown = p }
}

// WithMaxDepth sets the GeometryCollection nesting limit.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// WithBounds sets the bbox longitude and latitude limits.
func WithBounds(b Bounds) Option {
	return func(o *Options) { o.Bounds = b }
}

// WithPropertiesValidator installs a validator for Feature properties.
func WithPropertiesValidator(fn PropertiesValidator) Option {
	return func(o *Options) { o.Properties = fn }
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Unknown == "" {
		o.Unknown = UnknownInclude
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Bounds.IsZero() {
		o.Bounds = WGS84
	}
	return o
}

func (o *Options) isPartial(field string) bool {
	if o.Partial {
		return true
	}
	for _, f := range o.PartialFields {
		if f == field {
			return true
		}
	}
	return false
}
