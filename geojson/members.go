package geojson

// forbidden pairs a member name with the object kind it defines.
type forbidden struct {
	member  string
	defines string
}

// RFC 7946 section 7.1. Slices keep the reported member deterministic.
var (
	geometryForbidden = []forbidden{
		{"geometry", "Feature"},
		{"properties", "Feature"},
		{"features", "FeatureCollection"},
	}
	featureForbidden = []forbidden{
		{"coordinates", "Geometry"},
		{"geometries", "Geometry"},
		{"features", "FeatureCollection"},
	}
	featureCollectionForbidden = []forbidden{
		{"coordinates", "Geometry"},
		{"geometries", "Geometry"},
		{"geometry", "Feature"},
		{"properties", "Feature"},
	}
)

// ForbiddenMembers returns the members an object of type t must not carry.
func ForbiddenMembers(t ObjectType) []string {
	set := forbiddenFor(t)
	out := make([]string, len(set))
	for i, f := range set {
		out[i] = f.member
	}
	return out
}

func forbiddenFor(t ObjectType) []forbidden {
	switch {
	case t == TypeFeature:
		return featureForbidden
	case t == TypeFeatureCollection:
		return featureCollectionForbidden
	case t.IsGeometry():
		return geometryForbidden
	}
	return nil
}

// CheckMembers rejects raw when it carries a member that defines a
// different kind of GeoJSON object than owner.
func CheckMembers(owner ObjectType, raw map[string]any) error {
	for _, f := range forbiddenFor(owner) {
		if _, ok := raw[f.member]; ok {
			return forbiddenMember(owner, f.member, f.defines)
		}
	}
	return nil
}
