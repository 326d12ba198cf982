package geojson

// Properties is the opaque "properties" member of a Feature. Values are
// passed through untouched; nil stands for JSON null.
type Properties map[string]any

// PropertiesValidator lets callers layer a stricter schema over feature
// properties. It is called with nil for "properties": null.
type PropertiesValidator func(Properties) error

func loadProperties(v any, validate PropertiesValidator) (Properties, error) {
	var props Properties
	if v != nil {
		m, ok := asObject(v)
		if !ok {
			return nil, newError(InvalidField, v, "Not a valid mapping type, got %s.", typeName(v))
		}
		props = Properties(cloneMap(m))
	}

	if validate != nil {
		if err := validate(props); err != nil {
			if KindOf(err) == 0 {
				return nil, newError(InvalidField, err, "%s", err.Error())
			}
			return nil, err
		}
	}
	return props, nil
}

// Get returns the property stored under key.
func (p Properties) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// GetString returns the property under key when it is a string.
func (p Properties) GetString(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}
