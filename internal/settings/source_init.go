package settings

// InitSource supplies values passed explicitly by the caller, the equivalent
// of constructor arguments. It has the highest priority.
type InitSource struct {
	schema Schema
	values map[string]any
}

// NewInitSource returns an [InitSource] for values. Keys may be either the
// resolved key of a field or its declared name.
func NewInitSource(schema Schema, values map[string]any) *InitSource {
	return &InitSource{schema: schema, values: values}
}

// Name returns "init".
func (s *InitSource) Name() string { return "init" }

// Load returns the supplied values keyed by resolved field key. Keys that do
// not name a schema field and nil values are dropped. When a field is given
// both by resolved key and by declared name, the resolved key wins.
func (s *InitSource) Load() (map[string]any, error) {
	out := make(map[string]any, len(s.values))
	for name, value := range s.values {
		field, ok := s.schema.Field(name)
		if !ok || value == nil {
			continue
		}

		key := field.Key()
		if name != key {
			if v, dup := s.values[key]; dup && v != nil {
				continue
			}
		}
		out[key] = Normalize(value)
	}
	return out, nil
}
