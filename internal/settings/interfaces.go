package settings

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source supplies a partial mapping of resolved field key to value.
//
// Load is called once per settings construction. Keys absent from the
// returned mapping are left for lower-priority sources or struct defaults.
type Source interface {
	// Name identifies the source in logs and errors (e.g. "env", "hocon").
	Name() string

	// Load returns the values the source holds for the schema's fields.
	Load() (map[string]any, error)
}

// ComplexDecoder converts a raw value of a complex field into plain Go
// containers. Each source decides how its own raw values are decoded.
type ComplexDecoder interface {
	DecodeComplex(field Field, value any) (any, error)
}

// Plainer is implemented by source-specific value types (such as parsed
// configuration tree nodes) that can be converted into plain Go values:
// map[string]any, []any or a scalar.
type Plainer interface {
	Plain() any
}
