package settings

import (
	"encoding/json"
	"fmt"
)

// PrepareFieldValue applies the standard preparation to a raw field value
// before it is merged: when the value is present and either the field is
// declared complex or the value itself is complex, it is passed through
// decoder.DecodeComplex. The result is then normalized so that any [Plainer]
// values left inside it become plain Go values.
//
// A nil value is returned unchanged and means "absent".
func PrepareFieldValue(decoder ComplexDecoder, field Field, value any, isComplex bool) (any, error) {
	if value == nil {
		return nil, nil
	}

	if field.IsComplex() || isComplex {
		decoded, err := decoder.DecodeComplex(field, value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Key(), err)
		}
		value = decoded
	}

	return Normalize(value), nil
}

// Normalize recursively replaces [Plainer] values with their plain form and
// copies nested maps and slices.
func Normalize(value any) any {
	switch v := value.(type) {
	case Plainer:
		return Normalize(v.Plain())
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	default:
		return value
	}
}

// DecodeJSON decodes s as a JSON document.
//
// Returns an error wrapping both [ErrDecode] and the underlying
// *json.SyntaxError or *json.UnmarshalTypeError.
func DecodeJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// stringDecoder decodes complex values of string-based sources (env, dotenv,
// secrets): strings are JSON documents, anything else is kept as is.
type stringDecoder struct{}

func (stringDecoder) DecodeComplex(_ Field, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	return DecodeJSON(s)
}
