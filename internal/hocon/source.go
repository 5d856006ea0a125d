// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hocon

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-hocon-settings/internal/logger"
	"github.com/MKhiriev/go-hocon-settings/internal/settings"
)

// Source is a [settings.Source] backed by a parsed HOCON file.
type Source struct {
	schema settings.Schema
	tree   *Tree
	log    *logger.Logger
}

// NewSource parses the file at path and returns a Source for schema.
// A missing, unreadable or malformed file fails with [ErrParse].
func NewSource(schema settings.Schema, path string, log *logger.Logger) (*Source, error) {
	tree, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	src := NewTreeSource(schema, tree, log)
	src.log.Debug().Str("path", path).Strs("keys", tree.Root().Keys()).Msg("hocon file parsed")
	return src, nil
}

// NewTreeSource returns a Source over an already parsed tree.
func NewTreeSource(schema settings.Schema, tree *Tree, log *logger.Logger) *Source {
	return &Source{
		schema: schema,
		tree:   tree,
		log:    logger.OrNop(log).WithSource("hocon"),
	}
}

// Name returns "hocon".
func (s *Source) Name() string { return "hocon" }

// FieldValue looks field up at the top level of the tree by its resolved key.
//
// It returns the raw node (nil when absent), the resolved key, and whether
// the node is a mapping or a sequence.
func (s *Source) FieldValue(field settings.Field) (Node, string, bool) {
	key := field.Key()
	value := s.tree.Get(key)
	return value, key, IsComplex(value)
}

// DecodeComplex converts a complex field value into plain Go containers.
//
// A [Mapping] becomes map[string]any and a [Sequence] becomes []any, one level
// deep: scalar children are unwrapped, nested mappings and sequences are kept
// as nodes. A string, or a [Scalar] holding one, is decoded as JSON.
func (s *Source) DecodeComplex(_ settings.Field, value any) (any, error) {
	switch v := value.(type) {
	case Mapping:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = unwrap(child)
		}
		return out, nil
	case Sequence:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = unwrap(child)
		}
		return out, nil
	case map[string]any:
		return maps.Clone(v), nil
	case []any:
		return slices.Clone(v), nil
	case Scalar:
		str, ok := v.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string holding JSON, got %T", settings.ErrDecode, v.Value)
		}
		return settings.DecodeJSON(str)
	case string:
		return settings.DecodeJSON(v)
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", settings.ErrDecode, value)
	}
}

// Load returns the values of every schema field present in the tree, keyed by
// resolved key. Absent fields are omitted.
func (s *Source) Load() (map[string]any, error) {
	out := make(map[string]any)
	for _, field := range s.schema.Fields {
		raw, key, isComplex := s.FieldValue(field)

		var value any
		if raw != nil {
			value = raw
		}

		prepared, err := settings.PrepareFieldValue(s, field, value, isComplex)
		if err != nil {
			return nil, err
		}
		if prepared != nil {
			out[key] = prepared
		}
	}

	s.log.Debug().Int("fields", len(out)).Msg("source loaded")
	return out, nil
}

func unwrap(n Node) any {
	if sc, ok := n.(Scalar); ok {
		return sc.Value
	}
	return n
}
