// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hocon

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	gohocon "github.com/gurkankaymak/hocon"
)

// Node is a value of a parsed configuration tree. It is one of [Scalar],
// [Mapping] or [Sequence]; a nil Node means the value is absent.
type Node interface {
	// Plain returns the node as plain Go values: map[string]any, []any or
	// the scalar value itself.
	Plain() any

	node()
}

// Scalar is a single value: string, int, float64 or bool. Durations such as
// `30s` are kept as their string form.
// Inside a [Sequence], a HOCON null is kept as a Scalar with a nil Value.
type Scalar struct {
	Value any
}

// Mapping is a nested object. HOCON null members are not stored.
type Mapping map[string]Node

// Sequence is an ordered list.
type Sequence []Node

func (Scalar) node()   {}
func (Mapping) node()  {}
func (Sequence) node() {}

// Plain returns the scalar value.
func (s Scalar) Plain() any { return s.Value }

// Plain returns a deep copy of m with every node converted.
func (m Mapping) Plain() any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Plain()
	}
	return out
}

// Plain returns a deep copy of s with every node converted.
func (s Sequence) Plain() any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v.Plain()
	}
	return out
}

// Keys returns the keys of m in sorted order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IsComplex reports whether n is a [Mapping] or a [Sequence].
func IsComplex(n Node) bool {
	switch n.(type) {
	case Mapping, Sequence:
		return true
	default:
		return false
	}
}

// Tree is a parsed HOCON document. It is read-only after parsing.
type Tree struct {
	root Mapping
}

// ParseFile parses the HOCON file at path.
func ParseFile(path string) (*Tree, error) {
	cfg, err := gohocon.ParseResource(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParse, path, err)
	}
	return fromConfig(cfg)
}

// ParseString parses a HOCON document held in memory.
func ParseString(input string) (*Tree, error) {
	cfg, err := gohocon.ParseString(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromConfig(cfg)
}

func fromConfig(cfg *gohocon.Config) (*Tree, error) {
	root := cfg.GetRoot()
	if root == nil {
		return &Tree{root: Mapping{}}, nil
	}

	obj, ok := root.(gohocon.Object)
	if !ok {
		return nil, fmt.Errorf("%w: root value must be an object", ErrParse)
	}
	return &Tree{root: convertObject(obj)}, nil
}

// Get returns the top-level value stored under key, or nil when absent.
func (t *Tree) Get(key string) Node {
	n, ok := t.root[key]
	if !ok {
		return nil
	}
	return n
}

// Root returns the top-level mapping of the tree.
func (t *Tree) Root() Mapping {
	return t.root
}

func convertObject(obj gohocon.Object) Mapping {
	m := make(Mapping, len(obj))
	for k, v := range obj {
		if n := convert(v); n != nil {
			m[k] = n
		}
	}
	return m
}

func convert(v gohocon.Value) Node {
	switch val := v.(type) {
	case nil:
		return nil
	case gohocon.Object:
		return convertObject(val)
	case gohocon.Array:
		seq := make(Sequence, 0, len(val))
		for _, item := range val {
			n := convert(item)
			if n == nil {
				n = Scalar{}
			}
			seq = append(seq, n)
		}
		return seq
	case gohocon.String:
		return Scalar{Value: string(val)}
	case gohocon.Int:
		return Scalar{Value: int(val)}
	case gohocon.Float64:
		return Scalar{Value: float64(val)}
	case gohocon.Boolean:
		return Scalar{Value: bool(val)}
	case gohocon.Duration:
		return Scalar{Value: time.Duration(val).String()}
	default:
		switch val.Type() {
		case gohocon.NullType:
			return nil
		case gohocon.ConcatenationType:
			return Scalar{Value: concatenate(val)}
		}
		return Scalar{Value: val.String()}
	}
}

// concatenate joins the pieces of a value concatenation such as
// `name = my service` or `a = "x" "y"`. The parser's concatenation type is
// unexported, so its elements are reached through reflection. Quoted pieces
// contribute their content and the whitespace between pieces is kept.
func concatenate(v gohocon.Value) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return v.String()
	}

	var b strings.Builder
	for i := range rv.Len() {
		item, ok := rv.Index(i).Interface().(gohocon.Value)
		if !ok || item == nil {
			continue
		}

		switch piece := item.(type) {
		case gohocon.String:
			b.WriteString(string(piece))
		case gohocon.Duration:
			b.WriteString(time.Duration(piece).String())
		default:
			if item.Type() == gohocon.NullType {
				continue
			}
			b.WriteString(item.String())
		}
	}
	return b.String()
}
