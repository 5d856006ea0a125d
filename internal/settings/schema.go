// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Struct tags read by [FromStruct].
const (
	tagName            = "settings"
	tagAlias           = "alias"
	tagValidationAlias = "validation_alias"
	optRequired        = "required"
)

// Kind is the declared shape of a settings field.
type Kind int

const (
	// KindScalar is a single value: string, number, bool, duration.
	KindScalar Kind = iota
	// KindMapping is a nested struct or a map.
	KindMapping
	// KindSequence is a slice or an array.
	KindSequence
)

// String returns a lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Field describes a single declared settings field.
type Field struct {
	// Name is the declared field name. It is the `settings` tag value, or the
	// Go field name when the tag is absent.
	Name string
	// Alias, when set, replaces Name as the lookup and output key.
	Alias string
	// ValidationAlias is used as the key when Alias is not set.
	ValidationAlias string
	// Kind is the declared shape of the field.
	Kind Kind
	// Required fields must be supplied by at least one source.
	Required bool
}

// Key returns the resolution key of the field: the alias if set, else the
// validation alias if set, else the declared name.
func (f Field) Key() string {
	switch {
	case f.Alias != "":
		return f.Alias
	case f.ValidationAlias != "":
		return f.ValidationAlias
	default:
		return f.Name
	}
}

// HasAlias reports whether the field declares an alias or a validation alias.
func (f Field) HasAlias() bool {
	return f.Alias != "" || f.ValidationAlias != ""
}

// IsComplex reports whether the field is declared as a mapping or a sequence.
func (f Field) IsComplex() bool {
	return f.Kind == KindMapping || f.Kind == KindSequence
}

// Schema is the ordered list of fields declared by a settings struct.
type Schema struct {
	Fields []Field
}

// Field returns the field whose resolved key or declared name equals name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key() == name || f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var timeType = reflect.TypeOf(time.Time{})

// FromStruct builds a [Schema] from the exported fields of the struct pointed
// to by v.
//
// Tags:
//   - settings:"name[,required]": declared name; "-" skips the field.
//   - alias:"key": alias used for lookup and output.
//   - validation_alias:"key": used when no alias is set.
func FromStruct(v any) (Schema, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return Schema{}, fmt.Errorf("%w: expected non-nil pointer to struct, got %T", ErrInvalidSchema, v)
	}

	rt := rv.Elem().Type()
	if rt.Kind() != reflect.Struct {
		return Schema{}, fmt.Errorf("%w: expected pointer to struct, got %T", ErrInvalidSchema, v)
	}

	schema := Schema{Fields: make([]Field, 0, rt.NumField())}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(sf.Tag.Get(tagName), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}

		schema.Fields = append(schema.Fields, Field{
			Name:            name,
			Alias:           sf.Tag.Get(tagAlias),
			ValidationAlias: sf.Tag.Get(tagValidationAlias),
			Kind:            kindOf(sf.Type),
			Required:        hasOption(opts, optRequired),
		})
	}

	return schema, nil
}

func kindOf(t reflect.Type) Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if t == timeType {
			return KindScalar
		}
		return KindMapping
	case reflect.Map:
		return KindMapping
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindScalar
		}
		return KindSequence
	default:
		return KindScalar
	}
}

func hasOption(opts, want string) bool {
	for _, o := range strings.Split(opts, ",") {
		if strings.TrimSpace(o) == want {
			return true
		}
	}
	return false
}
