// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
)

// validator is implemented by settings structs that check their own
// invariants after binding.
type validator interface {
	Validate() error
}

// Builder loads sources in priority order and binds the merged result into a
// settings struct.
//
// Sources registered first win over sources registered later for the same
// key. Nested mappings are merged key by key.
type Builder struct {
	schema  Schema
	sources []string
	loaded  []map[string]any
	err     error
}

// NewBuilder returns an empty [Builder] for schema.
func NewBuilder(schema Schema) *Builder {
	return &Builder{
		schema: schema,
		loaded: make([]map[string]any, 0, 5),
	}
}

// With loads each source immediately and records its values below the
// sources registered before it. Load errors are accumulated and reported by
// [Builder.Build].
func (b *Builder) With(sources ...Source) *Builder {
	for _, src := range sources {
		values, err := src.Load()
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error loading %s source: %w", src.Name(), err))
			continue
		}

		b.sources = append(b.sources, src.Name())
		b.loaded = append(b.loaded, values)
	}
	return b
}

// Merged returns the mapping obtained by merging every loaded source, keyed
// by resolved field key.
func (b *Builder) Merged() (map[string]any, error) {
	if b.err != nil {
		return nil, b.err
	}

	merged := make(map[string]any)
	for i := len(b.loaded) - 1; i >= 0; i-- {
		if len(b.loaded[i]) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, b.loaded[i], mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s source: %w", b.sources[i], err)
		}
	}
	return merged, nil
}

// Build merges the loaded sources and decodes the result into out, which must
// be a non-nil pointer to a struct. Fields of out that no source supplies keep
// their current values.
func (b *Builder) Build(out any) error {
	merged, err := b.Merged()
	if err != nil {
		return fmt.Errorf("error occurred during building settings: %w", err)
	}

	input := make(map[string]any, len(merged))
	var missing []string
	for _, field := range b.schema.Fields {
		value, ok := merged[field.Key()]
		if !ok {
			if field.Required {
				missing = append(missing, field.Key())
			}
			continue
		}
		input[field.Name] = value
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	if v, ok := out.(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}
	}

	return nil
}
