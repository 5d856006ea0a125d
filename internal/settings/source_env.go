// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-hocon-settings/internal/logger"
)

// EnvOptions controls how environment-style sources (env, dotenv, secrets)
// name and match variables.
type EnvOptions struct {
	// Prefix is prepended to the declared name of fields without an alias
	// (e.g. "APP_" turns field "port" into "APP_port").
	Prefix string

	// CaseSensitive disables case-insensitive matching of variable names.
	CaseSensitive bool

	// Environ replaces os.Environ() as the list of "KEY=value" pairs read by
	// [EnvSource]. Nil means the process environment.
	Environ []string

	// Logger receives debug and warning messages. Nil discards them.
	Logger *logger.Logger
}

// VarName returns the variable name a field is looked up under: its alias
// when one is declared, else Prefix followed by the declared name. The name
// is lower-cased unless CaseSensitive is set.
func (o EnvOptions) VarName(f Field) string {
	name := o.declaredVarName(f)
	if !o.CaseSensitive {
		name = strings.ToLower(name)
	}
	return name
}

func (o EnvOptions) declaredVarName(f Field) string {
	if f.HasAlias() {
		return f.Key()
	}
	return o.Prefix + f.Name
}

// lookup returns the key of vars holding the value of f.
//
// An exact match on the declared variable name wins. Otherwise, when matching
// is case-insensitive, the lexically smallest key equal to it under case
// folding is returned, so "PORT" beats "Port".
func (o EnvOptions) lookup(vars map[string]string, f Field) (string, bool) {
	name := o.declaredVarName(f)
	if _, ok := vars[name]; ok {
		return name, true
	}
	if o.CaseSensitive {
		return "", false
	}

	var best string
	found := false
	for k := range vars {
		if strings.EqualFold(k, name) && (!found || k < best) {
			best, found = k, true
		}
	}
	return best, found
}

// EnvSource reads field values from environment variables.
type EnvSource struct {
	schema Schema
	opts   EnvOptions
}

// NewEnvSource returns an [EnvSource] for schema.
func NewEnvSource(schema Schema, opts EnvOptions) *EnvSource {
	return &EnvSource{schema: schema, opts: opts}
}

// Name returns "env".
func (s *EnvSource) Name() string { return "env" }

// Load returns the values of every schema field that has a matching variable.
// Values of complex fields are decoded as JSON.
func (s *EnvSource) Load() (map[string]any, error) {
	environ := s.opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	return loadVars(s.Name(), s.schema, s.opts, EnvironMap(environ))
}

// EnvironMap converts "KEY=value" pairs, as returned by os.Environ, into a map.
// Entries without "=" are ignored.
func EnvironMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// loadVars maps string variables onto schema fields using opts naming rules.
func loadVars(source string, schema Schema, opts EnvOptions, vars map[string]string) (map[string]any, error) {
	log := logger.OrNop(opts.Logger).WithSource(source)

	out := make(map[string]any)
	for _, field := range schema.Fields {
		name, ok := opts.lookup(vars, field)
		if !ok {
			continue
		}
		raw := vars[name]

		value, err := PrepareFieldValue(stringDecoder{}, field, raw, false)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s value: %w", source, err)
		}
		if value != nil {
			out[field.Key()] = value
		}
	}

	log.Debug().Int("fields", len(out)).Msg("source loaded")
	return out, nil
}
