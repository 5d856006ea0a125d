// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hocon

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-hocon-settings/internal/logger"
	"github.com/MKhiriev/go-hocon-settings/internal/settings"
)

// ConfigPathEnv names the environment variable holding the HOCON file path.
const ConfigPathEnv = "HOCON_CONFIG_PATH"

// Options configures a single settings resolution.
type Options struct {
	// ConfigPath is the HOCON file to read. When empty, the path is read from
	// the HOCON_CONFIG_PATH environment variable at resolution time.
	ConfigPath string

	// Overrides are explicit values with the highest priority, keyed by
	// resolved field key or declared name.
	Overrides map[string]any

	// EnvPrefix is prepended to field names when matching environment,
	// dotenv and secret names (fields with an alias ignore it).
	EnvPrefix string

	// CaseSensitive disables case-insensitive matching of environment,
	// dotenv and secret names.
	CaseSensitive bool

	// DotEnvFiles are read in order; later files override earlier ones.
	DotEnvFiles []string

	// SecretsDir holds one file per secret value.
	SecretsDir string

	// Environ replaces the process environment ("KEY=value" pairs). Nil means
	// os.Environ().
	Environ []string

	// Logger receives debug output of the sources. Nil discards it.
	Logger *logger.Logger
}

func (o Options) envOptions() settings.EnvOptions {
	return settings.EnvOptions{
		Prefix:        o.EnvPrefix,
		CaseSensitive: o.CaseSensitive,
		Environ:       o.Environ,
		Logger:        o.Logger,
	}
}

// location is the environment-provided part of the resolution.
type location struct {
	Path string `env:"HOCON_CONFIG_PATH,required,notEmpty"`
}

// ConfigPath returns opts.ConfigPath, or the value of HOCON_CONFIG_PATH when
// it is empty. An unset or empty variable fails with [ErrConfigPathNotSet].
func ConfigPath(opts Options) (string, error) {
	if opts.ConfigPath != "" {
		return opts.ConfigPath, nil
	}

	var envOpts env.Options
	if opts.Environ != nil {
		envOpts.Environment = settings.EnvironMap(opts.Environ)
	}

	var loc location
	if err := env.ParseWithOptions(&loc, envOpts); err != nil {
		return "", fmt.Errorf("%w, please set it in environment variable %s: %w", ErrConfigPathNotSet, ConfigPathEnv, err)
	}
	return loc.Path, nil
}

// CustomiseSources returns the sources for schema in priority order: init,
// env, hocon, dotenv, secrets. The HOCON file is parsed here.
func CustomiseSources(schema settings.Schema, opts Options) ([]settings.Source, error) {
	path, err := ConfigPath(opts)
	if err != nil {
		return nil, err
	}

	hoconSource, err := NewSource(schema, path, opts.Logger)
	if err != nil {
		return nil, err
	}

	envOpts := opts.envOptions()
	return []settings.Source{
		settings.NewInitSource(schema, opts.Overrides),
		settings.NewEnvSource(schema, envOpts),
		hoconSource,
		settings.NewDotEnvSource(schema, opts.DotEnvFiles, envOpts),
		settings.NewSecretsSource(schema, opts.SecretsDir, envOpts),
	}, nil
}

// Load resolves the settings struct pointed to by out from all sources.
// Every call re-reads the HOCON file.
func Load(out any, opts Options) error {
	schema, err := settings.FromStruct(out)
	if err != nil {
		return err
	}

	sources, err := CustomiseSources(schema, opts)
	if err != nil {
		return err
	}

	return settings.NewBuilder(schema).
		With(sources...).
		Build(out)
}

// New allocates a T, resolves it with [Load] and returns it.
func New[T any](opts Options) (*T, error) {
	out := new(T)
	if err := Load(out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
