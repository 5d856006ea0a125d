package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/go-hocon-settings/internal/logger"
)

// SecretsSource reads field values from a directory holding one file per
// secret, such as a mounted Docker or Kubernetes secrets volume. The file
// name follows the [EnvOptions.VarName] rules and its content is trimmed.
type SecretsSource struct {
	schema Schema
	dir    string
	opts   EnvOptions
}

// NewSecretsSource returns a [SecretsSource] for dir. An empty dir yields no
// values.
func NewSecretsSource(schema Schema, dir string, opts EnvOptions) *SecretsSource {
	return &SecretsSource{schema: schema, dir: dir, opts: opts}
}

// Name returns "secrets".
func (s *SecretsSource) Name() string { return "secrets" }

// Load reads the secret files matching schema fields.
//
// A missing directory is logged and yields no values. A path that exists but
// is not a directory fails with [ErrSecretsDir].
func (s *SecretsSource) Load() (map[string]any, error) {
	if s.dir == "" {
		return map[string]any{}, nil
	}

	log := logger.OrNop(s.opts.Logger).WithSource(s.Name())

	info, err := os.Stat(s.dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("dir", s.dir).Msg("secrets directory does not exist")
		return map[string]any{}, nil
	case err != nil:
		return nil, fmt.Errorf("error reading secrets directory: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %q", ErrSecretsDir, s.dir)
	}

	return s.load(os.DirFS(s.dir))
}

func (s *SecretsSource) load(fsys fs.FS) (map[string]any, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("error listing secrets directory: %w", err)
	}

	files := make(map[string]string, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		files[entry.Name()] = entry.Name()
	}

	vars := make(map[string]string, len(files))
	for _, field := range s.schema.Fields {
		name, ok := s.opts.lookup(files, field)
		if !ok {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("error reading secret %q: %w", name, err)
		}
		vars[name] = strings.TrimSpace(string(content))
	}

	return loadVars(s.Name(), s.schema, s.opts, vars)
}
