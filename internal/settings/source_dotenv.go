package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-hocon-settings/internal/logger"
)

// DotEnvSource reads field values from one or more dotenv files. Variables
// in later files override earlier ones; files that do not exist are skipped.
type DotEnvSource struct {
	schema Schema
	files  []string
	opts   EnvOptions
}

// NewDotEnvSource returns a [DotEnvSource] reading files.
func NewDotEnvSource(schema Schema, files []string, opts EnvOptions) *DotEnvSource {
	return &DotEnvSource{schema: schema, files: files, opts: opts}
}

// Name returns "dotenv".
func (s *DotEnvSource) Name() string { return "dotenv" }

// Load reads the existing dotenv files and maps their variables onto the
// schema with the same naming rules as [EnvSource].
func (s *DotEnvSource) Load() (map[string]any, error) {
	log := logger.OrNop(s.opts.Logger).WithSource(s.Name())

	existing := make([]string, 0, len(s.files))
	for _, file := range s.files {
		_, err := os.Stat(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("file", file).Msg("dotenv file not found, skipping")
			continue
		case err != nil:
			return nil, fmt.Errorf("error reading dotenv file %q: %w", file, err)
		}
		existing = append(existing, file)
	}

	if len(existing) == 0 {
		return map[string]any{}, nil
	}

	vars, err := godotenv.Read(existing...)
	if err != nil {
		return nil, fmt.Errorf("error parsing dotenv files: %w", err)
	}

	return loadVars(s.Name(), s.schema, s.opts, vars)
}
