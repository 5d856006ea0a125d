package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/MKhiriev/go-hocon-settings/internal/hocon"
	"github.com/MKhiriev/go-hocon-settings/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type databaseSettings struct {
	Host    string        `settings:"host"`
	Port    int           `settings:"port"`
	Timeout time.Duration `settings:"timeout"`
}

// serviceSettings is the settings schema of an example service.
type serviceSettings struct {
	Name     string           `settings:"name,required"`
	Port     int              `settings:"port"`
	Debug    bool             `settings:"debug"`
	Tags     []string         `settings:"tags"`
	Database databaseSettings `settings:"database"`
	APIKey   string           `settings:"api_key" alias:"API_KEY"`
}

func (s *serviceSettings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

// masked returns a copy of s that is safe to log.
func (s serviceSettings) masked() serviceSettings {
	s.APIKey = maskSecret(s.APIKey)
	return s
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	return strings.Repeat("*", 10)
}

func main() {
	app := kingpin.New("hoconcheck", "Resolves service settings from a HOCON file and the sources layered around it")
	configPath := app.Flag("config", "Path to the HOCON file (defaults to $HOCON_CONFIG_PATH)").String()
	envPrefix := app.Flag("env-prefix", "Prefix of environment variable names").String()
	dotEnvFiles := app.Flag("dotenv", "Dotenv file, may be repeated").Strings()
	secretsDir := app.Flag("secrets-dir", "Directory holding one file per secret").String()
	caseSensitive := app.Flag("case-sensitive", "Match variable names case-sensitively").Bool()
	overrides := app.Flag("set", "Explicit KEY=VALUE with the highest priority, may be repeated").StringMap()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	printBuildInfo()

	log := logger.NewLogger("hoconcheck")

	values := make(map[string]any, len(*overrides))
	for k, v := range *overrides {
		values[k] = v
	}

	cfg, err := hocon.New[serviceSettings](hocon.Options{
		ConfigPath:    *configPath,
		Overrides:     values,
		EnvPrefix:     *envPrefix,
		CaseSensitive: *caseSensitive,
		DotEnvFiles:   *dotEnvFiles,
		SecretsDir:    *secretsDir,
		Logger:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving settings")
	}

	log.Info().Any("settings", cfg.masked()).Msg("resolved settings")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
