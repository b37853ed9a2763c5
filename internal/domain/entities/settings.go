package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultManifestPath = "Cargo.toml"
	DefaultRevision     = "HEAD"
)

// Settings is the optional configuration file of cargodiff.
type Settings struct {
	Manifest  string   `yaml:"manifest"`  // manifest path relative to the repository root
	Revision  string   `yaml:"revision"`  // committed snapshot to compare against
	Tables    []string `yaml:"tables"`    // subset of dependency tables to diff, empty for all
	Changelog string   `yaml:"changelog"` // Keep-a-Changelog file receiving the change lines
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings compares Cargo.toml against HEAD across every table.
func DefaultSettings() *Settings {
	return &Settings{
		Manifest: DefaultManifestPath,
		Revision: DefaultRevision,
	}
}

// NewSettings reads a settings file, expands ${ENV_VAR} references and fills defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	settings.Manifest = expandEnv(settings.Manifest)
	settings.Revision = expandEnv(settings.Revision)
	settings.Changelog = expandEnv(settings.Changelog)
	settings.applyDefaults()

	if _, validateErr := settings.TableKinds(); validateErr != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, validateErr)
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	names := []string{
		".cargodiff.yaml",
		".cargodiff.yml",
		"cargodiff.yaml",
		"cargodiff.yml",
	}

	for _, location := range locations {
		for _, name := range names {
			candidate := filepath.Join(location, name)
			if _, statErr := os.Stat(candidate); statErr == nil {
				return candidate, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// TableKinds resolves the configured table names. An empty list selects every table.
func (s *Settings) TableKinds() ([]TableKind, error) {
	if len(s.Tables) == 0 {
		return AllTableKinds(), nil
	}
	kinds := make([]TableKind, 0, len(s.Tables))
	for _, name := range s.Tables {
		kind, err := ParseTableKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func (s *Settings) applyDefaults() {
	if s.Manifest == "" {
		s.Manifest = DefaultManifestPath
	}
	if s.Revision == "" {
		s.Revision = DefaultRevision
	}
}

func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
