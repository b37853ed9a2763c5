package cargo

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// cargoFile is the subset of Cargo.toml that carries dependency declarations. Values stay
// untyped because a declaration is either a bare string or a table.
type cargoFile struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
	Workspace         struct {
		Dependencies map[string]any `toml:"dependencies"`
	} `toml:"workspace"`
}

// DecodeManifest decodes the dependency tables of a Cargo.toml document. The source names
// the document in error messages (a path, or path@revision).
func DecodeManifest(data []byte, source string) (*entities.Manifest, error) {
	var file cargoFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	raw := map[entities.TableKind]map[string]any{
		entities.TableNormal:    file.Dependencies,
		entities.TableDev:       file.DevDependencies,
		entities.TableBuild:     file.BuildDependencies,
		entities.TableWorkspace: file.Workspace.Dependencies,
	}

	tables := make(map[entities.TableKind]entities.DependencySet, len(raw))
	for kind, values := range raw {
		entries := make([]entities.DependencyEntry, 0, len(values))
		for key, value := range values {
			entry, err := decodeEntry(key, value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: [%s] %w", source, kind, err)
			}
			entries = append(entries, entry)
		}
		tables[kind] = entities.NewDependencySet(entries...)
		logger.Debugf("%s: %d entries in [%s]", source, len(entries), kind)
	}

	return entities.NewManifest(tables), nil
}

// decodeEntry maps one declaration onto its requirement source:
//
//	name = "1.2.3"                          -> SimpleSource
//	name = { git = "...", package = "x" }   -> GitSource
//	name = { version = "1.2", package = "x" } -> DetailedSource
func decodeEntry(key string, value any) (entities.DependencyEntry, error) {
	switch declaration := value.(type) {
	case string:
		return entities.DependencyEntry{Key: key, Source: entities.SimpleSource{Version: declaration}}, nil
	case map[string]any:
		pkg, err := stringField(key, declaration, "package")
		if err != nil {
			return entities.DependencyEntry{}, err
		}
		locator, err := stringField(key, declaration, "git")
		if err != nil {
			return entities.DependencyEntry{}, err
		}
		if locator != "" {
			return entities.DependencyEntry{
				Key:    key,
				Source: entities.GitSource{Locator: locator, Package: pkg},
			}, nil
		}
		version, err := stringField(key, declaration, "version")
		if err != nil {
			return entities.DependencyEntry{}, err
		}
		if version != "" {
			return entities.DependencyEntry{
				Key:    key,
				Source: entities.DetailedSource{Version: version, Package: pkg},
			}, nil
		}
		return entities.DependencyEntry{}, fmt.Errorf(
			"dependency %q: %w: neither `version` nor `git` is set", key, entities.ErrUnsupportedDependency,
		)
	default:
		return entities.DependencyEntry{}, fmt.Errorf(
			"dependency %q: %w: unexpected value of type %T", key, entities.ErrUnsupportedDependency, value,
		)
	}
}

func stringField(key string, declaration map[string]any, field string) (string, error) {
	value, ok := declaration[field]
	if !ok {
		return "", nil
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf(
			"dependency %q: %w: `%s` must be a string, got %T", key, entities.ErrUnsupportedDependency, field, value,
		)
	}
	return text, nil
}
