package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
	"github.com/rios0rios0/cargodiff/internal/domain/repositories"
)

const changelogFileMode = 0o644

// Diff is the interface for the manifest diff command.
type Diff interface {
	Execute(ctx context.Context, opts DiffOptions) error
}

// DiffOptions holds runtime options for a diff. Empty fields fall back to the settings file.
type DiffOptions struct {
	RepoDir    string
	ConfigPath string
	Manifest   string
	Revision   string
	Changelog  string
	Tables     []string
	Output     io.Writer
}

// DiffCommand compares the working-tree manifest with the committed one and reports every
// dependency requirement that changed.
type DiffCommand struct {
	repository repositories.ManifestRepository
}

// NewDiffCommand creates a new DiffCommand reading manifests through the given repository.
func NewDiffCommand(repository repositories.ManifestRepository) *DiffCommand {
	return &DiffCommand{repository: repository}
}

// Execute reads both snapshots, diffs them and writes one line per change to the output.
func (it *DiffCommand) Execute(ctx context.Context, opts DiffOptions) error {
	settings, err := resolveSettings(opts)
	if err != nil {
		return err
	}

	kinds, err := settings.TableKinds()
	if err != nil {
		return err
	}

	repoDir := opts.RepoDir
	if repoDir == "" {
		repoDir = "."
	}
	logger.Debugf("Comparing %s in %s against %s", settings.Manifest, repoDir, settings.Revision)

	current, err := it.repository.ReadWorkingTree(ctx, repoDir, settings.Manifest)
	if err != nil {
		return fmt.Errorf("failed to read current manifest: %w", err)
	}
	previous, err := it.repository.ReadCommitted(ctx, repoDir, settings.Revision, settings.Manifest)
	if err != nil {
		return fmt.Errorf("failed to read manifest at %s: %w", settings.Revision, err)
	}

	diagnostics := &entities.Diagnostics{}
	records, err := entities.DiffManifests(current, previous, kinds, diagnostics)
	for _, diagnostic := range diagnostics.Items() {
		logger.Warn(diagnostic.String())
	}
	if err != nil {
		return err
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	if _, err = io.WriteString(output, entities.JoinLines(entities.RenderChangeRecords(records))); err != nil {
		return fmt.Errorf("failed to write changes: %w", err)
	}

	if settings.Changelog != "" && len(records) > 0 {
		return updateChangelog(resolvePath(repoDir, settings.Changelog), records)
	}
	return nil
}

// resolveSettings loads the settings file (explicit or discovered) and applies the
// command-line overrides on top of it.
func resolveSettings(opts DiffOptions) (*entities.Settings, error) {
	settings := entities.DefaultSettings()

	configPath := opts.ConfigPath
	if configPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			configPath = found
		}
	}
	if configPath != "" {
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debugf("Loaded settings from %s", configPath)
		settings = loaded
	}

	if opts.Manifest != "" {
		settings.Manifest = opts.Manifest
	}
	if opts.Revision != "" {
		settings.Revision = opts.Revision
	}
	if opts.Changelog != "" {
		settings.Changelog = opts.Changelog
	}
	if len(opts.Tables) > 0 {
		settings.Tables = opts.Tables
	}
	return settings, nil
}

func resolvePath(repoDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(repoDir, path)
}

func updateChangelog(path string, records []entities.ChangeRecord) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warnf("Changelog %s does not exist, skipping", path)
			return nil
		}
		return fmt.Errorf("failed to read changelog %s: %w", path, err)
	}

	updated := entities.InsertChangelogEntries(string(content), entities.ChangelogEntries(records))
	if updated == string(content) {
		logger.Warnf("Changelog %s has no [Unreleased] section, skipping", path)
		return nil
	}

	if err = os.WriteFile(path, []byte(updated), changelogFileMode); err != nil {
		return fmt.Errorf("failed to write changelog %s: %w", path, err)
	}
	logger.Infof("Added %d entries to %s", len(records), path)
	return nil
}
