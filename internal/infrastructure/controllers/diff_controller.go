package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargodiff/internal/domain/commands"
	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// DiffController handles the root command with an optional repository path argument.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cargodiff [path]",
		Short: "Summarize dependency requirement changes in Cargo.toml",
		Long: `Compare the Cargo.toml of a working tree with the committed one and print one line
per changed dependency requirement, classified by its semantic-versioning impact.

Usage modes:
  cargodiff                      Diff ./Cargo.toml against HEAD
  cargodiff /path/to/repo        Diff a specific repository
  cargodiff --revision main~1    Diff against another revision
  cargodiff compare 1.2 ~1.2.3   Inspect how a single change is classified`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags registers the diff flags on the given command.
func (it *DiffController) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.Flags().StringP("manifest", "m", "",
		"Manifest path relative to the repository root (default: Cargo.toml)")
	cmd.Flags().StringP("revision", "r", "",
		"Revision holding the previous manifest (default: HEAD)")
	cmd.Flags().String("changelog", "",
		"Keep-a-Changelog file to add the changes to")
	cmd.Flags().StringSlice("tables", nil,
		"Dependency tables to compare (default: all)")
}

// Execute runs the diff for the repository given as argument, or the current directory.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	manifest, _ := cmd.Flags().GetString("manifest")
	revision, _ := cmd.Flags().GetString("revision")
	changelog, _ := cmd.Flags().GetString("changelog")
	tables, _ := cmd.Flags().GetStringSlice("tables")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return it.command.Execute(ctx, commands.DiffOptions{
		RepoDir:    repoDir,
		ConfigPath: configPath,
		Manifest:   manifest,
		Revision:   revision,
		Changelog:  changelog,
		Tables:     tables,
		Output:     cmd.OutOrStdout(),
	})
}
