package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargodiff/internal/domain/commands"
	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// CompareController handles the "compare" subcommand.
type CompareController struct {
	command commands.Compare
}

// NewCompareController creates a new CompareController.
func NewCompareController(command commands.Compare) *CompareController {
	return &CompareController{command: command}
}

// GetBind returns the Cobra command metadata for the compare controller.
func (it *CompareController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "compare <current> <previous>",
		Short: "Compare two version requirements",
		Long: `Parse two Cargo version requirements and print the version interval each one
accepts, how the intervals are ordered and the change marker a diff would use.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // current and previous
	}
}

// AddFlags is a no-op: compare takes positional arguments only.
func (it *CompareController) AddFlags(_ *cobra.Command) {}

// Execute compares the two positional requirements.
func (it *CompareController) Execute(cmd *cobra.Command, args []string) error {
	return it.command.Execute(commands.CompareOptions{
		Current:  args[0],
		Previous: args[1],
		Output:   cmd.OutOrStdout(),
	})
}
