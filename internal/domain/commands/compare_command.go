package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// Compare is the interface for the requirement comparison command.
type Compare interface {
	Execute(opts CompareOptions) error
}

// CompareOptions holds the two requirement strings to compare.
type CompareOptions struct {
	Current  string
	Previous string
	Output   io.Writer
}

// CompareCommand shows how a single requirement change is ordered and classified.
type CompareCommand struct{}

// NewCompareCommand creates a new CompareCommand.
func NewCompareCommand() *CompareCommand {
	return &CompareCommand{}
}

// Execute parses both requirements and prints their intervals, ordering and change marker.
func (it *CompareCommand) Execute(opts CompareOptions) error {
	current, err := entities.ParseRequirement(opts.Current)
	if err != nil {
		return err
	}
	previous, err := entities.ParseRequirement(opts.Previous)
	if err != nil {
		return err
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	change := entities.ClassifyChange(current, previous)
	_, err = fmt.Fprintf(output,
		"current:  %s %s\nprevious: %s %s\nordering: %s\nchange:   %s %s\n",
		current, current.Interval(),
		previous, previous.Interval(),
		current.Compare(previous),
		change.Marker(), change,
	)
	return err
}
