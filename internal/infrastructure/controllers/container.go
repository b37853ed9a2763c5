package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewDiffController); err != nil {
		return err
	}
	if err := container.Provide(NewCompareController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal. The diff
// controller backs the root command and is resolved on its own.
func NewControllers(compareController *CompareController) *[]entities.Controller {
	return &[]entities.Controller{
		compareController,
	}
}
