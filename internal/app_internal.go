package internal

import (
	"github.com/rios0rios0/cargodiff/internal/domain/entities"
	"github.com/rios0rios0/cargodiff/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI needs once the container is resolved.
type AppInternal struct {
	rootController *controllers.DiffController
	controllers    []entities.Controller
}

// NewAppInternal creates the application from the root controller and the subcommand
// controllers.
func NewAppInternal(
	rootController *controllers.DiffController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		rootController: rootController,
		controllers:    *subcommands,
	}
}

// GetRootController returns the controller backing the root command.
func (it *AppInternal) GetRootController() *controllers.DiffController {
	return it.rootController
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
