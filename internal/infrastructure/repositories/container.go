package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/cargodiff/internal/domain/repositories"
	cargoRepo "github.com/rios0rios0/cargodiff/internal/infrastructure/repositories/cargo"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register manifest registry with every supported manifest format
	if err := container.Provide(func() *ManifestRegistry {
		reg := NewManifestRegistry()
		reg.Register(cargoRepo.ManifestFormat, cargoRepo.NewCargoManifestRepository())
		return reg
	}); err != nil {
		return err
	}

	// Bind the default format to the domain port
	if err := container.Provide(func(reg *ManifestRegistry) (domainRepos.ManifestRepository, error) {
		return reg.Get(cargoRepo.ManifestFormat)
	}); err != nil {
		return err
	}

	return nil
}
