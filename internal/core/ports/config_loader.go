package ports

import "go.trai.ch/compass/internal/core/domain"

// ConfigLoader defines the interface for loading session settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings for the given working directory. Missing files are not an
	// error; defaults apply.
	Load(cwd string) (*domain.Config, error)
}
