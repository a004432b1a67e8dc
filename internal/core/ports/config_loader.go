package ports

import "go.trai.ch/mkdo/internal/core/domain"

// ConfigLoader defines the interface for loading mkdo configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches cwd and its parents for a configuration file.
	// It returns an empty Config when none is found.
	Load(cwd string) (*domain.Config, error)
}
