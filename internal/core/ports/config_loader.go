package ports

import "go.trai.ch/cmake-node/internal/core/domain"

// ConfigLoader reads per-project defaults.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads cmake-node.yaml from root. It returns nil defaults when the
	// file does not exist.
	Load(root string) (*domain.ProjectDefaults, error)
}
