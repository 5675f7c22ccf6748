package ports

import (
	"context"

	"go.trai.ch/cmake-node/internal/core/domain"
)

// ImportLibraryResolver returns the import library for the host executable,
// generating and caching it when needed.
//
//go:generate mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ImportLibraryResolver interface {
	Resolve(ctx context.Context, cfg *domain.Config) (string, error)
}
