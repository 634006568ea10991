package ports

import (
	"context"

	"go.trai.ch/pakt/internal/core/domain"
)

// SourceConfig is a source's resolved configuration. For registry sources the
// API host is where publish and control operations are sent; DL is the
// download endpoint template.
type SourceConfig struct {
	API string
	DL  string
}

// Source is a pluggable package origin: it can resolve a PackageID into an
// on-disk Package and refresh its own index. Implementations exist per origin
// kind (registry, local path, version-controlled).
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	// Download resolves id into a package rooted on the local filesystem.
	Download(ctx context.Context, id domain.PackageID) (*domain.Package, error)

	// Update refreshes the source's index.
	Update(ctx context.Context) error

	// Config returns the source's resolved configuration. It is only valid
	// after a successful Update.
	Config() (SourceConfig, error)
}
