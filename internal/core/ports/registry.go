package ports

import (
	"context"
	"io"

	"go.trai.ch/pakt/internal/core/domain"
)

// RegistryClient talks to a registry's API host. It is bound to one registry
// and one (possibly empty) auth token for the duration of a single command.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type RegistryClient interface {
	// Publish uploads a new package version: the metadata payload plus the
	// artifact byte stream.
	Publish(ctx context.Context, pkg *domain.PublishRequest, artifact io.Reader) error

	// Yank marks a published version as excluded from new resolutions.
	Yank(ctx context.Context, name, version string) error

	// Unyank reverses a yank.
	Unyank(ctx context.Context, name, version string) error

	// AddOwners grants ownership of the named package to the given logins.
	AddOwners(ctx context.Context, name string, logins []string) error

	// RemoveOwners revokes ownership of the named package from the given logins.
	RemoveOwners(ctx context.Context, name string, logins []string) error

	// ListOwners returns the package's ownership list in registry order.
	ListOwners(ctx context.Context, name string) ([]domain.Owner, error)

	// Search queries the registry, returning at most limit rows and the
	// total number of matches.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, int, error)
}
