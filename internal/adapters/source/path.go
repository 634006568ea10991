package source

import (
	"context"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

var errNoRegistryAPI = zerr.New("source has no registry API")

// Path serves packages straight from a local directory. It implements
// ports.Source.
type Path struct {
	id domain.SourceID
}

// NewPath creates a source rooted at the given directory.
func NewPath(dir string) *Path {
	return &Path{id: domain.PathSource(dir)}
}

// ID returns the source's identity.
func (p *Path) ID() domain.SourceID {
	return p.id
}

// Download reads the package in place. The id must belong to this source and
// match the manifest on disk.
func (p *Path) Download(_ context.Context, id domain.PackageID) (*domain.Package, error) {
	if id.Source != p.id {
		return nil, zerr.With(domain.ErrPackageNotFound, "id", id.String())
	}

	pkg, err := p.Root(id.Source.Dir())
	if err != nil {
		return nil, err
	}
	if !pkg.ID().Equal(id) {
		mismatch := zerr.With(domain.ErrPackageNotFound, "id", id.String())
		return nil, zerr.With(mismatch, "found", pkg.ID().String())
	}
	return pkg, nil
}

// Root reads the package rooted at dir without an id to check against.
func (p *Path) Root(dir string) (*domain.Package, error) {
	manifest, err := ReadManifest(dir, p.id)
	if err != nil {
		return nil, err
	}
	return domain.NewPackage(*manifest, dir), nil
}

// Update is a no-op: the directory is always current.
func (p *Path) Update(_ context.Context) error {
	return nil
}

// Config is not available for path sources.
func (p *Path) Config() (ports.SourceConfig, error) {
	return ports.SourceConfig{}, errNoRegistryAPI
}
