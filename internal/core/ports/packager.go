package ports

import (
	"context"
	"io"

	"go.trai.ch/pakt/internal/core/domain"
)

// PackageOptions control one artifact assembly run.
type PackageOptions struct {
	// Verify requests a build of the assembled artifact before upload.
	Verify bool

	// AllowDirty permits packaging a working directory with uncommitted changes.
	AllowDirty bool

	// CheckMetadata warns about missing descriptive metadata.
	CheckMetadata bool

	// Jobs caps parallelism of the verify build, 0 for the default.
	Jobs int
}

// Packager assembles a package's on-disk contents into an uploadable artifact.
//
//go:generate mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// Assemble produces the artifact stream for the given package. The caller
	// owns the returned reader and must close it.
	Assemble(ctx context.Context, pkg *domain.Package, opts PackageOptions) (io.ReadCloser, error)
}
