package source

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Git serves packages from a git checkout kept under the cache directory.
// It implements ports.Source by shelling out to the git binary.
type Git struct {
	id       domain.SourceID
	cacheDir string
}

// NewGit creates a git source for the given repository identity.
func NewGit(id domain.SourceID, cacheDir string) *Git {
	return &Git{id: id, cacheDir: cacheDir}
}

// ID returns the source's identity.
func (g *Git) ID() domain.SourceID {
	return g.id
}

func (g *Git) checkoutDir() string {
	return filepath.Join(g.cacheDir, "git", g.id.Ident())
}

// Update clones the repository on first use and fast-forwards the checkout
// afterwards.
func (g *Git) Update(ctx context.Context) error {
	dir := g.checkoutDir()
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		if err := os.MkdirAll(filepath.Dir(dir), 0o750); err != nil {
			return zerr.Wrap(err, "failed to create git cache directory")
		}
		return g.run(ctx, "", "clone", "--depth", "1", g.id.URL, dir)
	}
	if err := g.run(ctx, dir, "fetch", "--depth", "1", "origin"); err != nil {
		return err
	}
	return g.run(ctx, dir, "reset", "--hard", "FETCH_HEAD")
}

// Download reads the identified package out of the checkout. Update must
// have run at least once.
func (g *Git) Download(_ context.Context, id domain.PackageID) (*domain.Package, error) {
	if id.Source != g.id {
		return nil, zerr.With(domain.ErrPackageNotFound, "id", id.String())
	}

	root := g.checkoutDir()
	manifest, err := ReadManifest(root, g.id)
	if err != nil {
		return nil, err
	}
	pkg := domain.NewPackage(*manifest, root)
	if !pkg.ID().Equal(id) {
		mismatch := zerr.With(domain.ErrPackageNotFound, "id", id.String())
		return nil, zerr.With(mismatch, "found", pkg.ID().String())
	}
	return pkg, nil
}

// Config is not available for git sources.
func (g *Git) Config() (ports.SourceConfig, error) {
	return ports.SourceConfig{}, errNoRegistryAPI
}

func (g *Git) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		gitErr := zerr.Wrap(err, "git "+args[0]+" failed")
		return zerr.With(gitErr, "output", strings.TrimSpace(string(output)))
	}
	return nil
}
