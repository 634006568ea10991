package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// PublishOptions control one publish run.
type PublishOptions struct {
	Token string
	Index string

	Verify     bool
	AllowDirty bool
	DryRun     bool
	Jobs       int
	Offline    bool
}

// Publish validates the workspace package, assembles its artifact, and
// uploads it to the registry.
func (a *App) Publish(ctx context.Context, opts PublishOptions) error {
	pkg, err := a.workspacePackage()
	if err != nil {
		return err
	}
	if !pkg.Publish() {
		return zerr.With(domain.ErrNotPublishable, "package", pkg.Name())
	}

	client, registryID, err := a.resolveRegistry(ctx, opts.Token, opts.Index, opts.Offline)
	if err != nil {
		return err
	}

	if err := verifyDependencies(pkg, registryID); err != nil {
		return err
	}

	artifact, err := a.packager.Assemble(ctx, pkg, ports.PackageOptions{
		Verify:        opts.Verify,
		AllowDirty:    opts.AllowDirty,
		CheckMetadata: true,
		Jobs:          opts.Jobs,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = artifact.Close()
	}()

	a.status.Status("Uploading", pkg.ID().String())
	return a.transmit(ctx, client, pkg, artifact, opts.DryRun)
}

// verifyDependencies rejects dependency graphs the registry cannot host:
// path dependencies without an explicit version requirement and dependencies
// sourced from a different registry than the one being published to.
func verifyDependencies(pkg *domain.Package, registryID domain.SourceID) error {
	for _, dep := range pkg.Dependencies() {
		if dep.Source.IsPath() {
			if !dep.SpecifiedReq {
				return zerr.With(domain.ErrPathDependencyVersion, "dependency", dep.Name)
			}
			continue
		}
		if dep.Source != registryID {
			err := zerr.With(domain.ErrWrongRegistry, "dependency", dep.Name)
			return zerr.With(err, "source", dep.Source.String())
		}
	}
	return nil
}

// transmit builds the publish payload and performs the upload. A dry run
// stops just short of the network with a warning.
func (a *App) transmit(ctx context.Context, client ports.RegistryClient, pkg *domain.Package, artifact io.Reader, dryRun bool) error {
	deps := make([]domain.PublishDependency, 0, len(pkg.Dependencies()))
	for _, dep := range pkg.Dependencies() {
		deps = append(deps, domain.PublishDependency{
			Name:            dep.Name,
			VersionReq:      dep.VersionReq(),
			Optional:        dep.Optional,
			DefaultFeatures: dep.DefaultFeatures,
			Features:        dep.Features,
			Target:          dep.Platform,
			Kind:            dep.Kind.WireTag(),
		})
	}

	meta := pkg.Metadata()

	var readme string
	if meta.Readme != "" {
		contents, err := os.ReadFile(filepath.Join(pkg.Root(), meta.Readme))
		if err != nil {
			return zerr.Wrap(err, "failed to read readme")
		}
		readme = string(contents)
	}
	if meta.LicenseFile != "" {
		if _, err := os.Stat(filepath.Join(pkg.Root(), meta.LicenseFile)); err != nil {
			return zerr.With(domain.ErrLicenseFileMissing, "path", meta.LicenseFile)
		}
	}

	if dryRun {
		a.status.Warn("aborting upload due to dry run")
		return nil
	}

	payload := &domain.PublishRequest{
		Name:          pkg.Name(),
		Version:       pkg.Version().String(),
		Dependencies:  deps,
		Features:      pkg.Manifest().Features,
		Authors:       meta.Authors,
		Description:   meta.Description,
		Homepage:      meta.Homepage,
		Documentation: meta.Documentation,
		Keywords:      meta.Keywords,
		Readme:        readme,
		Repository:    meta.Repository,
		License:       meta.License,
		LicenseFile:   meta.LicenseFile,
	}
	if err := client.Publish(ctx, payload, artifact); err != nil {
		return zerr.Wrap(err, "failed to publish package to registry")
	}
	return nil
}
