// Package app implements the application layer for pakt.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/pakt/internal/adapters/registry"
	"go.trai.ch/pakt/internal/adapters/source"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
)

// RegistryResolver turns registry options into a live client bound to a
// source identity. It exists as a seam so that tests can substitute the
// network bootstrap.
type RegistryResolver func(ctx context.Context, token, index string, offline bool) (ports.RegistryClient, domain.SourceID, error)

// App represents the main application logic.
type App struct {
	config   ports.ConfigStore
	status   ports.Status
	packager ports.Packager

	resolveRegistry RegistryResolver
	workDir         string
}

// Option customizes an App, used by tests.
type Option func(*App)

// WithRegistryResolver replaces the network bootstrap.
func WithRegistryResolver(resolve RegistryResolver) Option {
	return func(a *App) { a.resolveRegistry = resolve }
}

// WithWorkDir pins the directory the workspace package is located from.
func WithWorkDir(dir string) Option {
	return func(a *App) { a.workDir = dir }
}

// New creates a new App instance.
func New(cfg ports.ConfigStore, status ports.Status, pack ports.Packager, sources registry.SourceFactory, opts ...Option) *App {
	a := &App{
		config:   cfg,
		status:   status,
		packager: pack,
	}
	a.resolveRegistry = func(ctx context.Context, token, index string, offline bool) (ports.RegistryClient, domain.SourceID, error) {
		client, sid, err := registry.Bootstrap(ctx, cfg, sources, token, index, offline)
		if err != nil {
			return nil, domain.SourceID{}, err
		}
		return client, sid, nil
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// workspacePackage locates the manifest in the working directory or any of
// its parents and reads the package it describes.
func (a *App) workspacePackage() (*domain.Package, error) {
	dir := a.workDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, source.ManifestFileName)); err == nil {
			return source.NewPath(dir).Root(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, domain.ErrManifestNotFound
		}
		dir = parent
	}
}

// packageName resolves the package a control operation targets: the explicit
// name when given, the workspace package's otherwise.
func (a *App) packageName(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	pkg, err := a.workspacePackage()
	if err != nil {
		return "", err
	}
	return pkg.Name(), nil
}
