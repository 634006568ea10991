package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakt/internal/adapters/source"
	"go.trai.ch/pakt/internal/core/domain"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pakt.toml"), []byte(contents), 0o600))
	return dir
}

func TestReadManifest(t *testing.T) {
	src := domain.RegistrySource("https://registry.pakt.dev")

	t.Run("full manifest", func(t *testing.T) {
		dir := writeManifest(t, `
[package]
name = "left-pad"
version = "1.2.3"
authors = ["dev@pakt.dev"]
description = "pads strings on the left"
license = "MIT"
readme = "README.md"
publish = true

[dependencies]
spaces = "^2.0"
tabs = { version = "1.0", optional = true, default-features = false, features = ["wide"] }

[build-dependencies]
codegen = "0.3"

[dev-dependencies]
checker = "1.1"

[target."linux".dependencies]
epoll = "0.9"

[features]
wide = []

[lib]

[[bin]]
name = "padder"
`)

		m, err := source.ReadManifest(dir, src)
		require.NoError(t, err)

		assert.Equal(t, "left-pad", m.ID.Name)
		assert.Equal(t, "1.2.3", m.ID.Version.String())
		assert.Equal(t, src, m.ID.Source)
		assert.True(t, m.Publish)
		assert.Equal(t, "MIT", m.Metadata.License)

		byName := make(map[string]domain.Dependency, len(m.Dependencies))
		for _, dep := range m.Dependencies {
			byName[dep.Name] = dep
		}
		require.Len(t, byName, 5)

		assert.Equal(t, domain.DepKindNormal, byName["spaces"].Kind)
		assert.True(t, byName["spaces"].DefaultFeatures)
		assert.True(t, byName["spaces"].SpecifiedReq)
		assert.Equal(t, src, byName["spaces"].Source)

		assert.True(t, byName["tabs"].Optional)
		assert.False(t, byName["tabs"].DefaultFeatures)
		assert.Equal(t, []string{"wide"}, byName["tabs"].Features)

		assert.Equal(t, domain.DepKindBuild, byName["codegen"].Kind)
		assert.Equal(t, domain.DepKindDevelopment, byName["checker"].Kind)
		assert.Equal(t, "linux", byName["epoll"].Platform)

		require.Len(t, m.Targets, 2)
		assert.Equal(t, domain.TargetKindLibrary, m.Targets[0].Kind)
		assert.Equal(t, "left-pad", m.Targets[0].Name)
		assert.Equal(t, domain.TargetKindBinary, m.Targets[1].Kind)
		assert.Equal(t, "padder", m.Targets[1].Name)
	})

	t.Run("path dependency resolves relative to the package root", func(t *testing.T) {
		dir := writeManifest(t, `
[package]
name = "app"
version = "0.1.0"

[dependencies]
helper = { path = "../helper" }
`)

		m, err := source.ReadManifest(dir, src)
		require.NoError(t, err)
		require.Len(t, m.Dependencies, 1)

		dep := m.Dependencies[0]
		assert.True(t, dep.Source.IsPath())
		assert.Equal(t, filepath.Join(dir, "..", "helper"), dep.Source.Dir())
		assert.False(t, dep.SpecifiedReq)
		assert.Equal(t, "*", dep.VersionReq())
	})

	t.Run("defaults to a library target", func(t *testing.T) {
		dir := writeManifest(t, `
[package]
name = "bare"
version = "0.1.0"
`)

		m, err := source.ReadManifest(dir, src)
		require.NoError(t, err)
		require.Len(t, m.Targets, 1)
		assert.Equal(t, domain.TargetKindLibrary, m.Targets[0].Kind)
		assert.Equal(t, "bare", m.Targets[0].Name)
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := source.ReadManifest(t.TempDir(), src)
		assert.ErrorIs(t, err, domain.ErrManifestNotFound)
	})

	t.Run("invalid version", func(t *testing.T) {
		dir := writeManifest(t, `
[package]
name = "broken"
version = "not-a-version"
`)
		_, err := source.ReadManifest(dir, src)
		assert.ErrorIs(t, err, domain.ErrManifestInvalid)
	})

	t.Run("missing name", func(t *testing.T) {
		dir := writeManifest(t, `
[package]
version = "1.0.0"
`)
		_, err := source.ReadManifest(dir, src)
		assert.ErrorIs(t, err, domain.ErrManifestInvalid)
	})

	t.Run("invalid requirement", func(t *testing.T) {
		dir := writeManifest(t, `
[package]
name = "app"
version = "1.0.0"

[dependencies]
helper = "not valid at all /"
`)
		_, err := source.ReadManifest(dir, src)
		assert.ErrorIs(t, err, domain.ErrManifestInvalid)
	})
}

func TestPathSource(t *testing.T) {
	dir := writeManifest(t, `
[package]
name = "local"
version = "0.5.0"
`)
	src := source.NewPath(dir)

	t.Run("download matching id", func(t *testing.T) {
		id, err := domain.NewPackageID("local", "0.5.0", src.ID())
		require.NoError(t, err)

		pkg, err := src.Download(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, "local", pkg.Name())
		assert.Equal(t, dir, pkg.Root())
	})

	t.Run("version mismatch", func(t *testing.T) {
		id, err := domain.NewPackageID("local", "9.9.9", src.ID())
		require.NoError(t, err)

		_, err = src.Download(t.Context(), id)
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	})

	t.Run("foreign source", func(t *testing.T) {
		id, err := domain.NewPackageID("local", "0.5.0",
			domain.RegistrySource("https://registry.pakt.dev"))
		require.NoError(t, err)

		_, err = src.Download(t.Context(), id)
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	})
}
