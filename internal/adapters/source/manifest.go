// Package source implements the pluggable package origins: registry
// downloads, local path directories, and git checkouts.
package source

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pakt/internal/adapters/registry"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/zerr"
)

// ManifestFileName is the manifest file looked up in every package root.
const ManifestFileName = "pakt.toml"

type manifestFile struct {
	Package           packageSection            `toml:"package"`
	Dependencies      map[string]dependencySpec `toml:"dependencies"`
	BuildDependencies map[string]dependencySpec `toml:"build-dependencies"`
	DevDependencies   map[string]dependencySpec `toml:"dev-dependencies"`
	Features          map[string][]string       `toml:"features"`
	Target            map[string]targetSection  `toml:"target"`
	Lib               *targetEntry              `toml:"lib"`
	Bin               []targetEntry             `toml:"bin"`
	Example           []targetEntry             `toml:"example"`
	Bench             []targetEntry             `toml:"bench"`
	Test              []targetEntry             `toml:"test"`
}

type packageSection struct {
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	Authors       []string `toml:"authors"`
	Description   string   `toml:"description"`
	Homepage      string   `toml:"homepage"`
	Documentation string   `toml:"documentation"`
	Keywords      []string `toml:"keywords"`
	Readme        string   `toml:"readme"`
	Repository    string   `toml:"repository"`
	License       string   `toml:"license"`
	LicenseFile   string   `toml:"license-file"`
	Build         string   `toml:"build"`
	Publish       *bool    `toml:"publish"`
}

type targetSection struct {
	Dependencies map[string]dependencySpec `toml:"dependencies"`
}

type targetEntry struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// dependencySpec accepts both the shorthand string form
// (name = "^1.0") and the detailed table form.
type dependencySpec struct {
	Version         string
	Path            string
	Git             string
	Optional        bool
	DefaultFeatures bool
	Features        []string
}

func (d *dependencySpec) UnmarshalTOML(value any) error {
	d.DefaultFeatures = true

	switch v := value.(type) {
	case string:
		d.Version = v
		return nil
	case map[string]any:
		if s, ok := v["version"].(string); ok {
			d.Version = s
		}
		if s, ok := v["path"].(string); ok {
			d.Path = s
		}
		if s, ok := v["git"].(string); ok {
			d.Git = s
		}
		if b, ok := v["optional"].(bool); ok {
			d.Optional = b
		}
		if b, ok := v["default-features"].(bool); ok {
			d.DefaultFeatures = b
		}
		if raw, ok := v["features"].([]any); ok {
			for _, f := range raw {
				s, ok := f.(string)
				if !ok {
					return zerr.New("dependency features must be strings")
				}
				d.Features = append(d.Features, s)
			}
		}
		return nil
	default:
		return zerr.New("dependency must be a version string or a table")
	}
}

// ReadManifest parses the manifest at root/pakt.toml and resolves it against
// the source the package came from.
func ReadManifest(root string, src domain.SourceID) (*domain.Manifest, error) {
	manifestPath := filepath.Join(root, ManifestFileName)
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", manifestPath)
		}
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var file manifestFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrManifestInvalid.Error())
		return nil, zerr.With(wrapped, "path", manifestPath)
	}
	return buildManifest(&file, root, src)
}

func buildManifest(file *manifestFile, root string, src domain.SourceID) (*domain.Manifest, error) {
	if file.Package.Name == "" {
		return nil, invalidField("package.name", "name is required")
	}
	version, err := semver.NewVersion(file.Package.Version)
	if err != nil {
		return nil, invalidField("package.version", err.Error())
	}

	deps, err := collectDependencies(file, src, root)
	if err != nil {
		return nil, err
	}

	publish := true
	if file.Package.Publish != nil {
		publish = *file.Package.Publish
	}

	manifest := &domain.Manifest{
		ID: domain.PackageID{
			Name:    file.Package.Name,
			Version: version,
			Source:  src,
		},
		Dependencies: deps,
		Targets:      collectTargets(file),
		Metadata: domain.Metadata{
			Authors:       file.Package.Authors,
			Description:   file.Package.Description,
			Homepage:      file.Package.Homepage,
			Documentation: file.Package.Documentation,
			Keywords:      file.Package.Keywords,
			Readme:        file.Package.Readme,
			Repository:    file.Package.Repository,
			License:       file.Package.License,
			LicenseFile:   file.Package.LicenseFile,
		},
		Features: file.Features,
		Publish:  publish,
	}
	return manifest, nil
}

func collectDependencies(file *manifestFile, src domain.SourceID, root string) ([]domain.Dependency, error) {
	var deps []domain.Dependency

	appendGroup := func(group map[string]dependencySpec, kind domain.DepKind, platform string) error {
		for name, spec := range group {
			dep, err := buildDependency(name, spec, kind, src, root)
			if err != nil {
				return err
			}
			dep.Platform = platform
			deps = append(deps, dep)
		}
		return nil
	}

	if err := appendGroup(file.Dependencies, domain.DepKindNormal, ""); err != nil {
		return nil, err
	}
	if err := appendGroup(file.BuildDependencies, domain.DepKindBuild, ""); err != nil {
		return nil, err
	}
	if err := appendGroup(file.DevDependencies, domain.DepKindDevelopment, ""); err != nil {
		return nil, err
	}
	for platform, section := range file.Target {
		if err := appendGroup(section.Dependencies, domain.DepKindNormal, platform); err != nil {
			return nil, err
		}
	}
	return deps, nil
}

func buildDependency(name string, spec dependencySpec, kind domain.DepKind, src domain.SourceID, root string) (domain.Dependency, error) {
	dep := domain.Dependency{
		Name:            name,
		Kind:            kind,
		Optional:        spec.Optional,
		DefaultFeatures: spec.DefaultFeatures,
		Features:        spec.Features,
		SpecifiedReq:    spec.Version != "",
	}

	switch {
	case spec.Path != "":
		dir := spec.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		dep.Source = domain.PathSource(dir)
	case spec.Git != "":
		dep.Source = domain.GitSource(spec.Git)
	case src.Kind == domain.SourceKindRegistry:
		dep.Source = src
	default:
		// Plain version requirements in a local package pull from the
		// default registry.
		dep.Source = domain.RegistrySource(registry.DefaultIndex)
	}

	if spec.Version != "" {
		req, err := semver.NewConstraint(spec.Version)
		if err != nil {
			return domain.Dependency{}, invalidField("dependencies."+name, err.Error())
		}
		dep.Req = req
	}
	return dep, nil
}

func collectTargets(file *manifestFile) []domain.Target {
	var targets []domain.Target

	if file.Lib != nil {
		name := file.Lib.Name
		if name == "" {
			name = file.Package.Name
		}
		targets = append(targets, domain.Target{
			Name: name,
			Kind: domain.TargetKindLibrary,
			Path: orDefault(file.Lib.Path, "src"),
		})
	}
	for _, entry := range file.Bin {
		targets = append(targets, domain.Target{
			Name: entry.Name,
			Kind: domain.TargetKindBinary,
			Path: orDefault(entry.Path, path.Join("src", "bin", entry.Name)),
		})
	}
	for _, entry := range file.Example {
		targets = append(targets, domain.Target{
			Name: entry.Name,
			Kind: domain.TargetKindExample,
			Path: orDefault(entry.Path, path.Join("examples", entry.Name)),
		})
	}
	for _, entry := range file.Bench {
		targets = append(targets, domain.Target{
			Name: entry.Name,
			Kind: domain.TargetKindBench,
			Path: orDefault(entry.Path, path.Join("benches", entry.Name)),
		})
	}
	for _, entry := range file.Test {
		targets = append(targets, domain.Target{
			Name: entry.Name,
			Kind: domain.TargetKindTest,
			Path: orDefault(entry.Path, path.Join("tests", entry.Name)),
		})
	}
	if file.Package.Build != "" {
		targets = append(targets, domain.Target{
			Name: "build-script",
			Kind: domain.TargetKindCustomBuild,
			Path: file.Package.Build,
		})
	}

	// A manifest with no explicit targets still describes a library.
	if len(targets) == 0 {
		targets = append(targets, domain.Target{
			Name: file.Package.Name,
			Kind: domain.TargetKindLibrary,
			Path: "src",
		})
	}
	return targets
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func invalidField(field, cause string) error {
	err := zerr.Wrap(fmt.Errorf("%s", cause), domain.ErrManifestInvalid.Error())
	return zerr.With(err, "field", field)
}
