package domain

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// PackageID is the identity of a package: name, version and source. Identity
// precedes content — two packages with equal PackageIDs are the same package
// no matter what their manifests say.
type PackageID struct {
	Name    string
	Version *semver.Version
	Source  SourceID
}

// NewPackageID constructs a PackageID, parsing the version string.
func NewPackageID(name, version string, source SourceID) (PackageID, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return PackageID{}, err
	}
	return PackageID{Name: name, Version: v, Source: source}, nil
}

// Equal reports whether two PackageIDs denote the same package.
func (id PackageID) Equal(other PackageID) bool {
	if id.Name != other.Name || id.Source != other.Source {
		return false
	}
	if id.Version == nil || other.Version == nil {
		return id.Version == other.Version
	}
	return id.Version.Equal(other.Version)
}

func (id PackageID) String() string {
	return fmt.Sprintf("%s v%s (%s)", id.Name, id.Version, id.Source)
}
