package domain

import (
	semver "github.com/Masterminds/semver/v3"
)

// DepKind classifies how a dependency participates in the build.
type DepKind int

const (
	// DepKindNormal is a regular runtime dependency.
	DepKindNormal DepKind = iota

	// DepKindBuild is needed only by the package's build step.
	DepKindBuild

	// DepKindDevelopment is needed only for tests and examples.
	DepKindDevelopment
)

// WireTag returns the kind's registry wire representation.
func (k DepKind) WireTag() string {
	switch k {
	case DepKindBuild:
		return "build"
	case DepKindDevelopment:
		return "dev"
	default:
		return "normal"
	}
}

// Dependency declares a requirement on another package.
type Dependency struct {
	Name   string
	Source SourceID
	Kind   DepKind

	// Req is the version requirement. When the author wrote no explicit
	// requirement it defaults to "any" and SpecifiedReq is false.
	Req          *semver.Constraints
	SpecifiedReq bool

	Optional        bool
	DefaultFeatures bool
	Features        []string

	// Platform restricts the dependency to a target platform, empty for all.
	Platform string
}

// VersionReq returns the requirement's string form, "*" when unconstrained.
func (d Dependency) VersionReq() string {
	if d.Req == nil {
		return "*"
	}
	return d.Req.String()
}
