package domain

import (
	semver "github.com/Masterminds/semver/v3"
)

// maxTargetDistance is the edit-distance threshold beyond which a target name
// is not considered a plausible misspelling.
const maxTargetDistance = 4

// Package is a manifest plus the filesystem root that contains it.
// Equality follows PackageID alone.
type Package struct {
	manifest Manifest
	root     string
}

// NewPackage creates a Package rooted at the directory containing its manifest.
func NewPackage(manifest Manifest, root string) *Package {
	return &Package{manifest: manifest, root: root}
}

// ID returns the package's identity.
func (p *Package) ID() PackageID { return p.manifest.ID }

// Name returns the package name.
func (p *Package) Name() string { return p.manifest.ID.Name }

// Version returns the package version.
func (p *Package) Version() *semver.Version { return p.manifest.ID.Version }

// Manifest returns the package's manifest.
func (p *Package) Manifest() Manifest { return p.manifest }

// Dependencies returns the declared dependency list.
func (p *Package) Dependencies() []Dependency { return p.manifest.Dependencies }

// Targets returns the declared build targets.
func (p *Package) Targets() []Target { return p.manifest.Targets }

// Metadata returns the descriptive metadata.
func (p *Package) Metadata() Metadata { return p.manifest.Metadata }

// Publish reports whether the package may be published.
func (p *Package) Publish() bool { return p.manifest.Publish }

// Root returns the directory containing the package's manifest.
func (p *Package) Root() string { return p.root }

// Equal reports whether two packages share the same identity.
func (p *Package) Equal(other *Package) bool {
	return p.ID().Equal(other.ID())
}

func (p *Package) String() string {
	return p.ID().String()
}

// HasCustomBuild reports whether any target is a custom build step.
func (p *Package) HasCustomBuild() bool {
	for _, t := range p.Targets() {
		if t.IsCustomBuild() {
			return true
		}
	}
	return false
}

// FindClosestTarget returns the target of the given kind whose name is the
// closest plausible misspelling of name, or nil if every candidate is at
// edit distance maxTargetDistance or more. Ties go to the first candidate
// in declaration order.
func (p *Package) FindClosestTarget(name string, kind TargetKind) *Target {
	var best *Target
	bestDist := maxTargetDistance
	for i := range p.manifest.Targets {
		t := &p.manifest.Targets[i]
		if t.Kind != kind {
			continue
		}
		if d := editDistance(name, t.Name); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
