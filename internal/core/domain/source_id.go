package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// SourceKind identifies the origin flavor of a package source.
type SourceKind string

const (
	// SourceKindRegistry is a remote registry index.
	SourceKindRegistry SourceKind = "registry"

	// SourceKindPath is a local filesystem directory.
	SourceKindPath SourceKind = "path"

	// SourceKindGit is a version-controlled checkout.
	SourceKindGit SourceKind = "git"
)

// SourceID identifies where a package comes from. Two SourceIDs are the same
// source if and only if their kind and canonical URL are equal, so the zero
// value and == comparison are meaningful.
type SourceID struct {
	Kind SourceKind
	URL  string
}

// RegistrySource builds a SourceID for a registry index URL.
// The URL must already be validated by the caller.
func RegistrySource(index string) SourceID {
	return SourceID{Kind: SourceKindRegistry, URL: strings.TrimRight(index, "/")}
}

// PathSource builds a SourceID for a local directory.
func PathSource(dir string) SourceID {
	return SourceID{Kind: SourceKindPath, URL: "file://" + dir}
}

// GitSource builds a SourceID for a git remote.
func GitSource(remote string) SourceID {
	return SourceID{Kind: SourceKindGit, URL: remote}
}

// ParseIndexURL validates a registry index URL and returns its SourceID.
func ParseIndexURL(index string) (SourceID, error) {
	u, err := url.Parse(index)
	if err != nil {
		parseErr := zerr.Wrap(err, ErrInvalidIndexURL.Error())
		return SourceID{}, zerr.With(parseErr, "index", index)
	}
	if u.Scheme == "" || u.Host == "" {
		return SourceID{}, zerr.With(ErrInvalidIndexURL, "index", index)
	}
	return RegistrySource(u.String()), nil
}

// IsZero reports whether the SourceID is the zero value.
func (s SourceID) IsZero() bool {
	return s.Kind == "" && s.URL == ""
}

// IsPath reports whether the source is a local filesystem path.
func (s SourceID) IsPath() bool {
	return s.Kind == SourceKindPath
}

// Dir returns the local directory of a path source.
func (s SourceID) Dir() string {
	return strings.TrimPrefix(s.URL, "file://")
}

// Ident returns a short stable identifier for the source, suitable for
// cache directory names. The hash is over the canonical URL only, so the
// same index always maps to the same on-disk location.
func (s SourceID) Ident() string {
	return fmt.Sprintf("%s-%016x", s.Kind, xxhash.Sum64String(s.URL))
}

func (s SourceID) String() string {
	return fmt.Sprintf("%s+%s", s.Kind, s.URL)
}
