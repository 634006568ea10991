package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when a PackageID is absent from a package set.
	ErrPackageNotFound = zerr.New("package not found in package set")

	// ErrSourceNotFound is returned when no source is registered for a source identifier.
	ErrSourceNotFound = zerr.New("no source registered for source identifier")

	// ErrDuplicatePackageID is returned when a package set is built with two equal identifiers.
	ErrDuplicatePackageID = zerr.New("duplicate package identifier in package set")

	// ErrManifestNotFound is returned when no pakt.toml can be located for the workspace.
	ErrManifestNotFound = zerr.New("could not find pakt.toml in this directory or any parent")

	// ErrManifestInvalid is returned when a manifest fails to parse or validate.
	ErrManifestInvalid = zerr.New("invalid manifest")

	// ErrInvalidIndexURL is returned when a registry index URL cannot be parsed.
	ErrInvalidIndexURL = zerr.New("invalid registry index URL")

	// ErrNetworkDisabled is returned when offline mode forbids an HTTP request.
	ErrNetworkDisabled = zerr.New("attempting to make an HTTP request, but --offline was specified")

	// ErrTransferStalled is returned when a transfer's throughput stays below the floor.
	ErrTransferStalled = zerr.New("transfer stalled below minimum throughput")

	// ErrRegistryRequestFailed is returned on a non-success response from the registry API.
	ErrRegistryRequestFailed = zerr.New("registry request failed")

	// ErrNotPublishable is returned when a manifest marks the package unpublishable.
	ErrNotPublishable = zerr.New("package is marked as unpublishable")

	// ErrPathDependencyVersion is returned when a path dependency lacks an explicit
	// version requirement at publish time.
	ErrPathDependencyVersion = zerr.New("all path dependencies must have a version specified when publishing")

	// ErrWrongRegistry is returned when a dependency is sourced from a registry other
	// than the one being published to.
	ErrWrongRegistry = zerr.New("all dependencies must come from the same source")

	// ErrLicenseFileMissing is returned when the declared license file does not exist.
	ErrLicenseFileMissing = zerr.New("the license file does not exist")

	// ErrVersionRequired is returned when yank is invoked without a version.
	ErrVersionRequired = zerr.New("a version must be specified to yank")

	// ErrTokenRequired is returned when login is invoked without a token.
	ErrTokenRequired = zerr.New("a token must be provided to log in")
)
