package domain

// Metadata is the descriptive half of a manifest: everything the registry
// displays but the resolver never looks at.
type Metadata struct {
	Authors       []string
	Description   string
	Homepage      string
	Documentation string
	Keywords      []string
	Readme        string
	Repository    string
	License       string
	LicenseFile   string
}

// Manifest is the declared contents of a pakt.toml file. It is constructed
// once when read from disk or a source and is read-only afterwards.
type Manifest struct {
	ID           PackageID
	Dependencies []Dependency
	Targets      []Target
	Metadata     Metadata
	Features     map[string][]string

	// Publish is false when the author marked the package unpublishable.
	Publish bool
}
