package domain

import "fmt"

// RegistryConfig is the persisted registry configuration: both values are
// optional and resolved fresh on every invocation.
type RegistryConfig struct {
	Index string
	Token string
}

// PublishDependency is one dependency record of a publish payload.
type PublishDependency struct {
	Name            string   `json:"name"`
	VersionReq      string   `json:"version_req"`
	Optional        bool     `json:"optional"`
	DefaultFeatures bool     `json:"default_features"`
	Features        []string `json:"features"`
	Target          string   `json:"target,omitempty"`
	Kind            string   `json:"kind"`
}

// PublishRequest is the metadata half of a publish payload, sent alongside
// the artifact byte stream.
type PublishRequest struct {
	Name          string              `json:"name"`
	Version       string              `json:"vers"`
	Dependencies  []PublishDependency `json:"deps"`
	Features      map[string][]string `json:"features"`
	Authors       []string            `json:"authors"`
	Description   string              `json:"description,omitempty"`
	Homepage      string              `json:"homepage,omitempty"`
	Documentation string              `json:"documentation,omitempty"`
	Keywords      []string            `json:"keywords"`
	Readme        string              `json:"readme,omitempty"`
	Repository    string              `json:"repository,omitempty"`
	License       string              `json:"license,omitempty"`
	LicenseFile   string              `json:"license_file,omitempty"`
}

// Owner is one entry of a package's ownership list.
type Owner struct {
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// String renders the owner the way the owners listing prints it:
// "login (name <email>)" with both fields, "login (value)" with one,
// "login" with neither.
func (o Owner) String() string {
	switch {
	case o.Name != "" && o.Email != "":
		return fmt.Sprintf("%s (%s <%s>)", o.Login, o.Name, o.Email)
	case o.Name != "":
		return fmt.Sprintf("%s (%s)", o.Login, o.Name)
	case o.Email != "":
		return fmt.Sprintf("%s (%s)", o.Login, o.Email)
	default:
		return o.Login
	}
}

// SearchResult is one row of a registry search response.
type SearchResult struct {
	Name        string `json:"name"`
	MaxVersion  string `json:"max_version"`
	Description string `json:"description,omitempty"`
}
