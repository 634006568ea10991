package source

import (
	"archive/tar"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry downloads packages from a remote registry and caches the
// unpacked sources on disk. It implements ports.Source.
type Registry struct {
	id       domain.SourceID
	http     *http.Client
	cacheDir string

	cfg *indexConfig
}

type indexConfig struct {
	DL  string `json:"dl"`
	API string `json:"api"`
}

// NewRegistry creates a registry source for the given index identity. All
// traffic goes through the shared transport handle; unpacked packages land
// under cacheDir keyed by the source identity.
func NewRegistry(id domain.SourceID, httpClient *http.Client, cacheDir string) *Registry {
	return &Registry{
		id:       id,
		http:     httpClient,
		cacheDir: cacheDir,
	}
}

// ID returns the source's identity.
func (r *Registry) ID() domain.SourceID {
	return r.id
}

// Update fetches the index configuration that names the registry's API host
// and download endpoint.
func (r *Registry) Update(ctx context.Context) error {
	configURL := strings.TrimRight(r.id.URL, "/") + "/config.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, configURL, http.NoBody)
	if err != nil {
		return zerr.Wrap(err, "failed to build index config request")
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return zerr.Wrap(err, "failed to fetch index configuration")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(domain.ErrRegistryRequestFailed, "status", resp.Status)
		return zerr.With(err, "url", configURL)
	}

	var cfg indexConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return zerr.Wrap(err, "failed to decode index configuration")
	}
	r.cfg = &cfg
	return nil
}

// Config returns the index configuration fetched by Update.
func (r *Registry) Config() (ports.SourceConfig, error) {
	if r.cfg == nil {
		return ports.SourceConfig{}, zerr.New("registry index has not been updated")
	}
	return ports.SourceConfig{API: r.cfg.API, DL: r.cfg.DL}, nil
}

// Download fetches and unpacks the identified package, or reuses a previous
// unpack from the cache.
func (r *Registry) Download(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	if id.Source != r.id {
		return nil, zerr.With(domain.ErrPackageNotFound, "id", id.String())
	}

	root := filepath.Join(r.cacheDir, "src", r.id.Ident(),
		fmt.Sprintf("%s-%s", id.Name, id.Version))
	if _, err := os.Stat(filepath.Join(root, ManifestFileName)); err != nil {
		if err := r.fetchInto(ctx, id, root); err != nil {
			return nil, err
		}
	}

	manifest, err := ReadManifest(root, r.id)
	if err != nil {
		return nil, err
	}
	return domain.NewPackage(*manifest, root), nil
}

func (r *Registry) fetchInto(ctx context.Context, id domain.PackageID, root string) error {
	cfg, err := r.Config()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL(cfg.DL, id), http.NoBody)
	if err != nil {
		return zerr.Wrap(err, "failed to build download request")
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return zerr.Wrap(err, "failed to download package")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		dlErr := zerr.With(domain.ErrRegistryRequestFailed, "status", resp.Status)
		return zerr.With(dlErr, "id", id.String())
	}

	if err := unpack(resp.Body, root); err != nil {
		return zerr.With(err, "id", id.String())
	}
	return nil
}

// downloadURL expands the index's download template. Templates may place the
// package coordinates with {name} and {version}; a template without
// placeholders gets the conventional suffix appended.
func downloadURL(template string, id domain.PackageID) string {
	if strings.Contains(template, "{name}") || strings.Contains(template, "{version}") {
		expanded := strings.ReplaceAll(template, "{name}", id.Name)
		return strings.ReplaceAll(expanded, "{version}", id.Version.String())
	}
	return fmt.Sprintf("%s/%s/%s/download", strings.TrimRight(template, "/"), id.Name, id.Version)
}

// unpack extracts a gzip-compressed tarball into root, stripping the
// tarball's single top-level directory.
func unpack(artifact io.Reader, root string) error {
	gz, err := gzip.NewReader(artifact)
	if err != nil {
		return zerr.Wrap(err, "package artifact is not gzip-compressed")
	}
	defer func() {
		_ = gz.Close()
	}()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read package archive")
		}

		rel := stripTopDir(header.Name)
		if rel == "" {
			continue
		}
		if !filepath.IsLocal(rel) {
			return zerr.With(zerr.New("package archive escapes its root"), "entry", header.Name)
		}
		dest := filepath.Join(root, rel)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, 0o750); err != nil {
				return zerr.Wrap(err, "failed to create package directory")
			}
		case tar.TypeReg:
			if err := writeFile(dest, tr, header.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			// Symlinks and special files are not part of the artifact format.
			continue
		}
	}
}

// stripTopDir drops the archive's top-level directory from an entry name.
// The remainder is intentionally left uncleaned so that traversal attempts
// still carry their ".." segments into the IsLocal check.
func stripTopDir(name string) string {
	_, rest, found := strings.Cut(filepath.ToSlash(name), "/")
	if !found {
		return ""
	}
	return filepath.FromSlash(rest)
}

func writeFile(dest string, contents io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create package directory")
	}
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return zerr.Wrap(err, "failed to create package file")
	}
	if _, err := io.Copy(f, contents); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to write package file")
	}
	return f.Close()
}
