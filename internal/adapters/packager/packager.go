// Package packager assembles a package's on-disk contents into the
// gzip-compressed tarball the registry accepts.
package packager

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// excludedDirs are never part of an artifact.
var excludedDirs = map[string]bool{
	".git":   true,
	"target": true,
}

// Packager implements ports.Packager by archiving the package root.
type Packager struct {
	status ports.Status
}

// New creates a packager that reports through the given status renderer.
func New(status ports.Status) *Packager {
	return &Packager{status: status}
}

// Assemble archives the package root under a name-version top level
// directory and compresses it. Metadata completeness warnings and the dirty
// working directory check happen before any bytes are written.
func (p *Packager) Assemble(ctx context.Context, pkg *domain.Package, opts ports.PackageOptions) (io.ReadCloser, error) {
	if opts.CheckMetadata {
		p.checkMetadata(pkg)
	}
	if !opts.AllowDirty {
		if err := checkClean(ctx, pkg.Root()); err != nil {
			return nil, err
		}
	}

	p.status.Status("Packaging", pkg.ID().String())

	artifact, err := os.CreateTemp("", fmt.Sprintf("%s-%s-*.tar.gz", pkg.Name(), pkg.Version()))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create artifact file")
	}

	if err := writeArchive(artifact, pkg); err != nil {
		_ = artifact.Close()
		_ = os.Remove(artifact.Name())
		return nil, err
	}

	if _, err := artifact.Seek(0, io.SeekStart); err != nil {
		_ = artifact.Close()
		_ = os.Remove(artifact.Name())
		return nil, zerr.Wrap(err, "failed to rewind artifact file")
	}
	return &tempArtifact{File: artifact}, nil
}

// tempArtifact removes the backing file when closed.
type tempArtifact struct {
	*os.File
}

func (a *tempArtifact) Close() error {
	err := a.File.Close()
	if removeErr := os.Remove(a.File.Name()); err == nil {
		err = removeErr
	}
	return err
}

func writeArchive(w io.Writer, pkg *domain.Package) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	topDir := fmt.Sprintf("%s-%s", pkg.Name(), pkg.Version())
	root := pkg.Root()

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if entry.IsDir() {
			if excludedDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		header := &tar.Header{
			Name:    topDir + "/" + filepath.ToSlash(rel),
			Mode:    int64(info.Mode().Perm()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		if _, err := io.Copy(tw, f); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
	if err != nil {
		return zerr.Wrap(err, "failed to archive package contents")
	}

	if err := tw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize package archive")
	}
	if err := gz.Close(); err != nil {
		return zerr.Wrap(err, "failed to compress package archive")
	}
	return nil
}

// checkMetadata warns once per missing descriptive field. The warning never
// blocks assembly.
func (p *Packager) checkMetadata(pkg *domain.Package) {
	meta := pkg.Metadata()

	var missing []string
	if meta.Description == "" {
		missing = append(missing, "description")
	}
	if meta.License == "" && meta.LicenseFile == "" {
		missing = append(missing, "license")
	}
	if meta.Documentation == "" && meta.Homepage == "" && meta.Repository == "" {
		missing = append(missing, "documentation, homepage or repository")
	}
	if len(missing) > 0 {
		p.status.Warn(fmt.Sprintf("manifest has no %s", strings.Join(missing, ", ")))
	}
}

// checkClean rejects a working directory with uncommitted changes. Roots
// outside version control pass.
func checkClean(ctx context.Context, root string) error {
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = root
	output, err := cmd.Output()
	if err != nil {
		return zerr.Wrap(err, "failed to inspect working directory state")
	}
	if dirty := strings.TrimSpace(string(output)); dirty != "" {
		files := strings.Split(dirty, "\n")
		err := zerr.New("working directory has uncommitted changes (use --allow-dirty to override)")
		return zerr.With(err, "files", len(files))
	}
	return nil
}
