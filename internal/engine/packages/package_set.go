package packages

import (
	"context"
	"iter"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

type slot struct {
	id   domain.PackageID
	cell memoCell
}

// PackageSet is an ordered collection of known package identifiers, each
// backed by a fill-once memo slot, resolved on demand against a shared map
// of sources. The identifier list is fixed at construction; slots fill
// lazily, at most once, over the set's lifetime.
type PackageSet struct {
	slots   []*slot
	sources *SourceMap
	flight  singleflight.Group
}

// NewPackageSet creates a set over the given identifiers and sources.
// The identifiers must be pairwise distinct.
func NewPackageSet(ids []domain.PackageID, sources *SourceMap) (*PackageSet, error) {
	slots := make([]*slot, 0, len(ids))
	for _, id := range ids {
		for _, existing := range slots {
			if existing.id.Equal(id) {
				return nil, zerr.With(domain.ErrDuplicatePackageID, "id", id.String())
			}
		}
		slots = append(slots, &slot{id: id})
	}
	return &PackageSet{slots: slots, sources: sources}, nil
}

// PackageIDs returns a restartable traversal of the set's identifiers in
// insertion order.
func (s *PackageSet) PackageIDs() iter.Seq[domain.PackageID] {
	return func(yield func(domain.PackageID) bool) {
		for _, sl := range s.slots {
			if !yield(sl.id) {
				return
			}
		}
	}
}

// Sources returns the set's shared source map.
func (s *PackageSet) Sources() *SourceMap {
	return s.sources
}

// Get resolves id into its package. A filled slot is returned without any
// source access; otherwise the source registered under id's source
// identifier downloads the package and the slot is filled exactly once.
// Overlapping lookups for the same identifier share one download.
func (s *PackageSet) Get(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	sl := s.lookup(id)
	if sl == nil {
		return nil, zerr.With(domain.ErrPackageNotFound, "id", id.String())
	}
	if pkg, ok := sl.cell.Get(); ok {
		return pkg, nil
	}

	v, err, _ := s.flight.Do(id.String(), func() (any, error) {
		// A lookup that lost the race may arrive after the winner filled.
		if pkg, ok := sl.cell.Get(); ok {
			return pkg, nil
		}
		src, ok := s.sources.Get(id.Source)
		if !ok {
			return nil, zerr.With(domain.ErrSourceNotFound, "source", id.Source.String())
		}
		pkg, err := src.Download(ctx, id)
		if err != nil {
			return nil, zerr.Wrap(err, "unable to get packages from source")
		}
		sl.cell.Fill(pkg)
		return pkg, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Package), nil
}

func (s *PackageSet) lookup(id domain.PackageID) *slot {
	for _, sl := range s.slots {
		if sl.id.Equal(id) {
			return sl
		}
	}
	return nil
}
