package packages_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/pakt/internal/engine/packages"
)

// countingSource is a fake source that records download invocations.
type countingSource struct {
	downloads atomic.Int64
	block     chan struct{}
	err       error
}

func (s *countingSource) Download(_ context.Context, id domain.PackageID) (*domain.Package, error) {
	s.downloads.Add(1)
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return domain.NewPackage(domain.Manifest{ID: id, Publish: true}, "/tmp/"+id.Name), nil
}

func (s *countingSource) Update(context.Context) error { return nil }

func (s *countingSource) Config() (ports.SourceConfig, error) {
	return ports.SourceConfig{}, nil
}

func newSet(t *testing.T, src ports.Source, ids ...domain.PackageID) *packages.PackageSet {
	t.Helper()
	sources := packages.NewSourceMap()
	if src != nil {
		for _, id := range ids {
			sources.Insert(id.Source, src)
		}
	}
	set, err := packages.NewPackageSet(ids, sources)
	require.NoError(t, err)
	return set
}

func TestPackageSet_Get(t *testing.T) {
	reg := domain.RegistrySource("https://registry.pakt.dev")
	idA := mustID(t, "left-pad", "1.0.0", reg)
	idB := mustID(t, "right-pad", "2.0.0", reg)

	t.Run("resolves independently and memoizes", func(t *testing.T) {
		src := &countingSource{}
		set := newSet(t, src, idA, idB)

		a1, err := set.Get(context.Background(), idA)
		require.NoError(t, err)
		b1, err := set.Get(context.Background(), idB)
		require.NoError(t, err)
		a2, err := set.Get(context.Background(), idA)
		require.NoError(t, err)

		assert.Same(t, a1, a2)
		assert.Equal(t, "left-pad", a1.Name())
		assert.Equal(t, "right-pad", b1.Name())
		assert.Equal(t, int64(2), src.downloads.Load())
	})

	t.Run("unknown id never touches sources", func(t *testing.T) {
		src := &countingSource{}
		set := newSet(t, src, idA)

		_, err := set.Get(context.Background(), idB)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
		assert.Equal(t, int64(0), src.downloads.Load())
	})

	t.Run("no source registered", func(t *testing.T) {
		set := newSet(t, nil, idA)

		_, err := set.Get(context.Background(), idA)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	})

	t.Run("download failure is wrapped and not memoized as success", func(t *testing.T) {
		src := &countingSource{err: domain.ErrManifestInvalid}
		set := newSet(t, src, idA)

		_, err := set.Get(context.Background(), idA)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to get packages from source")
	})

	t.Run("overlapping lookups for the same id share one download", func(t *testing.T) {
		src := &countingSource{block: make(chan struct{})}
		set := newSet(t, src, idA)

		const callers = 8
		results := make([]*domain.Package, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pkg, err := set.Get(context.Background(), idA)
				require.NoError(t, err)
				results[i] = pkg
			}()
		}
		close(src.block)
		wg.Wait()

		assert.Equal(t, int64(1), src.downloads.Load())
		for _, pkg := range results[1:] {
			assert.Same(t, results[0], pkg)
		}
	})
}

func TestPackageSet_PackageIDs(t *testing.T) {
	reg := domain.RegistrySource("https://registry.pakt.dev")
	idA := mustID(t, "a", "1.0.0", reg)
	idB := mustID(t, "b", "1.0.0", reg)
	set := newSet(t, nil, idA, idB)

	collect := func() []string {
		var names []string
		for id := range set.PackageIDs() {
			names = append(names, id.Name)
		}
		return names
	}

	// The traversal is restartable and preserves insertion order.
	assert.Equal(t, []string{"a", "b"}, collect())
	assert.Equal(t, []string{"a", "b"}, collect())
}

func TestNewPackageSet_RejectsDuplicates(t *testing.T) {
	reg := domain.RegistrySource("https://registry.pakt.dev")
	id := mustID(t, "a", "1.0.0", reg)

	_, err := packages.NewPackageSet([]domain.PackageID{id, id}, packages.NewSourceMap())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicatePackageID)
}

func mustID(t *testing.T, name, version string, source domain.SourceID) domain.PackageID {
	t.Helper()
	id, err := domain.NewPackageID(name, version, source)
	require.NoError(t, err)
	return id
}
