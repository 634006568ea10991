// Package packages implements the memoized, source-backed resolution of
// package identifiers into on-disk packages.
package packages

import (
	"sync"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
)

// SourceMap holds the sources known to a resolution, keyed by source
// identifier. It is shared by every slot of a PackageSet and guarded so that
// at most one lookup touches it at a time.
type SourceMap struct {
	mu      sync.Mutex
	sources map[domain.SourceID]ports.Source
}

// NewSourceMap creates an empty SourceMap.
func NewSourceMap() *SourceMap {
	return &SourceMap{sources: make(map[domain.SourceID]ports.Source)}
}

// Insert registers a source under its identifier, replacing any previous one.
func (m *SourceMap) Insert(id domain.SourceID, src ports.Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[id] = src
}

// Get returns the source registered under id.
func (m *SourceMap) Get(id domain.SourceID) (ports.Source, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	src, ok := m.sources[id]
	return src, ok
}

// Len returns the number of registered sources.
func (m *SourceMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sources)
}
