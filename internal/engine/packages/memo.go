package packages

import (
	"sync"

	"go.trai.ch/pakt/internal/core/domain"
)

// memoCell is a fill-once slot for a resolved package. Empty transitions to
// Filled exactly once; a second fill is a programming error, not a runtime
// condition, and panics.
type memoCell struct {
	mu     sync.Mutex
	pkg    *domain.Package
	filled bool
}

// Get returns the stored package, if any.
func (c *memoCell) Get() (*domain.Package, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pkg, c.filled
}

// Fill stores the package. Panics if the cell is already filled.
func (c *memoCell) Fill(pkg *domain.Package) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filled {
		panic("packages: memo cell filled twice for " + pkg.ID().String())
	}
	c.pkg = pkg
	c.filled = true
}
