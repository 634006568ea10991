package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakt/internal/core/domain"
)

func TestMemoCell_FillOnce(t *testing.T) {
	id, err := domain.NewPackageID("a", "1.0.0", domain.RegistrySource("https://registry.pakt.dev"))
	require.NoError(t, err)
	pkg := domain.NewPackage(domain.Manifest{ID: id}, "/tmp/a")

	var cell memoCell
	_, ok := cell.Get()
	assert.False(t, ok)

	cell.Fill(pkg)
	got, ok := cell.Get()
	require.True(t, ok)
	assert.Same(t, pkg, got)

	// Refilling a filled slot is a defect, not a recoverable condition.
	assert.Panics(t, func() { cell.Fill(pkg) })
}
