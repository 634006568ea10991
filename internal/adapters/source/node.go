package source

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakt/internal/adapters/config"
	"go.trai.ch/pakt/internal/adapters/registry"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
)

// NodeID is the unique identifier for the source factory Graft node.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[registry.SourceFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (registry.SourceFactory, error) {
			home, err := config.Home()
			if err != nil {
				return nil, err
			}
			cacheDir := filepath.Join(home, "cache")
			factory := func(id domain.SourceID, httpClient *http.Client) ports.Source {
				return NewRegistry(id, httpClient, cacheDir)
			}
			return factory, nil
		},
	})
}
