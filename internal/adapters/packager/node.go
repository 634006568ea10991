package packager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/pakt/internal/ui/status"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "adapter.packager"

func init() {
	graft.Register(graft.Node[ports.Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{status.NodeID},
		Run: func(ctx context.Context) (ports.Packager, error) {
			st, err := graft.Dep[ports.Status](ctx)
			if err != nil {
				return nil, err
			}
			return New(st), nil
		},
	})
}
