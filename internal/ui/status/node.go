package status

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakt/internal/core/ports"
)

// NodeID is the unique identifier for the status renderer Graft node.
const NodeID graft.ID = "ui.status"

func init() {
	graft.Register(graft.Node[ports.Status]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Status, error) {
			return New(nil), nil
		},
	})
}
