package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakt/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pakt/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pakt/internal/adapters/packager" //nolint:depguard // Wired in app layer
	"go.trai.ch/pakt/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pakt/internal/adapters/source"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/pakt/internal/ui/status"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			status.NodeID,
			packager.NodeID,
			source.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}

			st, err := graft.Dep[ports.Status](ctx)
			if err != nil {
				return nil, err
			}

			pack, err := graft.Dep[ports.Packager](ctx)
			if err != nil {
				return nil, err
			}

			sources, err := graft.Dep[registry.SourceFactory](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, st, pack, sources), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
