package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mkdo/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mkdo/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mkdo/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/mkdo/internal/adapters/markdown" //nolint:depguard // Wired in app layer
	"go.trai.ch/mkdo/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/mkdo/internal/core/ports"
	"go.trai.ch/mkdo/internal/engine/dispatcher"
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
			markdown.NodeID,
			dispatcher.RegistryNodeID,
			manifest.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.DocumentParser](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*dispatcher.Registry](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, parser, registry, store, w, log), nil
}
