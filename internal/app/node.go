package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/undup/internal/adapters/fs"
	"go.trai.ch/undup/internal/adapters/logger"
	"go.trai.ch/undup/internal/adapters/report"
	"go.trai.ch/undup/internal/adapters/symlink"
	"go.trai.ch/undup/internal/adapters/telemetry/progrock"
	"go.trai.ch/undup/internal/core/ports"
	"go.trai.ch/undup/internal/engine/matcher"
)

// NodeID is the unique identifier for the application components node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			report.NodeID,
			fs.HasherNodeID,
			symlink.NodeID,
			progrock.NodeID,
			matcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.ActionExecutor](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			match, err := graft.Dep[*matcher.Matcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(log, reporter, hasher, executor, telemetry, match),
				Logger: log,
			}, nil
		},
	})
}
