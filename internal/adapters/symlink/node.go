package symlink

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/undup/internal/adapters/logger"
	"go.trai.ch/undup/internal/core/ports"
)

// NodeID is the unique identifier for the applying action executor node.
// The dry-run executor is constructed per run with the output stream.
const NodeID graft.ID = "adapter.symlink.applier"

func init() {
	graft.Register(graft.Node[ports.ActionExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ActionExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewApplier(log), nil
		},
	})
}
