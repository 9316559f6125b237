package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/undup/internal/adapters/logger"
	"go.trai.ch/undup/internal/core/ports"
)

// NodeID is the unique identifier for the diagnostics reporter node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Reporter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
