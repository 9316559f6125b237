package matcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/undup/internal/adapters/report"
	"go.trai.ch/undup/internal/core/ports"
)

// NodeID is the unique identifier for the matching engine node.
const NodeID graft.ID = "engine.matcher"

func init() {
	graft.Register(graft.Node[*Matcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{report.NodeID},
		Run: func(ctx context.Context) (*Matcher, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return New(reporter), nil
		},
	})
}
