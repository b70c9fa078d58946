package suggest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compass/internal/adapters/backend"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/compass/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/compass/internal/core/ports"
)

// NodeID is the unique identifier for the suggester Graft node.
const NodeID graft.ID = "engine.suggest"

func init() {
	graft.Register(graft.Node[*Suggester]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{backend.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Suggester, error) {
			b, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(b, tracer), nil
		},
	})
}
